package domain

import (
	"strings"
	"time"
)

// PromotedObject is the entity an ad set's delivery is tied to. Which
// sub-fields are required depends on the ad set's optimization goal.
type PromotedObject struct {
	PageID          string `json:"page_id,omitempty"`
	ApplicationID   string `json:"application_id,omitempty"`
	ObjectStoreURL  string `json:"object_store_url,omitempty"`
	CustomEventType string `json:"custom_event_type,omitempty"`
	ProductSetID    string `json:"product_set_id,omitempty"`
}

func (p PromotedObject) isEmpty() bool {
	return p == PromotedObject{}
}

// Targeting describes the audience of an ad set. geo_locations is the
// only required member; the rest are forwarded opaquely.
type Targeting struct {
	GeoLocations       map[string]any   `json:"geo_locations"`
	AgeMin             *int             `json:"age_min,omitempty"`
	AgeMax             *int             `json:"age_max,omitempty"`
	Genders            []int            `json:"genders,omitempty"`
	FacebookPositions  []string         `json:"facebook_positions,omitempty"`
	PublisherPlatforms []string         `json:"publisher_platforms,omitempty"`
	FlexibleSpec       []map[string]any `json:"flexible_spec,omitempty"`
}

// AdSetCreateRequest is the untrusted input for ad set creation as
// decoded at the HTTP boundary. Enum fields arrive as raw strings and
// are checked against the catalog by Normalize.
type AdSetCreateRequest struct {
	Name                        string         `json:"name"`
	OptimizationGoal            string         `json:"optimization_goal"`
	BillingEvent                string         `json:"billing_event"`
	BidAmount                   *int64         `json:"bid_amount,omitempty"`
	BidStrategy                 string         `json:"bid_strategy,omitempty"`
	DailyBudget                 *int64         `json:"daily_budget,omitempty"`
	LifetimeBudget              *int64         `json:"lifetime_budget,omitempty"`
	CampaignID                  string         `json:"campaign_id"`
	PromotedObject              PromotedObject `json:"promoted_object"`
	Targeting                   Targeting      `json:"targeting"`
	Status                      string         `json:"status"`
	StartTime                   *time.Time     `json:"start_time,omitempty"`
	EndTime                     *time.Time     `json:"end_time,omitempty"`
	TuneForCategory             string         `json:"tune_for_category,omitempty"`
	MultiOptimizationGoalWeight string         `json:"multi_optimization_goal_weight,omitempty"`
	DSAPayor                    string         `json:"dsa_payor,omitempty"`
	DSABeneficiary              string         `json:"dsa_beneficiary,omitempty"`
}

// maxAdSetNameLen is the upstream limit on ad set names.
const maxAdSetNameLen = 400

// Normalize validates the request and produces the upstream parameter
// set. It is a pure function: no I/O, no clock, no hidden state. All
// rules are evaluated and every violation is reported in one
// ValidationError; nothing is silently corrected.
func (r AdSetCreateRequest) Normalize() (Params, error) {
	var vs violations

	// Structural and enum checks.
	switch {
	case strings.TrimSpace(r.Name) == "":
		vs.missing("name")
	case len(r.Name) > maxAdSetNameLen:
		vs.add("name", RuleOutOfRangeValue, "name must be at most %d characters", maxAdSetNameLen)
	}
	if r.CampaignID == "" {
		vs.missing("campaign_id")
	}

	var goal OptimizationGoal
	if r.OptimizationGoal == "" {
		vs.missing("optimization_goal")
	} else if g, err := ParseOptimizationGoal(r.OptimizationGoal); err != nil {
		vs.add("optimization_goal", RuleInvalidEnumValue, "%s", err)
	} else {
		goal = g
	}

	if r.BillingEvent == "" {
		vs.missing("billing_event")
	} else if _, err := ParseBillingEvent(r.BillingEvent); err != nil {
		vs.add("billing_event", RuleInvalidEnumValue, "%s", err)
	}

	if r.Status == "" {
		vs.missing("status")
	} else if _, err := ParseStatus(r.Status); err != nil {
		vs.add("status", RuleInvalidEnumValue, "%s", err)
	}

	var strategy BidStrategy
	if r.BidStrategy != "" {
		if s, err := ParseBidStrategy(r.BidStrategy); err != nil {
			vs.add("bid_strategy", RuleInvalidEnumValue, "%s", err)
		} else {
			strategy = s
		}
	}
	if r.TuneForCategory != "" {
		if _, err := ParseTuneForCategory(r.TuneForCategory); err != nil {
			vs.add("tune_for_category", RuleInvalidEnumValue, "%s", err)
		}
	}
	if r.MultiOptimizationGoalWeight != "" {
		if _, err := ParseMultiOptimizationGoalWeight(r.MultiOptimizationGoalWeight); err != nil {
			vs.add("multi_optimization_goal_weight", RuleInvalidEnumValue, "%s", err)
		}
	}
	if len(r.Targeting.GeoLocations) == 0 {
		vs.missing("targeting.geo_locations")
	}

	// Budget bounds. Daily and lifetime budgets are checked
	// independently; supplying both is not rejected here and is left
	// for the upstream API to arbitrate.
	if r.DailyBudget != nil && *r.DailyBudget <= 0 {
		vs.add("daily_budget", RuleOutOfRangeValue, "daily_budget must be greater than 0")
	}
	if r.LifetimeBudget != nil && *r.LifetimeBudget <= 0 {
		vs.add("lifetime_budget", RuleOutOfRangeValue, "lifetime_budget must be greater than 0")
	}

	// A lifetime budget needs a schedule end to spend against.
	if r.LifetimeBudget != nil && r.EndTime == nil {
		vs.add("end_time", RuleMissingDependentField, "end_time is required when lifetime_budget is set")
	}

	// Promoted object requirements depend on the optimization goal.
	// Goals outside the two classes below carry no constraint here.
	switch goal {
	case GoalPageLikes, GoalPostEngagement, GoalEventResponses:
		if r.PromotedObject.PageID == "" {
			vs.add("page_id", RuleMissingDependentField,
				"promoted_object.page_id is required for optimization goal %s", goal)
		}
	case GoalAppInstalls, GoalAppInstallsAndOffsiteConversions:
		if r.PromotedObject.ApplicationID == "" {
			vs.add("application_id", RuleMissingDependentField,
				"promoted_object.application_id is required for optimization goal %s", goal)
		}
		if r.PromotedObject.ObjectStoreURL == "" {
			vs.add("object_store_url", RuleMissingDependentField,
				"promoted_object.object_store_url is required for optimization goal %s", goal)
		}
	}

	// Bid amount compatibility with the bid strategy.
	// LOWEST_COST_WITH_MIN_ROAS intentionally has no constraint here;
	// the upstream API enforces its ROAS floor parameters itself.
	switch strategy {
	case BidLowestCostWithoutCap:
		if r.BidAmount != nil {
			vs.add("bid_amount", RuleIncompatibleField,
				"bid_amount cannot be set with bid strategy %s", strategy)
		}
	case BidLowestCostWithBidCap, BidCostCap:
		if r.BidAmount == nil || *r.BidAmount <= 0 {
			vs.add("bid_amount", RuleMissingDependentField,
				"bid_amount must be greater than 0 when bid_strategy is %s", strategy)
		}
	}

	if err := vs.err(); err != nil {
		return nil, err
	}

	params := Params{
		"name":              r.Name,
		"campaign_id":       r.CampaignID,
		"optimization_goal": r.OptimizationGoal,
		"billing_event":     r.BillingEvent,
		"status":            r.Status,
		"targeting":         r.Targeting.params(),
	}
	if !r.PromotedObject.isEmpty() {
		params["promoted_object"] = r.PromotedObject.params()
	}
	if r.DailyBudget != nil {
		params["daily_budget"] = *r.DailyBudget
	}
	if r.LifetimeBudget != nil {
		params["lifetime_budget"] = *r.LifetimeBudget
	}
	if strategy != "" {
		params["bid_strategy"] = r.BidStrategy
		// A bid amount is only meaningful under a capped strategy;
		// without one it is dropped from the upstream call.
		if r.BidAmount != nil && strategy != BidLowestCostWithoutCap {
			params["bid_amount"] = *r.BidAmount
		}
	}
	if r.StartTime != nil {
		params["start_time"] = r.StartTime.Format(time.RFC3339)
	}
	if r.EndTime != nil {
		params["end_time"] = r.EndTime.Format(time.RFC3339)
	}
	if r.TuneForCategory != "" {
		params["tune_for_category"] = r.TuneForCategory
	}
	if r.MultiOptimizationGoalWeight != "" {
		params["multi_optimization_goal_weight"] = r.MultiOptimizationGoalWeight
	}
	if r.DSAPayor != "" {
		params["dsa_payor"] = r.DSAPayor
	}
	if r.DSABeneficiary != "" {
		params["dsa_beneficiary"] = r.DSABeneficiary
	}
	return params, nil
}

// params flattens the targeting spec to its upstream key names,
// omitting absent members.
func (t Targeting) params() map[string]any {
	m := map[string]any{"geo_locations": t.GeoLocations}
	if t.AgeMin != nil {
		m["age_min"] = *t.AgeMin
	}
	if t.AgeMax != nil {
		m["age_max"] = *t.AgeMax
	}
	if len(t.Genders) > 0 {
		m["genders"] = t.Genders
	}
	if len(t.FacebookPositions) > 0 {
		m["facebook_positions"] = t.FacebookPositions
	}
	if len(t.PublisherPlatforms) > 0 {
		m["publisher_platforms"] = t.PublisherPlatforms
	}
	if len(t.FlexibleSpec) > 0 {
		m["flexible_spec"] = t.FlexibleSpec
	}
	return m
}

// params flattens the promoted object, omitting absent sub-fields.
func (p PromotedObject) params() map[string]any {
	m := map[string]any{}
	if p.PageID != "" {
		m["page_id"] = p.PageID
	}
	if p.ApplicationID != "" {
		m["application_id"] = p.ApplicationID
	}
	if p.ObjectStoreURL != "" {
		m["object_store_url"] = p.ObjectStoreURL
	}
	if p.CustomEventType != "" {
		m["custom_event_type"] = p.CustomEventType
	}
	if p.ProductSetID != "" {
		m["product_set_id"] = p.ProductSetID
	}
	return m
}
