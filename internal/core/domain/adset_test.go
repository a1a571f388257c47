package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64 { return &v }
func iptr(v int) *int    { return &v }

// baseAdSetRequest returns a minimal valid request: LINK_CLICKS with an
// uncapped bid strategy and a daily budget.
func baseAdSetRequest() AdSetCreateRequest {
	return AdSetCreateRequest{
		Name:             "Summer Sale",
		OptimizationGoal: "LINK_CLICKS",
		BillingEvent:     "LINK_CLICKS",
		BidStrategy:      "LOWEST_COST_WITHOUT_CAP",
		DailyBudget:      i64(500),
		CampaignID:       "123",
		Targeting: Targeting{
			GeoLocations: map[string]any{"countries": []string{"US"}},
		},
		Status: "ACTIVE",
	}
}

// findViolation returns the first violation for the given field, or nil.
func findViolation(t *testing.T, err error, field string) *Violation {
	t.Helper()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	for i := range vErr.Violations {
		if vErr.Violations[i].Field == field {
			return &vErr.Violations[i]
		}
	}
	return nil
}

func TestNormalizeUncappedStrategyOmitsBidAmount(t *testing.T) {
	req := baseAdSetRequest()

	params, err := req.Normalize()
	require.NoError(t, err)

	assert.Equal(t, "Summer Sale", params["name"])
	assert.Equal(t, "123", params["campaign_id"])
	assert.Equal(t, "LINK_CLICKS", params["optimization_goal"])
	assert.Equal(t, "LINK_CLICKS", params["billing_event"])
	assert.Equal(t, "ACTIVE", params["status"])
	assert.Equal(t, "LOWEST_COST_WITHOUT_CAP", params["bid_strategy"])
	assert.Equal(t, int64(500), params["daily_budget"])
	assert.NotContains(t, params, "bid_amount")
	// empty promoted object must not be forwarded
	assert.NotContains(t, params, "promoted_object")
}

func TestNormalizeUncappedStrategyRejectsBidAmount(t *testing.T) {
	req := baseAdSetRequest()
	req.BidAmount = i64(100)

	_, err := req.Normalize()
	v := findViolation(t, err, "bid_amount")
	require.NotNil(t, v)
	assert.Equal(t, RuleIncompatibleField, v.Rule)
	assert.Contains(t, v.Message, "LOWEST_COST_WITHOUT_CAP")
}

func TestNormalizeCappedStrategyRequiresBidAmount(t *testing.T) {
	for _, strategy := range []string{"LOWEST_COST_WITH_BID_CAP", "COST_CAP"} {
		t.Run(strategy, func(t *testing.T) {
			req := baseAdSetRequest()
			req.BidStrategy = strategy

			_, err := req.Normalize()
			v := findViolation(t, err, "bid_amount")
			require.NotNil(t, v)
			assert.Equal(t, RuleMissingDependentField, v.Rule)

			req.BidAmount = i64(0)
			_, err = req.Normalize()
			require.NotNil(t, findViolation(t, err, "bid_amount"))

			req.BidAmount = i64(250)
			params, err := req.Normalize()
			require.NoError(t, err)
			assert.Equal(t, int64(250), params["bid_amount"])
			assert.Equal(t, strategy, params["bid_strategy"])
		})
	}
}

func TestNormalizeMinROASStrategyUnconstrained(t *testing.T) {
	req := baseAdSetRequest()
	req.BidStrategy = "LOWEST_COST_WITH_MIN_ROAS"

	_, err := req.Normalize()
	require.NoError(t, err)
}

func TestNormalizePageGoalsRequirePageID(t *testing.T) {
	for _, goal := range []string{"PAGE_LIKES", "POST_ENGAGEMENT", "EVENT_RESPONSES"} {
		t.Run(goal, func(t *testing.T) {
			req := baseAdSetRequest()
			req.OptimizationGoal = goal

			_, err := req.Normalize()
			v := findViolation(t, err, "page_id")
			require.NotNil(t, v)
			assert.Equal(t, RuleMissingDependentField, v.Rule)
			assert.Contains(t, v.Message, goal)

			req.PromotedObject.PageID = "p-1"
			params, err := req.Normalize()
			require.NoError(t, err)
			assert.Equal(t,
				map[string]any{"page_id": "p-1"},
				params["promoted_object"])
		})
	}
}

func TestNormalizeAppInstallGoalsRequireAppAndStoreURL(t *testing.T) {
	for _, goal := range []string{"APP_INSTALLS", "APP_INSTALLS_AND_OFFSITE_CONVERSIONS"} {
		t.Run(goal, func(t *testing.T) {
			req := baseAdSetRequest()
			req.OptimizationGoal = goal
			req.PromotedObject = PromotedObject{ApplicationID: "app1"}

			_, err := req.Normalize()
			v := findViolation(t, err, "object_store_url")
			require.NotNil(t, v)
			assert.Equal(t, RuleMissingDependentField, v.Rule)
			assert.Nil(t, findViolation(t, err, "application_id"))

			req.PromotedObject.ObjectStoreURL = "https://store.example/app1"
			params, err := req.Normalize()
			require.NoError(t, err)
			assert.Equal(t, map[string]any{
				"application_id":   "app1",
				"object_store_url": "https://store.example/app1",
			}, params["promoted_object"])
		})
	}
}

func TestNormalizeOtherGoalsHaveNoPromotedObjectRule(t *testing.T) {
	req := baseAdSetRequest()
	req.OptimizationGoal = "REACH"

	_, err := req.Normalize()
	require.NoError(t, err)
}

func TestNormalizeLifetimeBudgetRequiresEndTime(t *testing.T) {
	req := baseAdSetRequest()
	req.LifetimeBudget = i64(1000)

	_, err := req.Normalize()
	v := findViolation(t, err, "end_time")
	require.NotNil(t, v)
	assert.Equal(t, RuleMissingDependentField, v.Rule)
	assert.Contains(t, v.Message, "lifetime_budget")

	end := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	req.EndTime = &end
	params, err := req.Normalize()
	require.NoError(t, err)
	assert.Equal(t, int64(1000), params["lifetime_budget"])
	assert.Equal(t, "2024-12-01T00:00:00Z", params["end_time"])
}

func TestNormalizeBothBudgetsAllowed(t *testing.T) {
	// Daily and lifetime budgets are validated independently; supplying
	// both passes and is left for upstream to arbitrate.
	req := baseAdSetRequest()
	end := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	req.LifetimeBudget = i64(2000)
	req.EndTime = &end

	params, err := req.Normalize()
	require.NoError(t, err)
	assert.Equal(t, int64(500), params["daily_budget"])
	assert.Equal(t, int64(2000), params["lifetime_budget"])
}

func TestNormalizeBudgetBounds(t *testing.T) {
	req := baseAdSetRequest()
	req.DailyBudget = i64(0)
	req.LifetimeBudget = i64(-5)
	end := time.Now().UTC()
	req.EndTime = &end

	_, err := req.Normalize()
	for _, field := range []string{"daily_budget", "lifetime_budget"} {
		v := findViolation(t, err, field)
		require.NotNil(t, v, field)
		assert.Equal(t, RuleOutOfRangeValue, v.Rule)
	}
}

func TestNormalizeStructuralViolations(t *testing.T) {
	req := AdSetCreateRequest{}

	_, err := req.Normalize()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	for _, field := range []string{
		"name", "campaign_id", "optimization_goal",
		"billing_event", "status", "targeting.geo_locations",
	} {
		v := findViolation(t, err, field)
		require.NotNil(t, v, field)
		assert.Equal(t, RuleMissingField, v.Rule, field)
	}
}

func TestNormalizeInvalidEnums(t *testing.T) {
	req := baseAdSetRequest()
	req.OptimizationGoal = "CLICKS_GALORE"
	req.BillingEvent = "WISHES"
	req.Status = "RUNNING"
	req.BidStrategy = "YOLO"
	req.TuneForCategory = "PETS"
	req.MultiOptimizationGoalWeight = "HEAVY"

	_, err := req.Normalize()
	for _, field := range []string{
		"optimization_goal", "billing_event", "status",
		"bid_strategy", "tune_for_category", "multi_optimization_goal_weight",
	} {
		v := findViolation(t, err, field)
		require.NotNil(t, v, field)
		assert.Equal(t, RuleInvalidEnumValue, v.Rule, field)
	}
}

func TestNormalizeNameLimit(t *testing.T) {
	req := baseAdSetRequest()
	long := make([]byte, 401)
	for i := range long {
		long[i] = 'x'
	}
	req.Name = string(long)

	_, err := req.Normalize()
	v := findViolation(t, err, "name")
	require.NotNil(t, v)
	assert.Equal(t, RuleOutOfRangeValue, v.Rule)
}

func TestNormalizeCollectsAllViolations(t *testing.T) {
	req := baseAdSetRequest()
	req.Name = ""
	req.BidAmount = i64(100)
	req.LifetimeBudget = i64(1000)

	_, err := req.Normalize()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Violations, 3)
	// structural rules report before dependency and compatibility rules
	assert.Equal(t, "name", vErr.Violations[0].Field)
	assert.Equal(t, "end_time", vErr.Violations[1].Field)
	assert.Equal(t, "bid_amount", vErr.Violations[2].Field)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	req := baseAdSetRequest()
	start := time.Date(2024, 11, 22, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	req.StartTime = &start
	req.EndTime = &end
	req.LifetimeBudget = i64(1000)
	req.TuneForCategory = "HOUSING"
	req.MultiOptimizationGoalWeight = "BALANCED"
	req.DSAPayor = "ACME GmbH"
	req.DSABeneficiary = "ACME GmbH"
	req.Targeting.AgeMin = iptr(21)
	req.Targeting.AgeMax = iptr(55)
	req.Targeting.Genders = []int{1, 2}
	req.Targeting.PublisherPlatforms = []string{"facebook", "instagram"}

	first, err := req.Normalize()
	require.NoError(t, err)
	second, err := req.Normalize()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, "2024-11-22T00:00:00Z", first["start_time"])
	assert.Equal(t, "HOUSING", first["tune_for_category"])
	assert.Equal(t, "BALANCED", first["multi_optimization_goal_weight"])
	assert.Equal(t, "ACME GmbH", first["dsa_payor"])

	targeting, ok := first["targeting"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 21, targeting["age_min"])
	assert.Equal(t, 55, targeting["age_max"])
	assert.Equal(t, []int{1, 2}, targeting["genders"])
	assert.Equal(t, []string{"facebook", "instagram"}, targeting["publisher_platforms"])
	assert.NotContains(t, targeting, "facebook_positions")
	assert.NotContains(t, targeting, "flexible_spec")
}
