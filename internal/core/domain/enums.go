package domain

import "fmt"

// The types below mirror the closed vocabularies of the Meta Marketing
// API. Every inbound string must pass through its Parse function before
// it is used; arbitrary text never reaches the upstream call.

// Status is the lifecycle state shared by campaigns, ad sets and ads.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusPaused   Status = "PAUSED"
	StatusDeleted  Status = "DELETED"
	StatusArchived Status = "ARCHIVED"
)

var statuses = enumSet(StatusActive, StatusPaused, StatusDeleted, StatusArchived)

// ParseStatus validates s against the known status values.
func ParseStatus(s string) (Status, error) {
	if _, ok := statuses[Status(s)]; !ok {
		return "", fmt.Errorf("%q is not a valid status", s)
	}
	return Status(s), nil
}

// CampaignObjective is the outcome-style objective of a campaign.
type CampaignObjective string

const (
	ObjectiveAppPromotion CampaignObjective = "OUTCOME_APP_PROMOTION"
	ObjectiveAwareness    CampaignObjective = "OUTCOME_AWARENESS"
	ObjectiveEngagement   CampaignObjective = "OUTCOME_ENGAGEMENT"
	ObjectiveLeads        CampaignObjective = "OUTCOME_LEADS"
	ObjectiveSales        CampaignObjective = "OUTCOME_SALES"
	ObjectiveTraffic      CampaignObjective = "OUTCOME_TRAFFIC"
)

var campaignObjectives = enumSet(
	ObjectiveAppPromotion, ObjectiveAwareness, ObjectiveEngagement,
	ObjectiveLeads, ObjectiveSales, ObjectiveTraffic,
)

// ParseCampaignObjective validates s against the known campaign objectives.
func ParseCampaignObjective(s string) (CampaignObjective, error) {
	if _, ok := campaignObjectives[CampaignObjective(s)]; !ok {
		return "", fmt.Errorf("%q is not a valid campaign objective", s)
	}
	return CampaignObjective(s), nil
}

// OptimizationGoal is the outcome the delivery algorithm optimizes an
// ad set for.
type OptimizationGoal string

const (
	GoalNone                             OptimizationGoal = "NONE"
	GoalAppInstalls                      OptimizationGoal = "APP_INSTALLS"
	GoalAdRecallLift                     OptimizationGoal = "AD_RECALL_LIFT"
	GoalEngagedUsers                     OptimizationGoal = "ENGAGED_USERS"
	GoalEventResponses                   OptimizationGoal = "EVENT_RESPONSES"
	GoalImpressions                      OptimizationGoal = "IMPRESSIONS"
	GoalLeadGeneration                   OptimizationGoal = "LEAD_GENERATION"
	GoalQualityLead                      OptimizationGoal = "QUALITY_LEAD"
	GoalLinkClicks                       OptimizationGoal = "LINK_CLICKS"
	GoalOffsiteConversions               OptimizationGoal = "OFFSITE_CONVERSIONS"
	GoalPageLikes                        OptimizationGoal = "PAGE_LIKES"
	GoalPostEngagement                   OptimizationGoal = "POST_ENGAGEMENT"
	GoalQualityCall                      OptimizationGoal = "QUALITY_CALL"
	GoalReach                            OptimizationGoal = "REACH"
	GoalLandingPageViews                 OptimizationGoal = "LANDING_PAGE_VIEWS"
	GoalVisitInstagramProfile            OptimizationGoal = "VISIT_INSTAGRAM_PROFILE"
	GoalValue                            OptimizationGoal = "VALUE"
	GoalThruplay                         OptimizationGoal = "THRUPLAY"
	GoalDerivedEvents                    OptimizationGoal = "DERIVED_EVENTS"
	GoalAppInstallsAndOffsiteConversions OptimizationGoal = "APP_INSTALLS_AND_OFFSITE_CONVERSIONS"
	GoalConversations                    OptimizationGoal = "CONVERSATIONS"
	GoalInAppValue                       OptimizationGoal = "IN_APP_VALUE"
	GoalMessagingPurchaseConversion      OptimizationGoal = "MESSAGING_PURCHASE_CONVERSION"
	GoalSubscribers                      OptimizationGoal = "SUBSCRIBERS"
	GoalRemindersSet                     OptimizationGoal = "REMINDERS_SET"
	GoalMeaningfulCallAttempt            OptimizationGoal = "MEANINGFUL_CALL_ATTEMPT"
	GoalProfileVisit                     OptimizationGoal = "PROFILE_VISIT"
	GoalMessagingAppointmentConversion   OptimizationGoal = "MESSAGING_APPOINTMENT_CONVERSION"
)

var optimizationGoals = enumSet(
	GoalNone, GoalAppInstalls, GoalAdRecallLift, GoalEngagedUsers,
	GoalEventResponses, GoalImpressions, GoalLeadGeneration, GoalQualityLead,
	GoalLinkClicks, GoalOffsiteConversions, GoalPageLikes, GoalPostEngagement,
	GoalQualityCall, GoalReach, GoalLandingPageViews, GoalVisitInstagramProfile,
	GoalValue, GoalThruplay, GoalDerivedEvents, GoalAppInstallsAndOffsiteConversions,
	GoalConversations, GoalInAppValue, GoalMessagingPurchaseConversion,
	GoalSubscribers, GoalRemindersSet, GoalMeaningfulCallAttempt,
	GoalProfileVisit, GoalMessagingAppointmentConversion,
)

// ParseOptimizationGoal validates s against the known optimization goals.
func ParseOptimizationGoal(s string) (OptimizationGoal, error) {
	if _, ok := optimizationGoals[OptimizationGoal(s)]; !ok {
		return "", fmt.Errorf("%q is not a valid optimization goal", s)
	}
	return OptimizationGoal(s), nil
}

// BidStrategy is the auction bidding policy of an ad set.
type BidStrategy string

const (
	BidLowestCostWithoutCap  BidStrategy = "LOWEST_COST_WITHOUT_CAP"
	BidLowestCostWithBidCap  BidStrategy = "LOWEST_COST_WITH_BID_CAP"
	BidCostCap               BidStrategy = "COST_CAP"
	BidLowestCostWithMinROAS BidStrategy = "LOWEST_COST_WITH_MIN_ROAS"
)

var bidStrategies = enumSet(
	BidLowestCostWithoutCap, BidLowestCostWithBidCap,
	BidCostCap, BidLowestCostWithMinROAS,
)

// ParseBidStrategy validates s against the known bid strategies.
func ParseBidStrategy(s string) (BidStrategy, error) {
	if _, ok := bidStrategies[BidStrategy(s)]; !ok {
		return "", fmt.Errorf("%q is not a valid bid strategy", s)
	}
	return BidStrategy(s), nil
}

// BillingEvent is the event the advertiser is charged for.
type BillingEvent string

const (
	BillingAppInstalls        BillingEvent = "APP_INSTALLS"
	BillingClicks             BillingEvent = "CLICKS"
	BillingImpressions        BillingEvent = "IMPRESSIONS"
	BillingLinkClicks         BillingEvent = "LINK_CLICKS"
	BillingOfferClaims        BillingEvent = "OFFER_CLAIMS"
	BillingPageLikes          BillingEvent = "PAGE_LIKES"
	BillingPostEngagement     BillingEvent = "POST_ENGAGEMENT"
	BillingVideoViews         BillingEvent = "VIDEO_VIEWS"
	BillingThruplay           BillingEvent = "THRUPLAY"
	BillingPurchase           BillingEvent = "PURCHASE"
	BillingListingInteraction BillingEvent = "LISTING_INTERACTION"
)

var billingEvents = enumSet(
	BillingAppInstalls, BillingClicks, BillingImpressions, BillingLinkClicks,
	BillingOfferClaims, BillingPageLikes, BillingPostEngagement,
	BillingVideoViews, BillingThruplay, BillingPurchase, BillingListingInteraction,
)

// ParseBillingEvent validates s against the known billing events.
func ParseBillingEvent(s string) (BillingEvent, error) {
	if _, ok := billingEvents[BillingEvent(s)]; !ok {
		return "", fmt.Errorf("%q is not a valid billing event", s)
	}
	return BillingEvent(s), nil
}

// TuneForCategory adjusts delivery optimization for regulated verticals.
type TuneForCategory string

const (
	TuneNone                      TuneForCategory = "NONE"
	TuneEmployment                TuneForCategory = "EMPLOYMENT"
	TuneHousing                   TuneForCategory = "HOUSING"
	TuneCredit                    TuneForCategory = "CREDIT"
	TuneIssuesElectionsPolitics   TuneForCategory = "ISSUES_ELECTIONS_POLITICS"
	TuneOnlineGamblingAndGaming   TuneForCategory = "ONLINE_GAMBLING_AND_GAMING"
	TuneFinancialProductsServices TuneForCategory = "FINANCIAL_PRODUCTS_SERVICES"
)

var tuneForCategories = enumSet(
	TuneNone, TuneEmployment, TuneHousing, TuneCredit,
	TuneIssuesElectionsPolitics, TuneOnlineGamblingAndGaming,
	TuneFinancialProductsServices,
)

// ParseTuneForCategory validates s against the known tuning categories.
func ParseTuneForCategory(s string) (TuneForCategory, error) {
	if _, ok := tuneForCategories[TuneForCategory(s)]; !ok {
		return "", fmt.Errorf("%q is not a valid tune_for_category", s)
	}
	return TuneForCategory(s), nil
}

// MultiOptimizationGoalWeight weights delivery across multiple goals.
type MultiOptimizationGoalWeight string

const (
	WeightUndefined     MultiOptimizationGoalWeight = "UNDEFINED"
	WeightBalanced      MultiOptimizationGoalWeight = "BALANCED"
	WeightPreferInstall MultiOptimizationGoalWeight = "PREFER_INSTALL"
	WeightPreferEvent   MultiOptimizationGoalWeight = "PREFER_EVENT"
)

var multiGoalWeights = enumSet(
	WeightUndefined, WeightBalanced, WeightPreferInstall, WeightPreferEvent,
)

// ParseMultiOptimizationGoalWeight validates s against the known weights.
func ParseMultiOptimizationGoalWeight(s string) (MultiOptimizationGoalWeight, error) {
	if _, ok := multiGoalWeights[MultiOptimizationGoalWeight(s)]; !ok {
		return "", fmt.Errorf("%q is not a valid multi_optimization_goal_weight", s)
	}
	return MultiOptimizationGoalWeight(s), nil
}

// SpecialAdCategory marks campaigns in regulated verticals.
type SpecialAdCategory string

const (
	SpecialCategoryNone                    SpecialAdCategory = "NONE"
	SpecialCategoryEmployment              SpecialAdCategory = "EMPLOYMENT"
	SpecialCategoryHousing                 SpecialAdCategory = "HOUSING"
	SpecialCategoryCredit                  SpecialAdCategory = "CREDIT"
	SpecialCategoryIssuesElectionsPolitics SpecialAdCategory = "ISSUES_ELECTIONS_POLITICS"
)

var specialAdCategories = enumSet(
	SpecialCategoryNone, SpecialCategoryEmployment, SpecialCategoryHousing,
	SpecialCategoryCredit, SpecialCategoryIssuesElectionsPolitics,
)

// ParseSpecialAdCategory validates s against the known special ad categories.
func ParseSpecialAdCategory(s string) (SpecialAdCategory, error) {
	if _, ok := specialAdCategories[SpecialAdCategory(s)]; !ok {
		return "", fmt.Errorf("%q is not a valid special ad category", s)
	}
	return SpecialAdCategory(s), nil
}

// EnrollStatus opts a creative in or out of standard enhancements.
type EnrollStatus string

const (
	EnrollOptIn  EnrollStatus = "OPT_IN"
	EnrollOptOut EnrollStatus = "OPT_OUT"
)

var enrollStatuses = enumSet(EnrollOptIn, EnrollOptOut)

// ParseEnrollStatus validates s against the known enroll statuses.
func ParseEnrollStatus(s string) (EnrollStatus, error) {
	if _, ok := enrollStatuses[EnrollStatus(s)]; !ok {
		return "", fmt.Errorf("%q is not a valid enroll_status", s)
	}
	return EnrollStatus(s), nil
}

func enumSet[T comparable](vals ...T) map[T]struct{} {
	m := make(map[T]struct{}, len(vals))
	for _, v := range vals {
		m[v] = struct{}{}
	}
	return m
}
