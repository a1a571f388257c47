package domain

import "strings"

// CampaignCreateRequest is the untrusted input for campaign creation.
type CampaignCreateRequest struct {
	Name                string   `json:"name"`
	Objective           string   `json:"objective"`
	Status              string   `json:"status"`
	SpecialAdCategories []string `json:"special_ad_categories,omitempty"`
}

// Normalize validates the request and produces the upstream parameter
// set. When no special ad categories are supplied the upstream-required
// default of ["NONE"] is used.
func (r CampaignCreateRequest) Normalize() (Params, error) {
	var vs violations

	if strings.TrimSpace(r.Name) == "" {
		vs.missing("name")
	}
	if r.Objective == "" {
		vs.missing("objective")
	} else if _, err := ParseCampaignObjective(r.Objective); err != nil {
		vs.add("objective", RuleInvalidEnumValue, "%s", err)
	}
	if r.Status == "" {
		vs.missing("status")
	} else if _, err := ParseStatus(r.Status); err != nil {
		vs.add("status", RuleInvalidEnumValue, "%s", err)
	}

	categories := r.SpecialAdCategories
	if len(categories) == 0 {
		categories = []string{string(SpecialCategoryNone)}
	}
	for _, c := range categories {
		if _, err := ParseSpecialAdCategory(c); err != nil {
			vs.add("special_ad_categories", RuleInvalidEnumValue, "%s", err)
		}
	}

	if err := vs.err(); err != nil {
		return nil, err
	}

	return Params{
		"name":                  r.Name,
		"objective":             r.Objective,
		"status":                r.Status,
		"special_ad_categories": categories,
	}, nil
}
