package domain

import "strings"

// AdCreateRequest is the untrusted input for ad creation. The creative
// either references an existing ad creative by id or embeds a creative
// spec; it is forwarded opaquely.
type AdCreateRequest struct {
	Name                    string           `json:"name"`
	AdSetID                 string           `json:"adset_id"`
	Creative                map[string]any   `json:"creative"`
	Status                  string           `json:"status,omitempty"`
	AdScheduleStartTime     string           `json:"ad_schedule_start_time,omitempty"`
	AdScheduleEndTime       string           `json:"ad_schedule_end_time,omitempty"`
	AdLabels                []map[string]any `json:"adlabels,omitempty"`
	AudienceID              string           `json:"audience_id,omitempty"`
	ConversionDomain        string           `json:"conversion_domain,omitempty"`
	CreativeAssetGroupsSpec string           `json:"creative_asset_groups_spec,omitempty"`
	DateFormat              string           `json:"date_format,omitempty"`
	DisplaySequence         *int             `json:"display_sequence,omitempty"`
	DraftAdgroupID          string           `json:"draft_adgroup_id,omitempty"`
	EngagementAudience      *bool            `json:"engagement_audience,omitempty"`
	ExecutionOptions        []string         `json:"execution_options,omitempty"`
	IncludeDemolinkHashes   *bool            `json:"include_demolink_hashes,omitempty"`
	Priority                *int             `json:"priority,omitempty"`
	SourceAdID              string           `json:"source_ad_id,omitempty"`
	TrackingSpecs           map[string]any   `json:"tracking_specs,omitempty"`
}

// Normalize validates the request and produces the upstream parameter
// set. Status defaults to PAUSED when omitted so a newly created ad
// never starts delivering unintentionally.
func (r AdCreateRequest) Normalize() (Params, error) {
	var vs violations

	if strings.TrimSpace(r.Name) == "" {
		vs.missing("name")
	}
	if r.AdSetID == "" {
		vs.missing("adset_id")
	}
	if len(r.Creative) == 0 {
		vs.missing("creative")
	}

	status := r.Status
	if status == "" {
		status = string(StatusPaused)
	} else if _, err := ParseStatus(status); err != nil {
		vs.add("status", RuleInvalidEnumValue, "%s", err)
	}

	if err := vs.err(); err != nil {
		return nil, err
	}

	params := Params{
		"name":     r.Name,
		"adset_id": r.AdSetID,
		"creative": r.Creative,
		"status":   status,
	}
	if r.AdScheduleStartTime != "" {
		params["ad_schedule_start_time"] = r.AdScheduleStartTime
	}
	if r.AdScheduleEndTime != "" {
		params["ad_schedule_end_time"] = r.AdScheduleEndTime
	}
	if len(r.AdLabels) > 0 {
		params["adlabels"] = r.AdLabels
	}
	if r.AudienceID != "" {
		params["audience_id"] = r.AudienceID
	}
	if r.ConversionDomain != "" {
		params["conversion_domain"] = r.ConversionDomain
	}
	if r.CreativeAssetGroupsSpec != "" {
		params["creative_asset_groups_spec"] = r.CreativeAssetGroupsSpec
	}
	if r.DateFormat != "" {
		params["date_format"] = r.DateFormat
	}
	if r.DisplaySequence != nil {
		params["display_sequence"] = *r.DisplaySequence
	}
	if r.DraftAdgroupID != "" {
		params["draft_adgroup_id"] = r.DraftAdgroupID
	}
	if r.EngagementAudience != nil {
		params["engagement_audience"] = *r.EngagementAudience
	}
	if len(r.ExecutionOptions) > 0 {
		params["execution_options"] = r.ExecutionOptions
	}
	if r.IncludeDemolinkHashes != nil {
		params["include_demolink_hashes"] = *r.IncludeDemolinkHashes
	}
	if r.Priority != nil {
		params["priority"] = *r.Priority
	}
	if r.SourceAdID != "" {
		params["source_ad_id"] = r.SourceAdID
	}
	if len(r.TrackingSpecs) > 0 {
		params["tracking_specs"] = r.TrackingSpecs
	}
	return params, nil
}
