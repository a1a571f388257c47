package domain

import "strings"

// LinkData carries the image, destination and message of a link ad.
type LinkData struct {
	ImageHash string `json:"image_hash"`
	Link      string `json:"link"`
	Message   string `json:"message"`
}

// ObjectStorySpec ties a creative to the page it is published from.
type ObjectStorySpec struct {
	PageID   string    `json:"page_id"`
	LinkData *LinkData `json:"link_data,omitempty"`
}

// StandardEnhancements opts a creative in or out of automatic upstream
// enhancements.
type StandardEnhancements struct {
	EnrollStatus string `json:"enroll_status"`
}

// CreativeFeaturesSpec wraps the per-feature enhancement settings.
type CreativeFeaturesSpec struct {
	StandardEnhancements StandardEnhancements `json:"standard_enhancements"`
}

// DegreesOfFreedomSpec is the upstream envelope for creative feature
// settings.
type DegreesOfFreedomSpec struct {
	CreativeFeaturesSpec CreativeFeaturesSpec `json:"creative_features_spec"`
}

// AdCreativeCreateRequest is the untrusted input for ad creative
// creation.
type AdCreativeCreateRequest struct {
	Name                  string               `json:"name"`
	ObjectStorySpec       ObjectStorySpec      `json:"object_story_spec"`
	DegreesOfFreedomSpec  DegreesOfFreedomSpec `json:"degrees_of_freedom_spec"`
	AuthorizationCategory string               `json:"authorization_category,omitempty"`
}

// Normalize validates the request and produces the upstream parameter
// set. An authorization category of NONE is treated like an absent one
// and omitted from the output.
func (r AdCreativeCreateRequest) Normalize() (Params, error) {
	var vs violations

	if strings.TrimSpace(r.Name) == "" {
		vs.missing("name")
	}
	if r.ObjectStorySpec.PageID == "" {
		vs.missing("object_story_spec.page_id")
	}
	if ld := r.ObjectStorySpec.LinkData; ld != nil {
		if ld.ImageHash == "" {
			vs.missing("object_story_spec.link_data.image_hash")
		}
		if ld.Link == "" {
			vs.missing("object_story_spec.link_data.link")
		}
	}

	enroll := r.DegreesOfFreedomSpec.CreativeFeaturesSpec.StandardEnhancements.EnrollStatus
	if enroll == "" {
		vs.missing("degrees_of_freedom_spec.creative_features_spec.standard_enhancements.enroll_status")
	} else if _, err := ParseEnrollStatus(enroll); err != nil {
		vs.add("degrees_of_freedom_spec.creative_features_spec.standard_enhancements.enroll_status",
			RuleInvalidEnumValue, "%s", err)
	}

	if r.AuthorizationCategory != "" {
		if _, err := ParseSpecialAdCategory(r.AuthorizationCategory); err != nil {
			vs.add("authorization_category", RuleInvalidEnumValue, "%s", err)
		}
	}

	if err := vs.err(); err != nil {
		return nil, err
	}

	story := map[string]any{"page_id": r.ObjectStorySpec.PageID}
	if ld := r.ObjectStorySpec.LinkData; ld != nil {
		link := map[string]any{
			"image_hash": ld.ImageHash,
			"link":       ld.Link,
		}
		if ld.Message != "" {
			link["message"] = ld.Message
		}
		story["link_data"] = link
	}

	params := Params{
		"name":              r.Name,
		"object_story_spec": story,
		"degrees_of_freedom_spec": map[string]any{
			"creative_features_spec": map[string]any{
				"standard_enhancements": map[string]any{
					"enroll_status": enroll,
				},
			},
		},
	}
	if r.AuthorizationCategory != "" && r.AuthorizationCategory != string(SpecialCategoryNone) {
		params["authorization_category"] = r.AuthorizationCategory
	}
	return params, nil
}
