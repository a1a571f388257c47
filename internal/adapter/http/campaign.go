package httpadapter

import (
	"encoding/json"
	"net/http"

	"meta-ads-gateway/internal/core/domain"
)

// handleCreateCampaign creates a campaign in the ad account. The request
// body is decoded into a domain.CampaignCreateRequest; validation
// failures produce HTTP 422, upstream rejections HTTP 400 and malformed
// JSON HTTP 400. On success it returns the created campaign id.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req domain.CampaignCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	id, err := h.svc.CreateCampaign(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message":     "campaign created successfully",
		"campaign_id": id,
	})
}
