package httpadapter

import (
	"encoding/json"
	"net/http"

	"meta-ads-gateway/internal/core/domain"
)

// handleCreateAdCreative creates an ad creative in the ad account.
func (h *Handler) handleCreateAdCreative(w http.ResponseWriter, r *http.Request) {
	var req domain.AdCreativeCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	id, err := h.svc.CreateAdCreative(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message":        "ad creative created successfully",
		"ad_creative_id": id,
	})
}
