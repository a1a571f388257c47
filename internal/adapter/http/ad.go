package httpadapter

import (
	"encoding/json"
	"net/http"

	"meta-ads-gateway/internal/core/domain"
)

// handleCreateAd creates an ad under an existing ad set. Status
// defaults to PAUSED when omitted.
func (h *Handler) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	var req domain.AdCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	id, err := h.svc.CreateAd(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "ad created successfully",
		"ad_id":   id,
	})
}
