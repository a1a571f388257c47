package httpadapter

import (
	"encoding/json"
	"net/http"

	"meta-ads-gateway/internal/core/domain"
)

// handleCreateAdSet creates an ad set under an existing campaign. The
// body is decoded into a domain.AdSetCreateRequest whose enum fields
// arrive as raw strings; all cross-field rules are checked by the
// usecase and every violation is reported at once with HTTP 422.
func (h *Handler) handleCreateAdSet(w http.ResponseWriter, r *http.Request) {
	var req domain.AdSetCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	id, err := h.svc.CreateAdSet(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message":   "ad set created successfully",
		"ad_set_id": id,
	})
}
