package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"meta-ads-gateway/internal/core/domain"
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// respondError maps usecase failures to HTTP statuses: validation
// failures become 422 with the field-level violation list, upstream
// failures become 400 carrying the upstream message, anything else is a
// generic 500 with full detail only in the server logs.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	var uErr *domain.UpstreamError
	switch {
	case errors.As(err, &vErr):
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"message": "validation failed",
			"errors":  vErr.Violations,
		})
	case errors.As(err, &uErr):
		h.logger.Error("upstream error",
			slog.String("message", uErr.Message),
			slog.Int("code", uErr.Code),
			slog.Int("subcode", uErr.Subcode))
		h.writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": uErr.Message,
		})
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]any{
			"message": "internal server error",
		})
	}
}
