package httpadapter

import (
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxImageUploadBytes bounds the multipart form held in memory.
const maxImageUploadBytes = 20 << 20

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/bmp":  {},
}

var unsafeFilenameChars = regexp.MustCompile(`[^\w\-.]`)

// handleUploadImage accepts a multipart image upload under the "file"
// field, verifies it is a supported non-empty image and forwards it to
// the ad account's image library. The upstream image hash is returned.
func (h *Handler) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if _, ok := allowedImageTypes[contentType]; !ok {
		http.Error(w, "unsupported image format: "+contentType+
			" (allowed: JPEG, PNG, GIF, BMP)", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read file", http.StatusBadRequest)
		return
	}
	if len(data) == 0 {
		http.Error(w, "file is empty", http.StatusBadRequest)
		return
	}
	// The declared content type is caller-supplied; sniff the actual
	// bytes so a mislabeled payload is rejected here rather than upstream.
	if sniffed := http.DetectContentType(data); !strings.HasPrefix(sniffed, "image/") {
		http.Error(w, "file is not a valid image", http.StatusBadRequest)
		return
	}

	filename := sanitizeFilename(header.Filename)
	hash, err := h.svc.UploadImage(r.Context(), filename, contentType, data)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message":    "image uploaded successfully",
		"image_hash": hash,
	})
}

// handleListImages returns the images stored in the ad account.
func (h *Handler) handleListImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.svc.ListImages(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"images": images})
}

// handleDeleteImage removes an image from the ad account by its hash.
func (h *Handler) handleDeleteImage(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")
	if hash == "" {
		http.Error(w, "missing hash", http.StatusBadRequest)
		return
	}
	if err := h.svc.DeleteImage(r.Context(), hash); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "image deleted successfully",
	})
}

// sanitizeFilename replaces characters the upstream API may reject and
// falls back to a generated name when the client sent none.
func sanitizeFilename(name string) string {
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	if name == "" || name == "_" {
		return uuid.NewString()
	}
	return name
}
