package httpadapter

import (
	"net/http"
	"strings"
)

type resolveResponse struct {
	Resolved    bool   `json:"resolved"`
	SourceURL   string `json:"source_url"`
	CanonicalID string `json:"canonical_id,omitempty"`
	EmbedURL    string `json:"embed_url,omitempty"`
}

// handleVideos lists the catalogue entries that resolve to a playable
// video.
func (h *Handler) handleVideos(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Videos())
}

// handleResolveVideo resolves the `url` query parameter. A link that does
// not resolve is not an error: it is answered with resolved=false. Only a
// missing parameter yields 400.
func (h *Handler) handleResolveVideo(w http.ResponseWriter, r *http.Request) {
	src := strings.TrimSpace(r.URL.Query().Get("url"))
	if src == "" {
		http.Error(w, "missing url", http.StatusBadRequest)
		return
	}
	ref := h.svc.ResolveVideo(src)
	h.writeJSON(w, r, http.StatusOK, resolveResponse{
		Resolved:    ref.Resolved(),
		SourceURL:   ref.SourceURL,
		CanonicalID: ref.CanonicalID,
		EmbedURL:    ref.EmbedURL,
	})
}
