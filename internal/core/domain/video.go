package domain

import "unicode/utf8"

// VideoIDLength is the fixed length of a platform video identifier.
const VideoIDLength = 11

// VideoEntry is a configured video on the landing page. SourceURL is
// authored by hand and may be in any of the platform's link formats.
type VideoEntry struct {
	SourceURL string `yaml:"url" json:"url"`
	Title     string `yaml:"title" json:"title"`
	Featured  bool   `yaml:"featured" json:"featured"`
}

// VideoReference is the outcome of resolving a source URL. CanonicalID and
// EmbedURL are either both set or both empty.
type VideoReference struct {
	SourceURL   string `json:"source_url"`
	CanonicalID string `json:"canonical_id,omitempty"`
	EmbedURL    string `json:"embed_url,omitempty"`
	Pattern     string `json:"pattern,omitempty"`
}

// Resolved reports whether the reference yielded an embeddable video.
func (v VideoReference) Resolved() bool {
	return utf8.RuneCountInString(v.CanonicalID) == VideoIDLength && v.EmbedURL != ""
}

// ResolvedVideo pairs a catalogue entry with its embeddable reference.
type ResolvedVideo struct {
	Entry     VideoEntry     `json:"entry"`
	Reference VideoReference `json:"reference"`
}
