package usecase

import (
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"solidarity-campaign/internal/core/domain"
)

// EmbedURLTemplate is the embed endpoint the resolved identifier is
// substituted into. Related videos are off, branding is minimal and the
// player accepts script control.
const EmbedURLTemplate = "https://www.youtube.com/embed/%s?rel=0&modestbranding=1&enablejsapi=1"

// VideoPattern is one recognised link form. Prefix matches the text that
// immediately precedes the identifier; the identifier runs from the end of
// the prefix up to the next '#', '&' or '?'.
type VideoPattern struct {
	Name   string
	Prefix *regexp.Regexp
}

// DefaultVideoPatterns lists the platform link forms in precedence order.
var DefaultVideoPatterns = []VideoPattern{
	{Name: "short-link", Prefix: regexp.MustCompile(`youtu\.be/`)},
	{Name: "legacy-v", Prefix: regexp.MustCompile(`v/`)},
	{Name: "legacy-vi", Prefix: regexp.MustCompile(`vi/`)},
	{Name: "user", Prefix: regexp.MustCompile(`u/\w/`)},
	{Name: "embed", Prefix: regexp.MustCompile(`embed/`)},
	{Name: "shorts", Prefix: regexp.MustCompile(`shorts/`)},
	{Name: "watch", Prefix: regexp.MustCompile(`(?:watch)?\?vi?=`)},
	{Name: "watch-param", Prefix: regexp.MustCompile(`&vi?=`)},
}

// VideoResolver maps arbitrary video links to embeddable references.
type VideoResolver struct {
	patterns []VideoPattern
	logger   *slog.Logger
}

// NewVideoResolver returns a resolver over patterns, or DefaultVideoPatterns
// when none are given.
func NewVideoResolver(logger *slog.Logger, patterns ...VideoPattern) *VideoResolver {
	if len(patterns) == 0 {
		patterns = DefaultVideoPatterns
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &VideoResolver{patterns: patterns, logger: logger}
}

// Resolve extracts the identifier from sourceURL. Among all patterns the
// match that starts last in the input wins, ties going to the earlier
// pattern. The identifier is accepted only when it is exactly
// domain.VideoIDLength characters long. Resolve never panics.
func (r *VideoResolver) Resolve(sourceURL string) (ref domain.VideoReference) {
	ref.SourceURL = sourceURL
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("video url error", slog.String("url", sourceURL), slog.Any("panic", rec))
			ref = domain.VideoReference{SourceURL: sourceURL}
		}
	}()

	candidate, pattern, ok := r.candidate(sourceURL)
	if !ok || utf8.RuneCountInString(candidate) != domain.VideoIDLength {
		return ref
	}
	ref.CanonicalID = candidate
	ref.EmbedURL = EmbedURL(candidate)
	ref.Pattern = pattern
	return ref
}

func (r *VideoResolver) candidate(s string) (string, string, bool) {
	bestStart, bestEnd := -1, -1
	bestName := ""
	for _, p := range r.patterns {
		locs := p.Prefix.FindAllStringIndex(s, -1)
		if len(locs) == 0 {
			continue
		}
		last := locs[len(locs)-1]
		if last[0] > bestStart {
			bestStart, bestEnd, bestName = last[0], last[1], p.Name
		}
	}
	if bestStart < 0 {
		return "", "", false
	}
	rest := s[bestEnd:]
	if i := strings.IndexAny(rest, "#&?"); i >= 0 {
		rest = rest[:i]
	}
	return rest, bestName, true
}

// ResolveAll resolves every entry and drops the ones without an embeddable
// video. Order is preserved.
func (r *VideoResolver) ResolveAll(entries []domain.VideoEntry) []domain.ResolvedVideo {
	out := make([]domain.ResolvedVideo, 0, len(entries))
	for _, e := range entries {
		ref := r.Resolve(e.SourceURL)
		if !ref.Resolved() {
			r.logger.Debug("skipping unresolvable video", slog.String("title", e.Title), slog.String("url", e.SourceURL))
			continue
		}
		out = append(out, domain.ResolvedVideo{Entry: e, Reference: ref})
	}
	return out
}

// EmbedURL builds the embed URL for a canonical identifier.
func EmbedURL(id string) string {
	return fmt.Sprintf(EmbedURLTemplate, url.PathEscape(id))
}
