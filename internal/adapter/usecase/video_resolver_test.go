package usecase

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"solidarity-campaign/internal/core/domain"
)

func TestResolveKnownForms(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		id      string
		pattern string
	}{
		{"short link", "https://youtu.be/4FupxAmYjjs", "4FupxAmYjjs", "short-link"},
		{"short link with tracking", "https://youtu.be/4FupxAmYjjs?si=6Rt6pyDGmVcMN2kj", "4FupxAmYjjs", "short-link"},
		{"shorts", "https://youtube.com/shorts/9gCgncqj__c", "9gCgncqj__c", "shorts"},
		{"shorts with tracking", "https://youtube.com/shorts/SdKo-6PAaC4?si=zlCCaIeCvsCIHwu3", "SdKo-6PAaC4", "shorts"},
		{"watch", "https://www.youtube.com/watch?v=4FupxAmYjjs", "4FupxAmYjjs", "watch"},
		{"watch vi", "https://www.youtube.com/watch?vi=4FupxAmYjjs", "4FupxAmYjjs", "watch"},
		{"watch second param", "https://www.youtube.com/watch?feature=share&v=4FupxAmYjjs&t=10", "4FupxAmYjjs", "watch-param"},
		{"embed", "https://www.youtube.com/embed/4FupxAmYjjs?start=3", "4FupxAmYjjs", "embed"},
		{"legacy v", "https://www.youtube.com/v/4FupxAmYjjs", "4FupxAmYjjs", "legacy-v"},
		{"fragment", "https://youtu.be/4FupxAmYjjs#t=30", "4FupxAmYjjs", "short-link"},
	}
	r := NewVideoResolver(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := r.Resolve(tt.in)
			assert.True(t, ref.Resolved())
			assert.Equal(t, tt.id, ref.CanonicalID)
			assert.Equal(t, tt.pattern, ref.Pattern)
			assert.Equal(t, "https://www.youtube.com/embed/"+tt.id+"?rel=0&modestbranding=1&enablejsapi=1", ref.EmbedURL)
		})
	}
}

func TestResolveUnresolvable(t *testing.T) {
	r := NewVideoResolver(nil)
	for _, in := range []string{
		"not a url",
		"",
		"https://youtu.be/short",
		"https://youtu.be/4FupxAmYjjsX",
		"https://youtube.com/shorts/",
		"https://vimeo.com/123456789",
		"https://www.youtube.com/user/donaldjtrumpforpresident",
	} {
		t.Run(in, func(t *testing.T) {
			ref := r.Resolve(in)
			assert.False(t, ref.Resolved())
			assert.Empty(t, ref.CanonicalID)
			assert.Empty(t, ref.EmbedURL)
			assert.Equal(t, in, ref.SourceURL)
		})
	}
}

func TestResolveLastPrefixWins(t *testing.T) {
	// the identifier follows the right-most recognised prefix
	ref := NewVideoResolver(nil).Resolve("https://www.youtube.com/embed/AAAAAAAAAAA?v=BBBBBBBBBBB")
	assert.Equal(t, "BBBBBBBBBBB", ref.CanonicalID)
}

func TestResolveCustomPatterns(t *testing.T) {
	r := NewVideoResolver(nil, VideoPattern{Name: "mirror", Prefix: regexp.MustCompile(`mirror\.example/watch/`)})

	assert.Equal(t, "4FupxAmYjjs", r.Resolve("https://mirror.example/watch/4FupxAmYjjs").CanonicalID)
	assert.False(t, r.Resolve("https://youtu.be/4FupxAmYjjs").Resolved())
}

func TestResolveAllSkipsUnresolvable(t *testing.T) {
	entries := []domain.VideoEntry{
		{SourceURL: "https://youtu.be/4FupxAmYjjs?si=6Rt6pyDGmVcMN2kj", Title: "Briefing", Featured: true},
		{SourceURL: "not a url", Title: "Broken"},
		{SourceURL: "https://youtube.com/shorts/9gCgncqj__c?si=tU6FkaqJX_ttZ17d", Title: "Stories"},
	}
	got := NewVideoResolver(nil).ResolveAll(entries)

	if assert.Len(t, got, 2) {
		assert.Equal(t, "Briefing", got[0].Entry.Title)
		assert.Equal(t, "4FupxAmYjjs", got[0].Reference.CanonicalID)
		assert.Equal(t, "Stories", got[1].Entry.Title)
	}
}

func TestResolveNeverPanics(t *testing.T) {
	// a pattern without a compiled regexp would panic on use
	r := NewVideoResolver(nil, VideoPattern{Name: "broken"})
	ref := r.Resolve("https://youtu.be/4FupxAmYjjs")
	assert.False(t, ref.Resolved())
}

func TestResolveEscapesIdentifier(t *testing.T) {
	r := NewVideoResolver(nil)

	ref := r.Resolve("https://youtu.be/abc/def1234")
	assert.True(t, ref.Resolved())
	assert.Equal(t, "abc/def1234", ref.CanonicalID)
	assert.Equal(t, "https://www.youtube.com/embed/abc%2Fdef1234?rel=0&modestbranding=1&enablejsapi=1", ref.EmbedURL)

	// length counts characters, not bytes
	ref = r.Resolve("https://youtu.be/ééééééééééé")
	assert.True(t, ref.Resolved())
	assert.Equal(t, "ééééééééééé", ref.CanonicalID)
	assert.Contains(t, ref.EmbedURL, "/embed/%C3%A9%C3%A9")
}
