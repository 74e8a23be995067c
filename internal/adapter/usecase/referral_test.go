package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"solidarity-campaign/internal/core/domain"
	"solidarity-campaign/internal/core/port/mocks"
)

func TestGenerateIsIdempotentPerOrigin(t *testing.T) {
	b := NewReferralBroadcaster("", 0, nil)

	first := b.Generate("https://solidarity.example")
	second := b.Generate("https://solidarity.example")
	assert.Equal(t, first, second)
	assert.Equal(t, "https://solidarity.example?ref=donated_1000", first.Link)

	other := b.Generate("https://mirror.example/")
	assert.Equal(t, "https://mirror.example?ref=donated_1000", other.Link)
	assert.Equal(t, "https://mirror.example", other.Origin)
}

func TestGenerateKeepsOnlyCurrentOrigin(t *testing.T) {
	b := NewReferralBroadcaster("", 0, nil)

	for i, origin := range []string{"http://h0", "http://h1", "http://h2.attacker.example", "http://h0"} {
		link := b.Generate(origin)
		assert.Equal(t, origin+"?ref=donated_1000", link.Link, i)
		assert.Equal(t, link, b.link, i)
	}
	assert.Equal(t, "http://h0", b.link.Origin)
}

func TestMessageFormatsPledgeAndLink(t *testing.T) {
	b := NewReferralBroadcaster("spring", 25000, nil)
	link := b.Generate("https://solidarity.example")

	msg := b.Message(link, "https://solidarity.example/")
	assert.Equal(t, "Solidarity for Persecuted Christians", msg.Title)
	assert.Equal(t, "https://solidarity.example?ref=spring", msg.URL)
	assert.True(t, strings.HasPrefix(msg.Text, "I have donated $25,000 to Solidarity for Persecuted Christians"))
	assert.True(t, strings.HasSuffix(msg.Text, "Join here: https://solidarity.example?ref=spring"))
}

func TestMessageFallsBackToPageURL(t *testing.T) {
	b := NewReferralBroadcaster("", 0, nil)
	msg := b.Message(domain.ReferralLink{}, "https://solidarity.example/")
	assert.Equal(t, "https://solidarity.example/", msg.URL)
	assert.Contains(t, msg.Text, "Join here: https://solidarity.example/")
}

func newSharer(t *testing.T, method domain.ShareMethod, available bool) *mocks.MockSharer {
	s := mocks.NewMockSharer(t)
	s.EXPECT().Available(mock.Anything).Return(available).Maybe()
	s.EXPECT().Method().Return(method).Maybe()
	return s
}

func TestBroadcastNative(t *testing.T) {
	native := newSharer(t, domain.ShareMethodNative, true)
	native.EXPECT().Share(mock.Anything, mock.AnythingOfType("domain.ShareMessage")).Return(nil)
	clip := newSharer(t, domain.ShareMethodClipboard, true)

	b := NewReferralBroadcaster("", 0, nil, native, clip)
	res := b.Broadcast(context.Background(), domain.ShareCapabilities{Native: true, Clipboard: true}, b.Generate("https://a.example"), "")

	assert.Equal(t, domain.ShareStatusShared, res.Status)
	assert.Equal(t, domain.ShareMethodNative, res.Method)
	assert.Empty(t, res.Notice)
	clip.AssertNotCalled(t, "Share", mock.Anything, mock.Anything)
}

func TestBroadcastFallsBackToClipboard(t *testing.T) {
	native := newSharer(t, domain.ShareMethodNative, false)
	clip := newSharer(t, domain.ShareMethodClipboard, true)
	clip.EXPECT().Share(mock.Anything, mock.Anything).Return(nil)

	b := NewReferralBroadcaster("", 0, nil, native, clip)
	res := b.Broadcast(context.Background(), domain.ShareCapabilities{Clipboard: true}, domain.ReferralLink{}, "https://a.example/")

	assert.Equal(t, domain.ShareStatusFallback, res.Status)
	assert.Equal(t, domain.ShareMethodClipboard, res.Method)
	assert.Equal(t, "Message and link copied to clipboard!", res.Notice)
	assert.Equal(t, "https://a.example/", res.Message.URL)
}

func TestBroadcastFailureIsSwallowed(t *testing.T) {
	for _, shareErr := range []error{domain.ErrShareCancelled, errors.New("share sheet crashed")} {
		t.Run(shareErr.Error(), func(t *testing.T) {
			native := newSharer(t, domain.ShareMethodNative, true)
			native.EXPECT().Share(mock.Anything, mock.Anything).Return(shareErr)
			clip := newSharer(t, domain.ShareMethodClipboard, true)

			b := NewReferralBroadcaster("", 0, nil, native, clip)
			res := b.Broadcast(context.Background(), domain.ShareCapabilities{Native: true, Clipboard: true}, domain.ReferralLink{}, "https://a.example/")

			assert.Equal(t, domain.ShareStatusFailed, res.Status)
			assert.Equal(t, domain.ShareMethodNative, res.Method)
			clip.AssertNotCalled(t, "Share", mock.Anything, mock.Anything)
		})
	}
}

func TestBroadcastUnavailable(t *testing.T) {
	b := NewReferralBroadcaster("", 0, nil, newSharer(t, domain.ShareMethodNative, false))
	res := b.Broadcast(context.Background(), domain.ShareCapabilities{}, domain.ReferralLink{}, "https://a.example/")

	assert.Equal(t, domain.ShareStatusUnavailable, res.Status)
	assert.Empty(t, res.Method)
	assert.NotEmpty(t, res.Message.Text)
}
