package usecase

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solidarity-campaign/internal/adapter/memory"
	"solidarity-campaign/internal/core/domain"
)

func newTestUseCase(t *testing.T, storage *memory.ProgressStorage) *CampaignUseCase {
	t.Helper()
	store := NewProgressStore(storage, "", 1_000_000_000, nil)
	store.Load(context.Background())
	interceptor := NewCompletionInterceptor(store, nil, memory.NewCompletionLedger(), "", nil)
	videos := []domain.VideoEntry{
		{SourceURL: "https://youtu.be/4FupxAmYjjs?si=6Rt6pyDGmVcMN2kj", Title: "Briefing", Featured: true},
		{SourceURL: "https://example.org/not-a-video", Title: "Broken"},
	}
	return NewCampaignUseCase(store, interceptor, NewVideoResolver(nil), NewReferralBroadcaster("", 0, nil), videos, nil)
}

func TestOpenPageWithMarker(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewProgressStorage()
	require.NoError(t, storage.Write(ctx, DefaultProgressKey, "450"))
	uc := newTestUseCase(t, storage)

	u, _ := url.Parse("/?checkout_success=1")
	page := uc.OpenPage(ctx, u)

	assert.Equal(t, "/", page.Redirect)
	assert.Equal(t, int64(1450), page.Progress.TotalRaised)
	assert.Len(t, page.Videos, 1)

	// following the redirect does not count the completion again
	u, _ = url.Parse(page.Redirect)
	page = uc.OpenPage(ctx, u)
	assert.Empty(t, page.Redirect)
	assert.Equal(t, int64(1450), page.Progress.TotalRaised)
}

func TestOpenPageObservesOtherWriters(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewProgressStorage()
	uc := newTestUseCase(t, storage)

	// another process writes the same key
	require.NoError(t, storage.Write(ctx, DefaultProgressKey, "9000"))

	u, _ := url.Parse("/")
	assert.Equal(t, int64(9000), uc.OpenPage(ctx, u).Progress.TotalRaised)
	assert.Equal(t, int64(9000), uc.Progress(ctx).TotalRaised)
}

func TestRecordCompletion(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, memory.NewProgressStorage())

	p, dup, err := uc.RecordCompletion(ctx, "pi_1", 250)
	require.NoError(t, err)
	assert.False(t, dup)
	assert.Equal(t, int64(250), p.TotalRaised)

	p, dup, err = uc.RecordCompletion(ctx, "pi_1", 250)
	require.NoError(t, err)
	assert.True(t, dup)
	assert.Equal(t, int64(250), p.TotalRaised)

	_, _, err = uc.RecordCompletion(ctx, "pi_2", -5)
	assert.ErrorIs(t, err, domain.ErrNegativeDelta)
}

func TestRecordCompletionRejectsAmountAboveGoal(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewProgressStorage()
	uc := newTestUseCase(t, storage)

	p, dup, err := uc.RecordCompletion(ctx, "pi_big", 1_000_000_001)
	assert.ErrorIs(t, err, domain.ErrAmountOutOfRange)
	assert.False(t, dup)
	assert.Equal(t, int64(0), p.TotalRaised)

	// the rejected id was never recorded
	p, dup, err = uc.RecordCompletion(ctx, "pi_big", 1_000_000_000)
	require.NoError(t, err)
	assert.False(t, dup)
	assert.Equal(t, int64(1_000_000_000), p.TotalRaised)
}

func TestShareWithoutSharers(t *testing.T) {
	uc := newTestUseCase(t, memory.NewProgressStorage())
	link := uc.GenerateReferral("https://a.example")

	res := uc.Share(context.Background(), domain.ShareCapabilities{Native: true}, link, "https://a.example/")
	assert.Equal(t, domain.ShareStatusUnavailable, res.Status)
	assert.Equal(t, link.Link, res.Message.URL)
}
