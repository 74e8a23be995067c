package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"solidarity-campaign/internal/core/domain"
	"solidarity-campaign/internal/core/port"
)

// CampaignUseCase composes the progress store, the completion interceptor,
// the video resolver and the referral broadcaster behind the
// port.CampaignUseCase interface.
type CampaignUseCase struct {
	store       *ProgressStore
	interceptor *CompletionInterceptor
	resolver    *VideoResolver
	referrals   *ReferralBroadcaster
	videos      []domain.VideoEntry
	logger      *slog.Logger
}

// NewCampaignUseCase creates the use case. videos is the configured
// catalogue; it is resolved on every call so a bad entry never reaches the
// page.
func NewCampaignUseCase(
	store *ProgressStore,
	interceptor *CompletionInterceptor,
	resolver *VideoResolver,
	referrals *ReferralBroadcaster,
	videos []domain.VideoEntry,
	logger *slog.Logger,
) *CampaignUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignUseCase{
		store:       store,
		interceptor: interceptor,
		resolver:    resolver,
		referrals:   referrals,
		videos:      videos,
		logger:      logger,
	}
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// OpenPage reloads the total from storage so writes from other processes
// are observed, then runs the completion interceptor once.
func (u *CampaignUseCase) OpenPage(ctx context.Context, pageURL *url.URL) port.LandingPage {
	u.store.Load(ctx)
	res := u.interceptor.Intercept(ctx, pageURL)

	page := port.LandingPage{
		Progress: u.store.Progress(),
		Videos:   u.resolver.ResolveAll(u.videos),
	}
	if res.Applied {
		page.Redirect = res.CleanURL
	}
	return page
}

// Progress reloads and returns the campaign progress.
func (u *CampaignUseCase) Progress(ctx context.Context) domain.CampaignProgress {
	u.store.Load(ctx)
	return u.store.Progress()
}

// RecordCompletion applies a server-confirmed completion. The reported
// amount must lie in [0, goal]; zero means the configured increment.
func (u *CampaignUseCase) RecordCompletion(ctx context.Context, transactionID string, amount int64) (domain.CampaignProgress, bool, error) {
	if amount < 0 {
		return u.store.Progress(), false, domain.ErrNegativeDelta
	}
	if u.store.goal > 0 && amount > u.store.goal {
		return u.store.Progress(), false, domain.ErrAmountOutOfRange
	}
	u.store.Load(ctx)
	_, err := u.interceptor.Apply(ctx, domain.CompletionEvent{
		Source:        domain.CompletionSourceWebhook,
		TransactionID: transactionID,
		Amount:        amount,
	})
	if errors.Is(err, domain.ErrDuplicateCompletion) {
		return u.store.Progress(), true, nil
	}
	if err != nil {
		return u.store.Progress(), false, err
	}
	return u.store.Progress(), false, nil
}

// Videos returns the resolvable catalogue entries.
func (u *CampaignUseCase) Videos() []domain.ResolvedVideo {
	return u.resolver.ResolveAll(u.videos)
}

// ResolveVideo resolves a single link.
func (u *CampaignUseCase) ResolveVideo(sourceURL string) domain.VideoReference {
	return u.resolver.Resolve(sourceURL)
}

// GenerateReferral returns the referral link for origin.
func (u *CampaignUseCase) GenerateReferral(origin string) domain.ReferralLink {
	return u.referrals.Generate(origin)
}

// Share broadcasts the referral link.
func (u *CampaignUseCase) Share(ctx context.Context, caps domain.ShareCapabilities, link domain.ReferralLink, pageURL string) domain.ShareResult {
	return u.referrals.Broadcast(ctx, caps, link, pageURL)
}

// ReportShareFailure logs a client-side share failure.
func (u *CampaignUseCase) ReportShareFailure(ctx context.Context, method domain.ShareMethod, reason string) {
	u.logger.InfoContext(ctx, "client share did not complete",
		slog.String("method", string(method)),
		slog.String("reason", reason))
}
