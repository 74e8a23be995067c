package port

import (
	"context"
	"net/url"

	"solidarity-campaign/internal/core/domain"
)

// CampaignUseCase defines the operations exposed by the campaign engine.
// It is the primary port used by the HTTP handler and the CLI.
type CampaignUseCase interface {
	// OpenPage performs the page-load sequence for the landing page: it
	// reloads the persisted total, folds in a completion marker carried by
	// pageURL and returns everything the page renders. When the marker was
	// consumed, LandingPage.Redirect holds the scrubbed URL.
	OpenPage(ctx context.Context, pageURL *url.URL) LandingPage

	// Progress reloads the persisted total and returns it with the goal.
	Progress(ctx context.Context) domain.CampaignProgress

	// RecordCompletion applies a server-confirmed checkout completion keyed
	// by the processor transaction id. A replayed id leaves the total
	// unchanged and reports duplicate == true.
	RecordCompletion(ctx context.Context, transactionID string, amount int64) (progress domain.CampaignProgress, duplicate bool, err error)

	// Videos returns the catalogue entries that resolve to an embeddable
	// video, in catalogue order.
	Videos() []domain.ResolvedVideo

	// ResolveVideo resolves a single link. It never fails; an unresolvable
	// link yields a reference without identifier.
	ResolveVideo(sourceURL string) domain.VideoReference

	// GenerateReferral returns the referral link for origin.
	GenerateReferral(origin string) domain.ReferralLink

	// Share broadcasts the referral link (or pageURL when link is empty)
	// through the first capability available in caps.
	Share(ctx context.Context, caps domain.ShareCapabilities, link domain.ReferralLink, pageURL string) domain.ShareResult

	// ReportShareFailure records that a client-side share failed or was
	// cancelled. It is logged and otherwise ignored.
	ReportShareFailure(ctx context.Context, method domain.ShareMethod, reason string)
}

// LandingPage is the view model rendered by the landing page.
type LandingPage struct {
	Progress domain.CampaignProgress
	Videos   []domain.ResolvedVideo
	Redirect string
}
