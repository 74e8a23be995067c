package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"

	"solidarity-campaign/internal/core/domain"
	"solidarity-campaign/internal/core/port"
)

const (
	// DefaultCompletionMarker is the query key a hosted checkout appends
	// when it redirects back to the landing page.
	DefaultCompletionMarker = "checkout_success"
	// DefaultSimulatedIncrement is added to the total for every URL marker.
	DefaultSimulatedIncrement int64 = 1000
)

// IncrementPolicy decides how much a completion event adds to the total.
type IncrementPolicy interface {
	Increment(event domain.CompletionEvent) int64
}

// FixedIncrement adds the same amount for every event regardless of what
// the source reported.
type FixedIncrement int64

func (f FixedIncrement) Increment(domain.CompletionEvent) int64 { return int64(f) }

// ReportedAmount adds the amount carried by the event and falls back to
// Default when the source did not report one.
type ReportedAmount struct {
	Default int64
}

func (p ReportedAmount) Increment(e domain.CompletionEvent) int64 {
	if e.Amount > 0 {
		return e.Amount
	}
	return p.Default
}

// progressAdder is the slice of ProgressStore the interceptor depends on.
type progressAdder interface {
	Add(ctx context.Context, delta int64) (int64, error)
}

// CompletionInterceptor turns checkout completion signals into progress
// increments. URL markers are a stand-in for a real payment confirmation
// and are applied without de-duplication; webhook events carry a
// transaction id and go through the ledger first.
type CompletionInterceptor struct {
	store  progressAdder
	policy IncrementPolicy
	ledger port.CompletionLedger
	marker string
	logger *slog.Logger
	now    func() time.Time
}

// NewCompletionInterceptor wires an interceptor. A nil policy defaults to
// ReportedAmount{Default: DefaultSimulatedIncrement}, which adds the fixed
// simulated increment for URL markers, and an empty marker to
// DefaultCompletionMarker. ledger may be nil, in which case webhook events
// are not de-duplicated.
func NewCompletionInterceptor(store progressAdder, policy IncrementPolicy, ledger port.CompletionLedger, marker string, logger *slog.Logger) *CompletionInterceptor {
	if policy == nil {
		policy = ReportedAmount{Default: DefaultSimulatedIncrement}
	}
	if marker == "" {
		marker = DefaultCompletionMarker
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CompletionInterceptor{
		store:  store,
		policy: policy,
		ledger: ledger,
		marker: marker,
		logger: logger,
		now:    time.Now,
	}
}

// Intercept inspects pageURL for the completion marker. When present, with
// any value, the policy's increment is added once and the result carries
// the page URL with query and fragment stripped. Without the marker it is a
// no-op.
func (c *CompletionInterceptor) Intercept(ctx context.Context, pageURL *url.URL) domain.InterceptResult {
	if pageURL == nil {
		return domain.InterceptResult{}
	}
	if _, ok := pageURL.Query()[c.marker]; !ok {
		return domain.InterceptResult{}
	}

	event := domain.CompletionEvent{
		ID:         uuid.NewString(),
		Source:     domain.CompletionSourceURLMarker,
		ReceivedAt: c.now().UTC(),
	}
	delta := c.policy.Increment(event)
	total, err := c.store.Add(ctx, delta)
	if err != nil {
		// Only a negative policy result ends up here; the marker is still
		// consumed so a reload does not retry it.
		c.logger.Error("apply completion marker", slog.String("event_id", event.ID), slog.Any("error", err))
		delta = 0
	} else {
		c.logger.Info("completion marker applied",
			slog.String("event_id", event.ID),
			slog.Int64("delta", delta),
			slog.Int64("total", total))
	}

	return domain.InterceptResult{
		Applied:     true,
		Delta:       delta,
		TotalRaised: total,
		CleanURL:    StripQuery(pageURL),
	}
}

// Apply records a server-confirmed completion. An event whose transaction
// id is already in the ledger is skipped and reported with
// domain.ErrDuplicateCompletion. Ledger failures other than duplicates are
// returned without touching the total.
func (c *CompletionInterceptor) Apply(ctx context.Context, event domain.CompletionEvent) (int64, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Source == "" {
		event.Source = domain.CompletionSourceWebhook
	}
	if event.ReceivedAt.IsZero() {
		event.ReceivedAt = c.now().UTC()
	}

	if c.ledger != nil && event.TransactionID != "" {
		if err := c.ledger.Record(ctx, event); err != nil {
			if errors.Is(err, domain.ErrDuplicateCompletion) {
				c.logger.Info("duplicate completion ignored", slog.String("transaction_id", event.TransactionID))
			}
			return 0, err
		}
	}

	delta := c.policy.Increment(event)
	total, err := c.store.Add(ctx, delta)
	if err != nil {
		return total, err
	}
	c.logger.Info("completion applied",
		slog.String("event_id", event.ID),
		slog.String("transaction_id", event.TransactionID),
		slog.Int64("delta", delta),
		slog.Int64("total", total))
	return total, nil
}

// StripQuery returns u without query string or fragment. A URL with no
// path keeps "/" so the result is always navigable.
func StripQuery(u *url.URL) string {
	clean := *u
	clean.RawQuery = ""
	clean.ForceQuery = false
	clean.Fragment = ""
	clean.RawFragment = ""
	if clean.Path == "" && clean.Opaque == "" {
		clean.Path = "/"
	}
	return clean.String()
}
