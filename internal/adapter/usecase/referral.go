package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"solidarity-campaign/internal/core/domain"
	"solidarity-campaign/internal/core/port"
)

const (
	// DefaultReferralToken is the campaign token carried by referral links.
	DefaultReferralToken = "donated_1000"
	// DefaultPledgeAmount is the amount quoted in the share message.
	DefaultPledgeAmount int64 = 1000

	shareTitle     = "Solidarity for Persecuted Christians"
	clipboardNotes = "Message and link copied to clipboard!"
)

// ReferralBroadcaster builds referral links and hands the share message to
// the first available share capability.
type ReferralBroadcaster struct {
	token   string
	pledge  int64
	sharers []port.Sharer
	printer *message.Printer
	logger  *slog.Logger

	mu   sync.Mutex
	link domain.ReferralLink
}

// NewReferralBroadcaster creates a broadcaster. sharers are probed in the
// given order, so the native capability goes first and the clipboard last.
func NewReferralBroadcaster(token string, pledge int64, logger *slog.Logger, sharers ...port.Sharer) *ReferralBroadcaster {
	if token == "" {
		token = DefaultReferralToken
	}
	if pledge <= 0 {
		pledge = DefaultPledgeAmount
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReferralBroadcaster{
		token:   token,
		pledge:  pledge,
		sharers: sharers,
		printer: message.NewPrinter(language.English),
		logger:  logger,
	}
}

// Generate returns origin + "?ref=" + token. Only the most recent link is
// kept; it is rebuilt when the origin changes.
func (b *ReferralBroadcaster) Generate(origin string) domain.ReferralLink {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.link.Link != "" && b.link.Origin == origin {
		return b.link
	}
	b.link = domain.ReferralLink{Origin: origin, Link: origin + "?ref=" + b.token}
	return b.link
}

// Message renders the share payload. fallbackURL is used when link is
// empty, e.g. when the user shares before generating a referral.
func (b *ReferralBroadcaster) Message(link domain.ReferralLink, fallbackURL string) domain.ShareMessage {
	target := link.Link
	if target == "" {
		target = fallbackURL
	}
	text := b.printer.Sprintf(
		"I have donated $%d to Solidarity for Persecuted Christians – help the poor Worldwide. "+
			"Please do the same or donate even more – let's help make the world a better place! Join here: %s",
		b.pledge, target)
	return domain.ShareMessage{Title: shareTitle, Text: text, URL: target}
}

// Broadcast shares the message through the first sharer available under
// caps. A failing or cancelled share is logged and reported as
// ShareStatusFailed; it is never returned as an error.
func (b *ReferralBroadcaster) Broadcast(ctx context.Context, caps domain.ShareCapabilities, link domain.ReferralLink, fallbackURL string) domain.ShareResult {
	msg := b.Message(link, fallbackURL)
	for _, s := range b.sharers {
		if !s.Available(caps) {
			continue
		}
		method := s.Method()
		res := domain.ShareResult{Method: method, Message: msg}
		if err := s.Share(ctx, msg); err != nil {
			level := slog.LevelError
			if errors.Is(err, domain.ErrShareCancelled) {
				level = slog.LevelInfo
			}
			b.logger.Log(ctx, level, "error sharing", slog.String("method", string(method)), slog.Any("error", err))
			res.Status = domain.ShareStatusFailed
			return res
		}
		if method == domain.ShareMethodNative {
			res.Status = domain.ShareStatusShared
		} else {
			res.Status = domain.ShareStatusFallback
			res.Notice = clipboardNotes
		}
		return res
	}
	return domain.ShareResult{Status: domain.ShareStatusUnavailable, Message: msg}
}
