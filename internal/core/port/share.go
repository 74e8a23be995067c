package port

import (
	"context"

	"solidarity-campaign/internal/core/domain"
)

// Sharer is a single share capability of the host environment (a native
// share sheet, a clipboard). The broadcaster probes Available before
// calling Share.
type Sharer interface {
	Method() domain.ShareMethod
	Available(caps domain.ShareCapabilities) bool
	Share(ctx context.Context, msg domain.ShareMessage) error
}
