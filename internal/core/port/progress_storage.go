package port

import (
	"context"

	"solidarity-campaign/internal/core/domain"
)

// ProgressStorage is the outbound port for the persisted campaign state. It
// is a plain key/value store: values are opaque strings, and a missing key
// is reported with ok == false rather than an error. Implementations must be
// safe for concurrent use.
type ProgressStorage interface {
	// Read returns the value stored under key.
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	// Write stores value under key, replacing any previous value.
	Write(ctx context.Context, key, value string) error
}

// CompletionLedger records completion events that carry a transaction id so
// the same confirmation cannot be applied twice.
type CompletionLedger interface {
	// Record stores the event. It returns domain.ErrDuplicateCompletion when
	// the transaction id was recorded before.
	Record(ctx context.Context, event domain.CompletionEvent) error
}
