package domain

import (
	"time"
)

// CompletionSource identifies where a checkout completion signal came from.
type CompletionSource string

const (
	// CompletionSourceURLMarker is a simulated completion carried in the
	// landing page URL after a hosted checkout redirects back.
	CompletionSourceURLMarker CompletionSource = "url_marker"
	// CompletionSourceWebhook is a completion pushed by the server side
	// (e.g. a payment processor callback) with a transaction id.
	CompletionSourceWebhook CompletionSource = "webhook"
)

// CompletionEvent is a single checkout completion signal.
type CompletionEvent struct {
	ID            string
	Source        CompletionSource
	TransactionID string // empty for URL marker events
	Amount        int64  // amount reported by the source, 0 when unknown
	ReceivedAt    time.Time
}

// InterceptResult reports what the completion interceptor did for a page
// load. CleanURL is only meaningful when Applied is true.
type InterceptResult struct {
	Applied     bool
	Delta       int64
	TotalRaised int64
	CleanURL    string
}
