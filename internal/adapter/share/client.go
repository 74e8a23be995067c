// Package share implements the share capabilities probed by the referral
// broadcaster.
package share

import (
	"context"

	"solidarity-campaign/internal/core/domain"
)

// ClientNative stands for the browser's native share sheet. The server
// cannot open it; sharing succeeds by handing the message back to the
// client, which passes it to its share API and reports failures through
// the share report endpoint.
type ClientNative struct{}

func (ClientNative) Method() domain.ShareMethod { return domain.ShareMethodNative }

func (ClientNative) Available(caps domain.ShareCapabilities) bool { return caps.Native }

func (ClientNative) Share(ctx context.Context, _ domain.ShareMessage) error { return ctx.Err() }

// ClientClipboard stands for the browser's clipboard. Like ClientNative it
// only hands the message back to the client.
type ClientClipboard struct{}

func (ClientClipboard) Method() domain.ShareMethod { return domain.ShareMethodClipboard }

func (ClientClipboard) Available(caps domain.ShareCapabilities) bool { return caps.Clipboard }

func (ClientClipboard) Share(ctx context.Context, _ domain.ShareMessage) error { return ctx.Err() }
