package share

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"solidarity-campaign/internal/core/domain"
)

// Package-level hooks so tests can stand in for the system clipboard.
var (
	clipboardWriteAll  = clipboard.WriteAll
	clipboardSupported = func() bool { return !clipboard.Unsupported }
)

// SystemClipboard copies the share message to the clipboard of the machine
// the process runs on. It is the fallback capability of the CLI.
type SystemClipboard struct{}

func (SystemClipboard) Method() domain.ShareMethod { return domain.ShareMethodClipboard }

// Available reports whether a clipboard utility was found. The declared
// client capabilities are irrelevant for a local clipboard.
func (SystemClipboard) Available(domain.ShareCapabilities) bool { return clipboardSupported() }

func (SystemClipboard) Share(ctx context.Context, msg domain.ShareMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !clipboardSupported() {
		return domain.ErrShareUnavailable
	}
	if err := clipboardWriteAll(msg.Text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
