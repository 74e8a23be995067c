package share

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solidarity-campaign/internal/core/domain"
)

func TestClientCapabilities(t *testing.T) {
	caps := domain.ShareCapabilities{Native: false, Clipboard: true}

	assert.False(t, ClientNative{}.Available(caps))
	assert.True(t, ClientClipboard{}.Available(caps))
	assert.Equal(t, domain.ShareMethodNative, ClientNative{}.Method())
	assert.Equal(t, domain.ShareMethodClipboard, ClientClipboard{}.Method())
}

func TestClientShareHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, ClientNative{}.Share(ctx, domain.ShareMessage{}))

	cancel()
	assert.ErrorIs(t, ClientNative{}.Share(ctx, domain.ShareMessage{}), context.Canceled)
}

func stubClipboard(t *testing.T, supported bool, write func(string) error) {
	t.Helper()
	origWrite, origSupported := clipboardWriteAll, clipboardSupported
	t.Cleanup(func() {
		clipboardWriteAll, clipboardSupported = origWrite, origSupported
	})
	clipboardWriteAll = write
	clipboardSupported = func() bool { return supported }
}

func TestSystemClipboardCopiesText(t *testing.T) {
	var copied string
	stubClipboard(t, true, func(s string) error {
		copied = s
		return nil
	})

	s := SystemClipboard{}
	require.True(t, s.Available(domain.ShareCapabilities{}))
	require.NoError(t, s.Share(context.Background(), domain.ShareMessage{Text: "join here"}))
	assert.Equal(t, "join here", copied)
}

func TestSystemClipboardError(t *testing.T) {
	boom := errors.New("xclip: exit status 1")
	stubClipboard(t, true, func(string) error { return boom })

	assert.ErrorIs(t, SystemClipboard{}.Share(context.Background(), domain.ShareMessage{}), boom)
}

func TestSystemClipboardUnsupported(t *testing.T) {
	written := false
	stubClipboard(t, false, func(string) error {
		written = true
		return nil
	})

	s := SystemClipboard{}
	assert.False(t, s.Available(domain.ShareCapabilities{Clipboard: true}))
	assert.ErrorIs(t, s.Share(context.Background(), domain.ShareMessage{Text: "join"}), domain.ErrShareUnavailable)
	assert.False(t, written)
}
