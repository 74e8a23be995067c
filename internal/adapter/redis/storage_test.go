package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"solidarity-campaign/internal/core/domain"
)

func TestLedgerValue(t *testing.T) {
	e := domain.CompletionEvent{
		TransactionID: "pi_1",
		Amount:        250,
		ReceivedAt:    time.Unix(1760000000, 0),
	}
	assert.Equal(t, "1760000000:250", ledgerValue(e))
}
