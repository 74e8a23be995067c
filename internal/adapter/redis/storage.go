package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"solidarity-campaign/internal/core/domain"
)

const (
	keyPrefix    = "campaign:"
	ledgerPrefix = "campaign:ledger:"
)

// Connect initializes a Redis client from URL or host:port input.
func Connect(ctx context.Context, redisURL string) (*goredis.Client, error) {
	var client *goredis.Client
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := goredis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = goredis.NewClient(opt)
	} else {
		client = goredis.NewClient(&goredis.Options{Addr: redisURL})
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// ProgressStorage implements port.ProgressStorage with plain Redis strings.
type ProgressStorage struct {
	client goredis.UniversalClient
}

// NewProgressStorage returns a storage over client.
func NewProgressStorage(client goredis.UniversalClient) *ProgressStorage {
	return &ProgressStorage{client: client}
}

func (s *ProgressStorage) Read(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *ProgressStorage) Write(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// CompletionLedger implements port.CompletionLedger with SETNX so the first
// writer of a transaction id wins across processes.
type CompletionLedger struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

// NewCompletionLedger returns a ledger whose entries expire after ttl. A
// zero ttl keeps entries forever.
func NewCompletionLedger(client goredis.UniversalClient, ttl time.Duration) *CompletionLedger {
	return &CompletionLedger{client: client, ttl: ttl}
}

func (l *CompletionLedger) Record(ctx context.Context, event domain.CompletionEvent) error {
	ok, err := l.client.SetNX(ctx, ledgerPrefix+event.TransactionID, ledgerValue(event), l.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis setnx %s: %w", event.TransactionID, err)
	}
	if !ok {
		return domain.ErrDuplicateCompletion
	}
	return nil
}

// ledgerValue encodes the event as "<unix seconds>:<amount>".
func ledgerValue(e domain.CompletionEvent) string {
	return strconv.FormatInt(e.ReceivedAt.Unix(), 10) + ":" + strconv.FormatInt(e.Amount, 10)
}
