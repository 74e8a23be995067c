package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"solidarity-campaign/internal/core/domain"
)

// uniqueViolation is the SQLSTATE for a primary key conflict.
const uniqueViolation = "23505"

// ProgressStorage implements port.ProgressStorage over the campaign_kv table.
type ProgressStorage struct {
	pool *pgxpool.Pool
}

// NewProgressStorage returns a new storage instance.
func NewProgressStorage(pool *pgxpool.Pool) *ProgressStorage {
	return &ProgressStorage{pool: pool}
}

// Read returns the value stored under key.
func (s *ProgressStorage) Read(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx, `SELECT value FROM campaign_kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return value, true, nil
}

// Write upserts value under key.
func (s *ProgressStorage) Write(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO campaign_kv (key, value, updated_at) VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// CompletionLedger implements port.CompletionLedger over completion_ledger.
// The primary key on transaction_id makes the first insert win.
type CompletionLedger struct {
	pool *pgxpool.Pool
}

// NewCompletionLedger returns a new ledger instance.
func NewCompletionLedger(pool *pgxpool.Pool) *CompletionLedger {
	return &CompletionLedger{pool: pool}
}

// Record inserts the event, reporting domain.ErrDuplicateCompletion when
// the transaction id is already present.
func (l *CompletionLedger) Record(ctx context.Context, event domain.CompletionEvent) error {
	_, err := l.pool.Exec(ctx, `INSERT INTO completion_ledger (transaction_id, event_id, source, amount, created_at)
VALUES ($1, $2, $3, $4, $5)`,
		event.TransactionID, event.ID, string(event.Source), event.Amount, event.ReceivedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateCompletion
	}
	if err != nil {
		return fmt.Errorf("record completion %s: %w", event.TransactionID, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
