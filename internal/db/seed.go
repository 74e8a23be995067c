package db

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed stores total under key unless a value is already present, so an
// existing total is never overwritten by a restart.
func Seed(ctx context.Context, db *pgxpool.Pool, key string, total int64) error {
	_, err := db.Exec(ctx, `INSERT INTO campaign_kv (key, value, updated_at)
VALUES ($1, $2, now()) ON CONFLICT (key) DO NOTHING`, key, strconv.FormatInt(total, 10))
	return err
}
