// Package app wires configuration, storage backends and the campaign use
// case together for the service and the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"solidarity-campaign/internal/adapter/memory"
	"solidarity-campaign/internal/adapter/postgres"
	redisadapter "solidarity-campaign/internal/adapter/redis"
	"solidarity-campaign/internal/adapter/usecase"
	"solidarity-campaign/internal/config"
	"solidarity-campaign/internal/core/port"
	"solidarity-campaign/internal/db"
	"solidarity-campaign/internal/videos"
)

// Backend bundles the storage ports of one persistence backend. Close
// releases its connections.
type Backend struct {
	Storage port.ProgressStorage
	Ledger  port.CompletionLedger
	Close   func()
}

// OpenBackend connects the backend selected by cfg.Storage. For Postgres it
// optionally runs migrations and seeds the initial total.
func OpenBackend(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Backend, error) {
	switch cfg.Storage.Kind() {
	case "postgres":
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection: %w", err)
		}
		if cfg.Psql.SeedTotal > 0 {
			if err = db.Seed(ctx, pool, cfg.Storage.Key, cfg.Psql.SeedTotal); err != nil {
				pool.Close()
				return nil, fmt.Errorf("seed: %w", err)
			}
		}
		return &Backend{
			Storage: postgres.NewProgressStorage(pool),
			Ledger:  postgres.NewCompletionLedger(pool),
			Close:   pool.Close,
		}, nil
	case "redis":
		client, err := redisadapter.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Storage: redisadapter.NewProgressStorage(client),
			Ledger:  redisadapter.NewCompletionLedger(client, cfg.Redis.LedgerTTL),
			Close:   func() { _ = client.Close() },
		}, nil
	default:
		return &Backend{
			Storage: memory.NewProgressStorage(),
			Ledger:  memory.NewCompletionLedger(),
			Close:   func() {},
		}, nil
	}
}

// IncrementPolicy returns the completion policy named by cfg.
func IncrementPolicy(cfg config.Config) usecase.IncrementPolicy {
	if strings.EqualFold(cfg.Campaign.IncrementPolicy, "fixed") {
		return usecase.FixedIncrement(cfg.Campaign.SimulatedIncrement)
	}
	return usecase.ReportedAmount{Default: cfg.Campaign.SimulatedIncrement}
}

// NewUseCase builds the campaign use case over backend. sharers are probed
// in order when broadcasting a referral.
func NewUseCase(ctx context.Context, cfg config.Config, backend *Backend, logger *slog.Logger, sharers ...port.Sharer) (*usecase.CampaignUseCase, error) {
	catalogue, err := videos.Load(cfg.Campaign.VideosFile)
	if err != nil {
		return nil, err
	}

	store := usecase.NewProgressStore(backend.Storage, cfg.Storage.Key, cfg.Campaign.Goal, logger)
	store.Load(ctx)

	interceptor := usecase.NewCompletionInterceptor(store, IncrementPolicy(cfg), backend.Ledger, cfg.Campaign.CompletionMarker, logger)
	resolver := usecase.NewVideoResolver(logger)
	referrals := usecase.NewReferralBroadcaster(cfg.Campaign.ReferralToken, cfg.Campaign.PledgeAmount, logger, sharers...)

	return usecase.NewCampaignUseCase(store, interceptor, resolver, referrals, catalogue, logger), nil
}
