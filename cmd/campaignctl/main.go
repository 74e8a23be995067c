// Package main implements campaignctl, an operator CLI for the campaign
// engine. It talks to the same storage backend as the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"solidarity-campaign/internal/adapter/share"
	"solidarity-campaign/internal/adapter/usecase"
	"solidarity-campaign/internal/app"
	"solidarity-campaign/internal/config"
)

var (
	verbose bool
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "campaignctl",
	Short: "Inspect and update the donation campaign state",
	Long: `campaignctl reads the same environment configuration as the campaign
service (STORAGE_BACKEND, PSQL_*, REDIS_*, CAMPAIGN_*) and operates on the
persisted campaign total, the video catalogue and referral links.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Operation timeout")

	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(interceptCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(referralCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// session is a wired use case plus the resources backing it.
type session struct {
	ctx    context.Context
	svc    *usecase.CampaignUseCase
	cancel func()
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	logger := cfg.Log.New(cmd.ErrOrStderr())

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	backend, err := app.OpenBackend(ctx, cfg, logger)
	if err != nil {
		cancel()
		return nil, err
	}
	svc, err := app.NewUseCase(ctx, cfg, backend, logger, share.SystemClipboard{})
	if err != nil {
		backend.Close()
		cancel()
		return nil, err
	}
	logger.Debug("session opened", slog.String("backend", cfg.Storage.Kind()))
	return &session{
		ctx: ctx,
		svc: svc,
		cancel: func() {
			backend.Close()
			cancel()
		},
	}, nil
}
