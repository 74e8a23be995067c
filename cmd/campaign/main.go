package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "solidarity-campaign/internal/adapter/http"
	"solidarity-campaign/internal/adapter/share"
	"solidarity-campaign/internal/app"
	"solidarity-campaign/internal/config"
)

// main is the entry point of the campaign service. It loads configuration,
// opens the configured storage backend, wires the campaign use case and
// starts the HTTP server. On a termination signal it shuts the server down
// gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	backend, err := app.OpenBackend(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage backend error", slog.String("backend", cfg.Storage.Kind()), slog.Any("error", err))
		return
	}
	defer backend.Close()

	svc, err := app.NewUseCase(ctx, cfg, backend, logger, share.ClientNative{}, share.ClientClipboard{})
	if err != nil {
		logger.Error("campaign setup error", slog.Any("error", err))
		return
	}

	handler := httpadapter.NewHandler(svc, logger, cfg.HTTP.PublicOrigin)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("backend", cfg.Storage.Kind()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err = <-serverErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
