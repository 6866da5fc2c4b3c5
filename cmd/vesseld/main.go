// Command vesseld serves the vessel tracker backend: it loads the UN/LOCODE
// port registry and exposes destination decoding over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ryantusi/GMS-Vessel-Tracker/internal/api"
	"github.com/ryantusi/GMS-Vessel-Tracker/internal/cache"
	"github.com/ryantusi/GMS-Vessel-Tracker/internal/config"
	"github.com/ryantusi/GMS-Vessel-Tracker/internal/observability"
	"github.com/ryantusi/GMS-Vessel-Tracker/locode"
)

func main() {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	registry, err := locode.LoadRegistry(cfg.DatasetPath, logger)
	if err != nil {
		logger.Error("failed to load port registry", "path", cfg.DatasetPath, "error", err)
		os.Exit(1)
	}
	metrics.RegistrySize.Set(float64(registry.Len()))
	logger.Info("port registry loaded", "path", cfg.DatasetPath, "ports", registry.Len())

	var opts []locode.Option
	if len(cfg.NoiseTokens) > 0 {
		opts = append(opts, locode.WithNoiseTokens(cfg.NoiseTokens...))
		logger.Info("extra noise tokens configured", "tokens", cfg.NoiseTokens)
	}
	decoder := locode.NewDecoder(registry, opts...)

	var apiDecoder api.Decoder = decoder
	if cfg.CacheSize > 0 {
		apiDecoder = cache.New(decoder, cfg.CacheSize, cfg.CacheTTL, metrics)
		logger.Info("decode cache enabled", "size", cfg.CacheSize, "ttl", cfg.CacheTTL)
	}

	srv := api.NewServer(cfg.HTTPAddr, apiDecoder, registry, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
