package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/huang12zheng/idable"
	"github.com/huang12zheng/idable/internal/common/config"
	"github.com/huang12zheng/idable/internal/common/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.Init(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	registry := prometheus.NewRegistry()
	metrics := idable.NewMetrics(registry)

	gen := idable.New(
		idable.WithLogger(logger),
		idable.WithMetrics(metrics),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
			Handler: mux,
		}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = server.Shutdown(shutdownCtx)
		}()

		logger.Info("metrics server listening", zap.Int("port", cfg.Metrics.Port))
	}

	logger.Info("minting identifiers",
		zap.Int("count", cfg.Mint.Count),
		zap.Int("per_second", cfg.Mint.PerSecond),
	)

	// Pacing makes same-tick sequencing and tick rollover visible in the
	// printed decomposition.
	limiter := rate.NewLimiter(rate.Limit(cfg.Mint.PerSecond), cfg.Mint.Burst)

	for i := 0; i < cfg.Mint.Count; i++ {
		if err := limiter.Wait(ctx); err != nil {
			logger.Info("interrupted", zap.Int("minted", i))
			return nil
		}

		id := gen.NextID()
		timestamp, sequence := idable.IntoParts(id)
		fmt.Printf("%20d  timestamp=%-15d sequence=%-4d minted=%s\n",
			id, timestamp, sequence,
			idable.ToTime(id).Format(time.RFC3339Nano),
		)
	}

	return nil
}
