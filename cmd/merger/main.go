package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/blackmoshui/merge-coin/internal/config"
	"github.com/blackmoshui/merge-coin/internal/keys"
	"github.com/blackmoshui/merge-coin/internal/merger"
	"github.com/blackmoshui/merge-coin/internal/sui/rpc"
)

const privateKeyEnv = "SUI_PRIVATE_KEY"

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	key, err := keys.FromEnv(privateKeyEnv)
	if err != nil {
		logger.Error("failed to load signing key", "error", err)
		os.Exit(1)
	}

	logger = logger.With("run_id", uuid.NewString())
	logger.Info("starting merge-coin",
		"rpc_url", cfg.RPC.URL,
		"address", key.Address(),
		"batch_size", cfg.Merge.BatchSize,
		"page_limit", cfg.Merge.PageLimit,
		"object_cap", cfg.Merge.ObjectCap,
		"inter_batch_delay", cfg.Merge.InterBatchDelay,
		"lister_error_mode", cfg.Lister.ErrorMode,
		"dry_run", cfg.Merge.DryRun,
	)

	client := rpc.NewClient(cfg.RPC.URL, logger)
	lister := merger.NewLister(client, merger.ListerOptions{
		PageLimit: cfg.Merge.PageLimit,
		ObjectCap: cfg.Merge.ObjectCap,
		Propagate: cfg.Lister.ErrorMode == config.ListerErrorModePropagate,
	}, logger)
	batchMerger := merger.NewMerger(client, key, lister, cfg.Merge, logger)
	driver := merger.NewDriver(lister, batchMerger, key.Address(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	g, gCtx := errgroup.WithContext(ctx)

	if cfg.Server.MetricsPort > 0 {
		g.Go(func() error {
			return runMetricsServer(gCtx, cfg.Server.MetricsPort, logger)
		})
	}

	g.Go(func() error {
		defer cancel()
		return driver.Run(gCtx)
	})

	g.Go(func() error {
		select {
		case sig := <-sigCh:
			logger.Info("received signal, shutting down", "signal", sig)
			cancel()
			return nil
		case <-gCtx.Done():
			return nil
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("merge run failed", "error", err)
		os.Exit(1)
	}

	logger.Info("merge run complete")
}

func runMetricsServer(ctx context.Context, port int, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			logger.Warn("failed to write health response", "error", err)
		}
	})
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
			logger.Warn("metrics server shutdown error", "error", err)
		}
	}()

	logger.Info("metrics server started", "port", port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}
