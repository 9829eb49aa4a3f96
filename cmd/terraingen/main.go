// Package main is the entry point for the headless terrain generator.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Faultbox/holo-terrain/internal/config"
	"github.com/Faultbox/holo-terrain/internal/logger"
	"github.com/Faultbox/holo-terrain/internal/runner"
)

var (
	// Set at build.
	version = "v0.1.0"

	infoGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name:        "terraingen_info",
		Help:        "Terrain generator information.",
		ConstLabels: prometheus.Labels{"version": version},
	})
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logCfg := logger.DefaultConfig(cfg.Logging.Level)
	logCfg.File = cfg.Logging.LogFile
	logCfg.JSON = cfg.Logging.JSON
	if err := logger.InitWithConfig(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Holo Terrain Generator ===", zap.String("version", version))
	if cfg.Source != "" {
		logger.Info("loaded config", zap.String("path", cfg.Source))
	}
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Addr != "" {
		srv := serveMetrics(cfg.Metrics.Addr)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	r, err := runner.New(cfg)
	if err != nil {
		logger.Error("failed to create runner", zap.Error(err))
		os.Exit(1)
	}

	if err := r.Run(ctx); err != nil {
		logger.Error("generation error", zap.Error(err))
		os.Exit(1)
	}

	if p := r.Exported(); p.TIFF != "" {
		logger.Info("wrote heightmap",
			zap.String("tiff", p.TIFF),
			zap.String("obj", p.OBJ),
			zap.String("metadata", p.Metadata))
	}
	logger.Info("generator finished normally")
}

func serveMetrics(addr string) *http.Server {
	infoGauge.Set(1)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", zap.Error(err))
		}
	}()

	return srv
}
