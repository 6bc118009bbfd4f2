package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ricirt/portfolio-api/internal/api"
	"github.com/ricirt/portfolio-api/internal/config"
	"github.com/ricirt/portfolio-api/internal/db"
	"github.com/ricirt/portfolio-api/internal/metrics"
	"github.com/ricirt/portfolio-api/internal/ratelimiter"
	"github.com/ricirt/portfolio-api/internal/repository"
	"github.com/ricirt/portfolio-api/internal/service"
)

func main() {
	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		bootLogger, _ := zap.NewProduction()
		bootLogger.Fatal("failed to load config", zap.Error(err))
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	// ---- database ----
	// A failed start is not fatal: the HTTP surface comes up in degraded
	// mode and database-backed endpoints answer 503.
	ctx := context.Background()
	lifecycle := db.NewLifecycle(cfg.DB, logger, m.LifecycleHooks())
	_ = lifecycle.Start(ctx)
	defer lifecycle.Stop()

	repo := repository.NewPgStatusRepository(lifecycle)
	svc := service.NewStatusService(repo, lifecycle, cfg.DB.OperationTimeout, logger, m.ServiceHooks())

	// ---- HTTP server ----
	router := api.NewRouter(svc, ratelimiter.New(cfg.WriteRateLimit), cfg.CORSOrigins, reg, m, logger)
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start server in a goroutine so it does not block the shutdown listener.
	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.Bool("database_connected", lifecycle.Connected()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	// 1. Stop accepting new HTTP requests and drain in-flight ones.
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	// 2. Release the database only once no handler can still use it.
	lifecycle.Stop()

	logger.Info("server stopped cleanly")
}

// newLogger builds the production JSON logger at the requested level,
// falling back to info for unknown level names.
func newLogger(level string) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
