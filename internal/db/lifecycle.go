package db

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ricirt/portfolio-api/internal/config"
)

// Hooks are optional callbacks fired on connectivity transitions.
// Keeps the metrics package out of this one.
type Hooks struct {
	OnStateChange func(connected bool)
}

// Lifecycle owns the process's connectivity state: whether the database is
// reachable and, if so, the pool used to reach it. The pool is non-nil if and
// only if the state is connected.
//
// State only changes through Start and Stop. A failed query while serving
// never flips it; there is no reconnection.
type Lifecycle struct {
	cfg    config.DBConfig
	logger *zap.Logger
	hooks  Hooks

	mu   sync.RWMutex
	pool *pgxpool.Pool
}

// NewLifecycle returns a disconnected Lifecycle. Nothing is dialed until Start.
func NewLifecycle(cfg config.DBConfig, logger *zap.Logger, hooks Hooks) *Lifecycle {
	return &Lifecycle{cfg: cfg, logger: logger, hooks: hooks}
}

// Start makes a single bounded attempt to connect, probe and migrate.
//
// A non-nil error means the service is in degraded mode. The failure has
// already been logged; callers must keep booting. Calling Start while
// already connected is a no-op.
func (l *Lifecycle) Start(ctx context.Context) error {
	if l.Connected() {
		return nil
	}

	pool, err := l.connect(ctx)
	if err != nil {
		l.logger.Error("failed to connect to database", zap.Error(err))
		l.logger.Warn("application will start without database connection")
		return err
	}

	l.mu.Lock()
	l.pool = pool
	l.mu.Unlock()

	l.logger.Info("connected to database",
		zap.String("database", pool.Config().ConnConfig.Database))
	l.notify(true)
	return nil
}

// Stop releases the pool if connected. Safe to call any number of times,
// including when Start was never called or never succeeded.
func (l *Lifecycle) Stop() {
	l.mu.Lock()
	pool := l.pool
	l.pool = nil
	l.mu.Unlock()

	if pool == nil {
		return
	}

	l.logger.Info("closing database connection")
	pool.Close()
	l.notify(false)
}

// Connected reports the cached state. It never touches the database.
func (l *Lifecycle) Connected() bool {
	return l.Pool() != nil
}

// Pool returns the live pool, or nil when disconnected.
func (l *Lifecycle) Pool() *pgxpool.Pool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pool
}

func (l *Lifecycle) connect(ctx context.Context) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(l.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	if l.cfg.Name != "" {
		poolCfg.ConnConfig.Database = l.cfg.Name
	}
	poolCfg.ConnConfig.ConnectTimeout = l.cfg.ConnectTimeout
	// Server-side bound for every statement, on top of the caller's context.
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] =
		strconv.FormatInt(l.cfg.OperationTimeout.Milliseconds(), 10)
	poolCfg.MaxConns = l.cfg.MaxConns
	poolCfg.MinConns = l.cfg.MinConns

	// Host and database only: the URL may carry credentials.
	l.logger.Info("attempting to connect to database",
		zap.String("host", poolCfg.ConnConfig.Host),
		zap.Uint16("port", poolCfg.ConnConfig.Port),
		zap.String("database", poolCfg.ConnConfig.Database),
		zap.Duration("timeout", l.cfg.ConnectTimeout),
	)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	probeCtx, cancel := context.WithTimeout(ctx, l.cfg.ConnectTimeout)
	defer cancel()
	if err := pool.Ping(probeCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := migrateUp(pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

func (l *Lifecycle) notify(connected bool) {
	if l.hooks.OnStateChange != nil {
		l.hooks.OnStateChange(connected)
	}
}
