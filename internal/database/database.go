package database

import (
	"context"
	"fmt"
	"time"

	"catalogql/internal/apperr"
	"catalogql/internal/config"
	"catalogql/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Service owns the bounded connection pool shared across requests. The
// pool is the only cross-request shared state in the system.
type Service struct {
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

// New initializes the pool and verifies the store is reachable. An
// unreachable store at startup is a fatal condition for the caller.
func New(ctx context.Context, cfg config.DatabaseConfig) (*Service, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Service{
		pool:           pool,
		acquireTimeout: time.Duration(cfg.AcquireTimeout) * time.Second,
	}, nil
}

// Acquire hands out one connection for the lifetime of a request,
// wrapped in a repository Handler. Exhaustion past the acquire timeout
// comes back as a DB-kind error.
func (s *Service) Acquire(ctx context.Context) (*repository.Handler, error) {
	ctx, cancel := context.WithTimeout(ctx, s.acquireTimeout)
	defer cancel()

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, apperr.DBf("cannot retrieve a connection from pool: %v", err)
	}

	return repository.NewHandler(conn), nil
}

// Health returns a snapshot of pool statistics
func (s *Service) Health() map[string]any {
	stat := s.pool.Stat()
	return map[string]any{
		"status":           "up",
		"total_conns":      stat.TotalConns(),
		"idle_conns":       stat.IdleConns(),
		"acquired_conns":   stat.AcquiredConns(),
		"max_conns":        stat.MaxConns(),
		"acquire_count":    stat.AcquireCount(),
		"empty_acquire":    stat.EmptyAcquireCount(),
		"canceled_acquire": stat.CanceledAcquireCount(),
	}
}

// Close shuts the pool down
func (s *Service) Close() {
	s.pool.Close()
}
