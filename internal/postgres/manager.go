// Package postgres owns the shared database connection for the process.
// The pool is created lazily on first use; concurrent first callers are
// serialized so only one dial attempt is ever in flight, and a failed
// attempt leaves the manager retryable on the next call.
package postgres

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Manager struct {
	dsn string

	mu   sync.Mutex
	pool *pgxpool.Pool
}

func NewManager(dsn string) *Manager {
	return &Manager{dsn: dsn}
}

// Pool returns the shared pool, dialing and applying the schema on first use.
func (m *Manager) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pool != nil {
		return m.pool, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, m.dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := applySchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	log.Printf("[postgres] connected")
	m.pool = pool
	return m.pool, nil
}

func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pool != nil {
		m.pool.Close()
		m.pool = nil
	}
}
