package locker

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Locker serializes reputation recomputes across server instances using
// Postgres session advisory locks. Lock and unlock must run on the same
// connection: pg_advisory_lock is session-scoped, so the lock is pinned to a
// single pooled conn for the duration of fn.
type Locker struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Locker {
	return &Locker{pool: pool}
}

// WithLock runs fn while holding the advisory lock for key. The lock blocks;
// concurrent raters of the same owner queue up rather than interleave.
func (l *Locker) WithLock(ctx context.Context, key int64, fn func(ctx context.Context) error) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire conn for lock %d: %w", key, err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock($1)`, key); err != nil {
		return fmt.Errorf("advisory lock %d: %w", key, err)
	}
	// Unlock with a fresh context so a cancelled ctx cannot leak the lock
	// for the lifetime of the session.
	defer conn.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, key) //nolint:errcheck

	return fn(ctx)
}
