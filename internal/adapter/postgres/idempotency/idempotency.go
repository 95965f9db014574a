package idempotency

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists replayed-operation results in processed_operations so a
// retried share or registration returns its original response.
type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Check returns the cached response for key, and whether one exists.
func (s *Store) Check(ctx context.Context, key string) ([]byte, bool, error) {
	var result []byte
	err := s.pool.QueryRow(ctx,
		`SELECT result_jsonb FROM processed_operations WHERE idempotency_key = $1`,
		key).Scan(&result)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("check idempotency key: %w", err)
	}
	return result, true, nil
}

// Record caches resultJSON under key. A concurrent duplicate loses the insert
// race silently; both requests carried the same response anyway.
func (s *Store) Record(ctx context.Context, key, agentID, opType string, resultJSON []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO processed_operations (idempotency_key, agent_id, operation_type, result_jsonb, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (idempotency_key) DO NOTHING`,
		key, agentID, opType, resultJSON)
	if err != nil {
		return fmt.Errorf("record idempotency key: %w", err)
	}
	return nil
}
