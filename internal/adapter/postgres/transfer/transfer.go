package transfer

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domaintransfer "github.com/alanyang/skillswap/internal/domain/transfer"
)

const columns = `id, skill_id, skill_name, from_agent_id, to_agent_id, status, occurred_at`

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]domaintransfer.Transfer, error) {
	query := `SELECT ` + columns + ` FROM transfers ORDER BY occurred_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent transfers: %w", err)
	}
	defer rows.Close()

	return scanTransfers(rows)
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transfers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting transfers: %w", err)
	}
	return n, nil
}

func (r *Repository) CountFrom(ctx context.Context, agentID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transfers WHERE from_agent_id = $1`, agentID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting transfers from agent: %w", err)
	}
	return n, nil
}

func scanTransfers(rows pgx.Rows) ([]domaintransfer.Transfer, error) {
	var transfers []domaintransfer.Transfer
	for rows.Next() {
		var t domaintransfer.Transfer
		if err := rows.Scan(
			&t.ID, &t.SkillID, &t.SkillName, &t.FromAgentID, &t.ToAgentID,
			&t.Status, &t.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scanning transfer row: %w", err)
		}
		transfers = append(transfers, t)
	}
	return transfers, rows.Err()
}
