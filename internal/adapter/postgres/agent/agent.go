package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainagent "github.com/alanyang/skillswap/internal/domain/agent"
	"github.com/alanyang/skillswap/internal/domain/errs"
)

const columns = `id, name, description, skills, reputation, total_shares,
	total_receives, registered_at, last_seen, status`

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Upsert performs a declarative insert-or-update so concurrent registrations
// of the same id cannot race a read-then-write branch. On conflict the mutable
// profile fields are overwritten; registered_at, the counters and reputation
// keep their stored values.
func (r *Repository) Upsert(ctx context.Context, a domainagent.Agent) (domainagent.Agent, error) {
	query := `
		INSERT INTO agents (id, name, description, skills, reputation,
			total_shares, total_receives, registered_at, last_seen, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			skills = EXCLUDED.skills,
			last_seen = EXCLUDED.last_seen,
			status = EXCLUDED.status
		RETURNING ` + columns

	var created domainagent.Agent
	err := r.pool.QueryRow(ctx, query,
		a.ID, a.Name, a.Description, a.Skills, a.Reputation,
		a.TotalShares, a.TotalReceives, a.RegisteredAt, a.LastSeen, a.Status,
	).Scan(
		&created.ID, &created.Name, &created.Description, &created.Skills,
		&created.Reputation, &created.TotalShares, &created.TotalReceives,
		&created.RegisteredAt, &created.LastSeen, &created.Status,
	)
	if err != nil {
		return domainagent.Agent{}, fmt.Errorf("upserting agent: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (domainagent.Agent, error) {
	query := `SELECT ` + columns + ` FROM agents WHERE id = $1`

	var a domainagent.Agent
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.Description, &a.Skills, &a.Reputation,
		&a.TotalShares, &a.TotalReceives, &a.RegisteredAt, &a.LastSeen, &a.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainagent.Agent{}, fmt.Errorf("agent %s: %w", id, errs.ErrNotFound)
		}
		return domainagent.Agent{}, fmt.Errorf("querying agent: %w", err)
	}
	return a, nil
}

func (r *Repository) List(ctx context.Context, filters domainagent.ListFilters) ([]domainagent.Agent, error) {
	query := `SELECT ` + columns + ` FROM agents WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if filters.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*filters.Status))
		argIdx++
	}

	query += " ORDER BY reputation DESC, registered_at ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}
	defer rows.Close()

	return scanAgents(rows)
}

func (r *Repository) ListOnline(ctx context.Context) ([]domainagent.Agent, error) {
	query := `SELECT ` + columns + ` FROM agents
		WHERE status = $1
		ORDER BY reputation DESC, registered_at ASC`

	rows, err := r.pool.Query(ctx, query, string(domainagent.StatusOnline))
	if err != nil {
		return nil, fmt.Errorf("listing online agents: %w", err)
	}
	defer rows.Close()

	return scanAgents(rows)
}

func (r *Repository) SetStatus(ctx context.Context, id string, status domainagent.Status) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE agents SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return false, fmt.Errorf("updating agent status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SetReputation(ctx context.Context, id string, reputation float64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE agents SET reputation = $1 WHERE id = $2`, reputation, id)
	if err != nil {
		return fmt.Errorf("updating agent reputation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("agent %s: %w", id, errs.ErrNotFound)
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM agents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting agents: %w", err)
	}
	return n, nil
}

func (r *Repository) CountByStatus(ctx context.Context, status domainagent.Status) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM agents WHERE status = $1`, string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting agents by status: %w", err)
	}
	return n, nil
}

func (r *Repository) TopSharers(ctx context.Context, limit int) ([]domainagent.Agent, error) {
	query := `SELECT ` + columns + ` FROM agents
		WHERE total_shares > 0
		ORDER BY total_shares DESC, registered_at ASC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing top sharers: %w", err)
	}
	defer rows.Close()

	return scanAgents(rows)
}

func scanAgents(rows pgx.Rows) ([]domainagent.Agent, error) {
	var agents []domainagent.Agent
	for rows.Next() {
		var a domainagent.Agent
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Description, &a.Skills, &a.Reputation,
			&a.TotalShares, &a.TotalReceives, &a.RegisteredAt, &a.LastSeen, &a.Status,
		); err != nil {
			return nil, fmt.Errorf("scanning agent row: %w", err)
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}
