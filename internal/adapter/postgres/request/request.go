package request

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alanyang/skillswap/internal/domain/errs"
	domainrequest "github.com/alanyang/skillswap/internal/domain/request"
)

const columns = `id, requester_agent_id, skill_name, status, fulfilled_by, created_at, fulfilled_at`

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Insert(ctx context.Context, req domainrequest.Request) (domainrequest.Request, error) {
	query := `
		INSERT INTO requests (requester_agent_id, skill_name, status, created_at)
		VALUES ($1,$2,$3,$4)
		RETURNING ` + columns

	var created domainrequest.Request
	err := r.pool.QueryRow(ctx, query,
		req.RequesterID, req.SkillName, string(req.Status), req.CreatedAt,
	).Scan(
		&created.ID, &created.RequesterID, &created.SkillName, &created.Status,
		&created.FulfilledBy, &created.CreatedAt, &created.FulfilledAt,
	)
	if err != nil {
		return domainrequest.Request{}, fmt.Errorf("inserting request: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (domainrequest.Request, error) {
	query := `SELECT ` + columns + ` FROM requests WHERE id = $1`

	var req domainrequest.Request
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.RequesterID, &req.SkillName, &req.Status,
		&req.FulfilledBy, &req.CreatedAt, &req.FulfilledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainrequest.Request{}, fmt.Errorf("request %d: %w", id, errs.ErrNotFound)
		}
		return domainrequest.Request{}, fmt.Errorf("querying request: %w", err)
	}
	return req, nil
}

func (r *Repository) ListOpen(ctx context.Context, limit int) ([]domainrequest.Request, error) {
	query := `SELECT ` + columns + ` FROM requests
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, string(domainrequest.StatusOpen), limit)
	if err != nil {
		return nil, fmt.Errorf("listing open requests: %w", err)
	}
	defer rows.Close()

	var requests []domainrequest.Request
	for rows.Next() {
		var req domainrequest.Request
		if err := rows.Scan(
			&req.ID, &req.RequesterID, &req.SkillName, &req.Status,
			&req.FulfilledBy, &req.CreatedAt, &req.FulfilledAt,
		); err != nil {
			return nil, fmt.Errorf("scanning request row: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *Repository) CountOpen(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM requests WHERE status = $1`,
		string(domainrequest.StatusOpen)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting open requests: %w", err)
	}
	return n, nil
}
