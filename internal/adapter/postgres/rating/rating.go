package rating

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	domainrating "github.com/alanyang/skillswap/internal/domain/rating"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Insert(ctx context.Context, rt domainrating.Rating) (domainrating.Rating, error) {
	query := `
		INSERT INTO ratings (skill_id, rater_agent_id, rating, review, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, skill_id, rater_agent_id, rating, review, created_at`

	var created domainrating.Rating
	err := r.pool.QueryRow(ctx, query,
		rt.SkillID, rt.RaterID, rt.Value, rt.Review, rt.CreatedAt,
	).Scan(
		&created.ID, &created.SkillID, &created.RaterID, &created.Value,
		&created.Review, &created.CreatedAt,
	)
	if err != nil {
		return domainrating.Rating{}, fmt.Errorf("inserting rating: %w", err)
	}
	return created, nil
}

func (r *Repository) ListForSkill(ctx context.Context, skillID int64) ([]domainrating.Rating, error) {
	query := `SELECT id, skill_id, rater_agent_id, rating, review, created_at
		FROM ratings WHERE skill_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, skillID)
	if err != nil {
		return nil, fmt.Errorf("listing ratings: %w", err)
	}
	defer rows.Close()

	var ratings []domainrating.Rating
	for rows.Next() {
		var rt domainrating.Rating
		if err := rows.Scan(
			&rt.ID, &rt.SkillID, &rt.RaterID, &rt.Value, &rt.Review, &rt.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning rating row: %w", err)
		}
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}

// AverageForSkill returns the plain arithmetic mean over every rating the
// skill ever received. COALESCE covers the no-ratings case, though callers
// only recompute after inserting at least one row.
func (r *Repository) AverageForSkill(ctx context.Context, skillID int64) (float64, error) {
	var avg float64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(AVG(rating), 0) FROM ratings WHERE skill_id = $1`, skillID).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("averaging skill ratings: %w", err)
	}
	return avg, nil
}

// AverageForOwner averages every rating across all skills the agent owns.
func (r *Repository) AverageForOwner(ctx context.Context, ownerID string) (float64, error) {
	var avg float64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(AVG(ra.rating), 0)
		FROM ratings ra
		JOIN skills s ON s.id = ra.skill_id
		WHERE s.owner_agent_id = $1`, ownerID).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("averaging owner ratings: %w", err)
	}
	return avg, nil
}
