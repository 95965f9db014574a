package skill

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alanyang/skillswap/internal/domain/errs"
	domainskill "github.com/alanyang/skillswap/internal/domain/skill"
)

const columns = `id, skill_name, category, description, owner_agent_id,
	endpoint, parameters_jsonb, rating, times_shared, created_at`

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Insert(ctx context.Context, s domainskill.Skill) (domainskill.Skill, error) {
	paramsJSON, err := json.Marshal(s.Parameters)
	if err != nil {
		return domainskill.Skill{}, fmt.Errorf("marshaling parameters: %w", err)
	}

	query := `
		INSERT INTO skills (skill_name, category, description, owner_agent_id,
			endpoint, parameters_jsonb, rating, times_shared, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING ` + columns

	var created domainskill.Skill
	var paramBytes []byte
	err = r.pool.QueryRow(ctx, query,
		s.Name, string(s.Category), s.Description, s.OwnerID,
		s.Endpoint, paramsJSON, s.Rating, s.TimesShared, s.CreatedAt,
	).Scan(
		&created.ID, &created.Name, &created.Category, &created.Description,
		&created.OwnerID, &created.Endpoint, &paramBytes, &created.Rating,
		&created.TimesShared, &created.CreatedAt,
	)
	if err != nil {
		return domainskill.Skill{}, fmt.Errorf("inserting skill: %w", err)
	}

	if err := unmarshalParameters(paramBytes, &created); err != nil {
		return domainskill.Skill{}, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (domainskill.Skill, error) {
	query := `SELECT ` + columns + ` FROM skills WHERE id = $1`

	var s domainskill.Skill
	var paramBytes []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Category, &s.Description, &s.OwnerID,
		&s.Endpoint, &paramBytes, &s.Rating, &s.TimesShared, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainskill.Skill{}, fmt.Errorf("skill %d: %w", id, errs.ErrNotFound)
		}
		return domainskill.Skill{}, fmt.Errorf("querying skill: %w", err)
	}

	if err := unmarshalParameters(paramBytes, &s); err != nil {
		return domainskill.Skill{}, err
	}
	return s, nil
}

func (r *Repository) List(ctx context.Context, filters domainskill.ListFilters) ([]domainskill.Skill, error) {
	query := `SELECT ` + columns + ` FROM skills WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if filters.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, string(*filters.Category))
		argIdx++
	}
	if filters.Search != nil {
		query += fmt.Sprintf(" AND skill_name ILIKE $%d", argIdx)
		args = append(args, "%"+*filters.Search+"%")
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing skills: %w", err)
	}
	defer rows.Close()

	return scanSkills(rows)
}

// FindByNameAndOwner returns the oldest catalog row matching the pair, or nil
// when none exists. Duplicate publishes are allowed so any match is
// acceptable; first-created wins for determinism.
func (r *Repository) FindByNameAndOwner(ctx context.Context, name, ownerID string) (*domainskill.Skill, error) {
	query := `SELECT ` + columns + ` FROM skills
		WHERE skill_name = $1 AND owner_agent_id = $2
		ORDER BY created_at ASC
		LIMIT 1`

	var s domainskill.Skill
	var paramBytes []byte
	err := r.pool.QueryRow(ctx, query, name, ownerID).Scan(
		&s.ID, &s.Name, &s.Category, &s.Description, &s.OwnerID,
		&s.Endpoint, &paramBytes, &s.Rating, &s.TimesShared, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolving skill by name and owner: %w", err)
	}

	if err := unmarshalParameters(paramBytes, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) SetRating(ctx context.Context, id int64, rating float64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE skills SET rating = $1 WHERE id = $2`, rating, id)
	if err != nil {
		return fmt.Errorf("updating skill rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("skill %d: %w", id, errs.ErrNotFound)
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM skills`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting skills: %w", err)
	}
	return n, nil
}

func (r *Repository) TopShared(ctx context.Context, limit int) ([]domainskill.Skill, error) {
	query := `SELECT ` + columns + ` FROM skills
		WHERE times_shared > 0
		ORDER BY times_shared DESC, created_at ASC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing top shared skills: %w", err)
	}
	defer rows.Close()

	return scanSkills(rows)
}

func scanSkills(rows pgx.Rows) ([]domainskill.Skill, error) {
	var skills []domainskill.Skill
	for rows.Next() {
		var s domainskill.Skill
		var paramBytes []byte
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Category, &s.Description, &s.OwnerID,
			&s.Endpoint, &paramBytes, &s.Rating, &s.TimesShared, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning skill row: %w", err)
		}
		if err := unmarshalParameters(paramBytes, &s); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func unmarshalParameters(paramBytes []byte, s *domainskill.Skill) error {
	if len(paramBytes) > 0 {
		if err := json.Unmarshal(paramBytes, &s.Parameters); err != nil {
			return fmt.Errorf("unmarshaling parameters: %w", err)
		}
	}
	return nil
}
