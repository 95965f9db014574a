package skill

import (
	"context"

	domainskill "github.com/alanyang/skillswap/internal/domain/skill"
)

// Repository manages the formal skill catalog.
type Repository interface {
	Insert(ctx context.Context, s domainskill.Skill) (domainskill.Skill, error)
	GetByID(ctx context.Context, id int64) (domainskill.Skill, error)
	List(ctx context.Context, filters domainskill.ListFilters) ([]domainskill.Skill, error)

	// FindByNameAndOwner resolves the weak catalog reference used at share
	// time. A nil result with nil error means no catalog row matched, which
	// is a normal outcome.
	FindByNameAndOwner(ctx context.Context, name, ownerID string) (*domainskill.Skill, error)

	SetRating(ctx context.Context, id int64, rating float64) error

	Count(ctx context.Context) (int64, error)
	TopShared(ctx context.Context, limit int) ([]domainskill.Skill, error)
}
