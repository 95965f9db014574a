package rating

import (
	"context"

	domainrating "github.com/alanyang/skillswap/internal/domain/rating"
)

// Repository stores immutable skill ratings and computes the derived means.
type Repository interface {
	Insert(ctx context.Context, r domainrating.Rating) (domainrating.Rating, error)
	ListForSkill(ctx context.Context, skillID int64) ([]domainrating.Rating, error)

	// AverageForSkill is the arithmetic mean of every rating ever given to
	// the skill.
	AverageForSkill(ctx context.Context, skillID int64) (float64, error)

	// AverageForOwner is the mean across ratings of all skills the agent
	// owns, not just the most recently rated one.
	AverageForOwner(ctx context.Context, ownerID string) (float64, error)
}
