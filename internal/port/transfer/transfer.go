package transfer

import (
	"context"

	domaintransfer "github.com/alanyang/skillswap/internal/domain/transfer"
)

// Repository reads the append-only transfer log. Writes go through the
// exchange Recorder so the compound share mutation stays atomic.
type Repository interface {
	ListRecent(ctx context.Context, limit int) ([]domaintransfer.Transfer, error)
	Count(ctx context.Context) (int64, error)
	CountFrom(ctx context.Context, agentID string) (int64, error)
}
