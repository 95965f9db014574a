package exchange

import (
	"context"

	domaintransfer "github.com/alanyang/skillswap/internal/domain/transfer"
)

// ShareRecord is the compound mutation performed by one share call.
type ShareRecord struct {
	SkillID     *int64
	SkillName   string
	FromAgentID string
	ToAgentID   string
	RequestID   *int64
}

// Recorder writes a share as one atomic unit: append the transfer, bump both
// agent counters, bump the catalog row's times_shared when resolved, and mark
// the referenced request fulfilled when present.
type Recorder interface {
	RecordShare(ctx context.Context, rec ShareRecord) (domaintransfer.Transfer, error)
}
