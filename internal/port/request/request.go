package request

import (
	"context"

	domainrequest "github.com/alanyang/skillswap/internal/domain/request"
)

// Repository manages open skill requests. Fulfillment is written by the
// exchange Recorder inside the share transaction.
type Repository interface {
	Insert(ctx context.Context, r domainrequest.Request) (domainrequest.Request, error)
	GetByID(ctx context.Context, id int64) (domainrequest.Request, error)
	ListOpen(ctx context.Context, limit int) ([]domainrequest.Request, error)
	CountOpen(ctx context.Context) (int64, error)
}
