package agent

import (
	"context"

	domainagent "github.com/alanyang/skillswap/internal/domain/agent"
)

// Repository manages agent records in the registry store.
type Repository interface {
	// Upsert inserts a new agent or, when the id already exists, overwrites
	// name, description, skills, last_seen and status while preserving
	// registered_at, the share counters and reputation.
	Upsert(ctx context.Context, a domainagent.Agent) (domainagent.Agent, error)
	GetByID(ctx context.Context, id string) (domainagent.Agent, error)
	List(ctx context.Context, filters domainagent.ListFilters) ([]domainagent.Agent, error)

	// ListOnline returns online agents ordered by reputation descending,
	// registration time ascending.
	ListOnline(ctx context.Context) ([]domainagent.Agent, error)

	// SetStatus reports whether a row was updated; a miss is not an error.
	SetStatus(ctx context.Context, id string, status domainagent.Status) (bool, error)
	SetReputation(ctx context.Context, id string, reputation float64) error

	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domainagent.Status) (int64, error)
	TopSharers(ctx context.Context, limit int) ([]domainagent.Agent, error)
}
