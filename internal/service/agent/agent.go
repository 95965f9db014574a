package agent

import (
	"context"
	"fmt"
	"log/slog"

	domainagent "github.com/alanyang/skillswap/internal/domain/agent"
	"github.com/alanyang/skillswap/internal/domain/errs"
	"github.com/alanyang/skillswap/internal/domain/event"
	portagent "github.com/alanyang/skillswap/internal/port/agent"
	portbus "github.com/alanyang/skillswap/internal/port/eventbus"
)

// Service manages the agent directory: registration, presence and discovery.
type Service struct {
	repo portagent.Repository
	bus  portbus.EventBus
}

func NewService(repo portagent.Repository, bus portbus.EventBus) *Service {
	return &Service{repo: repo, bus: bus}
}

// Register upserts the agent record and marks it online. Re-registering an
// existing id overwrites the profile fields but keeps registered_at, the
// share counters and reputation, so the call is safe to repeat.
func (s *Service) Register(ctx context.Context, id, name, description string, skills []string) (domainagent.Agent, error) {
	if id == "" {
		return domainagent.Agent{}, errs.Validationf("agent_id is required")
	}
	if skills == nil {
		skills = []string{}
	}

	upserted, err := s.repo.Upsert(ctx, domainagent.New(id, name, description, skills))
	if err != nil {
		return domainagent.Agent{}, fmt.Errorf("register agent: %w", err)
	}

	if err := s.bus.Publish(ctx, event.New(event.TypeAgentOnline, upserted.ID)); err != nil {
		slog.ErrorContext(ctx, "failed to publish AgentOnline event", "agent_id", upserted.ID, "error", err)
	}

	return upserted, nil
}

// Deregister flips the agent offline. A missing agent is not an error.
func (s *Service) Deregister(ctx context.Context, id string) error {
	if id == "" {
		return errs.Validationf("agent_id is required")
	}

	updated, err := s.repo.SetStatus(ctx, id, domainagent.StatusOffline)
	if err != nil {
		return fmt.Errorf("deregister agent: %w", err)
	}
	if !updated {
		return nil
	}

	if err := s.bus.Publish(ctx, event.New(event.TypeAgentOffline, id)); err != nil {
		slog.ErrorContext(ctx, "failed to publish AgentOffline event", "agent_id", id, "error", err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domainagent.Agent, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainagent.Agent{}, fmt.Errorf("get agent: %w", err)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, filters domainagent.ListFilters) ([]domainagent.Agent, error) {
	agents, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return agents, nil
}

// Discover returns online agents carrying the requested tags. Matching is
// exact case-insensitive membership in the agent's declared skill list, never
// substring search. Results for each tag come back in reputation order
// (repository ordering: reputation DESC, registered_at ASC); the requester is
// excluded when supplied; an agent matching several tags appears once per tag.
func (s *Service) Discover(ctx context.Context, skillsNeeded []string, requesterID string) ([]domainagent.Match, error) {
	if len(skillsNeeded) == 0 {
		return nil, errs.Validationf("skills_needed is required")
	}

	online, err := s.repo.ListOnline(ctx)
	if err != nil {
		return nil, fmt.Errorf("discover agents: %w", err)
	}

	var matches []domainagent.Match
	for _, tag := range skillsNeeded {
		for i := range online {
			a := &online[i]
			if requesterID != "" && a.ID == requesterID {
				continue
			}
			if a.HasSkill(tag) {
				matches = append(matches, domainagent.Match{
					Skill:      tag,
					AgentID:    a.ID,
					AgentName:  a.Name,
					Reputation: a.Reputation,
				})
			}
		}
	}
	return matches, nil
}
