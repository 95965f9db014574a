package skill

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strconv"

	"github.com/alanyang/skillswap/internal/domain/errs"
	"github.com/alanyang/skillswap/internal/domain/event"
	domainrating "github.com/alanyang/skillswap/internal/domain/rating"
	domainskill "github.com/alanyang/skillswap/internal/domain/skill"
	portagent "github.com/alanyang/skillswap/internal/port/agent"
	portbus "github.com/alanyang/skillswap/internal/port/eventbus"
	portlocker "github.com/alanyang/skillswap/internal/port/locker"
	portrating "github.com/alanyang/skillswap/internal/port/rating"
	portskill "github.com/alanyang/skillswap/internal/port/skill"
)

// Service manages the formal skill catalog and its rating aggregation.
type Service struct {
	repo    portskill.Repository
	agents  portagent.Repository
	ratings portrating.Repository
	locker  portlocker.AdvisoryLocker
	bus     portbus.EventBus
}

func NewService(
	repo portskill.Repository,
	agents portagent.Repository,
	ratings portrating.Repository,
	locker portlocker.AdvisoryLocker,
	bus portbus.EventBus,
) *Service {
	return &Service{repo: repo, agents: agents, ratings: ratings, locker: locker, bus: bus}
}

// Publish inserts a new catalog row. Republishing the same name for the same
// owner creates a second row on purpose: the catalog is a log of claims, not
// a deduplicated registry.
func (s *Service) Publish(ctx context.Context, ownerID, name, category, description, endpoint string, parameters map[string]interface{}) (domainskill.Skill, error) {
	if ownerID == "" {
		return domainskill.Skill{}, errs.Validationf("owner_agent_id is required")
	}
	if name == "" {
		return domainskill.Skill{}, errs.Validationf("skill_name is required")
	}

	created, err := s.repo.Insert(ctx, domainskill.New(ownerID, name, category, description, endpoint, parameters))
	if err != nil {
		return domainskill.Skill{}, fmt.Errorf("publish skill: %w", err)
	}

	if err := s.bus.Publish(ctx, event.New(event.TypeSkillPublished, strconv.FormatInt(created.ID, 10))); err != nil {
		slog.ErrorContext(ctx, "failed to publish SkillPublished event", "skill_id", created.ID, "error", err)
	}

	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domainskill.Skill, error) {
	sk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainskill.Skill{}, fmt.Errorf("get skill: %w", err)
	}
	return sk, nil
}

func (s *Service) List(ctx context.Context, filters domainskill.ListFilters) ([]domainskill.Skill, error) {
	skills, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

func (s *Service) ListRatings(ctx context.Context, skillID int64) ([]domainrating.Rating, error) {
	ratings, err := s.ratings.ListForSkill(ctx, skillID)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return ratings, nil
}

// Rate appends a rating and recomputes the derived means: the skill's rating
// over all of its ratings, and the owner's reputation over the ratings of
// every skill the owner owns. The recompute runs under a per-owner advisory
// lock so concurrent ratings of the same owner's skills cannot interleave
// their read-averages-then-write sequences.
func (s *Service) Rate(ctx context.Context, raterID string, skillID int64, value int, review string) error {
	if raterID == "" {
		return errs.Validationf("agent_id is required")
	}
	if !domainrating.Valid(value) {
		return errs.Validationf("rating must be between %d and %d", domainrating.Min, domainrating.Max)
	}

	sk, err := s.repo.GetByID(ctx, skillID)
	if err != nil {
		return fmt.Errorf("rate skill: %w", err)
	}

	err = s.locker.WithLock(ctx, ownerLockKey(sk.OwnerID), func(ctx context.Context) error {
		if _, err := s.ratings.Insert(ctx, domainrating.New(skillID, raterID, value, review)); err != nil {
			return fmt.Errorf("insert rating: %w", err)
		}

		skillAvg, err := s.ratings.AverageForSkill(ctx, skillID)
		if err != nil {
			return err
		}
		if err := s.repo.SetRating(ctx, skillID, skillAvg); err != nil {
			return err
		}

		ownerAvg, err := s.ratings.AverageForOwner(ctx, sk.OwnerID)
		if err != nil {
			return err
		}
		if err := s.agents.SetReputation(ctx, sk.OwnerID, ownerAvg); err != nil {
			// The owner reference is weak: the catalog row may outlive the
			// agent record, or the owner may never have registered.
			if errors.Is(err, errs.ErrNotFound) {
				slog.InfoContext(ctx, "skipping reputation update for unknown owner",
					"owner_agent_id", sk.OwnerID, "skill_id", skillID)
				return nil
			}
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("rate skill: %w", err)
	}

	if err := s.bus.Publish(ctx, event.New(event.TypeSkillRated, strconv.FormatInt(skillID, 10))); err != nil {
		slog.ErrorContext(ctx, "failed to publish SkillRated event", "skill_id", skillID, "error", err)
	}
	return nil
}

// ownerLockKey hashes the owner id into the advisory lock keyspace.
func ownerLockKey(ownerID string) int64 {
	h := fnv.New64a()
	h.Write([]byte("reputation:" + ownerID)) //nolint:errcheck
	return int64(h.Sum64())
}
