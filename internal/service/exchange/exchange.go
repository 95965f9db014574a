package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	domainagent "github.com/alanyang/skillswap/internal/domain/agent"
	"github.com/alanyang/skillswap/internal/domain/errs"
	"github.com/alanyang/skillswap/internal/domain/event"
	domainrequest "github.com/alanyang/skillswap/internal/domain/request"
	domaintransfer "github.com/alanyang/skillswap/internal/domain/transfer"
	portagent "github.com/alanyang/skillswap/internal/port/agent"
	portcache "github.com/alanyang/skillswap/internal/port/cache"
	portbus "github.com/alanyang/skillswap/internal/port/eventbus"
	portexchange "github.com/alanyang/skillswap/internal/port/exchange"
	portrequest "github.com/alanyang/skillswap/internal/port/request"
	portskill "github.com/alanyang/skillswap/internal/port/skill"
	porttransfer "github.com/alanyang/skillswap/internal/port/transfer"
)

const (
	statsCacheKey = "exchange:stats"
	statsCacheTTL = 5 * time.Second
	topN          = 5
)

// Service records transfers and requests and serves the network aggregate.
type Service struct {
	agents    portagent.Repository
	skills    portskill.Repository
	transfers porttransfer.Repository
	requests  portrequest.Repository
	recorder  portexchange.Recorder
	cache     portcache.Cache
	bus       portbus.EventBus
}

func NewService(
	agents portagent.Repository,
	skills portskill.Repository,
	transfers porttransfer.Repository,
	requests portrequest.Repository,
	recorder portexchange.Recorder,
	cache portcache.Cache,
	bus portbus.EventBus,
) *Service {
	return &Service{
		agents:    agents,
		skills:    skills,
		transfers: transfers,
		requests:  requests,
		recorder:  recorder,
		cache:     cache,
		bus:       bus,
	}
}

// Request appends an open solicitation. No matching happens here: finding a
// provider is the requester's job via a discover call.
func (s *Service) Request(ctx context.Context, agentID, skillName string) (domainrequest.Request, error) {
	if agentID == "" {
		return domainrequest.Request{}, errs.Validationf("agent_id is required")
	}
	if skillName == "" {
		return domainrequest.Request{}, errs.Validationf("skill_name is required")
	}

	created, err := s.requests.Insert(ctx, domainrequest.New(agentID, skillName))
	if err != nil {
		return domainrequest.Request{}, fmt.Errorf("open request: %w", err)
	}

	if err := s.bus.Publish(ctx, event.New(event.TypeRequestOpened, strconv.FormatInt(created.ID, 10))); err != nil {
		slog.ErrorContext(ctx, "failed to publish RequestOpened event", "request_id", created.ID, "error", err)
	}

	return created, nil
}

// Share logs a completed transfer as one atomic unit: the catalog reference
// is resolved best-effort from the sharer's published skills, both agent
// counters move, the resolved skill's times_shared moves, and a referenced
// request is marked fulfilled.
func (s *Service) Share(ctx context.Context, fromAgentID, toAgentID, skillName string, requestID *int64) (domaintransfer.Transfer, error) {
	if fromAgentID == "" || toAgentID == "" || skillName == "" {
		return domaintransfer.Transfer{}, errs.Validationf("from_agent_id, to_agent_id and skill_name are required")
	}

	var skillID *int64
	resolved, err := s.skills.FindByNameAndOwner(ctx, skillName, fromAgentID)
	if err != nil {
		return domaintransfer.Transfer{}, fmt.Errorf("share skill: %w", err)
	}
	if resolved != nil {
		skillID = &resolved.ID
	}

	created, err := s.recorder.RecordShare(ctx, portexchange.ShareRecord{
		SkillID:     skillID,
		SkillName:   skillName,
		FromAgentID: fromAgentID,
		ToAgentID:   toAgentID,
		RequestID:   requestID,
	})
	if err != nil {
		return domaintransfer.Transfer{}, fmt.Errorf("share skill: %w", err)
	}

	if err := s.cache.Invalidate(ctx, statsCacheKey); err != nil {
		slog.ErrorContext(ctx, "failed to invalidate stats cache", "error", err)
	}

	if err := s.bus.Publish(ctx, event.New(event.TypeSkillShared, strconv.FormatInt(created.ID, 10))); err != nil {
		slog.ErrorContext(ctx, "failed to publish SkillShared event", "transfer_id", created.ID, "error", err)
	}
	if requestID != nil {
		if err := s.bus.Publish(ctx, event.New(event.TypeRequestFulfilled, strconv.FormatInt(*requestID, 10))); err != nil {
			slog.ErrorContext(ctx, "failed to publish RequestFulfilled event", "request_id", *requestID, "error", err)
		}
	}

	return created, nil
}

func (s *Service) GetRequest(ctx context.Context, id int64) (domainrequest.Request, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return domainrequest.Request{}, fmt.Errorf("get request: %w", err)
	}
	return req, nil
}

func (s *Service) OpenRequests(ctx context.Context, limit int) ([]domainrequest.Request, error) {
	requests, err := s.requests.ListOpen(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list open requests: %w", err)
	}
	return requests, nil
}

func (s *Service) RecentTransfers(ctx context.Context, limit int) ([]domaintransfer.Transfer, error) {
	transfers, err := s.transfers.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent transfers: %w", err)
	}
	return transfers, nil
}

type TopSkill struct {
	ID          int64   `json:"id"`
	Name        string  `json:"skill_name"`
	TimesShared int     `json:"times_shared"`
	Rating      float64 `json:"rating"`
}

type TopSharer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TotalShares int    `json:"total_shares"`
}

type Stats struct {
	Agents       int64       `json:"agents"`
	OnlineAgents int64       `json:"online_agents"`
	Skills       int64       `json:"skills"`
	Transfers    int64       `json:"transfers"`
	OpenRequests int64       `json:"open_requests"`
	TopSkills    []TopSkill  `json:"top_skills"`
	TopSharers   []TopSharer `json:"top_sharers"`
}

// Stats aggregates the network counters plus the top-5 boards. The result is
// cached briefly; shares invalidate the cache so the activity feed stays
// close to live.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	if cached, err := s.cache.Get(ctx, statsCacheKey); err == nil {
		var stats Stats
		if err := json.Unmarshal(cached, &stats); err == nil {
			return stats, nil
		}
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return Stats{}, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL); err != nil {
			slog.ErrorContext(ctx, "failed to cache stats", "error", err)
		}
	}

	return stats, nil
}

func (s *Service) computeStats(ctx context.Context) (Stats, error) {
	var stats Stats
	var err error

	if stats.Agents, err = s.agents.Count(ctx); err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}
	if stats.OnlineAgents, err = s.agents.CountByStatus(ctx, domainagent.StatusOnline); err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}
	if stats.Skills, err = s.skills.Count(ctx); err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}
	if stats.Transfers, err = s.transfers.Count(ctx); err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}
	if stats.OpenRequests, err = s.requests.CountOpen(ctx); err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}

	topSkills, err := s.skills.TopShared(ctx, topN)
	if err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}
	for _, sk := range topSkills {
		stats.TopSkills = append(stats.TopSkills, TopSkill{
			ID:          sk.ID,
			Name:        sk.Name,
			TimesShared: sk.TimesShared,
			Rating:      sk.Rating,
		})
	}

	topSharers, err := s.agents.TopSharers(ctx, topN)
	if err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}
	for _, a := range topSharers {
		stats.TopSharers = append(stats.TopSharers, TopSharer{
			ID:          a.ID,
			Name:        a.Name,
			TotalShares: a.TotalShares,
		})
	}

	return stats, nil
}
