package exchange_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainagent "github.com/alanyang/skillswap/internal/domain/agent"
	"github.com/alanyang/skillswap/internal/domain/errs"
	"github.com/alanyang/skillswap/internal/domain/event"
	domainrequest "github.com/alanyang/skillswap/internal/domain/request"
	domainskill "github.com/alanyang/skillswap/internal/domain/skill"
	domaintransfer "github.com/alanyang/skillswap/internal/domain/transfer"
	"github.com/alanyang/skillswap/internal/mocks"
	portexchange "github.com/alanyang/skillswap/internal/port/exchange"
	exchangesvc "github.com/alanyang/skillswap/internal/service/exchange"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type exchangeSvcMocks struct {
	agents    *mocks.MockAgentRepository
	skills    *mocks.MockSkillRepository
	transfers *mocks.MockTransferRepository
	requests  *mocks.MockRequestRepository
	recorder  *mocks.MockShareRecorder
	cache     *mocks.MockCache
	bus       *mocks.MockEventBus
}

func newExchangeSvc(t *testing.T) (*exchangesvc.Service, *exchangeSvcMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &exchangeSvcMocks{
		agents:    mocks.NewMockAgentRepository(ctrl),
		skills:    mocks.NewMockSkillRepository(ctrl),
		transfers: mocks.NewMockTransferRepository(ctrl),
		requests:  mocks.NewMockRequestRepository(ctrl),
		recorder:  mocks.NewMockShareRecorder(ctrl),
		cache:     mocks.NewMockCache(ctrl),
		bus:       mocks.NewMockEventBus(ctrl),
	}
	svc := exchangesvc.NewService(m.agents, m.skills, m.transfers, m.requests, m.recorder, m.cache, m.bus)
	return svc, m
}

func matchEventType(et event.Type) gomock.Matcher {
	return eventTypeMatcher{et}
}

type eventTypeMatcher struct{ want event.Type }

func (m eventTypeMatcher) Matches(x interface{}) bool {
	e, ok := x.(event.Event)
	return ok && e.Type == m.want
}
func (m eventTypeMatcher) String() string { return "event.Type=" + string(m.want) }

// ── Request ───────────────────────────────────────────────────────────────────

func TestRequest(t *testing.T) {
	tests := []struct {
		name      string
		agentID   string
		skillName string
		setup     func(m *exchangeSvcMocks)
		wantErr   bool
	}{
		{
			name:      "success opens request and publishes event",
			agentID:   "agent-1",
			skillName: "ocr",
			setup: func(m *exchangeSvcMocks) {
				m.requests.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r domainrequest.Request) (domainrequest.Request, error) {
						assert.Equal(t, domainrequest.StatusOpen, r.Status)
						r.ID = 11
						return r, nil
					})
				m.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeRequestOpened)).Return(nil)
			},
		},
		{
			name:      "missing agent_id",
			agentID:   "",
			skillName: "ocr",
			setup:     func(m *exchangeSvcMocks) {},
			wantErr:   true,
		},
		{
			name:      "missing skill_name",
			agentID:   "agent-1",
			skillName: "",
			setup:     func(m *exchangeSvcMocks) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newExchangeSvc(t)
			tt.setup(m)

			got, err := svc.Request(context.Background(), tt.agentID, tt.skillName)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(11), got.ID)
			assert.Equal(t, domainrequest.StatusOpen, got.Status)
		})
	}
}

// ── Share ─────────────────────────────────────────────────────────────────────

func TestShareValidation(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		sk   string
	}{
		{name: "missing from", from: "", to: "b", sk: "ocr"},
		{name: "missing to", from: "a", to: "", sk: "ocr"},
		{name: "missing skill", from: "a", to: "b", sk: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newExchangeSvc(t)

			_, err := svc.Share(context.Background(), tt.from, tt.to, tt.sk, nil)
			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
		})
	}
}

func TestShareResolvesCatalogReference(t *testing.T) {
	svc, m := newExchangeSvc(t)

	resolved := &domainskill.Skill{ID: 42, Name: "ocr", OwnerID: "a"}
	m.skills.EXPECT().FindByNameAndOwner(gomock.Any(), "ocr", "a").Return(resolved, nil)

	m.recorder.EXPECT().RecordShare(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec portexchange.ShareRecord) (domaintransfer.Transfer, error) {
			require.NotNil(t, rec.SkillID)
			assert.Equal(t, int64(42), *rec.SkillID)
			assert.Equal(t, "ocr", rec.SkillName)
			assert.Nil(t, rec.RequestID)
			return domaintransfer.Transfer{ID: 1, SkillID: rec.SkillID, SkillName: rec.SkillName}, nil
		})

	m.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(nil)
	m.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeSkillShared)).Return(nil)

	got, err := svc.Share(context.Background(), "a", "b", "ocr", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestShareWithoutCatalogEntry(t *testing.T) {
	svc, m := newExchangeSvc(t)

	// No catalog row for the sharer: the transfer still goes through with the
	// bare skill name.
	m.skills.EXPECT().FindByNameAndOwner(gomock.Any(), "folk-remedy", "a").Return(nil, nil)

	m.recorder.EXPECT().RecordShare(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec portexchange.ShareRecord) (domaintransfer.Transfer, error) {
			assert.Nil(t, rec.SkillID)
			return domaintransfer.Transfer{ID: 2, SkillName: rec.SkillName}, nil
		})

	m.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(nil)
	m.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeSkillShared)).Return(nil)

	got, err := svc.Share(context.Background(), "a", "b", "folk-remedy", nil)
	require.NoError(t, err)
	assert.Nil(t, got.SkillID)
}

func TestShareFulfillsRequest(t *testing.T) {
	svc, m := newExchangeSvc(t)
	reqID := int64(9)

	m.skills.EXPECT().FindByNameAndOwner(gomock.Any(), "ocr", "a").Return(nil, nil)
	m.recorder.EXPECT().RecordShare(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec portexchange.ShareRecord) (domaintransfer.Transfer, error) {
			require.NotNil(t, rec.RequestID)
			assert.Equal(t, reqID, *rec.RequestID)
			return domaintransfer.Transfer{ID: 3}, nil
		})
	m.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(nil)
	m.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeSkillShared)).Return(nil)
	m.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeRequestFulfilled)).Return(nil)

	_, err := svc.Share(context.Background(), "a", "b", "ocr", &reqID)
	require.NoError(t, err)
}

func TestShareRecorderError(t *testing.T) {
	svc, m := newExchangeSvc(t)

	m.skills.EXPECT().FindByNameAndOwner(gomock.Any(), "ocr", "a").Return(nil, nil)
	m.recorder.EXPECT().RecordShare(gomock.Any(), gomock.Any()).Return(domaintransfer.Transfer{}, errors.New("tx failed"))

	_, err := svc.Share(context.Background(), "a", "b", "ocr", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "share skill")
}

// ── Stats ─────────────────────────────────────────────────────────────────────

func expectComputeStats(m *exchangeSvcMocks) {
	m.agents.EXPECT().Count(gomock.Any()).Return(int64(10), nil)
	m.agents.EXPECT().CountByStatus(gomock.Any(), domainagent.StatusOnline).Return(int64(4), nil)
	m.skills.EXPECT().Count(gomock.Any()).Return(int64(6), nil)
	m.transfers.EXPECT().Count(gomock.Any()).Return(int64(20), nil)
	m.requests.EXPECT().CountOpen(gomock.Any()).Return(int64(2), nil)
	m.skills.EXPECT().TopShared(gomock.Any(), 5).Return([]domainskill.Skill{
		{ID: 1, Name: "ocr", TimesShared: 9, Rating: 4.5},
	}, nil)
	m.agents.EXPECT().TopSharers(gomock.Any(), 5).Return([]domainagent.Agent{
		{ID: "a1", Name: "Alpha", TotalShares: 9},
	}, nil)
}

func TestStatsComputesOnCacheMiss(t *testing.T) {
	svc, m := newExchangeSvc(t)

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("miss"))
	expectComputeStats(m)
	m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Agents)
	assert.Equal(t, int64(4), stats.OnlineAgents)
	assert.Equal(t, int64(20), stats.Transfers)
	require.Len(t, stats.TopSkills, 1)
	assert.Equal(t, "ocr", stats.TopSkills[0].Name)
	require.Len(t, stats.TopSharers, 1)
	assert.Equal(t, "a1", stats.TopSharers[0].ID)
}

func TestStatsServedFromCache(t *testing.T) {
	svc, m := newExchangeSvc(t)

	cached := exchangesvc.Stats{Agents: 99, Transfers: 7}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	// No repository expectations: a cache hit must not touch the store.
	m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(payload, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(99), stats.Agents)
	assert.Equal(t, int64(7), stats.Transfers)
}

func TestStatsCorruptCacheFallsThrough(t *testing.T) {
	svc, m := newExchangeSvc(t)

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return([]byte("{not json"), nil)
	expectComputeStats(m)
	m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Agents)
}
