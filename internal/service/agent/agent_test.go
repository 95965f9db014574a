package agent_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainagent "github.com/alanyang/skillswap/internal/domain/agent"
	"github.com/alanyang/skillswap/internal/domain/errs"
	"github.com/alanyang/skillswap/internal/domain/event"
	"github.com/alanyang/skillswap/internal/mocks"
	agentsvc "github.com/alanyang/skillswap/internal/service/agent"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newAgentSvc(t *testing.T) (*agentsvc.Service, *mocks.MockAgentRepository, *mocks.MockEventBus) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAgentRepository(ctrl)
	bus := mocks.NewMockEventBus(ctrl)
	svc := agentsvc.NewService(repo, bus)
	return svc, repo, bus
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

// ── Register ──────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		agentName string
		skills  []string
		setup   func(repo *mocks.MockAgentRepository, bus *mocks.MockEventBus)
		wantErr bool
		wantMsg string
	}{
		{
			name:      "success publishes online event",
			id:        "agent-7",
			agentName: "Summarizer",
			skills:    []string{"summarization"},
			setup: func(repo *mocks.MockAgentRepository, bus *mocks.MockEventBus) {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a domainagent.Agent) (domainagent.Agent, error) {
						return a, nil
					})
				bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeAgentOnline)).Return(nil)
			},
		},
		{
			name:    "missing agent_id is a validation error",
			id:      "",
			setup:   func(repo *mocks.MockAgentRepository, bus *mocks.MockEventBus) {},
			wantErr: true,
			wantMsg: "agent_id is required",
		},
		{
			// nil skill list is normalized so the stored array is never NULL.
			name: "nil skills become empty slice",
			id:   "agent-8",
			setup: func(repo *mocks.MockAgentRepository, bus *mocks.MockEventBus) {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a domainagent.Agent) (domainagent.Agent, error) {
						assert.NotNil(t, a.Skills)
						assert.Empty(t, a.Skills)
						return a, nil
					})
				bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "repo error",
			id:   "agent-9",
			setup: func(repo *mocks.MockAgentRepository, bus *mocks.MockEventBus) {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(domainagent.Agent{}, errors.New("db error"))
			},
			wantErr: true,
			wantMsg: "register agent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, bus := newAgentSvc(t)
			tt.setup(repo, bus)

			got, err := svc.Register(context.Background(), tt.id, tt.agentName, "", tt.skills)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, got.ID)
			assert.Equal(t, domainagent.StatusOnline, got.Status)
		})
	}
}

func TestRegisterDefaultsName(t *testing.T) {
	svc, repo, bus := newAgentSvc(t)

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a domainagent.Agent) (domainagent.Agent, error) {
			return a, nil
		})
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Register(context.Background(), "abcdef1234567890", "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Agent-abcdef12", got.Name)
}

// ── Deregister ────────────────────────────────────────────────────────────────

func TestDeregister(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		setup   func(repo *mocks.MockAgentRepository, bus *mocks.MockEventBus)
		wantErr bool
	}{
		{
			name: "known agent goes offline and event fires",
			id:   "agent-7",
			setup: func(repo *mocks.MockAgentRepository, bus *mocks.MockEventBus) {
				repo.EXPECT().SetStatus(gomock.Any(), "agent-7", domainagent.StatusOffline).Return(true, nil)
				bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeAgentOffline)).Return(nil)
			},
		},
		{
			// Unknown ids are tolerated; no offline event is published.
			name: "unknown agent is a silent no-op",
			id:   "ghost",
			setup: func(repo *mocks.MockAgentRepository, bus *mocks.MockEventBus) {
				repo.EXPECT().SetStatus(gomock.Any(), "ghost", domainagent.StatusOffline).Return(false, nil)
			},
		},
		{
			name:    "missing agent_id is a validation error",
			id:      "",
			setup:   func(repo *mocks.MockAgentRepository, bus *mocks.MockEventBus) {},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, bus := newAgentSvc(t)
			tt.setup(repo, bus)

			err := svc.Deregister(context.Background(), tt.id)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.IsValidation(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

// ── Discover ──────────────────────────────────────────────────────────────────

func TestDiscover(t *testing.T) {
	online := []domainagent.Agent{
		{ID: "a1", Name: "Alpha", Skills: []string{"Translation", "summarization"}, Reputation: 8.2},
		{ID: "a2", Name: "Beta", Skills: []string{"smart-home"}, Reputation: 6.0},
		{ID: "a3", Name: "Gamma", Skills: []string{"translation"}, Reputation: 5.0},
	}

	t.Run("exact case-insensitive match, one entry per tag", func(t *testing.T) {
		svc, repo, _ := newAgentSvc(t)
		repo.EXPECT().ListOnline(gomock.Any()).Return(online, nil)

		matches, err := svc.Discover(context.Background(), []string{"translation"}, "")
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "a1", matches[0].AgentID)
		assert.Equal(t, "a3", matches[1].AgentID)
		assert.Equal(t, "translation", matches[0].Skill)
	})

	t.Run("no substring matching", func(t *testing.T) {
		svc, repo, _ := newAgentSvc(t)
		repo.EXPECT().ListOnline(gomock.Any()).Return(online, nil)

		// "art" must not match "smart-home".
		matches, err := svc.Discover(context.Background(), []string{"art"}, "")
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("requester is excluded", func(t *testing.T) {
		svc, repo, _ := newAgentSvc(t)
		repo.EXPECT().ListOnline(gomock.Any()).Return(online, nil)

		matches, err := svc.Discover(context.Background(), []string{"translation"}, "a1")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "a3", matches[0].AgentID)
	})

	t.Run("agent matching several tags appears once per tag", func(t *testing.T) {
		svc, repo, _ := newAgentSvc(t)
		repo.EXPECT().ListOnline(gomock.Any()).Return(online, nil)

		matches, err := svc.Discover(context.Background(), []string{"translation", "summarization"}, "")
		require.NoError(t, err)
		require.Len(t, matches, 3)
		assert.Equal(t, "translation", matches[0].Skill)
		assert.Equal(t, "translation", matches[1].Skill)
		assert.Equal(t, "summarization", matches[2].Skill)
		assert.Equal(t, "a1", matches[2].AgentID)
	})

	t.Run("empty tag list is a validation error", func(t *testing.T) {
		svc, _, _ := newAgentSvc(t)

		_, err := svc.Discover(context.Background(), nil, "")
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})
}
