//go:build integration

package exchange_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgagent "github.com/alanyang/skillswap/internal/adapter/postgres/agent"
	pgexchange "github.com/alanyang/skillswap/internal/adapter/postgres/exchange"
	pgrequest "github.com/alanyang/skillswap/internal/adapter/postgres/request"
	pgskill "github.com/alanyang/skillswap/internal/adapter/postgres/skill"
	pgtransfer "github.com/alanyang/skillswap/internal/adapter/postgres/transfer"
	domainagent "github.com/alanyang/skillswap/internal/domain/agent"
	domainrequest "github.com/alanyang/skillswap/internal/domain/request"
	domainskill "github.com/alanyang/skillswap/internal/domain/skill"
	domaintransfer "github.com/alanyang/skillswap/internal/domain/transfer"
	portexchange "github.com/alanyang/skillswap/internal/port/exchange"
	"github.com/alanyang/skillswap/internal/testutil"
)

func newID() string { return "it-" + uuid.NewString() }

func TestRecordShare_FullMutation(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	agentRepo := pgagent.New(pool)
	skillRepo := pgskill.New(pool)
	requestRepo := pgrequest.New(pool)
	transferRepo := pgtransfer.New(pool)
	recorder := pgexchange.New(pool)

	from, to := newID(), newID()
	_, err := agentRepo.Upsert(ctx, domainagent.New(from, "Sharer", "", nil))
	require.NoError(t, err)
	_, err = agentRepo.Upsert(ctx, domainagent.New(to, "Receiver", "", nil))
	require.NoError(t, err)

	sk, err := skillRepo.Insert(ctx, domainskill.New(from, "it-ocr", "vision", "", "", nil))
	require.NoError(t, err)

	req, err := requestRepo.Insert(ctx, domainrequest.New(to, "it-ocr"))
	require.NoError(t, err)

	created, err := recorder.RecordShare(ctx, portexchange.ShareRecord{
		SkillID:     &sk.ID,
		SkillName:   "it-ocr",
		FromAgentID: from,
		ToAgentID:   to,
		RequestID:   &req.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, domaintransfer.StatusCompleted, created.Status)
	require.NotNil(t, created.SkillID)
	assert.Equal(t, sk.ID, *created.SkillID)

	fromAgent, err := agentRepo.GetByID(ctx, from)
	require.NoError(t, err)
	assert.Equal(t, 1, fromAgent.TotalShares)
	assert.Equal(t, 0, fromAgent.TotalReceives)

	toAgent, err := agentRepo.GetByID(ctx, to)
	require.NoError(t, err)
	assert.Equal(t, 1, toAgent.TotalReceives)
	assert.Equal(t, 0, toAgent.TotalShares)

	gotSkill, err := skillRepo.GetByID(ctx, sk.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotSkill.TimesShared)

	gotReq, err := requestRepo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, domainrequest.StatusFulfilled, gotReq.Status)
	require.NotNil(t, gotReq.FulfilledBy)
	assert.Equal(t, from, *gotReq.FulfilledBy)
	assert.NotNil(t, gotReq.FulfilledAt)

	// The per-agent count in the transfer log agrees with the counter.
	n, err := transferRepo.CountFrom(ctx, from)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRecordShare_NoCatalogRowNoRequest(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	agentRepo := pgagent.New(pool)
	recorder := pgexchange.New(pool)

	from, to := newID(), newID()
	_, err := agentRepo.Upsert(ctx, domainagent.New(from, "", "", nil))
	require.NoError(t, err)
	_, err = agentRepo.Upsert(ctx, domainagent.New(to, "", "", nil))
	require.NoError(t, err)

	created, err := recorder.RecordShare(ctx, portexchange.ShareRecord{
		SkillName:   "it-folk-remedy",
		FromAgentID: from,
		ToAgentID:   to,
	})
	require.NoError(t, err)
	assert.Nil(t, created.SkillID)
	assert.Equal(t, "it-folk-remedy", created.SkillName)
}

func TestRecordShare_RefulfillOverwritesFulfiller(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	agentRepo := pgagent.New(pool)
	requestRepo := pgrequest.New(pool)
	recorder := pgexchange.New(pool)

	first, second, requester := newID(), newID(), newID()
	for _, id := range []string{first, second, requester} {
		_, err := agentRepo.Upsert(ctx, domainagent.New(id, "", "", nil))
		require.NoError(t, err)
	}

	req, err := requestRepo.Insert(ctx, domainrequest.New(requester, "it-summarize"))
	require.NoError(t, err)

	_, err = recorder.RecordShare(ctx, portexchange.ShareRecord{
		SkillName:   "it-summarize",
		FromAgentID: first,
		ToAgentID:   requester,
		RequestID:   &req.ID,
	})
	require.NoError(t, err)

	afterFirst, err := requestRepo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	require.NotNil(t, afterFirst.FulfilledBy)
	require.Equal(t, first, *afterFirst.FulfilledBy)

	// Fulfillment is not terminal: a later share against the same request
	// silently replaces the recorded fulfiller and timestamp.
	_, err = recorder.RecordShare(ctx, portexchange.ShareRecord{
		SkillName:   "it-summarize",
		FromAgentID: second,
		ToAgentID:   requester,
		RequestID:   &req.ID,
	})
	require.NoError(t, err)

	afterSecond, err := requestRepo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, domainrequest.StatusFulfilled, afterSecond.Status)
	require.NotNil(t, afterSecond.FulfilledBy)
	assert.Equal(t, second, *afterSecond.FulfilledBy)
	require.NotNil(t, afterSecond.FulfilledAt)
	assert.False(t, afterSecond.FulfilledAt.Before(*afterFirst.FulfilledAt))
}

func TestRecordShare_CountersAccumulate(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	agentRepo := pgagent.New(pool)
	recorder := pgexchange.New(pool)

	from, to := newID(), newID()
	_, err := agentRepo.Upsert(ctx, domainagent.New(from, "", "", nil))
	require.NoError(t, err)
	_, err = agentRepo.Upsert(ctx, domainagent.New(to, "", "", nil))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := recorder.RecordShare(ctx, portexchange.ShareRecord{
			SkillName:   "it-repeat",
			FromAgentID: from,
			ToAgentID:   to,
		})
		require.NoError(t, err)
	}

	fromAgent, err := agentRepo.GetByID(ctx, from)
	require.NoError(t, err)
	assert.Equal(t, 3, fromAgent.TotalShares)
}
