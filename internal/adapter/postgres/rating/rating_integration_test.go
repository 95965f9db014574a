//go:build integration

package rating_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgrating "github.com/alanyang/skillswap/internal/adapter/postgres/rating"
	pgskill "github.com/alanyang/skillswap/internal/adapter/postgres/skill"
	domainrating "github.com/alanyang/skillswap/internal/domain/rating"
	domainskill "github.com/alanyang/skillswap/internal/domain/skill"
	"github.com/alanyang/skillswap/internal/testutil"
)

func newID() string { return "it-" + uuid.NewString() }

func TestRatingRepo_AverageForSkill(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	skillRepo := pgskill.New(pool)
	ratingRepo := pgrating.New(pool)

	owner := newID()
	sk, err := skillRepo.Insert(ctx, domainskill.New(owner, "it-translate", "language", "", "", nil))
	require.NoError(t, err)

	_, err = ratingRepo.Insert(ctx, domainrating.New(sk.ID, newID(), 5, "great"))
	require.NoError(t, err)
	_, err = ratingRepo.Insert(ctx, domainrating.New(sk.ID, newID(), 3, ""))
	require.NoError(t, err)

	avg, err := ratingRepo.AverageForSkill(ctx, sk.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, avg, 0.001)

	ratings, err := ratingRepo.ListForSkill(ctx, sk.ID)
	require.NoError(t, err)
	assert.Len(t, ratings, 2)
}

func TestRatingRepo_AverageForSkillNoRatings(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	skillRepo := pgskill.New(pool)
	ratingRepo := pgrating.New(pool)

	sk, err := skillRepo.Insert(ctx, domainskill.New(newID(), "it-unrated", "other", "", "", nil))
	require.NoError(t, err)

	avg, err := ratingRepo.AverageForSkill(ctx, sk.ID)
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func TestRatingRepo_AverageForOwnerSpansSkills(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	skillRepo := pgskill.New(pool)
	ratingRepo := pgrating.New(pool)

	owner := newID()
	sk1, err := skillRepo.Insert(ctx, domainskill.New(owner, "it-a", "other", "", "", nil))
	require.NoError(t, err)
	sk2, err := skillRepo.Insert(ctx, domainskill.New(owner, "it-b", "other", "", "", nil))
	require.NoError(t, err)

	// 5 on one skill, 1 on the other: the owner mean covers both.
	_, err = ratingRepo.Insert(ctx, domainrating.New(sk1.ID, newID(), 5, ""))
	require.NoError(t, err)
	_, err = ratingRepo.Insert(ctx, domainrating.New(sk2.ID, newID(), 1, ""))
	require.NoError(t, err)

	avg, err := ratingRepo.AverageForOwner(ctx, owner)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, avg, 0.001)
}
