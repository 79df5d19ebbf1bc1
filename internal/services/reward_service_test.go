package services

import (
	"context"
	"testing"

	"blockday/internal/errors"
	"blockday/internal/repository/sqlite"
	"blockday/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRewardFixture(t *testing.T) (sqlite.Repository, RewardService, TaskService) {
	t.Helper()
	repo := newTestRepo(t)
	scoringService := NewScoringService(repo, scoring.Default())
	return repo, NewRewardService(repo, scoringService), NewTaskService(repo)
}

// completeSeedDay drives every seeded task to done: the two checklists
// by cycling, the staked task through partial then done.
func completeSeedDay(t *testing.T, tasks TaskService) {
	t.Helper()
	ctx := context.Background()
	_, err := tasks.CycleTask(ctx, seedMorningID)
	require.NoError(t, err)
	_, err = tasks.CycleTask(ctx, seedStakeID)
	require.NoError(t, err)
	_, err = tasks.CycleTask(ctx, seedStakeID)
	require.NoError(t, err)
	_, err = tasks.CycleTask(ctx, seedNightID)
	require.NoError(t, err)
}

func TestCreateReward(t *testing.T) {
	_, rewards, _ := newRewardFixture(t)

	created, err := rewards.CreateReward(context.Background(), "Long bath", 100, "🛁")

	require.NoError(t, err)
	assert.Greater(t, created.ID, int64(0))
	assert.Equal(t, 100, created.Cost)
	assert.Equal(t, 0, created.RedeemedCount)
}

func TestCreateReward_RejectsBadInput(t *testing.T) {
	_, rewards, _ := newRewardFixture(t)

	_, err := rewards.CreateReward(context.Background(), "", 100, "")
	require.Error(t, err)

	_, err = rewards.CreateReward(context.Background(), "Free lunch", 0, "")
	require.Error(t, err)
}

func TestRedeem_InsufficientBalanceLeavesStoresUntouched(t *testing.T) {
	repo, rewards, _ := newRewardFixture(t)
	ctx := context.Background()

	// Nothing done yet: every seeded task sits at todo, balance is zero
	created, err := rewards.CreateReward(ctx, "Movie night", 50, "")
	require.NoError(t, err)

	_, err = rewards.Redeem(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInsufficientBalance))

	stored, err := repo.GetReward(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.RedeemedCount)

	spent, err := repo.GetSpentXP(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, spent)
}

func TestRedeem_ChargesLedgerAndBumpsCount(t *testing.T) {
	repo, rewards, tasks := newRewardFixture(t)
	ctx := context.Background()

	completeSeedDay(t, tasks)

	// 75 + 120 + 120 raw, full adherence at 1.1, rounds to 347
	created, err := rewards.CreateReward(ctx, "Long bath", 100, "🛁")
	require.NoError(t, err)

	redeemed, err := rewards.Redeem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, redeemed.RedeemedCount)

	spent, err := repo.GetSpentXP(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, spent)

	scoringService := NewScoringService(repo, scoring.Default())
	score, err := scoringService.Evaluate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 347, score.Result.TotalXP)
	assert.Equal(t, 247, score.Balance)
}

func TestRedeem_RepeatedUntilBroke(t *testing.T) {
	_, rewards, tasks := newRewardFixture(t)
	ctx := context.Background()

	completeSeedDay(t, tasks)

	created, err := rewards.CreateReward(ctx, "Fancy coffee", 150, "☕")
	require.NoError(t, err)

	// 347 covers two redemptions, the third must bounce
	for i := 0; i < 2; i++ {
		_, err = rewards.Redeem(ctx, created.ID)
		require.NoError(t, err)
	}
	_, err = rewards.Redeem(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInsufficientBalance))
}

func TestRedeem_UnknownReward(t *testing.T) {
	_, rewards, _ := newRewardFixture(t)

	_, err := rewards.Redeem(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}
