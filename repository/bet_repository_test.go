package repository

import (
	"context"
	"testing"

	"bethouse/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetRepository_Create(t *testing.T) {
	t.Parallel()

	testDB := testutil.SetupTestDatabase(t)
	repo := NewBetRepository(testDB.DB)
	ctx := context.Background()

	account := seedAccountWithWallet(t, testDB, "bettor@example.com")
	event := seedEvent(t, testDB, testutil.CreateTestEvent("Derby", "owner@example.com"))

	t.Run("creates bet with generated id", func(t *testing.T) {
		bet := testutil.CreateTestBet(account.ID, event.ID, 25_00, "Lions")

		err := repo.Create(ctx, bet)
		require.NoError(t, err)

		assert.NotZero(t, bet.ID)
		assert.False(t, bet.CreatedAt.IsZero())
	})

	t.Run("rejects bet on missing event", func(t *testing.T) {
		bet := testutil.CreateTestBet(account.ID, 999999, 25_00, "Lions")

		err := repo.Create(ctx, bet)
		assert.Error(t, err)
	})
}

func TestBetRepository_GetByEvent(t *testing.T) {
	t.Parallel()

	testDB := testutil.SetupTestDatabase(t)
	repo := NewBetRepository(testDB.DB)
	ctx := context.Background()

	first := seedAccountWithWallet(t, testDB, "bettor-one@example.com")
	second := seedAccountWithWallet(t, testDB, "bettor-two@example.com")
	event := seedEvent(t, testDB, testutil.CreateTestEvent("Semifinal", "owner@example.com"))
	other := seedEvent(t, testDB, testutil.CreateTestEvent("Other Match", "owner@example.com"))

	require.NoError(t, repo.Create(ctx, testutil.CreateTestBet(first.ID, event.ID, 10_00, "Lions")))
	require.NoError(t, repo.Create(ctx, testutil.CreateTestBet(second.ID, event.ID, 20_00, "Hawks")))
	require.NoError(t, repo.Create(ctx, testutil.CreateTestBet(first.ID, other.ID, 5_00, "Lions")))

	t.Run("returns only the event's bets", func(t *testing.T) {
		bets, err := repo.GetByEvent(ctx, event.ID)
		require.NoError(t, err)
		require.Len(t, bets, 2)

		for _, bet := range bets {
			assert.Equal(t, event.ID, bet.EventID)
		}
	})

	t.Run("counts bets", func(t *testing.T) {
		count, err := repo.CountByEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		count, err = repo.CountByEvent(ctx, 999999)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("no bets for unknown event", func(t *testing.T) {
		bets, err := repo.GetByEvent(ctx, 999999)
		require.NoError(t, err)
		assert.Empty(t, bets)
	})
}

func TestBetRepository_DeleteByEvent(t *testing.T) {
	t.Parallel()

	testDB := testutil.SetupTestDatabase(t)
	repo := NewBetRepository(testDB.DB)
	ctx := context.Background()

	account := seedAccountWithWallet(t, testDB, "cleanup@example.com")
	event := seedEvent(t, testDB, testutil.CreateTestEvent("Settled Match", "owner@example.com"))
	kept := seedEvent(t, testDB, testutil.CreateTestEvent("Open Match", "owner@example.com"))

	require.NoError(t, repo.Create(ctx, testutil.CreateTestBet(account.ID, event.ID, 10_00, "Lions")))
	require.NoError(t, repo.Create(ctx, testutil.CreateTestBet(account.ID, event.ID, 15_00, "Hawks")))
	require.NoError(t, repo.Create(ctx, testutil.CreateTestBet(account.ID, kept.ID, 5_00, "Lions")))

	err := repo.DeleteByEvent(ctx, event.ID)
	require.NoError(t, err)

	count, err := repo.CountByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = repo.CountByEvent(ctx, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
