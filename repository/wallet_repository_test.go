package repository

import (
	"context"
	"testing"

	"bethouse/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletRepository_Create(t *testing.T) {
	t.Parallel()

	testDB := testutil.SetupTestDatabase(t)
	repo := NewWalletRepository(testDB.DB)
	ctx := context.Background()

	t.Run("creates wallet with zero balance", func(t *testing.T) {
		account := seedAccount(t, testDB, "wallet-create@example.com")

		wallet, err := repo.Create(ctx, account.ID)
		require.NoError(t, err)
		require.NotNil(t, wallet)

		assert.Equal(t, account.ID, wallet.UserID)
		assert.Equal(t, int64(0), wallet.Balance)
		assert.False(t, wallet.CreatedAt.IsZero())
	})

	t.Run("rejects wallet without account", func(t *testing.T) {
		_, err := repo.Create(ctx, 999999)
		assert.Error(t, err)
	})
}

func TestWalletRepository_Get(t *testing.T) {
	t.Parallel()

	testDB := testutil.SetupTestDatabase(t)
	repo := NewWalletRepository(testDB.DB)
	ctx := context.Background()

	t.Run("wallet not found", func(t *testing.T) {
		wallet, err := repo.Get(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, wallet)
	})

	t.Run("wallet found", func(t *testing.T) {
		account := seedAccountWithWallet(t, testDB, "wallet-get@example.com")

		wallet, err := repo.Get(ctx, account.ID)
		require.NoError(t, err)
		require.NotNil(t, wallet)
		assert.Equal(t, account.ID, wallet.UserID)
		assert.Equal(t, int64(0), wallet.Balance)
	})

	t.Run("get for update not found", func(t *testing.T) {
		wallet, err := repo.GetForUpdate(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, wallet)
	})
}

func TestWalletRepository_UpdateBalance(t *testing.T) {
	t.Parallel()

	testDB := testutil.SetupTestDatabase(t)
	repo := NewWalletRepository(testDB.DB)
	ctx := context.Background()

	t.Run("updates balance", func(t *testing.T) {
		account := seedAccountWithWallet(t, testDB, "balance@example.com")

		err := repo.UpdateBalance(ctx, account.ID, 250_00)
		require.NoError(t, err)

		wallet, err := repo.Get(ctx, account.ID)
		require.NoError(t, err)
		require.NotNil(t, wallet)
		assert.Equal(t, int64(250_00), wallet.Balance)
	})

	t.Run("rejects negative balance", func(t *testing.T) {
		account := seedAccountWithWallet(t, testDB, "negative@example.com")

		err := repo.UpdateBalance(ctx, account.ID, -1)
		assert.Error(t, err)
	})

	t.Run("wallet not found", func(t *testing.T) {
		err := repo.UpdateBalance(ctx, 999999, 100_00)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestWalletRepository_GetManyForUpdate(t *testing.T) {
	t.Parallel()

	testDB := testutil.SetupTestDatabase(t)
	repo := NewWalletRepository(testDB.DB)
	ctx := context.Background()

	first := seedAccountWithWallet(t, testDB, "many-one@example.com")
	second := seedAccountWithWallet(t, testDB, "many-two@example.com")
	require.NoError(t, repo.UpdateBalance(ctx, second.ID, 75_00))

	t.Run("returns wallets keyed by user", func(t *testing.T) {
		uow := NewTestUnitOfWorkFactory(testDB.DB).CreateWithPublisher(nil)
		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		wallets, err := uow.WalletRepository().GetManyForUpdate(ctx, []int64{second.ID, first.ID})
		require.NoError(t, err)
		require.Len(t, wallets, 2)

		assert.Equal(t, int64(0), wallets[first.ID].Balance)
		assert.Equal(t, int64(75_00), wallets[second.ID].Balance)
	})

	t.Run("missing wallets are omitted", func(t *testing.T) {
		uow := NewTestUnitOfWorkFactory(testDB.DB).CreateWithPublisher(nil)
		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		wallets, err := uow.WalletRepository().GetManyForUpdate(ctx, []int64{first.ID, 999999})
		require.NoError(t, err)
		require.Len(t, wallets, 1)
		assert.Contains(t, wallets, first.ID)
	})

	t.Run("empty input returns empty map", func(t *testing.T) {
		wallets, err := repo.GetManyForUpdate(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, wallets)
	})
}
