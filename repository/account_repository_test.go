package repository

import (
	"context"
	"testing"

	"bethouse/domain/entities"
	"bethouse/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedAccount inserts an account and returns it with its generated ID
func seedAccount(t *testing.T, testDB *testutil.TestDatabase, email string) *entities.Account {
	t.Helper()

	account := testutil.CreateTestAccount("Test User", email)
	err := NewAccountRepository(testDB.DB).Create(context.Background(), account)
	require.NoError(t, err)
	require.NotZero(t, account.ID)

	return account
}

// seedAccountWithWallet inserts an account together with its zero-balance wallet
func seedAccountWithWallet(t *testing.T, testDB *testutil.TestDatabase, email string) *entities.Account {
	t.Helper()

	account := seedAccount(t, testDB, email)
	_, err := NewWalletRepository(testDB.DB).Create(context.Background(), account.ID)
	require.NoError(t, err)

	return account
}

func TestAccountRepository_Create(t *testing.T) {
	t.Parallel()

	testDB := testutil.SetupTestDatabase(t)
	repo := NewAccountRepository(testDB.DB)
	ctx := context.Background()

	t.Run("creates account with generated id", func(t *testing.T) {
		account := testutil.CreateTestAccount("Maria Silva", "maria@example.com")

		err := repo.Create(ctx, account)
		require.NoError(t, err)

		assert.NotZero(t, account.ID)
		assert.False(t, account.CreatedAt.IsZero())
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		first := testutil.CreateTestAccount("First", "dup@example.com")
		require.NoError(t, repo.Create(ctx, first))

		second := testutil.CreateTestAccount("Second", "dup@example.com")
		err := repo.Create(ctx, second)
		assert.Error(t, err)
	})

	t.Run("persists moderator role", func(t *testing.T) {
		moderator := testutil.CreateTestModerator("Mod", "mod@example.com")
		require.NoError(t, repo.Create(ctx, moderator))

		found, err := repo.GetByID(ctx, moderator.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, entities.RoleModerator, found.Role)
		assert.True(t, found.IsModerator())
	})
}

func TestAccountRepository_Get(t *testing.T) {
	t.Parallel()

	testDB := testutil.SetupTestDatabase(t)
	repo := NewAccountRepository(testDB.DB)
	ctx := context.Background()

	t.Run("account not found by id", func(t *testing.T) {
		account, err := repo.GetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("account not found by email", func(t *testing.T) {
		account, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("account found by email", func(t *testing.T) {
		created := seedAccount(t, testDB, "found@example.com")

		found, err := repo.GetByEmail(ctx, "found@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)

		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, created.Name, found.Name)
		assert.Equal(t, entities.RoleUser, found.Role)
	})
}
