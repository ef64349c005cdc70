package repository

import (
	"context"
	"testing"

	"bethouse/domain/entities"
	"bethouse/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRepository_Record(t *testing.T) {
	t.Parallel()

	testDB := testutil.SetupTestDatabase(t)
	repo := NewTransactionRepository(testDB.DB)
	ctx := context.Background()

	t.Run("records entry with generated id", func(t *testing.T) {
		account := seedAccountWithWallet(t, testDB, "record@example.com")

		entry := &entities.Transaction{
			UserID: account.ID,
			Type:   entities.TransactionTypeDeposit,
			Amount: 100_00,
		}

		err := repo.Record(ctx, entry)
		require.NoError(t, err)

		assert.NotZero(t, entry.ID)
		assert.False(t, entry.CreatedAt.IsZero())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		account := seedAccountWithWallet(t, testDB, "zero-amount@example.com")

		entry := &entities.Transaction{
			UserID: account.ID,
			Type:   entities.TransactionTypeDeposit,
			Amount: 0,
		}

		err := repo.Record(ctx, entry)
		assert.Error(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		account := seedAccountWithWallet(t, testDB, "bad-type@example.com")

		entry := &entities.Transaction{
			UserID: account.ID,
			Type:   entities.TransactionType("refund"),
			Amount: 10_00,
		}

		err := repo.Record(ctx, entry)
		assert.Error(t, err)
	})
}

func TestTransactionRepository_GetByUser(t *testing.T) {
	t.Parallel()

	testDB := testutil.SetupTestDatabase(t)
	repo := NewTransactionRepository(testDB.DB)
	ctx := context.Background()

	account := seedAccountWithWallet(t, testDB, "statement@example.com")

	entries := []*entities.Transaction{
		{UserID: account.ID, Type: entities.TransactionTypeDeposit, Amount: 500_00},
		{UserID: account.ID, Type: entities.TransactionTypeBetStake, Amount: 50_00},
		{UserID: account.ID, Type: entities.TransactionTypePayout, Amount: 100_00},
	}
	for _, entry := range entries {
		require.NoError(t, repo.Record(ctx, entry))
	}

	t.Run("returns newest first", func(t *testing.T) {
		got, err := repo.GetByUser(ctx, account.ID, 10)
		require.NoError(t, err)
		require.Len(t, got, 3)

		assert.Equal(t, entities.TransactionTypePayout, got[0].Type)
		assert.Equal(t, entities.TransactionTypeBetStake, got[1].Type)
		assert.Equal(t, entities.TransactionTypeDeposit, got[2].Type)
	})

	t.Run("honors limit", func(t *testing.T) {
		got, err := repo.GetByUser(ctx, account.ID, 2)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("no entries for unknown user", func(t *testing.T) {
		got, err := repo.GetByUser(ctx, 999999, 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
