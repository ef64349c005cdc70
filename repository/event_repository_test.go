package repository

import (
	"context"
	"testing"

	"bethouse/domain/entities"
	"bethouse/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEvent(t *testing.T, testDB *testutil.TestDatabase, event *entities.Event) *entities.Event {
	t.Helper()

	err := NewEventRepository(testDB.DB).Create(context.Background(), event)
	require.NoError(t, err)
	require.NotZero(t, event.ID)

	return event
}

func TestEventRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	testDB := testutil.SetupTestDatabase(t)
	repo := NewEventRepository(testDB.DB)
	ctx := context.Background()

	t.Run("event not found", func(t *testing.T) {
		event, err := repo.GetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, event)
	})

	t.Run("round trips all fields", func(t *testing.T) {
		created := seedEvent(t, testDB, testutil.CreateTestPendingEvent("Cup Final", "owner@example.com"))

		found, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)

		assert.Equal(t, created.Name, found.Name)
		assert.Equal(t, created.Description, found.Description)
		assert.Equal(t, "Lions", found.TeamA)
		assert.Equal(t, "Hawks", found.TeamB)
		assert.Equal(t, created.Category, found.Category)
		assert.Equal(t, created.OwnerEmail, found.OwnerEmail)
		assert.Equal(t, entities.EventStatusPending, found.Status)
		assert.True(t, created.StartsOn.Equal(found.StartsOn))
		assert.True(t, created.EndsOn.Equal(found.EndsOn))
	})

	t.Run("locked reads see the same row", func(t *testing.T) {
		created := seedEvent(t, testDB, testutil.CreateTestEvent("Locked Read", "owner@example.com"))

		shared, err := repo.GetForShare(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, shared)
		assert.Equal(t, created.ID, shared.ID)

		locked, err := repo.GetForUpdate(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, locked)
		assert.Equal(t, created.ID, locked.ID)
	})
}

func TestEventRepository_ListByStatus(t *testing.T) {
	t.Parallel()

	testDB := testutil.SetupTestDatabase(t)
	repo := NewEventRepository(testDB.DB)
	ctx := context.Background()

	seedEvent(t, testDB, testutil.CreateTestEvent("Approved One", "owner@example.com"))
	seedEvent(t, testDB, testutil.CreateTestEvent("Approved Two", "owner@example.com"))
	seedEvent(t, testDB, testutil.CreateTestPendingEvent("Still Pending", "owner@example.com"))

	approved, err := repo.ListByStatus(ctx, entities.EventStatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 2)
	for _, event := range approved {
		assert.Equal(t, entities.EventStatusApproved, event.Status)
	}

	pending, err := repo.ListByStatus(ctx, entities.EventStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Still Pending", pending[0].Name)

	rejected, err := repo.ListByStatus(ctx, entities.EventStatusRejected)
	require.NoError(t, err)
	assert.Empty(t, rejected)
}

func TestEventRepository_Search(t *testing.T) {
	t.Parallel()

	testDB := testutil.SetupTestDatabase(t)
	repo := NewEventRepository(testDB.DB)
	ctx := context.Background()

	final := testutil.CreateTestEvent("Championship Final", "owner@example.com")
	final.Description = "The decisive match"
	seedEvent(t, testDB, final)

	friendly := testutil.CreateTestEvent("Friendly", "owner@example.com")
	friendly.Description = "Warm-up before the championship"
	seedEvent(t, testDB, friendly)

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got, err := repo.Search(ctx, "FINAL")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Championship Final", got[0].Name)
	})

	t.Run("matches description", func(t *testing.T) {
		got, err := repo.Search(ctx, "championship")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("no matches", func(t *testing.T) {
		got, err := repo.Search(ctx, "basketball")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestEventRepository_UpdateStatus(t *testing.T) {
	t.Parallel()

	testDB := testutil.SetupTestDatabase(t)
	repo := NewEventRepository(testDB.DB)
	ctx := context.Background()

	t.Run("updates status", func(t *testing.T) {
		created := seedEvent(t, testDB, testutil.CreateTestPendingEvent("To Approve", "owner@example.com"))

		err := repo.UpdateStatus(ctx, created.ID, entities.EventStatusApproved)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, entities.EventStatusApproved, found.Status)
	})

	t.Run("event not found", func(t *testing.T) {
		err := repo.UpdateStatus(ctx, 999999, entities.EventStatusApproved)
		assert.Error(t, err)
	})
}

func TestEventRepository_Delete(t *testing.T) {
	t.Parallel()

	testDB := testutil.SetupTestDatabase(t)
	repo := NewEventRepository(testDB.DB)
	ctx := context.Background()

	t.Run("deletes event", func(t *testing.T) {
		created := seedEvent(t, testDB, testutil.CreateTestEvent("To Delete", "owner@example.com"))

		err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("event not found", func(t *testing.T) {
		err := repo.Delete(ctx, 999999)
		assert.Error(t, err)
	})
}
