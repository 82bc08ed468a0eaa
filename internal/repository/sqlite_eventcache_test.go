package repository_test

import (
	"context"
	"testing"

	"github.com/jornada-hq/jornada/internal/domain"
	"github.com/jornada-hq/jornada/internal/repository"
	"github.com/jornada-hq/jornada/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cachedEvent(id, userID, recordedAt string, kind domain.EventKind) domain.Event {
	return domain.Event{
		ID:         id,
		UserID:     userID,
		Kind:       string(kind),
		RecordedAt: recordedAt,
	}
}

func TestSQLiteEventCacheRepo_UpsertAndList(t *testing.T) {
	repo := repository.NewSQLiteEventCacheRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	err := repo.Upsert(ctx, []domain.Event{
		cachedEvent("2", "1", "2023-10-27 16:00:00", domain.KindClockOut),
		cachedEvent("1", "1", "2023-10-27 08:00:00", domain.KindClockIn),
	})
	require.NoError(t, err)

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Listed in recorded order, not insertion order.
	assert.Equal(t, "1", events[0].ID)
	assert.Equal(t, "2", events[1].ID)
	assert.Equal(t, "2023-10-27 08:00:00", events[0].RecordedAt)
}

func TestSQLiteEventCacheRepo_UpsertIsIdempotent(t *testing.T) {
	repo := repository.NewSQLiteEventCacheRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := cachedEvent("1", "1", "2023-10-27 08:00:00", domain.KindClockIn)
	require.NoError(t, repo.Upsert(ctx, []domain.Event{first}))

	updated := first
	updated.Note = "corregido"
	require.NoError(t, repo.Upsert(ctx, []domain.Event{updated}))

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "corregido", events[0].Note)
}

func TestSQLiteEventCacheRepo_UpsertEmpty(t *testing.T) {
	repo := repository.NewSQLiteEventCacheRepo(testutil.NewTestDB(t))
	assert.NoError(t, repo.Upsert(context.Background(), nil))
}

func TestSQLiteEventCacheRepo_ListByUser(t *testing.T) {
	repo := repository.NewSQLiteEventCacheRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	err := repo.Upsert(ctx, []domain.Event{
		cachedEvent("1", "1", "2023-10-27 08:00:00", domain.KindClockIn),
		cachedEvent("2", "2", "2023-10-27 09:00:00", domain.KindClockIn),
		cachedEvent("3", "1", "2023-10-27 16:00:00", domain.KindClockOut),
	})
	require.NoError(t, err)

	events, err := repo.ListByUser(ctx, "1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "1", events[0].ID)
	assert.Equal(t, "3", events[1].ID)
}

func TestSQLiteEventCacheRepo_Clear(t *testing.T) {
	repo := repository.NewSQLiteEventCacheRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	err := repo.Upsert(ctx, []domain.Event{
		cachedEvent("1", "1", "2023-10-27 08:00:00", domain.KindClockIn),
	})
	require.NoError(t, err)

	require.NoError(t, repo.Clear(ctx))

	events, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}
