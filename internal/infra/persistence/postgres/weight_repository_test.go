package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"weightwise/internal/domain/entity"
	"weightwise/internal/domain/repository"
)

func newWeightEntry(userID string, recordedAt time.Time) *entity.WeightEntry {
	return &entity.WeightEntry{
		ID:         uuid.New(),
		UserID:     userID,
		Weight:     "176.40",
		Unit:       "lbs",
		EntryType:  entity.EntryTypeManual,
		RecordedAt: recordedAt,
	}
}

func TestWeightRepository_DeleteScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewWeightRepository(db)
	ctx := context.Background()

	entry := newWeightEntry("owner", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, entry))

	// Another user's delete must not touch the row.
	err := repo.DeleteByIDAndUser(ctx, entry.ID, "intruder")
	require.ErrorIs(t, err, repository.ErrWeightEntryNotFound)

	found, err := repo.FindByIDAndUser(ctx, entry.ID, "owner")
	require.NoError(t, err)
	require.Equal(t, entry.ID, found.ID)

	// The owner's delete removes it, and a repeat delete reports not found.
	require.NoError(t, repo.DeleteByIDAndUser(ctx, entry.ID, "owner"))

	_, err = repo.FindByIDAndUser(ctx, entry.ID, "owner")
	require.ErrorIs(t, err, repository.ErrWeightEntryNotFound)

	err = repo.DeleteByIDAndUser(ctx, entry.ID, "owner")
	require.ErrorIs(t, err, repository.ErrWeightEntryNotFound)
}

func TestWeightRepository_FindScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewWeightRepository(db)
	ctx := context.Background()

	entry := newWeightEntry("owner", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, entry))

	_, err := repo.FindByIDAndUser(ctx, entry.ID, "intruder")
	require.ErrorIs(t, err, repository.ErrWeightEntryNotFound)
}

func TestWeightRepository_ListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewWeightRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	// Inserted out of order on purpose; the listing sorts by recorded_at.
	middle := newWeightEntry("owner", base.Add(24*time.Hour))
	oldest := newWeightEntry("owner", base)
	newest := newWeightEntry("owner", base.Add(48*time.Hour))
	other := newWeightEntry("someone-else", base.Add(72*time.Hour))

	for _, e := range []*entity.WeightEntry{middle, oldest, newest, other} {
		require.NoError(t, repo.Create(ctx, e))
	}

	entries, err := repo.ListByUser(ctx, "owner", 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, newest.ID, entries[0].ID)
	require.Equal(t, middle.ID, entries[1].ID)
	require.Equal(t, oldest.ID, entries[2].ID)

	limited, err := repo.ListByUser(ctx, "owner", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	require.Equal(t, newest.ID, limited[0].ID)
}
