package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"weightwise/internal/domain/repository"
	"weightwise/internal/infra/persistence/model"
)

func seedBusinessProfile(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()

	profile := &model.BusinessProfileModel{
		ID:       uuid.New(),
		OwnerID:  "merchant",
		Name:     name,
		Category: "restaurant",
		IsOpen:   true,
	}
	require.NoError(t, db.Create(profile).Error)

	return profile.ID
}

func seedRecommendation(t *testing.T, db *gorm.DB, userID string, businessID uuid.UUID, score float64, createdAt time.Time) uuid.UUID {
	t.Helper()

	rec := &model.RecommendationModel{
		ID:         uuid.New(),
		UserID:     userID,
		BusinessID: businessID,
		RecType:    "personalized",
		Score:      score,
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(rec).Error)

	return rec.ID
}

func TestRecommendationRepository_ListOrdersByScoreThenRecency(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecommendationRepository(db)
	ctx := context.Background()

	businessID := seedBusinessProfile(t, db, "Green Bowl")
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	lowID := seedRecommendation(t, db, "user-1", businessID, 0.40, base.Add(2*time.Hour))
	tieOldID := seedRecommendation(t, db, "user-1", businessID, 0.90, base)
	tieNewID := seedRecommendation(t, db, "user-1", businessID, 0.90, base.Add(time.Hour))
	seedRecommendation(t, db, "user-2", businessID, 0.99, base)

	recs, err := repo.ListByUser(ctx, "user-1", 0)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// Best score first; the newer row wins the tie.
	require.Equal(t, tieNewID, recs[0].ID)
	require.Equal(t, tieOldID, recs[1].ID)
	require.Equal(t, lowID, recs[2].ID)

	// Each row carries its joined business profile.
	for _, rec := range recs {
		require.NotNil(t, rec.Business)
		require.Equal(t, "Green Bowl", rec.Business.Name)
	}

	limited, err := repo.ListByUser(ctx, "user-1", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	require.Equal(t, tieNewID, limited[0].ID)
}

func TestRecommendationRepository_MarkViewed(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecommendationRepository(db)
	ctx := context.Background()

	businessID := seedBusinessProfile(t, db, "Green Bowl")
	recID := seedRecommendation(t, db, "user-1", businessID, 0.75, time.Now().UTC())

	require.NoError(t, repo.MarkViewed(ctx, recID, "user-1"))

	recs, err := repo.ListByUser(ctx, "user-1", 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.True(t, recs[0].Viewed)

	// Marking an already-viewed row is still a success.
	require.NoError(t, repo.MarkViewed(ctx, recID, "user-1"))
}

func TestRecommendationRepository_MarkViewedScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecommendationRepository(db)
	ctx := context.Background()

	businessID := seedBusinessProfile(t, db, "Green Bowl")
	recID := seedRecommendation(t, db, "user-1", businessID, 0.75, time.Now().UTC())

	err := repo.MarkViewed(ctx, recID, "someone-else")
	require.ErrorIs(t, err, repository.ErrRecommendationNotFound)

	err = repo.MarkViewed(ctx, uuid.New(), "user-1")
	require.ErrorIs(t, err, repository.ErrRecommendationNotFound)

	// The foreign attempt must not have flipped the flag.
	recs, err := repo.ListByUser(ctx, "user-1", 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.False(t, recs[0].Viewed)
}
