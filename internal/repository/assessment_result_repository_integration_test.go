package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/godilite/mbti-server/internal/repository"
	"github.com/godilite/mbti-server/internal/repository/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	repo := repository.NewAssessmentResultRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))

	return db
}

func sampleResult(id, userID string, completedAt time.Time) models.AssessmentResult {
	return models.AssessmentResult{
		ID:              id,
		SessionID:       "session-" + id,
		UserID:          userID,
		TypeCode:        "INFP",
		Scores:          models.DimensionValues{"E": 4, "I": 9, "S": 3, "N": 8, "T": 2, "F": 10, "J": 5, "P": 7},
		Percentages:     models.DimensionValues{"E": 20, "I": 45, "S": 15, "N": 40, "T": 10, "F": 50, "J": 25, "P": 35},
		Description:     "De Bemiddelaar",
		Strengths:       []string{"Empathisch", "Creatief"},
		Challenges:      []string{"Te idealistisch"},
		Recommendations: nil,
		CompletedAt:     completedAt,
	}
}

func TestAssessmentResultRepository_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	defer db.Close()

	repo := repository.NewAssessmentResultRepository(db)
	base := time.Date(2025, 10, 18, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveResult(ctx, sampleResult("r1", "alice", base)))
	require.NoError(t, repo.SaveResult(ctx, sampleResult("r2", "alice", base.Add(500*time.Millisecond))))
	require.NoError(t, repo.SaveResult(ctx, sampleResult("r3", "alice", base.Add(time.Hour))))
	require.NoError(t, repo.SaveResult(ctx, sampleResult("r4", "bob", base)))

	t.Run("EnsureSchema is idempotent", func(t *testing.T) {
		require.NoError(t, repo.EnsureSchema(ctx))
	})

	t.Run("GetResult round trips columns", func(t *testing.T) {
		got, err := repo.GetResult(ctx, "r1")
		require.NoError(t, err)

		want := sampleResult("r1", "alice", base)
		require.Equal(t, want.ID, got.ID)
		require.Equal(t, want.SessionID, got.SessionID)
		require.Equal(t, want.UserID, got.UserID)
		require.Equal(t, want.TypeCode, got.TypeCode)
		require.Equal(t, want.Scores, got.Scores)
		require.Equal(t, want.Percentages, got.Percentages)
		require.Equal(t, want.Strengths, got.Strengths)
		require.Equal(t, want.Challenges, got.Challenges)
		require.NotNil(t, got.Recommendations)
		require.Empty(t, got.Recommendations)
		require.True(t, want.CompletedAt.Equal(got.CompletedAt))
	})

	t.Run("GetResult missing id", func(t *testing.T) {
		_, err := repo.GetResult(ctx, "missing")
		require.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("SaveResult duplicate id fails", func(t *testing.T) {
		err := repo.SaveResult(ctx, sampleResult("r1", "alice", base))
		require.Error(t, err)
		require.Contains(t, err.Error(), "exec SaveResult")
	})

	t.Run("ListResultsByUser newest first", func(t *testing.T) {
		results, err := repo.ListResultsByUser(ctx, "alice", 10)
		require.NoError(t, err)
		require.Len(t, results, 3)
		require.Equal(t, "r3", results[0].ID)
		require.Equal(t, "r2", results[1].ID)
		require.Equal(t, "r1", results[2].ID)
	})

	t.Run("ListResultsByUser honours limit", func(t *testing.T) {
		results, err := repo.ListResultsByUser(ctx, "alice", 1)
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Equal(t, "r3", results[0].ID)
	})

	t.Run("ListResultsByUser unknown user", func(t *testing.T) {
		results, err := repo.ListResultsByUser(ctx, "nobody", 10)
		require.NoError(t, err)
		require.Empty(t, results)
	})
}
