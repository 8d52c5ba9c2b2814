package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/mbti-server/internal/repository/models"
)

func TestAssessmentResultRepository_DriverErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("SaveResult wraps exec error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("INSERT INTO assessment_results").
			WillReturnError(errors.New("disk I/O error"))

		repo := NewAssessmentResultRepository(db)
		err = repo.SaveResult(ctx, models.AssessmentResult{ID: "r1", CompletedAt: time.Now()})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "exec SaveResult")
		assert.Contains(t, err.Error(), "disk I/O error")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetResult wraps query error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM assessment_results WHERE id").
			WithArgs("r1").
			WillReturnError(errors.New("database is locked"))

		repo := NewAssessmentResultRepository(db)
		_, err = repo.GetResult(ctx, "r1")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "query GetResult")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetResult rejects corrupt JSON column", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{
			"id", "session_id", "user_id", "type_code", "scores", "percentages",
			"description", "strengths", "challenges", "recommendations", "completed_at",
		}).AddRow("r1", "s1", "", "INFP", "{not json", "{}", "d", "[]", "[]", "[]",
			"2025-10-18T10:00:00.000000000Z")
		mock.ExpectQuery("SELECT (.+) FROM assessment_results").WillReturnRows(rows)

		repo := NewAssessmentResultRepository(db)
		_, err = repo.GetResult(ctx, "r1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "decode column")
	})

	t.Run("ListResultsByUser wraps query error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM assessment_results").
			WithArgs("alice", 5).
			WillReturnError(errors.New("connection reset"))

		repo := NewAssessmentResultRepository(db)
		results, err := repo.ListResultsByUser(ctx, "alice", 5)

		assert.Nil(t, results)
		assert.Contains(t, err.Error(), "query ListResultsByUser")
	})
}

func TestCompletedAtLayoutSortsLexically(t *testing.T) {
	a := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC).Format(completedAtLayout)
	b := time.Date(2025, 1, 1, 12, 0, 0, 500_000_000, time.UTC).Format(completedAtLayout)
	assert.Less(t, a, b)
	assert.Len(t, a, len(b))
}
