package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/godilite/mbti-server/internal/repository/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// completedAtLayout is fixed-width so that completed_at sorts lexically in time order.
const completedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

const schema = `
	CREATE TABLE IF NOT EXISTS assessment_results (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		user_id TEXT NOT NULL DEFAULT '',
		type_code TEXT NOT NULL,
		scores TEXT NOT NULL,
		percentages TEXT NOT NULL,
		description TEXT NOT NULL,
		strengths TEXT NOT NULL,
		challenges TEXT NOT NULL,
		recommendations TEXT NOT NULL,
		completed_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_assessment_results_user
		ON assessment_results (user_id, completed_at);
`

const resultColumns = `id, session_id, user_id, type_code, scores, percentages,
	description, strengths, challenges, recommendations, completed_at`

type AssessmentResultRepository struct {
	db *sql.DB
}

func NewAssessmentResultRepository(db *sql.DB) *AssessmentResultRepository {
	return &AssessmentResultRepository{db: db}
}

// EnsureSchema creates the results table and its index if they are missing.
func (r *AssessmentResultRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure assessment_results schema: %w", err)
	}
	return nil
}

// SaveResult inserts a completed assessment. Scores and text lists are stored as JSON.
func (r *AssessmentResultRepository) SaveResult(ctx context.Context, res models.AssessmentResult) error {
	const query = `
		INSERT INTO assessment_results (` + resultColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	encoded, err := encodeColumns(res)
	if err != nil {
		return fmt.Errorf("encode SaveResult: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		res.ID,
		res.SessionID,
		res.UserID,
		res.TypeCode,
		encoded.scores,
		encoded.percentages,
		res.Description,
		encoded.strengths,
		encoded.challenges,
		encoded.recommendations,
		res.CompletedAt.UTC().Format(completedAtLayout),
	)
	if err != nil {
		return fmt.Errorf("exec SaveResult: %w", err)
	}
	return nil
}

// GetResult fetches one result by id.
func (r *AssessmentResultRepository) GetResult(ctx context.Context, id string) (models.AssessmentResult, error) {
	const query = `SELECT ` + resultColumns + ` FROM assessment_results WHERE id = ?`

	res, err := scanResult(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AssessmentResult{}, ErrNotFound
		}
		return models.AssessmentResult{}, fmt.Errorf("query GetResult: %w", err)
	}
	return res, nil
}

// ListResultsByUser returns the newest results for userID, at most limit rows.
func (r *AssessmentResultRepository) ListResultsByUser(ctx context.Context, userID string, limit int) ([]models.AssessmentResult, error) {
	const query = `
		SELECT ` + resultColumns + `
		FROM assessment_results
		WHERE user_id = ?
		ORDER BY completed_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query ListResultsByUser: %w", err)
	}
	defer rows.Close()

	var results []models.AssessmentResult
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ListResultsByUser row: %w", err)
		}
		results = append(results, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListResultsByUser: %w", err)
	}
	return results, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

type encodedColumns struct {
	scores          string
	percentages     string
	strengths       string
	challenges      string
	recommendations string
}

func encodeColumns(res models.AssessmentResult) (encodedColumns, error) {
	var out encodedColumns
	fields := []struct {
		dst *string
		src any
	}{
		{&out.scores, res.Scores},
		{&out.percentages, res.Percentages},
		{&out.strengths, nonNil(res.Strengths)},
		{&out.challenges, nonNil(res.Challenges)},
		{&out.recommendations, nonNil(res.Recommendations)},
	}
	for _, f := range fields {
		b, err := json.Marshal(f.src)
		if err != nil {
			return encodedColumns{}, err
		}
		*f.dst = string(b)
	}
	return out, nil
}

func scanResult(row rowScanner) (models.AssessmentResult, error) {
	var (
		res         models.AssessmentResult
		enc         encodedColumns
		completedAt string
	)
	err := row.Scan(
		&res.ID,
		&res.SessionID,
		&res.UserID,
		&res.TypeCode,
		&enc.scores,
		&enc.percentages,
		&res.Description,
		&enc.strengths,
		&enc.challenges,
		&enc.recommendations,
		&completedAt,
	)
	if err != nil {
		return models.AssessmentResult{}, err
	}

	decode := []struct {
		src string
		dst any
	}{
		{enc.scores, &res.Scores},
		{enc.percentages, &res.Percentages},
		{enc.strengths, &res.Strengths},
		{enc.challenges, &res.Challenges},
		{enc.recommendations, &res.Recommendations},
	}
	for _, d := range decode {
		if err := json.Unmarshal([]byte(d.src), d.dst); err != nil {
			return models.AssessmentResult{}, fmt.Errorf("decode column: %w", err)
		}
	}

	res.CompletedAt, err = time.Parse(completedAtLayout, completedAt)
	if err != nil {
		return models.AssessmentResult{}, fmt.Errorf("parse completed_at: %w", err)
	}
	return res, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
