package service

import (
	"context"

	"github.com/godilite/mbti-server/internal/repository/models"
)

// ResultRepository defines the persistence operations the service needs for completed assessments.
type ResultRepository interface {
	SaveResult(ctx context.Context, res models.AssessmentResult) error
	GetResult(ctx context.Context, id string) (models.AssessmentResult, error)
	ListResultsByUser(ctx context.Context, userID string, limit int) ([]models.AssessmentResult, error)
}
