package mocks

import (
	"context"
	"errors"

	"github.com/godilite/mbti-server/internal/repository/models"
)

// MockResultRepository is a mock implementation of the ResultRepository interface
// for testing the service layer.
type MockResultRepository struct {
	SaveResultFunc        func(ctx context.Context, res models.AssessmentResult) error
	GetResultFunc         func(ctx context.Context, id string) (models.AssessmentResult, error)
	ListResultsByUserFunc func(ctx context.Context, userID string, limit int) ([]models.AssessmentResult, error)
}

// SaveResult implements the ResultRepository interface
func (m *MockResultRepository) SaveResult(ctx context.Context, res models.AssessmentResult) error {
	if m.SaveResultFunc != nil {
		return m.SaveResultFunc(ctx, res)
	}
	return errors.New("SaveResultFunc not implemented")
}

// GetResult implements the ResultRepository interface
func (m *MockResultRepository) GetResult(ctx context.Context, id string) (models.AssessmentResult, error) {
	if m.GetResultFunc != nil {
		return m.GetResultFunc(ctx, id)
	}
	return models.AssessmentResult{}, errors.New("GetResultFunc not implemented")
}

// ListResultsByUser implements the ResultRepository interface
func (m *MockResultRepository) ListResultsByUser(ctx context.Context, userID string, limit int) ([]models.AssessmentResult, error) {
	if m.ListResultsByUserFunc != nil {
		return m.ListResultsByUserFunc(ctx, userID, limit)
	}
	return nil, errors.New("ListResultsByUserFunc not implemented")
}
