package grpc

import (
	"context"
	"time"

	"github.com/godilite/mbti-server/internal/mbti"
	"github.com/godilite/mbti-server/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type AssessmentService interface {
	Questions() []mbti.Question
	StartAssessment(ctx context.Context, userID string) (service.SessionInfo, error)
	SubmitAnswer(ctx context.Context, sessionID string, questionID, value int) (int, error)
	Answers(ctx context.Context, sessionID string) ([]mbti.Answer, error)
	Progress(ctx context.Context, sessionID string) (int, error)
	CompleteAssessment(ctx context.Context, sessionID string) (service.AssessmentResult, error)
	ResetAssessment(ctx context.Context, sessionID string) error
	GetResult(ctx context.Context, resultID string) (service.AssessmentResult, error)
	ListResults(ctx context.Context, userID string, limit int) ([]service.AssessmentResult, error)
	TypeProfile(code mbti.TypeCode) (mbti.TypeProfile, error)
}
