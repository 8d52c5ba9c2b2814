package mocks

import (
	"context"
	"errors"

	"github.com/godilite/mbti-server/internal/mbti"
	"github.com/godilite/mbti-server/internal/service"
)

// MockAssessmentService is a function-field mock of the AssessmentService interface.
// Unset functions return an error, except Questions which falls back to the built-in bank.
type MockAssessmentService struct {
	QuestionsFunc          func() []mbti.Question
	StartAssessmentFunc    func(ctx context.Context, userID string) (service.SessionInfo, error)
	SubmitAnswerFunc       func(ctx context.Context, sessionID string, questionID, value int) (int, error)
	AnswersFunc            func(ctx context.Context, sessionID string) ([]mbti.Answer, error)
	ProgressFunc           func(ctx context.Context, sessionID string) (int, error)
	CompleteAssessmentFunc func(ctx context.Context, sessionID string) (service.AssessmentResult, error)
	ResetAssessmentFunc    func(ctx context.Context, sessionID string) error
	GetResultFunc          func(ctx context.Context, resultID string) (service.AssessmentResult, error)
	ListResultsFunc        func(ctx context.Context, userID string, limit int) ([]service.AssessmentResult, error)
	TypeProfileFunc        func(code mbti.TypeCode) (mbti.TypeProfile, error)
}

func (m *MockAssessmentService) Questions() []mbti.Question {
	if m.QuestionsFunc != nil {
		return m.QuestionsFunc()
	}
	return mbti.Questions()
}

func (m *MockAssessmentService) StartAssessment(ctx context.Context, userID string) (service.SessionInfo, error) {
	if m.StartAssessmentFunc != nil {
		return m.StartAssessmentFunc(ctx, userID)
	}
	return service.SessionInfo{}, errors.New("StartAssessmentFunc not implemented")
}

func (m *MockAssessmentService) SubmitAnswer(ctx context.Context, sessionID string, questionID, value int) (int, error) {
	if m.SubmitAnswerFunc != nil {
		return m.SubmitAnswerFunc(ctx, sessionID, questionID, value)
	}
	return 0, errors.New("SubmitAnswerFunc not implemented")
}

func (m *MockAssessmentService) Answers(ctx context.Context, sessionID string) ([]mbti.Answer, error) {
	if m.AnswersFunc != nil {
		return m.AnswersFunc(ctx, sessionID)
	}
	return nil, errors.New("AnswersFunc not implemented")
}

func (m *MockAssessmentService) Progress(ctx context.Context, sessionID string) (int, error) {
	if m.ProgressFunc != nil {
		return m.ProgressFunc(ctx, sessionID)
	}
	return 0, errors.New("ProgressFunc not implemented")
}

func (m *MockAssessmentService) CompleteAssessment(ctx context.Context, sessionID string) (service.AssessmentResult, error) {
	if m.CompleteAssessmentFunc != nil {
		return m.CompleteAssessmentFunc(ctx, sessionID)
	}
	return service.AssessmentResult{}, errors.New("CompleteAssessmentFunc not implemented")
}

func (m *MockAssessmentService) ResetAssessment(ctx context.Context, sessionID string) error {
	if m.ResetAssessmentFunc != nil {
		return m.ResetAssessmentFunc(ctx, sessionID)
	}
	return errors.New("ResetAssessmentFunc not implemented")
}

func (m *MockAssessmentService) GetResult(ctx context.Context, resultID string) (service.AssessmentResult, error) {
	if m.GetResultFunc != nil {
		return m.GetResultFunc(ctx, resultID)
	}
	return service.AssessmentResult{}, errors.New("GetResultFunc not implemented")
}

func (m *MockAssessmentService) ListResults(ctx context.Context, userID string, limit int) ([]service.AssessmentResult, error) {
	if m.ListResultsFunc != nil {
		return m.ListResultsFunc(ctx, userID, limit)
	}
	return nil, errors.New("ListResultsFunc not implemented")
}

func (m *MockAssessmentService) TypeProfile(code mbti.TypeCode) (mbti.TypeProfile, error) {
	if m.TypeProfileFunc != nil {
		return m.TypeProfileFunc(code)
	}
	return mbti.TypeProfile{}, errors.New("TypeProfileFunc not implemented")
}
