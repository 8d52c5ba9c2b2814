// Package v1 defines the mbti.v1.Assessment gRPC API.
//
// Messages are plain Go structs carried by the JSON codec in pkg/grpc/codec.
// Validation tags are checked by the server before a request reaches the service layer.
package v1

import "time"

type Question struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Dimension string `json:"dimension"`
}

type Answer struct {
	QuestionID int       `json:"question_id"`
	Value      int       `json:"value"`
	AnsweredAt time.Time `json:"answered_at"`
}

type AssessmentResult struct {
	ID              string         `json:"id"`
	SessionID       string         `json:"session_id"`
	UserID          string         `json:"user_id,omitempty"`
	TypeCode        string         `json:"type_code"`
	Scores          map[string]int `json:"scores"`
	Percentages     map[string]int `json:"percentages"`
	Description     string         `json:"description"`
	Strengths       []string       `json:"strengths"`
	Challenges      []string       `json:"challenges"`
	Recommendations []string       `json:"recommendations"`
	CompletedAt     time.Time      `json:"completed_at"`
}

type ListQuestionsRequest struct{}

type ListQuestionsResponse struct {
	Questions []*Question `json:"questions"`
}

type StartAssessmentRequest struct {
	UserID string `json:"user_id,omitempty" validate:"max=128"`
}

type StartAssessmentResponse struct {
	SessionID      string    `json:"session_id"`
	StartedAt      time.Time `json:"started_at"`
	TotalQuestions int       `json:"total_questions"`
}

type SubmitAnswerRequest struct {
	SessionID  string `json:"session_id" validate:"required,uuid"`
	QuestionID int    `json:"question_id" validate:"required,gt=0"`
	Value      int    `json:"value" validate:"min=1,max=5"`
}

type SubmitAnswerResponse struct {
	Progress int `json:"progress"`
}

// SessionRequest addresses an open session.
type SessionRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid"`
}

type GetAnswersResponse struct {
	Answers []*Answer `json:"answers"`
}

type GetProgressResponse struct {
	Progress int `json:"progress"`
}

type CompleteAssessmentResponse struct {
	Result *AssessmentResult `json:"result"`
}

type ResetAssessmentResponse struct{}

type GetResultRequest struct {
	ResultID string `json:"result_id" validate:"required,uuid"`
}

type GetResultResponse struct {
	Result *AssessmentResult `json:"result"`
}

type ListResultsRequest struct {
	UserID string `json:"user_id" validate:"required,max=128"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
}

type ListResultsResponse struct {
	Results []*AssessmentResult `json:"results"`
}

type GetTypeProfileRequest struct {
	TypeCode string `json:"type_code" validate:"required,len=4,alpha"`
}

type TypeProfileResponse struct {
	TypeCode        string   `json:"type_code"`
	Description     string   `json:"description"`
	Strengths       []string `json:"strengths"`
	Challenges      []string `json:"challenges"`
	Recommendations []string `json:"recommendations"`
}
