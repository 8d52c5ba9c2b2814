package service

import (
	"time"

	"github.com/godilite/mbti-server/internal/mbti"
	"github.com/godilite/mbti-server/internal/repository/models"
)

type SessionInfo struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	StartedAt      time.Time `json:"started_at"`
	TotalQuestions int       `json:"total_questions"`
}

// AssessmentResult is a persisted mbti.Result together with its ownership.
type AssessmentResult struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	mbti.Result
}

func toModel(r AssessmentResult) models.AssessmentResult {
	return models.AssessmentResult{
		ID:              r.ID,
		SessionID:       r.SessionID,
		UserID:          r.UserID,
		TypeCode:        string(r.TypeCode),
		Scores:          dimensionValues(r.Score),
		Percentages:     dimensionValues(mbti.Score(r.Percentage)),
		Description:     r.Description,
		Strengths:       r.Strengths,
		Challenges:      r.Challenges,
		Recommendations: r.Recommendations,
		CompletedAt:     r.CompletedAt,
	}
}

func fromModel(m models.AssessmentResult) AssessmentResult {
	return AssessmentResult{
		ID:        m.ID,
		SessionID: m.SessionID,
		UserID:    m.UserID,
		Result: mbti.Result{
			TypeCode:        mbti.TypeCode(m.TypeCode),
			Score:           scoreFromValues(m.Scores),
			Percentage:      mbti.Percentage(scoreFromValues(m.Percentages)),
			Description:     m.Description,
			Strengths:       m.Strengths,
			Challenges:      m.Challenges,
			Recommendations: m.Recommendations,
			CompletedAt:     m.CompletedAt,
		},
	}
}

func dimensionValues(s mbti.Score) models.DimensionValues {
	out := make(models.DimensionValues, 8)
	for _, d := range mbti.Dimensions() {
		out[string(d)] = s.Get(d)
	}
	return out
}

func scoreFromValues(v models.DimensionValues) mbti.Score {
	return mbti.Score{
		E: v["E"], I: v["I"],
		S: v["S"], N: v["N"],
		T: v["T"], F: v["F"],
		J: v["J"], P: v["P"],
	}
}
