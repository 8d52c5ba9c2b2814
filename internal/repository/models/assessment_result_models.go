package models

import "time"

// DimensionValues maps a dimension letter to a score or percentage.
type DimensionValues map[string]int

type AssessmentResult struct {
	ID              string
	SessionID       string
	UserID          string
	TypeCode        string
	Scores          DimensionValues
	Percentages     DimensionValues
	Description     string
	Strengths       []string
	Challenges      []string
	Recommendations []string
	CompletedAt     time.Time
}
