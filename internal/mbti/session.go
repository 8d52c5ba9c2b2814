package mbti

import "time"

// Answer is a recorded response to a question. Value is expected in 1..5 but is not checked.
type Answer struct {
	QuestionID int       `json:"question_id"`
	Value      int       `json:"value"`
	AnsweredAt time.Time `json:"answered_at"`
}

// Result is a completed assessment.
type Result struct {
	TypeCode        TypeCode   `json:"type_code"`
	Score           Score      `json:"score"`
	Percentage      Percentage `json:"percentage"`
	Description     string     `json:"description"`
	Strengths       []string   `json:"strengths"`
	Challenges      []string   `json:"challenges"`
	Recommendations []string   `json:"recommendations"`
	CompletedAt     time.Time  `json:"completed_at"`
}

// Session collects answers for one assessment run.
// It is owned by a single caller and is not safe for concurrent use.
type Session struct {
	questions []Question
	answers   []Answer
	now       func() time.Time
	tieBreak  TieBreak
}

type SessionOption func(*Session)

// WithQuestions replaces the built-in question bank.
func WithQuestions(questions []Question) SessionOption {
	return func(s *Session) {
		s.questions = append([]Question(nil), questions...)
	}
}

func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

func WithTieBreak(tb TieBreak) SessionOption {
	return func(s *Session) {
		s.tieBreak = tb
	}
}

// NewSession creates an empty session over the built-in question bank unless overridden.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		questions: Questions(),
		now:       time.Now,
		tieBreak:  TieBreakSecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Questions returns a copy of the session's question bank.
func (s *Session) Questions() []Question {
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// AddAnswer records value for questionID, replacing and re-stamping any earlier answer to it.
func (s *Session) AddAnswer(questionID, value int) {
	answer := Answer{
		QuestionID: questionID,
		Value:      value,
		AnsweredAt: s.now(),
	}
	for i := range s.answers {
		if s.answers[i].QuestionID == questionID {
			s.answers[i] = answer
			return
		}
	}
	s.answers = append(s.answers, answer)
}

// Answers returns a copy of the recorded answers in insertion order.
func (s *Session) Answers() []Answer {
	out := make([]Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Progress returns the share of questions answered as a rounded percentage.
func (s *Session) Progress() int {
	if len(s.questions) == 0 {
		return 0
	}
	return roundHalfUp(float64(len(s.answers)) / float64(len(s.questions)) * 100)
}

// Reset drops all answers.
func (s *Session) Reset() {
	s.answers = nil
}

// Score sums the current answers per dimension.
func (s *Session) Score() Score {
	return CalculateScore(s.questions, s.answers)
}

// Complete scores the current answers and assembles a Result.
// Unanswered questions count as zero; no completeness check is made.
func (s *Session) Complete() Result {
	score := s.Score()
	pct := CalculatePercentages(score, len(s.questions))
	code := DetermineType(score, s.tieBreak)
	profile := ProfileFor(code)

	return Result{
		TypeCode:        code,
		Score:           score,
		Percentage:      pct,
		Description:     profile.Description,
		Strengths:       profile.Strengths,
		Challenges:      profile.Challenges,
		Recommendations: profile.Recommendations,
		CompletedAt:     s.now(),
	}
}
