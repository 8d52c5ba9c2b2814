package mbti

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func TestSessionAddAnswer(t *testing.T) {
	clock := &stepClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}

	t.Run("appends new answers in order", func(t *testing.T) {
		s := NewSession(WithClock(clock.Now))
		s.AddAnswer(3, 4)
		s.AddAnswer(1, 2)

		answers := s.Answers()
		require.Len(t, answers, 2)
		assert.Equal(t, 3, answers[0].QuestionID)
		assert.Equal(t, 1, answers[1].QuestionID)
	})

	t.Run("upserts existing answer in place", func(t *testing.T) {
		s := NewSession(WithClock(clock.Now))
		s.AddAnswer(1, 2)
		s.AddAnswer(2, 3)
		first := s.Answers()[0].AnsweredAt

		s.AddAnswer(1, 5)

		answers := s.Answers()
		require.Len(t, answers, 2)
		assert.Equal(t, 1, answers[0].QuestionID)
		assert.Equal(t, 5, answers[0].Value)
		assert.True(t, answers[0].AnsweredAt.After(first))
	})

	t.Run("returned answers are a copy", func(t *testing.T) {
		s := NewSession()
		s.AddAnswer(1, 2)

		answers := s.Answers()
		answers[0].Value = 99

		assert.Equal(t, 2, s.Answers()[0].Value)
	})

	t.Run("values are stored unvalidated", func(t *testing.T) {
		s := NewSession()
		s.AddAnswer(1, 42)
		assert.Equal(t, 42, s.Answers()[0].Value)
		assert.Equal(t, 42, s.Score().E)
	})
}

func TestSessionProgress(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0, NewSession().Progress())
	})

	t.Run("half answered", func(t *testing.T) {
		s := NewSession()
		for id := 1; id <= 8; id++ {
			s.AddAnswer(id, 3)
		}
		assert.Equal(t, 50, s.Progress())
	})

	t.Run("duplicate answers count once", func(t *testing.T) {
		s := NewSession()
		s.AddAnswer(1, 3)
		s.AddAnswer(1, 4)
		s.AddAnswer(1, 5)
		assert.Equal(t, 6, s.Progress()) // 1/16 = 6.25%
	})

	t.Run("all answered", func(t *testing.T) {
		s := NewSession()
		for _, q := range Questions() {
			s.AddAnswer(q.ID, 1)
		}
		assert.Equal(t, 100, s.Progress())
	})

	t.Run("empty bank", func(t *testing.T) {
		s := NewSession(WithQuestions(nil))
		s.AddAnswer(1, 3)
		assert.Equal(t, 0, s.Progress())
	})
}

func TestSessionReset(t *testing.T) {
	s := NewSession()
	s.AddAnswer(1, 5)
	s.AddAnswer(2, 1)

	s.Reset()

	assert.Empty(t, s.Answers())
	assert.Equal(t, 0, s.Progress())
	assert.Equal(t, Score{}, s.Score())
}

func TestSessionComplete(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return fixed }

	t.Run("full ESTJ run", func(t *testing.T) {
		s := NewSession(WithClock(now))
		for _, q := range Questions() {
			v := 1
			if isFirstLetter(q.Dimension) {
				v = 5
			}
			s.AddAnswer(q.ID, v)
		}

		result := s.Complete()

		assert.Equal(t, TypeCode("ESTJ"), result.TypeCode)
		assert.Equal(t, 50, result.Percentage.E)
		assert.Equal(t, 10, result.Percentage.I)
		assert.Equal(t, Description("ESTJ"), result.Description)
		assert.Equal(t, Strengths("ESTJ"), result.Strengths)
		assert.Equal(t, Challenges("ESTJ"), result.Challenges)
		assert.Equal(t, Recommendations("ESTJ"), result.Recommendations)
		assert.Equal(t, fixed, result.CompletedAt)
	})

	t.Run("no answers uses tie break", func(t *testing.T) {
		assert.Equal(t, TypeCode("INFP"), NewSession().Complete().TypeCode)
		assert.Equal(t, TypeCode("ESTJ"), NewSession(WithTieBreak(TieBreakFirst)).Complete().TypeCode)
	})

	t.Run("custom bank changes percentage base", func(t *testing.T) {
		bank := []Question{
			{ID: 1, Dimension: Extraversion},
			{ID: 2, Dimension: Sensing},
			{ID: 3, Dimension: Thinking},
			{ID: 4, Dimension: Judging},
		}
		s := NewSession(WithQuestions(bank))
		s.AddAnswer(1, 5)

		result := s.Complete()

		assert.Equal(t, 100, result.Percentage.E)
		assert.Equal(t, 0, result.Percentage.S)
	})
}

func TestQuestionBank(t *testing.T) {
	questions := Questions()
	require.Len(t, questions, 16)

	perDimension := make(map[Dimension]int)
	ids := make(map[int]bool)
	for _, q := range questions {
		assert.True(t, q.Dimension.Valid())
		assert.False(t, q.Reverse)
		assert.NotEmpty(t, q.Text)
		assert.False(t, ids[q.ID], "duplicate id %d", q.ID)
		ids[q.ID] = true
		perDimension[q.Dimension]++
	}
	for _, d := range Dimensions() {
		assert.Equal(t, 2, perDimension[d], string(d))
	}

	questions[0].Text = "changed"
	assert.NotEqual(t, "changed", Questions()[0].Text)

	q, ok := QuestionByID(16)
	assert.True(t, ok)
	assert.Equal(t, Perceiving, q.Dimension)

	_, ok = QuestionByID(0)
	assert.False(t, ok)
}
