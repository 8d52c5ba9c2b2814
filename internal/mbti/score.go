package mbti

import "math"

// likertMax is the highest value on the answer scale; reverse scoring maps v to likertMax+1-v.
const likertMax = 5

// Score holds the summed answer values per dimension.
type Score struct {
	E int `json:"E"`
	I int `json:"I"`
	S int `json:"S"`
	N int `json:"N"`
	T int `json:"T"`
	F int `json:"F"`
	J int `json:"J"`
	P int `json:"P"`
}

// Percentage has the same shape as Score, expressed relative to the maximum per dimension.
type Percentage Score

// Get returns the counter for d, or 0 for an unknown dimension.
func (s Score) Get(d Dimension) int {
	if p := s.field(d); p != nil {
		return *p
	}
	return 0
}

func (s *Score) add(d Dimension, v int) {
	if p := s.field(d); p != nil {
		*p += v
	}
}

func (s *Score) field(d Dimension) *int {
	switch d {
	case Extraversion:
		return &s.E
	case Introversion:
		return &s.I
	case Sensing:
		return &s.S
	case Intuition:
		return &s.N
	case Thinking:
		return &s.T
	case Feeling:
		return &s.F
	case Judging:
		return &s.J
	case Perceiving:
		return &s.P
	}
	return nil
}

// Get returns the percentage for d.
func (p Percentage) Get(d Dimension) int {
	return Score(p).Get(d)
}

// CalculateScore sums answer values into their question's dimension.
// Answers for ids outside questions contribute nothing, and values are not range-checked.
func CalculateScore(questions []Question, answers []Answer) Score {
	var score Score
	for _, a := range answers {
		q, ok := findQuestion(questions, a.QuestionID)
		if !ok {
			continue
		}
		v := a.Value
		if q.Reverse {
			v = likertMax + 1 - v
		}
		score.add(q.Dimension, v)
	}
	return score
}

// CalculatePercentages converts a score to percentages of questionsPerPair*5, where
// questionsPerPair is totalQuestions/4. Results are not clamped to [0,100].
func CalculatePercentages(score Score, totalQuestions int) Percentage {
	questionsPerPair := totalQuestions / len(Pairs)
	if questionsPerPair <= 0 {
		return Percentage{}
	}
	maxScore := float64(questionsPerPair * likertMax)

	var pct Percentage
	for _, d := range Dimensions() {
		v := roundHalfUp(float64(score.Get(d)) / maxScore * 100)
		(*Score)(&pct).add(d, v)
	}
	return pct
}

// DetermineType picks, per pair, the letter with the strictly greater score; ties follow tb.
func DetermineType(score Score, tb TieBreak) TypeCode {
	code := make([]byte, 0, len(Pairs))
	for _, p := range Pairs {
		a, b := score.Get(p.First), score.Get(p.Second)
		var winner Dimension
		switch {
		case a > b:
			winner = p.First
		case b > a:
			winner = p.Second
		case tb == TieBreakFirst:
			winner = p.First
		default:
			winner = p.Second
		}
		code = append(code, winner...)
	}
	return TypeCode(code)
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
