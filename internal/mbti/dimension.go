package mbti

// Dimension is one of the eight letters an assessment question is tagged with.
type Dimension string

const (
	Extraversion Dimension = "E"
	Introversion Dimension = "I"
	Sensing      Dimension = "S"
	Intuition    Dimension = "N"
	Thinking     Dimension = "T"
	Feeling      Dimension = "F"
	Judging      Dimension = "J"
	Perceiving   Dimension = "P"
)

// Pair is an opposing dimension pair. First is the letter listed first in the type code scheme.
type Pair struct {
	First  Dimension
	Second Dimension
}

// Pairs lists the four opposing pairs in type-code order.
var Pairs = [4]Pair{
	{First: Extraversion, Second: Introversion},
	{First: Sensing, Second: Intuition},
	{First: Thinking, Second: Feeling},
	{First: Judging, Second: Perceiving},
}

// Dimensions returns all eight dimensions in pair order.
func Dimensions() []Dimension {
	out := make([]Dimension, 0, len(Pairs)*2)
	for _, p := range Pairs {
		out = append(out, p.First, p.Second)
	}
	return out
}

func (d Dimension) Valid() bool {
	switch d {
	case Extraversion, Introversion, Sensing, Intuition, Thinking, Feeling, Judging, Perceiving:
		return true
	}
	return false
}

// TypeCode is a resolved four-letter type such as "INFP".
type TypeCode string

// TypeCodes lists all 16 valid codes.
var TypeCodes = []TypeCode{
	"ISTJ", "ISFJ", "INFJ", "INTJ",
	"ISTP", "ISFP", "INFP", "INTP",
	"ESTP", "ESFP", "ENFP", "ENTP",
	"ESTJ", "ESFJ", "ENFJ", "ENTJ",
}

// Valid reports whether c is one of the 16 codes built from the four pairs.
func (c TypeCode) Valid() bool {
	if len(c) != len(Pairs) {
		return false
	}
	for i, p := range Pairs {
		d := Dimension(c[i : i+1])
		if d != p.First && d != p.Second {
			return false
		}
	}
	return true
}

func (c TypeCode) String() string { return string(c) }

// TieBreak decides which letter of a pair wins when both scores are equal.
type TieBreak int

const (
	// TieBreakSecond resolves ties to I, N, F and P.
	TieBreakSecond TieBreak = iota
	// TieBreakFirst resolves ties to E, S, T and J.
	TieBreakFirst
)

// ParseTieBreak maps "first" and "second" to a policy. Anything else yields TieBreakSecond and false.
func ParseTieBreak(s string) (TieBreak, bool) {
	switch s {
	case "first":
		return TieBreakFirst, true
	case "second":
		return TieBreakSecond, true
	}
	return TieBreakSecond, false
}

func (t TieBreak) String() string {
	if t == TieBreakFirst {
		return "first"
	}
	return "second"
}
