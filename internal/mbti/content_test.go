package mbti_test

import (
	"testing"

	"github.com/godilite/mbti-server/internal/mbti"
	"github.com/stretchr/testify/assert"
)

func TestProfileLookups(t *testing.T) {
	t.Run("all known codes have content", func(t *testing.T) {
		assert.Len(t, mbti.TypeCodes, 16)
		for _, code := range mbti.TypeCodes {
			assert.True(t, code.Valid(), code)
			assert.NotEmpty(t, mbti.Description(code))
			assert.NotEqual(t, mbti.UnknownTypeDescription, mbti.Description(code))
			assert.NotEmpty(t, mbti.Strengths(code))
			assert.NotEmpty(t, mbti.Challenges(code))
			assert.NotEmpty(t, mbti.Recommendations(code))
		}
	})

	t.Run("unknown code falls back", func(t *testing.T) {
		for _, code := range []mbti.TypeCode{"", "XXXX", "INF", "infp"} {
			profile := mbti.ProfileFor(code)
			assert.False(t, code.Valid())
			assert.Equal(t, mbti.UnknownTypeDescription, profile.Description)
			assert.NotNil(t, profile.Strengths)
			assert.Empty(t, profile.Strengths)
			assert.Empty(t, profile.Challenges)
			assert.Empty(t, profile.Recommendations)
		}
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		s := mbti.Strengths("INTJ")
		s[0] = "changed"
		assert.NotEqual(t, "changed", mbti.Strengths("INTJ")[0])
	})
}

func TestParseTieBreak(t *testing.T) {
	tb, ok := mbti.ParseTieBreak("first")
	assert.True(t, ok)
	assert.Equal(t, mbti.TieBreakFirst, tb)

	tb, ok = mbti.ParseTieBreak("second")
	assert.True(t, ok)
	assert.Equal(t, mbti.TieBreakSecond, tb)

	tb, ok = mbti.ParseTieBreak("bogus")
	assert.False(t, ok)
	assert.Equal(t, mbti.TieBreakSecond, tb)
}
