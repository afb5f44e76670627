package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsum/internal/domain"
	"textsum/internal/language"
	"textsum/internal/lexical"
	"textsum/internal/preprocess"
)

func newDefaultScorer() *Scorer {
	return NewScorer(DefaultWeights(), DefaultLengthProfile())
}

func TestPosition(t *testing.T) {
	s := newDefaultScorer()

	t.Run("Endpoints", func(t *testing.T) {
		assert.Equal(t, 0.3, s.position(0, 10))
		assert.Equal(t, 0.2, s.position(9, 10))
		assert.Equal(t, 0.3, s.position(0, 1), "single sentence takes the first bonus")
		assert.Equal(t, 0.2, s.position(1, 2))
	})

	t.Run("DecaysTowardsMiddle", func(t *testing.T) {
		n := 20
		prev := s.position(0, n)
		for i := 1; i <= n/2; i++ {
			cur := s.position(i, n)
			assert.LessOrEqual(t, cur, prev, "index %d", i)
			prev = cur
		}
		assert.Equal(t, 0.0, s.position(10, n))
	})

	t.Run("Bounded", func(t *testing.T) {
		for n := 1; n < 30; n++ {
			for i := 0; i < n; i++ {
				p := s.position(i, n)
				assert.GreaterOrEqual(t, p, 0.0)
				assert.LessOrEqual(t, p, 0.3)
			}
		}
	})
}

func TestLengthBonus(t *testing.T) {
	s := newDefaultScorer()
	tests := []struct {
		words int
		want  float64
	}{
		{0, 0},
		{5, 0},
		{10, 0.1},
		{15, 0.2},
		{20, 0.2},
		{25, 0.2},
		{32, 0.2 * 8 / 15},
		{40, 0},
		{60, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, s.lengthBonus(tt.words), 1e-9, "words=%d", tt.words)
	}
}

func TestHeuristics(t *testing.T) {
	words := func(text string) []domain.Word {
		sents, err := preprocess.NewPreprocessor().Split(text)
		require.NoError(t, err)
		lexical.Analyze(sents, language.English{})
		return sents[0].Words
	}

	assert.True(t, hasNumber(words("Revenue rose by 12 percent.")))
	assert.False(t, hasNumber(words("Revenue rose sharply.")))

	assert.True(t, hasProperNoun(words("Yesterday the team met Alice.")))
	assert.False(t, hasProperNoun(words("Yesterday the team met her.")), "first word does not count")
	assert.False(t, hasProperNoun(words("Then I left.")), "capitalized stop words do not count")

	assert.True(t, isEmphatic("Is this real?"))
	assert.True(t, isEmphatic(`She shouted "now!"`))
	assert.False(t, isEmphatic("A plain statement."))
}

func TestScore(t *testing.T) {
	sents, err := preprocess.NewPreprocessor().Split(
		"AI is powerful. It helps in many fields. Researchers study AI deeply. The future of AI is bright!")
	require.NoError(t, err)
	table := lexical.Analyze(sents, language.English{})
	newDefaultScorer().Score(sents, table)

	first := sents[0].Breakdown
	// ai (1.0) and power (1/3)
	assert.InDelta(t, (1.0+1.0/3)/2, first.Relevance, 1e-9)
	assert.Equal(t, 0.3, first.Position)
	assert.Equal(t, 0.0, first.Length)
	assert.Equal(t, 0.0, first.ProperNoun)
	assert.InDelta(t, first.Total(), sents[0].Score, 1e-12)

	third := sents[2].Breakdown
	assert.Equal(t, 0.1, third.ProperNoun)

	last := sents[3].Breakdown
	assert.Equal(t, 0.2, last.Position)
	assert.Equal(t, 0.05, last.Emphasis)
}

func TestScoreZeroWeights(t *testing.T) {
	sents, err := preprocess.NewPreprocessor().Split("It is 42! Was it Bob?")
	require.NoError(t, err)
	table := lexical.Analyze(sents, language.English{})
	NewScorer(Weights{}, DefaultLengthProfile()).Score(sents, table)
	for _, s := range sents {
		assert.Equal(t, s.Breakdown.Relevance, s.Score)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())
	w := DefaultWeights()
	w.EmphasisBonus = -1
	assert.ErrorIs(t, w.Validate(), domain.ErrInvalidRequest)

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		w := DefaultWeights()
		w.PositionFirst = bad
		assert.ErrorIs(t, w.Validate(), domain.ErrInvalidRequest, "position_first=%v", bad)
	}

	assert.NoError(t, DefaultLengthProfile().Validate())
	assert.ErrorIs(t, LengthProfile{Min: 10, OptimalLow: 5, OptimalHigh: 20, Max: 30}.Validate(), domain.ErrInvalidRequest)
}
