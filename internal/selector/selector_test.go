package selector

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsum/internal/domain"
)

func scored(scores ...float64) []domain.Sentence {
	out := make([]domain.Sentence, len(scores))
	for i, sc := range scores {
		out[i] = domain.Sentence{
			Index: i,
			Text:  fmt.Sprintf("Sentence %d.", i),
			Words: []domain.Word{{Surface: "Sentence"}, {Surface: fmt.Sprint(i)}},
			Score: sc,
		}
	}
	return out
}

func indexes(sents []domain.Sentence) []int {
	out := make([]int, len(sents))
	for i, s := range sents {
		out[i] = s.Index
	}
	return out
}

func TestTargetCount(t *testing.T) {
	tests := []struct {
		ratio float64
		max   int
		n     int
		want  int
	}{
		{0.5, 2, 4, 2},
		{0.3, 5, 1, 1},
		{0.3, 5, 10, 3},
		{0.3, 2, 10, 2},
		{0.01, 5, 10, 1},
		{1, 100, 7, 7},
		{0.25, 5, 10, 3}, // 2.5 rounds half away from zero
		{0.5, 5, 0, 0},
	}
	for _, tt := range tests {
		got := TargetCount(domain.SummaryRequest{Ratio: tt.ratio, MaxSentences: tt.max}, tt.n)
		assert.Equal(t, tt.want, got, "ratio=%v max=%d n=%d", tt.ratio, tt.max, tt.n)
	}
}

func TestTopK(t *testing.T) {
	sents := scored(0.1, 0.9, 0.5, 0.9, 0.7)

	top := TopK(sents, 3)
	assert.Equal(t, []int{1, 3, 4}, indexes(top))

	t.Run("TiesPreferEarlierSentences", func(t *testing.T) {
		top := TopK(scored(1, 1, 1, 1), 2)
		assert.Equal(t, []int{0, 1}, indexes(top))
	})

	t.Run("ZeroK", func(t *testing.T) {
		assert.Empty(t, TopK(sents, 0))
	})

	t.Run("KExceedsInput", func(t *testing.T) {
		assert.Len(t, TopK(sents, 10), 5)
	})
}

func TestSelect(t *testing.T) {
	t.Run("RestoresDocumentOrder", func(t *testing.T) {
		sum := Select(scored(0.1, 0.8, 0.2, 0.9), domain.SummaryRequest{Ratio: 0.5, MaxSentences: 2})
		assert.Equal(t, []int{1, 3}, indexes(sum.Sentences))
		assert.Equal(t, "Sentence 1. Sentence 3.", sum.Text)
		assert.Equal(t, domain.Statistics{
			OriginalSentences: 4,
			SummarySentences:  2,
			OriginalWords:     8,
			SummaryWords:      4,
			CompressionRatio:  0.5,
		}, sum.Stats)
	})

	t.Run("FullSelectionKeepsEverything", func(t *testing.T) {
		sents := scored(0.3, 0.1, 0.2)
		sum := Select(sents, domain.SummaryRequest{Ratio: 1, MaxSentences: 10})
		assert.Equal(t, "Sentence 0. Sentence 1. Sentence 2.", sum.Text)
		assert.Equal(t, 0.0, sum.Stats.CompressionRatio)
	})

	t.Run("Empty", func(t *testing.T) {
		sum := Select(nil, domain.SummaryRequest{Ratio: 0.5, MaxSentences: 2})
		assert.Equal(t, domain.Summary{}, sum)
	})

	t.Run("DoesNotReorderInput", func(t *testing.T) {
		sents := scored(0.1, 0.8, 0.2, 0.9)
		Select(sents, domain.SummaryRequest{Ratio: 0.5, MaxSentences: 2})
		assert.Equal(t, []int{0, 1, 2, 3}, indexes(sents))
	})
}

func TestSelectBudgetProperty(t *testing.T) {
	for n := 1; n <= 12; n++ {
		scores := make([]float64, n)
		for i := range scores {
			scores[i] = float64((i * 7) % 5)
		}
		for _, ratio := range []float64{0.1, 0.3, 0.5, 0.75, 1} {
			for _, max := range []int{1, 2, 5} {
				req := domain.SummaryRequest{Ratio: ratio, MaxSentences: max}
				sum := Select(scored(scores...), req)
				require.Len(t, sum.Sentences, TargetCount(req, n))
				for i := 1; i < len(sum.Sentences); i++ {
					assert.Less(t, sum.Sentences[i-1].Index, sum.Sentences[i].Index)
				}
				assert.GreaterOrEqual(t, sum.Stats.CompressionRatio, 0.0)
				assert.LessOrEqual(t, sum.Stats.CompressionRatio, 1.0)
			}
		}
	}
}
