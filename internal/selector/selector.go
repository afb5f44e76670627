package selector

import (
	"math"
	"sort"
	"strings"

	"textsum/internal/domain"
)

// TargetCount is min(max, max(1, round(ratio*n))), clamped to [1, n].
// It returns 0 for an empty document.
func TargetCount(req domain.SummaryRequest, n int) int {
	if n <= 0 {
		return 0
	}
	target := int(math.Round(req.Ratio * float64(n)))
	if target < 1 {
		target = 1
	}
	if req.MaxSentences < target {
		target = req.MaxSentences
	}
	if target < 1 {
		target = 1
	}
	if target > n {
		target = n
	}
	return target
}

// Select picks the best sentences under the request budget and reports
// them in document order with compression statistics.
func Select(sentences []domain.Sentence, req domain.SummaryRequest) domain.Summary {
	n := len(sentences)
	if n == 0 {
		return domain.Summary{}
	}
	target := TargetCount(req, n)
	var chosen []domain.Sentence
	if target >= n {
		chosen = append(chosen, sentences...)
	} else {
		chosen = TopK(sentences, target)
	}
	sort.Slice(chosen, func(i, j int) bool { return chosen[i].Index < chosen[j].Index })

	texts := make([]string, len(chosen))
	for i, s := range chosen {
		texts[i] = s.Text
	}
	return domain.Summary{
		Text:      strings.Join(texts, " "),
		Sentences: chosen,
		Stats:     Stats(sentences, chosen),
	}
}

// Stats compares the word and sentence counts of a summary with its source.
func Stats(original, summary []domain.Sentence) domain.Statistics {
	st := domain.Statistics{
		OriginalSentences: len(original),
		SummarySentences:  len(summary),
		OriginalWords:     countWords(original),
		SummaryWords:      countWords(summary),
	}
	if st.OriginalWords > 0 {
		st.CompressionRatio = 1 - float64(st.SummaryWords)/float64(st.OriginalWords)
	}
	st.CompressionRatio = math.Min(1, math.Max(0, st.CompressionRatio))
	return st
}

func countWords(sentences []domain.Sentence) int {
	n := 0
	for _, s := range sentences {
		n += len(s.Words)
	}
	return n
}
