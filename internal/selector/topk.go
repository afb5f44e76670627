package selector

import (
	"container/heap"
	"sort"

	"textsum/internal/domain"
)

// ranksAbove orders by score descending, then index ascending.
func ranksAbove(a, b domain.Sentence) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Index < b.Index
}

// worstFirst is a min-heap on rank: the root is the weakest kept sentence.
type worstFirst []domain.Sentence

func (h worstFirst) Len() int           { return len(h) }
func (h worstFirst) Less(i, j int) bool { return ranksAbove(h[j], h[i]) }
func (h worstFirst) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *worstFirst) Push(x any)        { *h = append(*h, x.(domain.Sentence)) }
func (h *worstFirst) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// TopK returns the k best-ranked sentences, best first.
func TopK(sentences []domain.Sentence, k int) []domain.Sentence {
	if k <= 0 {
		return nil
	}
	h := make(worstFirst, 0, k+1)
	for _, s := range sentences {
		if h.Len() < k {
			heap.Push(&h, s)
			continue
		}
		if ranksAbove(s, h[0]) {
			h[0] = s
			heap.Fix(&h, 0)
		}
	}
	out := []domain.Sentence(h)
	sort.Slice(out, func(i, j int) bool { return ranksAbove(out[i], out[j]) })
	return out
}
