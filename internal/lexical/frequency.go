package lexical

import (
	"sort"
	"strings"

	"textsum/internal/domain"
)

// FrequencyTable maps root forms to occurrence counts across one document.
// It is read-only once built.
type FrequencyTable struct {
	counts map[string]int
	max    int
}

// Analyze fills in Root and Stop on every word of sentences and counts the
// roots of non-stop words.
func Analyze(sentences []domain.Sentence, lang domain.Language) *FrequencyTable {
	ft := &FrequencyTable{counts: make(map[string]int)}
	for i := range sentences {
		words := sentences[i].Words
		for j := range words {
			lower := strings.ToLower(words[j].Surface)
			words[j].Stop = lang.IsStopWord(lower)
			if words[j].Numeric {
				words[j].Root = lower
			} else {
				words[j].Root = lang.Normalize(lower)
			}
			if words[j].Stop {
				continue
			}
			ft.counts[words[j].Root]++
			if c := ft.counts[words[j].Root]; c > ft.max {
				ft.max = c
			}
		}
	}
	return ft
}

// Count returns the raw count of root.
func (ft *FrequencyTable) Count(root string) int { return ft.counts[root] }

// Weight returns count(root) / max count, or 0 when the table is empty.
func (ft *FrequencyTable) Weight(root string) float64 {
	if ft.max == 0 {
		return 0
	}
	return float64(ft.counts[root]) / float64(ft.max)
}

// Len returns the number of distinct roots.
func (ft *FrequencyTable) Len() int { return len(ft.counts) }

// Term is a root with its count and normalized weight.
type Term struct {
	Root   string
	Count  int
	Weight float64
}

// Top returns the n heaviest terms, ties broken alphabetically.
func (ft *FrequencyTable) Top(n int) []Term {
	terms := make([]Term, 0, len(ft.counts))
	for root, c := range ft.counts {
		terms = append(terms, Term{Root: root, Count: c, Weight: ft.Weight(root)})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Root < terms[j].Root
	})
	if n >= 0 && n < len(terms) {
		terms = terms[:n]
	}
	return terms
}
