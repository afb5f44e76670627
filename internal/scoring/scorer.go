package scoring

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"textsum/internal/domain"
	"textsum/internal/lexical"
)

// positionWindow is the share of the document, measured from either end,
// over which the positional bonus decays to zero.
const positionWindow = 0.3

// Scorer assigns an importance score to every sentence of a document.
type Scorer struct {
	weights Weights
	length  LengthProfile
}

// NewScorer creates a scorer with fixed weights and length band.
func NewScorer(weights Weights, length LengthProfile) *Scorer {
	return &Scorer{weights: weights, length: length}
}

// Score annotates sentences in place with their breakdown and total.
func (s *Scorer) Score(sentences []domain.Sentence, table *lexical.FrequencyTable) {
	n := len(sentences)
	for i := range sentences {
		sent := &sentences[i]
		b := domain.ScoreBreakdown{
			Relevance: relevance(sent.Words, table),
			Position:  s.position(sent.Index, n),
			Length:    s.lengthBonus(len(sent.Words)),
		}
		if hasNumber(sent.Words) {
			b.Numeric = s.weights.NumericBonus
		}
		if hasProperNoun(sent.Words) {
			b.ProperNoun = s.weights.ProperNounBonus
		}
		if isEmphatic(sent.Text) {
			b.Emphasis = s.weights.EmphasisBonus
		}
		sent.Breakdown = b
		sent.Score = b.Total()
	}
}

// relevance is the mean frequency weight of the non-stop words.
func relevance(words []domain.Word, table *lexical.FrequencyTable) float64 {
	sum, n := 0.0, 0
	for _, w := range words {
		if w.Stop {
			continue
		}
		sum += table.Weight(w.Root)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func (s *Scorer) position(idx, total int) float64 {
	switch {
	case total <= 0:
		return 0
	case idx == 0:
		return s.weights.PositionFirst
	case idx == total-1:
		return s.weights.PositionLast
	}
	window := positionWindow * float64(total)
	front := decay(s.weights.PositionFirst, float64(idx), window)
	back := decay(s.weights.PositionLast, float64(total-1-idx), window)
	if back > front {
		return back
	}
	return front
}

func decay(peak, dist, window float64) float64 {
	if window <= 1 || dist >= window {
		return 0
	}
	return peak * (1 - dist/window)
}

func (s *Scorer) lengthBonus(words int) float64 {
	p, full := s.length, s.weights.LengthOptimal
	switch {
	case words >= p.OptimalLow && words <= p.OptimalHigh:
		return full
	case words <= p.Min || words >= p.Max:
		return 0
	case words < p.OptimalLow:
		return full * float64(words-p.Min) / float64(p.OptimalLow-p.Min)
	default:
		return full * float64(p.Max-words) / float64(p.Max-p.OptimalHigh)
	}
}

func hasNumber(words []domain.Word) bool {
	for _, w := range words {
		if w.Numeric {
			return true
		}
	}
	return false
}

// hasProperNoun looks for a capitalized non-stop word after the first word.
func hasProperNoun(words []domain.Word) bool {
	for i := 1; i < len(words); i++ {
		if words[i].Stop {
			continue
		}
		r, _ := utf8.DecodeRuneInString(words[i].Surface)
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func isEmphatic(text string) bool {
	text = strings.TrimRight(text, "\"')]}”’» ")
	return strings.HasSuffix(text, "?") || strings.HasSuffix(text, "!")
}
