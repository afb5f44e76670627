package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInsufficientContent is returned when a text yields no sentences.
	// It is advisory: callers may proceed with the empty result.
	ErrInsufficientContent = errors.New("insufficient content")
	// ErrInvalidRequest is returned for out-of-range summary parameters.
	ErrInvalidRequest = errors.New("invalid request")
)

// Document represents a single text loaded into the system.
type Document struct {
	ID      string
	Path    string
	Content string
}

// Word is a single token of a sentence.
type Word struct {
	Surface string
	Root    string
	Stop    bool
	Numeric bool
}

// ScoreBreakdown holds the additive terms that make up a sentence score.
type ScoreBreakdown struct {
	Relevance  float64 `yaml:"relevance"`
	Position   float64 `yaml:"position"`
	Length     float64 `yaml:"length"`
	Numeric    float64 `yaml:"numeric"`
	ProperNoun float64 `yaml:"proper_noun"`
	Emphasis   float64 `yaml:"emphasis"`
}

// Total sums all terms.
func (b ScoreBreakdown) Total() float64 {
	return b.Relevance + b.Position + b.Length + b.Numeric + b.ProperNoun + b.Emphasis
}

// Sentence is a contiguous span of the normalized source text.
type Sentence struct {
	Index     int
	Text      string
	Words     []Word
	Score     float64
	Breakdown ScoreBreakdown
}

// ContentWords counts the non-stop tokens of the sentence.
func (s Sentence) ContentWords() int {
	n := 0
	for _, w := range s.Words {
		if !w.Stop {
			n++
		}
	}
	return n
}

// SummaryRequest is the sentence budget of a summary.
type SummaryRequest struct {
	Ratio        float64 `yaml:"ratio"`
	MaxSentences int     `yaml:"max_sentences"`
}

// Validate checks that Ratio is in (0, 1] and MaxSentences is at least 1.
func (r SummaryRequest) Validate() error {
	if !(r.Ratio > 0 && r.Ratio <= 1) {
		return fmt.Errorf("%w: summary ratio %v outside (0, 1]", ErrInvalidRequest, r.Ratio)
	}
	if r.MaxSentences < 1 {
		return fmt.Errorf("%w: max sentences %d below 1", ErrInvalidRequest, r.MaxSentences)
	}
	return nil
}

// Statistics describes how much a summary compresses its source.
type Statistics struct {
	OriginalSentences int     `yaml:"original_sentences"`
	SummarySentences  int     `yaml:"summary_sentences"`
	OriginalWords     int     `yaml:"original_words"`
	SummaryWords      int     `yaml:"summary_words"`
	CompressionRatio  float64 `yaml:"compression_ratio"`
}

// CompressionPercent returns the compression ratio as a percentage rounded to one decimal.
func (s Statistics) CompressionPercent() float64 {
	return math.Round(s.CompressionRatio*1000) / 10
}

// Summary is the result of an extractive summarization.
type Summary struct {
	Text      string
	Sentences []Sentence
	Stats     Statistics
}

// Language supplies the stop-word set and the stemming function.
// Implementations must be read-only and safe for concurrent use.
type Language interface {
	Name() string
	Normalize(word string) string
	IsStopWord(word string) bool
}

// Summarizer produces an extractive summary of the provided text.
type Summarizer interface {
	Summarize(text string, req SummaryRequest) (Summary, error)
}
