package summarizer

import (
	"textsum/internal/domain"
	"textsum/internal/lexical"
	"textsum/internal/preprocess"
	"textsum/internal/scoring"
	"textsum/internal/selector"
)

// Extractive ranks sentences by term frequency plus positional, length and
// content heuristics and returns the best ones in document order.
// It is stateless between calls and safe for concurrent use.
type Extractive struct {
	pre    *preprocess.Preprocessor
	lang   domain.Language
	scorer *scoring.Scorer
}

// Option customizes an Extractive summarizer.
type Option func(*options)

type options struct {
	length scoring.LengthProfile
}

// WithLengthProfile overrides the preferred sentence length band.
func WithLengthProfile(p scoring.LengthProfile) Option {
	return func(o *options) { o.length = p }
}

// New creates an extractive summarizer. Weights are validated once here.
func New(lang domain.Language, weights scoring.Weights, opts ...Option) (*Extractive, error) {
	o := options{length: scoring.DefaultLengthProfile()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if err := o.length.Validate(); err != nil {
		return nil, err
	}
	return &Extractive{
		pre:    preprocess.NewPreprocessor(),
		lang:   lang,
		scorer: scoring.NewScorer(weights, o.length),
	}, nil
}

// Summarize extracts a summary of text under the budget in req.
//
// An invalid request fails with domain.ErrInvalidRequest. A text without
// sentences returns a zero Summary together with domain.ErrInsufficientContent,
// which callers may treat as a warning.
func (e *Extractive) Summarize(text string, req domain.SummaryRequest) (domain.Summary, error) {
	if err := req.Validate(); err != nil {
		return domain.Summary{}, err
	}
	sentences, err := e.pre.Split(text)
	if err != nil {
		return domain.Summary{}, err
	}
	table := lexical.Analyze(sentences, e.lang)
	e.scorer.Score(sentences, table)
	return selector.Select(sentences, req), nil
}

// Explain runs the scoring stages without selection and returns every
// sentence with its score breakdown, in document order.
func (e *Extractive) Explain(text string) ([]domain.Sentence, *lexical.FrequencyTable, error) {
	sentences, err := e.pre.Split(text)
	if err != nil {
		return nil, nil, err
	}
	table := lexical.Analyze(sentences, e.lang)
	e.scorer.Score(sentences, table)
	return sentences, table, nil
}
