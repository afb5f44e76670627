package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"textsum/internal/domain"
)

// Report is the outcome of summarizing one document.
type Report struct {
	Document domain.Document
	Summary  domain.Summary
	// Warning is set for advisory problems such as short or empty input.
	Warning string
}

// Options configures a SummaryService.
type Options struct {
	Concurrency int
	Extensions  []string
	MinChars    int
}

// SummaryService loads documents and summarizes them, many at a time.
type SummaryService struct {
	summarizer domain.Summarizer
	logger     *log.Logger
	opts       Options
}

// NewSummaryService creates a service around summarizer. A nil logger discards output.
func NewSummaryService(summarizer domain.Summarizer, logger *log.Logger, opts Options) *SummaryService {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SummaryService{summarizer: summarizer, logger: logger, opts: opts}
}

// LoadDocuments expands globs and reads every file with an accepted extension.
func (s *SummaryService) LoadDocuments(paths []string) ([]domain.Document, error) {
	var documents []domain.Document
	for _, p := range paths {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if !s.accepts(m) {
				s.logger.Debug("skipping file", "path", m)
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return nil, err
			}
			documents = append(documents, domain.Document{ID: hashString(m), Path: m, Content: string(data)})
		}
	}
	if len(documents) == 0 {
		return nil, fmt.Errorf("no documents found (accepted extensions: %s)", strings.Join(s.opts.Extensions, ", "))
	}
	return documents, nil
}

// SummarizeText summarizes a single literal text.
func (s *SummaryService) SummarizeText(text string, req domain.SummaryRequest) (Report, error) {
	doc := domain.Document{ID: hashString(text), Content: text}
	return s.summarize(doc, req)
}

// SummarizeDocuments summarizes documents concurrently; reports keep input order.
// Documents without sentences produce a report with a warning instead of failing the batch.
func (s *SummaryService) SummarizeDocuments(ctx context.Context, docs []domain.Document, req domain.SummaryRequest) ([]Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	reports := make([]Report, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := s.summarize(doc, req)
			if err != nil {
				return fmt.Errorf("%s: %w", doc.Path, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *SummaryService) summarize(doc domain.Document, req domain.SummaryRequest) (Report, error) {
	r := Report{Document: doc}
	if n := utf8.RuneCountInString(strings.TrimSpace(doc.Content)); s.opts.MinChars > 0 && n < s.opts.MinChars {
		r.Warning = fmt.Sprintf("input has %d characters; at least %d are recommended for a useful summary", n, s.opts.MinChars)
		s.logger.Warn("short input", "document", doc.Path, "chars", n, "min", s.opts.MinChars)
	}
	sum, err := s.summarizer.Summarize(doc.Content, req)
	if errors.Is(err, domain.ErrInsufficientContent) {
		r.Warning = "no sentences found"
		s.logger.Warn("insufficient content", "document", doc.Path)
		return r, nil
	}
	if err != nil {
		return Report{}, err
	}
	r.Summary = sum
	s.logger.Debug("summarized",
		"document", doc.Path,
		"sentences", fmt.Sprintf("%d/%d", sum.Stats.SummarySentences, sum.Stats.OriginalSentences),
		"compression", sum.Stats.CompressionPercent(),
	)
	return r, nil
}

func (s *SummaryService) accepts(path string) bool {
	if len(s.opts.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range s.opts.Extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
