package preprocess

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"textsum/internal/domain"
)

var (
	// Numbers keep their decimal and thousands separators; every other
	// alphanumeric run is a token on its own.
	tokenPattern  = regexp.MustCompile(`\p{N}+(?:[.,]\p{N}+)*|[\p{L}\p{M}\p{N}]+`)
	numberPattern = regexp.MustCompile(`^\p{N}+(?:[.,]\p{N}+)*$`)
)

// Preprocessor normalizes raw text and splits it into tokenized sentences.
type Preprocessor struct{}

// NewPreprocessor creates a stateless preprocessor.
func NewPreprocessor() *Preprocessor { return &Preprocessor{} }

// Split returns the sentences of text in document order.
// It fails with domain.ErrInsufficientContent when nothing can be extracted.
func (p *Preprocessor) Split(text string) ([]domain.Sentence, error) {
	clean := Normalize(text)
	var sentences []domain.Sentence
	for _, frag := range splitFragments(clean) {
		tokens := Tokenize(frag)
		if len(tokens) == 0 {
			continue
		}
		words := make([]domain.Word, len(tokens))
		for i, tok := range tokens {
			words[i] = domain.Word{Surface: tok, Numeric: IsNumber(tok)}
		}
		sentences = append(sentences, domain.Sentence{
			Index: len(sentences),
			Text:  frag,
			Words: words,
		})
	}
	if len(sentences) == 0 {
		return nil, fmt.Errorf("%w: no sentences found", domain.ErrInsufficientContent)
	}
	return sentences, nil
}

// Normalize applies NFC, collapses whitespace runs and trims the result.
func Normalize(text string) string {
	return strings.Join(strings.Fields(norm.NFC.String(text)), " ")
}

// Tokenize splits text into word tokens.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}

// IsNumber reports whether a token is a digit sequence, optionally with separators.
func IsNumber(token string) bool {
	return numberPattern.MatchString(token)
}

// splitFragments cuts normalized text after each run of terminal punctuation
// that is followed by a space or the end of the text.
func splitFragments(text string) []string {
	runes := []rune(text)
	var out []string
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		end := i + 1
		for end < len(runes) && (isTerminal(runes[end]) || isCloser(runes[end])) {
			end++
		}
		if end < len(runes) && !unicode.IsSpace(runes[end]) {
			i = end - 1
			continue
		}
		if frag := strings.TrimSpace(string(runes[start:end])); frag != "" {
			out = append(out, frag)
		}
		start = end
		i = end - 1
	}
	if start < len(runes) {
		if frag := strings.TrimSpace(string(runes[start:])); frag != "" {
			out = append(out, frag)
		}
	}
	return out
}

func isTerminal(r rune) bool { return r == '.' || r == '!' || r == '?' }

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '}', '”', '’', '»':
		return true
	}
	return false
}
