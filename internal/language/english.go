package language

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball/english"

	"textsum/internal/domain"
)

// English stems with the Snowball (Porter2) algorithm and filters the NLTK
// English stop-word list. It holds no mutable state.
type English struct{}

// Name returns the identifier of this backend.
func (English) Name() string { return "english" }

// Normalize lower-cases a word and reduces it to its stem.
func (English) Normalize(word string) string {
	return english.Stem(strings.ToLower(word), true)
}

// IsStopWord reports whether the lower-cased word is a stop word.
func (English) IsStopWord(word string) bool {
	_, ok := englishStopwords[strings.ToLower(word)]
	return ok
}

// Lookup resolves a language backend by name.
func Lookup(name string) (domain.Language, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "english", "en", "":
		return English{}, nil
	default:
		return nil, fmt.Errorf("unknown language: %s", name)
	}
}

var englishStopwords = stopwordSet(
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're", "you've", "you'll", "you'd",
	"your", "yours", "yourself", "yourselves", "he", "him", "his", "himself", "she", "she's", "her", "hers",
	"herself", "it", "it's", "its", "itself", "they", "them", "their", "theirs", "themselves", "what", "which",
	"who", "whom", "this", "that", "that'll", "these", "those", "am", "is", "are", "was", "were", "be", "been",
	"being", "have", "has", "had", "having", "do", "does", "did", "doing", "a", "an", "the", "and", "but", "if",
	"or", "because", "as", "until", "while", "of", "at", "by", "for", "with", "about", "against", "between",
	"into", "through", "during", "before", "after", "above", "below", "to", "from", "up", "down", "in", "out",
	"on", "off", "over", "under", "again", "further", "then", "once", "here", "there", "when", "where", "why",
	"how", "all", "any", "both", "each", "few", "more", "most", "other", "some", "such", "no", "nor", "not",
	"only", "own", "same", "so", "than", "too", "very", "s", "t", "can", "will", "just", "don", "don't",
	"should", "should've", "now", "d", "ll", "m", "o", "re", "ve", "y", "ain", "aren", "aren't", "couldn",
	"couldn't", "didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't", "haven", "haven't",
	"isn", "isn't", "ma", "mightn", "mightn't", "mustn", "mustn't", "needn", "needn't", "shan", "shan't",
	"shouldn", "shouldn't", "wasn", "wasn't", "weren", "weren't", "won", "won't", "wouldn", "wouldn't",
)

func stopwordSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
