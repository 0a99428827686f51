package analyzer

import (
	"strings"
	"unicode"
)

// Tokenizer splits text into word tokens after an optional preprocessing
// step. The default pipeline lowercases and splits on unicode word
// boundaries; callers can replace the preprocess step or filter stopwords
// and short tokens.
type Tokenizer struct {
	preprocess  func(string) string
	stopwords   map[string]struct{}
	minTokenLen int
}

type TokenizerOption func(*Tokenizer)

// WithPreprocess replaces the preprocessing step applied before splitting.
func WithPreprocess(fn func(string) string) TokenizerOption {
	return func(t *Tokenizer) {
		t.preprocess = fn
	}
}

// WithStopwords drops the given tokens after splitting. Matching happens
// after preprocessing, so stopwords should be given in preprocessed form.
func WithStopwords(words []string) TokenizerOption {
	return func(t *Tokenizer) {
		t.stopwords = make(map[string]struct{}, len(words))
		for _, w := range words {
			t.stopwords[w] = struct{}{}
		}
	}
}

// WithMinTokenLen drops tokens shorter than n runes.
func WithMinTokenLen(n int) TokenizerOption {
	return func(t *Tokenizer) {
		t.minTokenLen = n
	}
}

func NewTokenizer(opts ...TokenizerOption) *Tokenizer {
	t := &Tokenizer{
		preprocess:  strings.ToLower,
		minTokenLen: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize splits text into tokens.
func (t *Tokenizer) Tokenize(text string) []string {
	if t.preprocess != nil {
		text = t.preprocess(text)
	}

	words := splitWords(text)
	if t.stopwords == nil && t.minTokenLen <= 1 {
		return words
	}

	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if len([]rune(word)) < t.minTokenLen {
			continue
		}
		if _, isStop := t.stopwords[word]; isStop {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// splitWords splits text into words using unicode word boundaries.
func splitWords(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
		} else {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}
