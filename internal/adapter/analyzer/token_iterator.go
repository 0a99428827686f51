package analyzer

import (
	"textvec/internal/domain"
	"textvec/internal/port"
)

// TokenIterator lazily maps a document stream to tokenized documents,
// optionally expanding tokens into n-grams. Every consumer downstream of
// the iterator sees the same final token stream, so vocabulary and matrix
// builds can never disagree on n-gram handling.
type TokenIterator struct {
	src       port.DocSource
	tokenizer port.Tokenizer
	ngramMin  int
	ngramMax  int

	cur domain.TokenizedDoc
}

type TokenIteratorOption func(*TokenIterator)

// WithNGrams expands tokens into n-grams of length min..max.
func WithNGrams(min, max int) TokenIteratorOption {
	return func(it *TokenIterator) {
		it.ngramMin = min
		it.ngramMax = max
	}
}

func NewTokenIterator(src port.DocSource, tokenizer port.Tokenizer, opts ...TokenIteratorOption) *TokenIterator {
	it := &TokenIterator{
		src:       src,
		tokenizer: tokenizer,
		ngramMin:  1,
		ngramMax:  1,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

func (it *TokenIterator) Next() bool {
	if !it.src.Next() {
		return false
	}
	doc := it.src.Doc()
	tokens := it.tokenizer.Tokenize(doc.Text)
	if it.ngramMin != 1 || it.ngramMax != 1 {
		tokens = NGrams(tokens, it.ngramMin, it.ngramMax)
	}
	it.cur = domain.TokenizedDoc{ID: doc.ID, Tokens: tokens}
	return true
}

func (it *TokenIterator) Doc() domain.TokenizedDoc {
	return it.cur
}

func (it *TokenIterator) Err() error {
	return it.src.Err()
}

// SliceSource adapts an in-memory document slice to the DocSource
// interface, mainly for tests and small corpora.
type SliceSource struct {
	docs []domain.Document
	pos  int
}

func NewSliceSource(docs []domain.Document) *SliceSource {
	return &SliceSource{docs: docs}
}

func (s *SliceSource) Next() bool {
	if s.pos >= len(s.docs) {
		return false
	}
	s.pos++
	return true
}

func (s *SliceSource) Doc() domain.Document {
	return s.docs[s.pos-1]
}

func (s *SliceSource) Err() error {
	return nil
}
