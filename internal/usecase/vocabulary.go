package usecase

import (
	"fmt"

	"textvec/internal/domain"
	"textvec/internal/port"
)

// VocabularyBuilder accumulates term statistics from a token stream. It can
// be fed incrementally, merged with builders that processed other slices of
// the corpus, and finalized into an immutable vocabulary.
type VocabularyBuilder struct {
	termCounts map[string]int
	docCounts  map[string]int
	ndocs      int
	ntokens    int
}

func NewVocabularyBuilder() *VocabularyBuilder {
	return &VocabularyBuilder{
		termCounts: make(map[string]int),
		docCounts:  make(map[string]int),
	}
}

// Add accumulates one tokenized document.
func (b *VocabularyBuilder) Add(doc domain.TokenizedDoc) {
	b.ndocs++
	b.ntokens += len(doc.Tokens)

	seen := make(map[string]struct{}, len(doc.Tokens))
	for _, t := range doc.Tokens {
		b.termCounts[t]++
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			b.docCounts[t]++
		}
	}
}

// Consume drains a token source into the builder.
func (b *VocabularyBuilder) Consume(src port.TokenSource) error {
	for src.Next() {
		b.Add(src.Doc())
	}
	if err := src.Err(); err != nil {
		return fmt.Errorf("token stream failed: %w", err)
	}
	return nil
}

// Merge folds another builder's counts into this one. The other builder
// must have processed a disjoint set of documents.
func (b *VocabularyBuilder) Merge(other *VocabularyBuilder) {
	for term, c := range other.termCounts {
		b.termCounts[term] += c
	}
	for term, c := range other.docCounts {
		b.docCounts[term] += c
	}
	b.ndocs += other.ndocs
	b.ntokens += other.ntokens
}

// Build finalizes the accumulated statistics into a vocabulary.
func (b *VocabularyBuilder) Build() *domain.Vocabulary {
	terms := make([]domain.TermStat, 0, len(b.termCounts))
	for term, count := range b.termCounts {
		terms = append(terms, domain.TermStat{
			Term:      term,
			TermCount: count,
			DocCount:  b.docCounts[term],
		})
	}
	return domain.NewVocabulary(terms, domain.CorpusStats{
		TotalDocs:   b.ndocs,
		TotalTokens: b.ntokens,
	})
}

// BuildVocabulary is the sequential path: drain a token source and build.
func BuildVocabulary(src port.TokenSource) (*domain.Vocabulary, error) {
	b := NewVocabularyBuilder()
	if err := b.Consume(src); err != nil {
		return nil, err
	}
	return b.Build(), nil
}
