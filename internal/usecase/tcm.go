package usecase

import (
	"fmt"

	"textvec/internal/domain"
	"textvec/internal/port"
)

// Context selects which side of a term the co-occurrence window covers.
type Context string

const (
	// ContextSymmetric counts neighbours on both sides. Each pair is
	// recorded once, in the upper triangle.
	ContextSymmetric Context = "symmetric"
	// ContextRight counts only neighbours to the right of a term.
	ContextRight Context = "right"
)

// Weighting selects how a co-occurrence is weighted by distance.
type Weighting string

const (
	// WeightInverse weights a pair at distance d by 1/d.
	WeightInverse Weighting = "inverse"
	// WeightUniform weights every pair in the window by 1.
	WeightUniform Weighting = "uniform"
)

// TCMBuilder accumulates a term-co-occurrence matrix over a token stream.
// Rows and columns are both indexed by the vocabulary; tokens outside the
// vocabulary contribute nothing, but still occupy a position in the window.
type TCMBuilder struct {
	vocab     *domain.Vocabulary
	window    int
	weighting Weighting
	context   Context
	m         *domain.TripletMatrix
}

func NewTCMBuilder(vocab *domain.Vocabulary, window int, weighting Weighting, side Context) (*TCMBuilder, error) {
	if window < 1 {
		return nil, fmt.Errorf("window must be positive, got %d", window)
	}
	switch weighting {
	case WeightInverse, WeightUniform:
	default:
		return nil, fmt.Errorf("unknown weighting %q", weighting)
	}
	switch side {
	case ContextSymmetric, ContextRight:
	default:
		return nil, fmt.Errorf("unknown context %q", side)
	}
	return &TCMBuilder{
		vocab:     vocab,
		window:    window,
		weighting: weighting,
		context:   side,
		m:         domain.NewSquareTriplets(vocab.TermNames()),
	}, nil
}

// Add accumulates the co-occurrences of one document. Windows never cross
// document boundaries.
func (b *TCMBuilder) Add(doc domain.TokenizedDoc) {
	tokens := doc.Tokens
	for i := 0; i < len(tokens); i++ {
		a, ok := b.vocab.Index(tokens[i])
		if !ok {
			continue
		}
		for d := 1; d <= b.window && i+d < len(tokens); d++ {
			c, ok := b.vocab.Index(tokens[i+d])
			if !ok {
				continue
			}

			w := 1.0
			if b.weighting == WeightInverse {
				w = 1.0 / float64(d)
			}

			row, col := a, c
			if b.context == ContextSymmetric && row > col {
				row, col = col, row
			}
			b.m.Add(row, col, w)
		}
	}
}

// Consume drains a token source into the builder.
func (b *TCMBuilder) Consume(src port.TokenSource) error {
	for src.Next() {
		b.Add(src.Doc())
	}
	if err := src.Err(); err != nil {
		return fmt.Errorf("token stream failed: %w", err)
	}
	return nil
}

// Matrix returns the accumulated counts with duplicates summed.
func (b *TCMBuilder) Matrix() *domain.TripletMatrix {
	b.m.Compact()
	return b.m
}

// BuildTCM is the sequential path: drain a token source and return the
// finished matrix.
func BuildTCM(src port.TokenSource, vocab *domain.Vocabulary, window int, weighting Weighting, side Context) (*domain.TripletMatrix, error) {
	b, err := NewTCMBuilder(vocab, window, weighting, side)
	if err != nil {
		return nil, err
	}
	if err := b.Consume(src); err != nil {
		return nil, err
	}
	return b.Matrix(), nil
}
