package usecase

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"

	"textvec/internal/domain"
	"textvec/internal/port"
)

// SourceFactory builds an independent token stream over a slice of the
// corpus. Each worker calls the factory once for its chunk, so factories
// must return a fresh iterator on every call.
type SourceFactory func(files []port.FileInfo) port.TokenSource

// Runner distributes a corpus build over a bounded worker pool. The corpus
// file list is split into contiguous chunks, each chunk is processed
// independently, and the partial results are merged in chunk order, so the
// output is identical to a sequential build.
type Runner struct {
	workers int
	chunks  int
	log     zerolog.Logger
}

func NewRunner(workers, chunks int, log zerolog.Logger) *Runner {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if chunks < 1 {
		chunks = workers
	}
	return &Runner{workers: workers, chunks: chunks, log: log}
}

// splitFiles partitions files into at most n contiguous, near-equal chunks.
func splitFiles(files []port.FileInfo, n int) [][]port.FileInfo {
	if n > len(files) {
		n = len(files)
	}
	if n < 1 {
		return nil
	}

	chunks := make([][]port.FileInfo, 0, n)
	size := len(files) / n
	rem := len(files) % n

	start := 0
	for i := 0; i < n; i++ {
		end := start + size
		if i < rem {
			end++
		}
		chunks = append(chunks, files[start:end])
		start = end
	}
	return chunks
}

// Vocabulary builds a vocabulary over the corpus in parallel.
func (r *Runner) Vocabulary(ctx context.Context, files []port.FileInfo, src SourceFactory) (*domain.Vocabulary, error) {
	chunks := splitFiles(files, r.chunks)
	if len(chunks) == 0 {
		return NewVocabularyBuilder().Build(), nil
	}

	r.log.Debug().Int("files", len(files)).Int("chunks", len(chunks)).Int("workers", r.workers).Msg("building vocabulary")

	partials := make([]*VocabularyBuilder, len(chunks))
	p := pool.New().WithMaxGoroutines(r.workers).WithContext(ctx)

	for i, chunk := range chunks {
		i, chunk := i, chunk
		p.Go(func(ctx context.Context) error {
			b := NewVocabularyBuilder()
			stream := src(chunk)
			for stream.Next() {
				if err := ctx.Err(); err != nil {
					return err
				}
				b.Add(stream.Doc())
			}
			if err := stream.Err(); err != nil {
				return fmt.Errorf("chunk %d: %w", i, err)
			}
			partials[i] = b
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	merged := partials[0]
	for _, b := range partials[1:] {
		merged.Merge(b)
	}
	return merged.Build(), nil
}

// DTM builds a document-term matrix over the corpus in parallel. Partial
// matrices are stacked row-wise in chunk order, preserving corpus document
// order.
func (r *Runner) DTM(ctx context.Context, files []port.FileInfo, src SourceFactory, vz Vectorizer) (*domain.CSRMatrix, error) {
	chunks := splitFiles(files, r.chunks)
	if len(chunks) == 0 {
		return domain.NewTripletMatrix(vz.NCols(), vz.ColNames()).ToCSR(), nil
	}

	r.log.Debug().Int("files", len(files)).Int("chunks", len(chunks)).Int("workers", r.workers).Msg("building dtm")

	partials := make([]*domain.TripletMatrix, len(chunks))
	p := pool.New().WithMaxGoroutines(r.workers).WithContext(ctx)

	for i, chunk := range chunks {
		i, chunk := i, chunk
		p.Go(func(ctx context.Context) error {
			m := domain.NewTripletMatrix(vz.NCols(), vz.ColNames())
			stream := src(chunk)
			for stream.Next() {
				if err := ctx.Err(); err != nil {
					return err
				}
				doc := stream.Doc()
				m.AppendRow(doc.ID, vz.DocRow(doc))
			}
			if err := stream.Err(); err != nil {
				return fmt.Errorf("chunk %d: %w", i, err)
			}
			partials[i] = m
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	merged, err := domain.MergeRowwise(partials...)
	if err != nil {
		return nil, err
	}
	return merged.ToCSR(), nil
}

// TCM builds a term-co-occurrence matrix over the corpus in parallel.
// Partial matrices share the vocabulary's shape and are summed elementwise.
func (r *Runner) TCM(ctx context.Context, files []port.FileInfo, src SourceFactory, vocab *domain.Vocabulary, window int, weighting Weighting, side Context) (*domain.CSRMatrix, error) {
	chunks := splitFiles(files, r.chunks)
	if len(chunks) == 0 {
		return domain.NewSquareTriplets(vocab.TermNames()).ToCSR(), nil
	}

	r.log.Debug().Int("files", len(files)).Int("chunks", len(chunks)).Int("workers", r.workers).Msg("building tcm")

	partials := make([]*domain.TripletMatrix, len(chunks))
	p := pool.New().WithMaxGoroutines(r.workers).WithContext(ctx)

	for i, chunk := range chunks {
		i, chunk := i, chunk
		p.Go(func(ctx context.Context) error {
			b, err := NewTCMBuilder(vocab, window, weighting, side)
			if err != nil {
				return err
			}
			stream := src(chunk)
			for stream.Next() {
				if err := ctx.Err(); err != nil {
					return err
				}
				b.Add(stream.Doc())
			}
			if err := stream.Err(); err != nil {
				return fmt.Errorf("chunk %d: %w", i, err)
			}
			partials[i] = b.Matrix()
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	merged, err := domain.MergeElementwise(partials...)
	if err != nil {
		return nil, err
	}
	return merged.ToCSR(), nil
}
