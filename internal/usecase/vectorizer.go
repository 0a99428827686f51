package usecase

import (
	"fmt"
	"hash/fnv"

	"textvec/internal/domain"
	"textvec/internal/port"
)

// Vectorizer maps one tokenized document to a sparse row of column counts.
// Implementations must be safe to construct per worker: a vectorizer holds
// no per-document state, so the same instance may be shared read-only.
type Vectorizer interface {
	NCols() int
	ColNames() []string
	DocRow(doc domain.TokenizedDoc) map[int]float64
}

// VocabVectorizer maps tokens to columns through a fixed vocabulary.
// Out-of-vocabulary tokens are dropped.
type VocabVectorizer struct {
	vocab *domain.Vocabulary
}

func NewVocabVectorizer(vocab *domain.Vocabulary) *VocabVectorizer {
	return &VocabVectorizer{vocab: vocab}
}

func (v *VocabVectorizer) NCols() int {
	return v.vocab.Len()
}

func (v *VocabVectorizer) ColNames() []string {
	return v.vocab.TermNames()
}

func (v *VocabVectorizer) DocRow(doc domain.TokenizedDoc) map[int]float64 {
	row := make(map[int]float64)
	for _, t := range doc.Tokens {
		if j, ok := v.vocab.Index(t); ok {
			row[j]++
		}
	}
	return row
}

// DefaultHashBits gives 2^18 hash buckets, enough to keep collision rates
// low for vocabularies in the hundreds of thousands of terms.
const DefaultHashBits = 18

// HashVectorizer maps tokens to columns by feature hashing, so no
// vocabulary pass over the corpus is needed. With signed hashing, a second
// hash decides the sign of each update, which cancels collision bias in
// expectation.
type HashVectorizer struct {
	bits   uint
	signed bool
}

func NewHashVectorizer(bits uint, signed bool) (*HashVectorizer, error) {
	if bits == 0 || bits > 30 {
		return nil, fmt.Errorf("hash bits must be in 1..30, got %d", bits)
	}
	return &HashVectorizer{bits: bits, signed: signed}, nil
}

func (v *HashVectorizer) NCols() int {
	return 1 << v.bits
}

// ColNames returns nil: hashed columns have no term names.
func (v *HashVectorizer) ColNames() []string {
	return nil
}

func (v *HashVectorizer) DocRow(doc domain.TokenizedDoc) map[int]float64 {
	mask := uint32(1<<v.bits - 1)
	row := make(map[int]float64)
	for _, t := range doc.Tokens {
		j := int(hashToken(t) & mask)
		if v.signed && signToken(t) {
			row[j]--
		} else {
			row[j]++
		}
	}
	return row
}

func hashToken(t string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(t))
	return h.Sum32()
}

// signToken uses an independent hash (FNV-1 instead of FNV-1a) and returns
// true for tokens that should subtract.
func signToken(t string) bool {
	h := fnv.New32()
	h.Write([]byte(t))
	return h.Sum32()&1 == 1
}

// BuildDTM drains a token source into a document-term matrix. Row order
// follows document order; one row per document, including empty ones.
func BuildDTM(src port.TokenSource, vz Vectorizer) (*domain.TripletMatrix, error) {
	m := domain.NewTripletMatrix(vz.NCols(), vz.ColNames())
	for src.Next() {
		doc := src.Doc()
		m.AppendRow(doc.ID, vz.DocRow(doc))
	}
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("token stream failed: %w", err)
	}
	return m, nil
}
