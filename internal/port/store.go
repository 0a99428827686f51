package port

import "textvec/internal/domain"

// IndexStore persists vocabularies, corpus statistics, and built matrices.
type IndexStore interface {
	PutVocabulary(v *domain.Vocabulary, fingerprint string) error

	GetVocabulary() (*domain.Vocabulary, string, error)

	PutMatrix(name string, m *domain.CSRMatrix) error

	GetMatrix(name string) (*domain.CSRMatrix, error)

	ListMatrices() ([]string, error)

	PutStats(stats domain.CorpusStats) error

	GetStats() (domain.CorpusStats, error)

	CorpusID() (string, error)

	Close() error
}
