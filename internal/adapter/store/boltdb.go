package store

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"textvec/internal/domain"
)

var (
	bucketMeta     = []byte("meta")
	bucketVocab    = []byte("vocab")
	bucketStats    = []byte("stats")
	bucketMatrices = []byte("matrices")

	keyCorpusID    = []byte("corpus_id")
	keyTerms       = []byte("terms")
	keyFingerprint = []byte("fingerprint")
	keyStats       = []byte("corpus_stats")
)

// BoltStore persists vocabularies, corpus statistics, and built matrices in
// a single bbolt file, so separate CLI invocations can share one build.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketMeta, bucketVocab, bucketStats, bucketMatrices}
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

type vocabMeta struct {
	Terms []domain.TermStat  `json:"terms"`
	Stats domain.CorpusStats `json:"stats"`
}

// PutVocabulary stores a vocabulary together with a settings fingerprint.
// A later matrix build can compare fingerprints and refuse a vocabulary
// built under different tokenizer or n-gram settings.
func (s *BoltStore) PutVocabulary(v *domain.Vocabulary, fingerprint string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		meta := vocabMeta{Terms: v.Terms, Stats: v.Stats}
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		b := tx.Bucket(bucketVocab)
		if err := b.Put(keyTerms, data); err != nil {
			return err
		}
		return b.Put(keyFingerprint, []byte(fingerprint))
	})
}

func (s *BoltStore) GetVocabulary() (*domain.Vocabulary, string, error) {
	var meta vocabMeta
	var fingerprint string
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketVocab)
		data := b.Get(keyTerms)
		if data == nil {
			return fmt.Errorf("no vocabulary stored")
		}
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}
		fingerprint = string(b.Get(keyFingerprint))
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return domain.NewVocabulary(meta.Terms, meta.Stats), fingerprint, nil
}

func (s *BoltStore) PutMatrix(name string, m *domain.CSRMatrix) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(m)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketMatrices).Put([]byte(name), data)
	})
}

func (s *BoltStore) GetMatrix(name string) (*domain.CSRMatrix, error) {
	var m domain.CSRMatrix
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMatrices).Get([]byte(name))
		if data == nil {
			return fmt.Errorf("matrix not found: %s", name)
		}
		return json.Unmarshal(data, &m)
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *BoltStore) ListMatrices() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMatrices).ForEach(func(k, v []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

func (s *BoltStore) PutStats(stats domain.CorpusStats) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketStats).Put(keyStats, data)
	})
}

func (s *BoltStore) GetStats() (domain.CorpusStats, error) {
	var stats domain.CorpusStats
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keyStats)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &stats)
	})
	return stats, err
}

// CorpusID returns the stable identifier of this index, generating one on
// first use.
func (s *BoltStore) CorpusID() (string, error) {
	var id string
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketMeta)
		if data := b.Get(keyCorpusID); data != nil {
			id = string(data)
			return nil
		}
		id = uuid.NewString()
		return b.Put(keyCorpusID, []byte(id))
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
