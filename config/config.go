package config

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the textvec tool.
type Config struct {
	Corpus   CorpusConfig   `yaml:"corpus"`
	Tokenize TokenizeConfig `yaml:"tokenize"`
	Vocab    VocabConfig    `yaml:"vocab"`
	DTM      DTMConfig      `yaml:"dtm"`
	TCM      TCMConfig      `yaml:"tcm"`
	Parallel ParallelConfig `yaml:"parallel"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CorpusConfig selects the corpus files and how each file becomes documents.
type CorpusConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Reader   string   `yaml:"reader"` // "lines" or "file"
}

// TokenizeConfig holds tokenization settings.
type TokenizeConfig struct {
	Lowercase   bool     `yaml:"lowercase"`
	MinTokenLen int      `yaml:"min_token_len"`
	Stopwords   []string `yaml:"stopwords"`
}

// VocabConfig holds vocabulary construction and pruning settings.
type VocabConfig struct {
	NGramMin         int     `yaml:"ngram_min"`
	NGramMax         int     `yaml:"ngram_max"`
	TermCountMin     int     `yaml:"term_count_min"`
	TermCountMax     int     `yaml:"term_count_max"`
	DocProportionMin float64 `yaml:"doc_proportion_min"`
	DocProportionMax float64 `yaml:"doc_proportion_max"`
	VocabTermMax     int     `yaml:"vocab_term_max"`
}

// DTMConfig holds document-term matrix settings.
type DTMConfig struct {
	Hashing    bool `yaml:"hashing"`
	HashBits   uint `yaml:"hash_bits"`
	SignedHash bool `yaml:"signed_hash"`
	TfIdf      bool `yaml:"tfidf"`
}

// TCMConfig holds term-co-occurrence matrix settings.
type TCMConfig struct {
	Window    int    `yaml:"window"`
	Weighting string `yaml:"weighting"` // "inverse" or "uniform"
	Context   string `yaml:"context"`   // "symmetric" or "right"
}

// ParallelConfig bounds the worker pool. Workers 0 means one worker per CPU;
// Chunks 0 means one chunk per worker.
type ParallelConfig struct {
	Workers int `yaml:"workers"`
	Chunks  int `yaml:"chunks"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/.git/**", "**/.textvec/**"},
			Reader:   "lines",
		},
		Tokenize: TokenizeConfig{
			Lowercase:   true,
			MinTokenLen: 1,
		},
		Vocab: VocabConfig{
			NGramMin:         1,
			NGramMax:         1,
			TermCountMin:     1,
			DocProportionMax: 1.0,
		},
		DTM: DTMConfig{
			HashBits: 18,
		},
		TCM: TCMConfig{
			Window:    5,
			Weighting: "inverse",
			Context:   "symmetric",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for textvec.yaml,
// then .textvec/config.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "textvec.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".textvec", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Fingerprint identifies the settings that shape the token stream. A
// vocabulary is only reusable by a matrix build when fingerprints match.
func (c *Config) Fingerprint() string {
	subset := struct {
		Corpus   CorpusConfig
		Tokenize TokenizeConfig
		NGramMin int
		NGramMax int
	}{c.Corpus, c.Tokenize, c.Vocab.NGramMin, c.Vocab.NGramMax}

	data, _ := json.Marshal(subset)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:8])
}

// IndexDBPath returns the path to the index database.
func IndexDBPath(dir string) string {
	return filepath.Join(dir, ".textvec", "index.db")
}

// EnsureDir ensures the .textvec directory exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".textvec"), 0755)
}
