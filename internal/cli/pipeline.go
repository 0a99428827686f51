package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"

	"textvec/config"
	"textvec/internal/adapter/analyzer"
	"textvec/internal/adapter/fs"
	"textvec/internal/adapter/reader"
	"textvec/internal/port"
	"textvec/internal/usecase"
)

// corpusFiles resolves the target directory and walks it with the
// configured glob patterns.
func corpusFiles(args []string) (string, []port.FileInfo, error) {
	path := rootDir
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return "", nil, fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", nil, fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return "", nil, fmt.Errorf("path is not a directory: %s", path)
	}

	walker := fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes)
	files, err := walker.Walk(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return path, files, nil
}

func newReader(cfg *config.Config) (port.Reader, error) {
	switch cfg.Corpus.Reader {
	case "", "lines":
		return reader.NewLineReader(), nil
	case "file":
		return reader.NewWholeFileReader(), nil
	default:
		return nil, fmt.Errorf("unknown reader %q", cfg.Corpus.Reader)
	}
}

func newTokenizer(cfg *config.Config) *analyzer.Tokenizer {
	var opts []analyzer.TokenizerOption
	if !cfg.Tokenize.Lowercase {
		opts = append(opts, analyzer.WithPreprocess(nil))
	}
	if cfg.Tokenize.MinTokenLen > 1 {
		opts = append(opts, analyzer.WithMinTokenLen(cfg.Tokenize.MinTokenLen))
	}
	if len(cfg.Tokenize.Stopwords) > 0 {
		opts = append(opts, analyzer.WithStopwords(cfg.Tokenize.Stopwords))
	}
	return analyzer.NewTokenizer(opts...)
}

// newSourceFactory wires the reader and tokenizer into a per-chunk token
// stream factory, reporting per-file progress to the given bar.
func newSourceFactory(rd port.Reader, tok *analyzer.Tokenizer, bar *progressbar.ProgressBar) usecase.SourceFactory {
	var mu sync.Mutex
	processed := 0

	return func(files []port.FileInfo) port.TokenSource {
		docs := fs.NewFileIterator(files, rd, fs.WithFileCallback(func(string) {
			if bar == nil {
				return
			}
			mu.Lock()
			processed++
			bar.Set(processed)
			mu.Unlock()
		}))
		return analyzer.NewTokenIterator(docs, tok,
			analyzer.WithNGrams(cfg.Vocab.NGramMin, cfg.Vocab.NGramMax))
	}
}

func newProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func newRunner() *usecase.Runner {
	return usecase.NewRunner(cfg.Parallel.Workers, cfg.Parallel.Chunks, log)
}
