package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"textvec/internal/domain"
	"textvec/internal/port"
)

// FileIterator lazily yields documents from a list of corpus files. A file
// is opened and handed to the reader only when the consumer advances past
// the documents of the previous file, so at most one file's documents are
// held in memory at a time.
type FileIterator struct {
	files  []port.FileInfo
	reader port.Reader
	onFile func(path string)

	fileIdx int
	pending []domain.Document
	cur     domain.Document
	err     error
}

type FileIteratorOption func(*FileIterator)

// WithFileCallback registers a hook invoked once per file, before the file
// is read. Used by callers to report progress.
func WithFileCallback(fn func(path string)) FileIteratorOption {
	return func(it *FileIterator) {
		it.onFile = fn
	}
}

func NewFileIterator(files []port.FileInfo, reader port.Reader, opts ...FileIteratorOption) *FileIterator {
	it := &FileIterator{
		files:  files,
		reader: reader,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Next advances to the next document. It returns false when the corpus is
// exhausted or an error occurred; check Err afterwards.
func (it *FileIterator) Next() bool {
	if it.err != nil {
		return false
	}

	for len(it.pending) == 0 {
		if it.fileIdx >= len(it.files) {
			return false
		}

		file := it.files[it.fileIdx]
		it.fileIdx++

		if it.onFile != nil {
			it.onFile(file.Path)
		}

		data, err := os.ReadFile(file.Path)
		if err != nil {
			it.err = fmt.Errorf("failed to read %s: %w", file.Path, err)
			return false
		}

		docs, err := it.reader.Read(file.Path, data)
		if err != nil {
			it.err = fmt.Errorf("reader failed on %s: %w", file.Path, err)
			return false
		}

		assignFallbackIDs(file.Path, docs)
		it.pending = docs
	}

	it.cur = it.pending[0]
	it.pending = it.pending[1:]
	return true
}

// Doc returns the current document.
func (it *FileIterator) Doc() domain.Document {
	return it.cur
}

// Err returns the first error encountered while iterating.
func (it *FileIterator) Err() error {
	return it.err
}

// assignFallbackIDs fills empty document IDs with identifiers derived from
// the file name and the document's one-based position within the file. A
// reader that names its documents keeps those names verbatim.
func assignFallbackIDs(path string, docs []domain.Document) {
	base := filepath.Base(path)
	for i := range docs {
		if docs[i].ID == "" {
			docs[i].ID = fmt.Sprintf("%s_%d", base, i+1)
		}
	}
}
