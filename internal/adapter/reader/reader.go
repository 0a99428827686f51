// Package reader provides the built-in file readers. A reader turns one
// file's bytes into documents; naming rules follow the port.Reader contract.
package reader

import (
	"path/filepath"
	"strconv"
	"strings"

	"textvec/internal/domain"
)

// LineReader treats each line of a file as one document.
//
// By default documents are returned unnamed and the file iterator assigns
// "<base>_<line>" identifiers. With SkipBlank set, blank lines are dropped
// and the reader names the surviving documents itself so the identifiers
// still carry the original line numbers.
type LineReader struct {
	SkipBlank bool
}

func NewLineReader() *LineReader {
	return &LineReader{}
}

func (r *LineReader) Read(path string, data []byte) ([]domain.Document, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	docs := make([]domain.Document, 0, len(lines))
	base := filepath.Base(path)

	for i, line := range lines {
		doc := domain.Document{Text: line}
		if r.SkipBlank {
			if strings.TrimSpace(line) == "" {
				continue
			}
			doc.ID = base + "_" + strconv.Itoa(i+1)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// WholeFileReader treats an entire file as one document named after the
// file's base name.
type WholeFileReader struct{}

func NewWholeFileReader() *WholeFileReader {
	return &WholeFileReader{}
}

func (r *WholeFileReader) Read(path string, data []byte) ([]domain.Document, error) {
	return []domain.Document{{
		ID:   filepath.Base(path),
		Text: string(data),
	}}, nil
}

// ReaderFunc adapts a plain function to the port.Reader interface, for
// callers supplying their own format-specific reading logic.
type ReaderFunc func(path string, data []byte) ([]domain.Document, error)

func (f ReaderFunc) Read(path string, data []byte) ([]domain.Document, error) {
	return f(path, data)
}
