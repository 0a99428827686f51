package fs

import (
	"os"
	"path/filepath"
	"testing"

	"textvec/internal/adapter/reader"
	"textvec/internal/domain"
	"textvec/internal/port"
)

func writeCorpus(t *testing.T, files map[string]string) []port.FileInfo {
	t.Helper()
	dir := t.TempDir()

	var infos []port.FileInfo
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		infos = append(infos, port.FileInfo{Path: path})
	}
	return infos
}

func collect(t *testing.T, it *FileIterator) []domain.Document {
	t.Helper()
	var docs []domain.Document
	for it.Next() {
		docs = append(docs, it.Doc())
	}
	if err := it.Err(); err != nil {
		t.Fatal(err)
	}
	return docs
}

func TestFileIteratorAssignsLineIDs(t *testing.T) {
	files := writeCorpus(t, map[string]string{"a.txt": "one\ntwo\nthree\n"})
	it := NewFileIterator(files, reader.NewLineReader())

	docs := collect(t, it)
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}

	want := []string{"a.txt_1", "a.txt_2", "a.txt_3"}
	for i, d := range docs {
		if d.ID != want[i] {
			t.Errorf("document %d: ID = %q, want %q", i, d.ID, want[i])
		}
	}
}

func TestFileIteratorKeepsReaderNames(t *testing.T) {
	files := writeCorpus(t, map[string]string{"a.txt": "ignored"})

	named := reader.ReaderFunc(func(path string, data []byte) ([]domain.Document, error) {
		return []domain.Document{
			{ID: "custom-1", Text: "first"},
			{ID: "custom-2", Text: "second"},
		}, nil
	})

	docs := collect(t, NewFileIterator(files, named))
	if docs[0].ID != "custom-1" || docs[1].ID != "custom-2" {
		t.Errorf("reader-assigned names were not kept: %v, %v", docs[0].ID, docs[1].ID)
	}
}

func TestFileIteratorPartialNames(t *testing.T) {
	files := writeCorpus(t, map[string]string{"b.txt": "ignored"})

	mixed := reader.ReaderFunc(func(path string, data []byte) ([]domain.Document, error) {
		return []domain.Document{
			{ID: "named", Text: "first"},
			{Text: "second"},
		}, nil
	})

	docs := collect(t, NewFileIterator(files, mixed))
	if docs[0].ID != "named" {
		t.Errorf("ID = %q, want named", docs[0].ID)
	}
	if docs[1].ID != "b.txt_2" {
		t.Errorf("ID = %q, want b.txt_2", docs[1].ID)
	}
}

func TestFileIteratorWholeFile(t *testing.T) {
	files := writeCorpus(t, map[string]string{"essay.txt": "some text"})

	docs := collect(t, NewFileIterator(files, reader.NewWholeFileReader()))
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0].ID != "essay.txt" {
		t.Errorf("ID = %q, want essay.txt", docs[0].ID)
	}
}

func TestFileIteratorFileCallback(t *testing.T) {
	files := writeCorpus(t, map[string]string{
		"a.txt": "one\n",
		"b.txt": "two\n",
	})

	var seen []string
	it := NewFileIterator(files, reader.NewLineReader(), WithFileCallback(func(path string) {
		seen = append(seen, filepath.Base(path))
	}))
	collect(t, it)

	if len(seen) != 2 {
		t.Errorf("callback fired %d times, want 2", len(seen))
	}
}

func TestFileIteratorMissingFile(t *testing.T) {
	it := NewFileIterator([]port.FileInfo{{Path: "/does/not/exist.txt"}}, reader.NewLineReader())

	if it.Next() {
		t.Error("expected Next to fail")
	}
	if it.Err() == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestFileIteratorEmptyList(t *testing.T) {
	it := NewFileIterator(nil, reader.NewLineReader())

	if it.Next() {
		t.Error("expected immediate exhaustion")
	}
	if it.Err() != nil {
		t.Errorf("unexpected error: %v", it.Err())
	}
}
