package port

import "textvec/internal/domain"

// Reader converts one file's raw bytes into a collection of documents.
//
// The contract: a reader that assigns document IDs keeps them verbatim;
// documents returned with an empty ID receive a deterministic identifier
// derived from the file name and the document's position within the file
// ("<base>_<n>", one-based).
type Reader interface {
	Read(path string, data []byte) ([]domain.Document, error)
}
