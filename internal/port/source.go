package port

import "textvec/internal/domain"

// DocSource lazily yields documents, one at a time. Usage mirrors
// bufio.Scanner: call Next until it returns false, then check Err.
type DocSource interface {
	Next() bool
	Doc() domain.Document
	Err() error
}

// TokenSource lazily yields tokenized documents.
type TokenSource interface {
	Next() bool
	Doc() domain.TokenizedDoc
	Err() error
}
