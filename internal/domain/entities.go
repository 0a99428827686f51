package domain

// Document is one unit of text treated as a single record for vectorization.
type Document struct {
	ID   string
	Text string
}

// TokenizedDoc is a document after tokenization.
type TokenizedDoc struct {
	ID     string
	Tokens []string
}

// TermStat holds the corpus-wide statistics for one vocabulary term.
type TermStat struct {
	Term      string `json:"term"`
	TermCount int    `json:"term_count"`
	DocCount  int    `json:"doc_count"`
}

// CorpusStats summarizes the corpus a vocabulary or matrix was built from.
type CorpusStats struct {
	TotalDocs   int `json:"total_docs"`
	TotalTokens int `json:"total_tokens"`
}
