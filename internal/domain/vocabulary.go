package domain

import "sort"

// Vocabulary is the set of distinct terms observed across a corpus, with
// per-term statistics. Terms are kept in a deterministic order (ascending
// term count, ties broken by term) so that two builds over the same corpus
// produce identical vocabularies regardless of how the work was split.
type Vocabulary struct {
	Terms []TermStat
	Stats CorpusStats

	index map[string]int
}

// NewVocabulary builds a Vocabulary from term statistics. The terms slice is
// sorted in place into the canonical order.
func NewVocabulary(terms []TermStat, stats CorpusStats) *Vocabulary {
	sortTerms(terms)
	v := &Vocabulary{Terms: terms, Stats: stats}
	v.buildIndex()
	return v
}

func sortTerms(terms []TermStat) {
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].TermCount != terms[j].TermCount {
			return terms[i].TermCount < terms[j].TermCount
		}
		return terms[i].Term < terms[j].Term
	})
}

func (v *Vocabulary) buildIndex() {
	v.index = make(map[string]int, len(v.Terms))
	for i, t := range v.Terms {
		v.index[t.Term] = i
	}
}

// Index returns the column index of a term, or false if the term is not in
// the vocabulary.
func (v *Vocabulary) Index(term string) (int, bool) {
	if v.index == nil {
		v.buildIndex()
	}
	i, ok := v.index[term]
	return i, ok
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	return len(v.Terms)
}

// TermNames returns the terms in vocabulary order.
func (v *Vocabulary) TermNames() []string {
	names := make([]string, len(v.Terms))
	for i, t := range v.Terms {
		names[i] = t.Term
	}
	return names
}

// PruneOptions controls which terms survive pruning. Zero values disable the
// corresponding bound.
type PruneOptions struct {
	TermCountMin     int
	TermCountMax     int
	DocProportionMin float64
	DocProportionMax float64
	VocabTermMax     int
	Stopwords        []string
}

// Prune returns a new Vocabulary containing only the terms that satisfy the
// given bounds. Counts are never modified, only membership and ordering.
func (v *Vocabulary) Prune(opts PruneOptions) *Vocabulary {
	stop := make(map[string]struct{}, len(opts.Stopwords))
	for _, s := range opts.Stopwords {
		stop[s] = struct{}{}
	}

	ndocs := float64(v.Stats.TotalDocs)

	kept := make([]TermStat, 0, len(v.Terms))
	for _, t := range v.Terms {
		if _, isStop := stop[t.Term]; isStop {
			continue
		}
		if opts.TermCountMin > 0 && t.TermCount < opts.TermCountMin {
			continue
		}
		if opts.TermCountMax > 0 && t.TermCount > opts.TermCountMax {
			continue
		}
		if ndocs > 0 {
			prop := float64(t.DocCount) / ndocs
			if prop < opts.DocProportionMin {
				continue
			}
			if opts.DocProportionMax > 0 && prop > opts.DocProportionMax {
				continue
			}
		}
		kept = append(kept, t)
	}

	if opts.VocabTermMax > 0 && len(kept) > opts.VocabTermMax {
		// Keep the most frequent terms. Canonical order is ascending count,
		// so the tail of the slice holds the terms to keep.
		kept = kept[len(kept)-opts.VocabTermMax:]
	}

	out := make([]TermStat, len(kept))
	copy(out, kept)
	return NewVocabulary(out, v.Stats)
}
