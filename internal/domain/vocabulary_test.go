package domain

import "testing"

func testVocabulary() *Vocabulary {
	terms := []TermStat{
		{Term: "common", TermCount: 50, DocCount: 9},
		{Term: "rare", TermCount: 1, DocCount: 1},
		{Term: "medium", TermCount: 10, DocCount: 5},
		{Term: "also_rare", TermCount: 1, DocCount: 1},
	}
	return NewVocabulary(terms, CorpusStats{TotalDocs: 10, TotalTokens: 62})
}

func TestVocabularyCanonicalOrder(t *testing.T) {
	v := testVocabulary()

	want := []string{"also_rare", "rare", "medium", "common"}
	got := v.TermNames()
	if len(got) != len(want) {
		t.Fatalf("expected %d terms, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestVocabularyIndex(t *testing.T) {
	v := testVocabulary()

	i, ok := v.Index("medium")
	if !ok {
		t.Fatal("expected 'medium' to be present")
	}
	if v.Terms[i].Term != "medium" {
		t.Errorf("index points at %q", v.Terms[i].Term)
	}

	if _, ok := v.Index("missing"); ok {
		t.Error("expected 'missing' to be absent")
	}
}

func TestPruneTermCountMin(t *testing.T) {
	v := testVocabulary().Prune(PruneOptions{TermCountMin: 2})

	if v.Len() != 2 {
		t.Fatalf("expected 2 terms, got %d: %v", v.Len(), v.TermNames())
	}
	if _, ok := v.Index("rare"); ok {
		t.Error("'rare' should have been pruned")
	}
}

func TestPruneDocProportion(t *testing.T) {
	// 'common' appears in 9 of 10 docs.
	v := testVocabulary().Prune(PruneOptions{DocProportionMax: 0.8})

	if _, ok := v.Index("common"); ok {
		t.Error("'common' should have been pruned by doc proportion")
	}
	if _, ok := v.Index("medium"); !ok {
		t.Error("'medium' should have survived")
	}
}

func TestPruneVocabTermMax(t *testing.T) {
	v := testVocabulary().Prune(PruneOptions{VocabTermMax: 2})

	if v.Len() != 2 {
		t.Fatalf("expected 2 terms, got %d", v.Len())
	}
	// The most frequent terms survive.
	for _, term := range []string{"common", "medium"} {
		if _, ok := v.Index(term); !ok {
			t.Errorf("expected %q to survive, kept %v", term, v.TermNames())
		}
	}
}

func TestPruneStopwords(t *testing.T) {
	v := testVocabulary().Prune(PruneOptions{Stopwords: []string{"common"}})

	if _, ok := v.Index("common"); ok {
		t.Error("stopword 'common' should have been dropped")
	}
	if v.Len() != 3 {
		t.Errorf("expected 3 terms, got %d", v.Len())
	}
}

func TestPruneKeepsCounts(t *testing.T) {
	v := testVocabulary().Prune(PruneOptions{TermCountMin: 2})

	i, ok := v.Index("medium")
	if !ok {
		t.Fatal("'medium' missing after prune")
	}
	if v.Terms[i].TermCount != 10 || v.Terms[i].DocCount != 5 {
		t.Errorf("counts changed by pruning: %+v", v.Terms[i])
	}
	if v.Stats.TotalDocs != 10 {
		t.Errorf("corpus stats changed by pruning: %+v", v.Stats)
	}
}
