package analyzer

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenizerLowercasesByDefault(t *testing.T) {
	tok := NewTokenizer()

	tokens := tok.Tokenize("The Quick Brown FOX")
	want := []string{"the", "quick", "brown", "fox"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("got %v, want %v", tokens, want)
	}
}

func TestTokenizerCustomPreprocess(t *testing.T) {
	tok := NewTokenizer(WithPreprocess(strings.ToUpper))

	tokens := tok.Tokenize("hello world")
	want := []string{"HELLO", "WORLD"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("got %v, want %v", tokens, want)
	}
}

func TestTokenizerNoPreprocess(t *testing.T) {
	tok := NewTokenizer(WithPreprocess(nil))

	tokens := tok.Tokenize("Hello World")
	want := []string{"Hello", "World"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("got %v, want %v", tokens, want)
	}
}

func TestTokenizerStopwords(t *testing.T) {
	tok := NewTokenizer(WithStopwords([]string{"the", "a"}))

	tokens := tok.Tokenize("the quick brown fox saw a dog")
	for _, token := range tokens {
		if token == "the" || token == "a" {
			t.Errorf("stopword %q not removed: %v", token, tokens)
		}
	}
	if len(tokens) != 5 {
		t.Errorf("expected 5 tokens, got %d: %v", len(tokens), tokens)
	}
}

func TestTokenizerMinTokenLen(t *testing.T) {
	tok := NewTokenizer(WithMinTokenLen(3))

	tokens := tok.Tokenize("go is a fine language")
	want := []string{"fine", "language"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("got %v, want %v", tokens, want)
	}
}

func TestTokenizerPunctuationAndDigits(t *testing.T) {
	tok := NewTokenizer()

	tokens := tok.Tokenize("c3po, r2-d2!")
	want := []string{"c3po", "r2", "d2"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("got %v, want %v", tokens, want)
	}
}

func TestTokenizerEmptyInput(t *testing.T) {
	tok := NewTokenizer()

	if tokens := tok.Tokenize(""); len(tokens) != 0 {
		t.Errorf("expected no tokens, got %v", tokens)
	}
	if tokens := tok.Tokenize("  ...  "); len(tokens) != 0 {
		t.Errorf("expected no tokens, got %v", tokens)
	}
}

func TestNGrams(t *testing.T) {
	tokens := []string{"new", "york", "city"}

	got := NGrams(tokens, 1, 2)
	want := []string{"new", "new_york", "york", "york_city", "city"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNGramsUnigramPassthrough(t *testing.T) {
	tokens := []string{"a", "b"}

	got := NGrams(tokens, 1, 1)
	if !reflect.DeepEqual(got, tokens) {
		t.Errorf("got %v, want %v", got, tokens)
	}
}

func TestNGramsBigramsOnly(t *testing.T) {
	tokens := []string{"a", "b", "c"}

	got := NGrams(tokens, 2, 2)
	want := []string{"a_b", "b_c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNGramsShortInput(t *testing.T) {
	got := NGrams([]string{"only"}, 2, 3)
	if len(got) != 0 {
		t.Errorf("expected no n-grams, got %v", got)
	}
}
