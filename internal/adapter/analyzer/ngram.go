package analyzer

import "strings"

// NGramSep joins the parts of a generated n-gram.
const NGramSep = "_"

// NGrams expands a token sequence into all n-grams with length between min
// and max inclusive, preserving left-to-right order within each length.
// min = max = 1 returns the tokens unchanged.
func NGrams(tokens []string, min, max int) []string {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	if min == 1 && max == 1 {
		return tokens
	}

	var out []string
	for i := range tokens {
		for n := min; n <= max && i+n <= len(tokens); n++ {
			out = append(out, strings.Join(tokens[i:i+n], NGramSep))
		}
	}
	return out
}
