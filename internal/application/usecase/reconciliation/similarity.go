// Package reconciliation contains the payment-to-invoice reconciliation
// engine and its use cases.
package reconciliation

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Similarity measures how alike two strings are on a [0,1] scale. The
// resolver is agnostic to the algorithm; implementations can be swapped
// without touching it.
type Similarity interface {
	Score(a, b string) float64
}

// LevenshteinSimilarity scores strings by edit distance normalized over the
// longer input.
type LevenshteinSimilarity struct{}

// Score implements the Similarity interface.
func (LevenshteinSimilarity) Score(a, b string) float64 {
	a = normalizeText(a)
	b = normalizeText(b)

	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}

	runesA := []rune(a)
	runesB := []rune(b)
	distance := levenshtein.DistanceForStrings(runesA, runesB, levenshtein.DefaultOptionsWithSub)

	longest := len(runesA)
	if len(runesB) > longest {
		longest = len(runesB)
	}

	return 1 - float64(distance)/float64(longest)
}

// TokenSetSimilarity scores strings by the overlap of their word sets
// (Jaccard index). Word order and repetition do not matter, which suits
// payer names quoted in varying orders ("ACME Corp" vs "Corp ACME").
type TokenSetSimilarity struct{}

// Score implements the Similarity interface.
func (TokenSetSimilarity) Score(a, b string) float64 {
	tokensA := tokenSet(a)
	tokensB := tokenSet(b)

	if len(tokensA) == 0 && len(tokensB) == 0 {
		return 1
	}
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	intersection := 0
	for token := range tokensA {
		if _, ok := tokensB[token]; ok {
			intersection++
		}
	}

	union := len(tokensA) + len(tokensB) - intersection
	return float64(intersection) / float64(union)
}

// normalizeText lowercases and collapses runs of whitespace to single spaces.
// Reference comparison and similarity scoring share this normalization.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// tokenSet splits normalized text into its set of words.
func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(s))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
