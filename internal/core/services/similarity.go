package services

import "github.com/pmezard/go-difflib/difflib"

// similarityRatio returns the sequence-matcher ratio of a and b over
// their runes: 2*M / (len(a)+len(b)). Two empty strings are identical.
func similarityRatio(a, b string) float64 {
	return difflib.NewMatcher(runeStrings(a), runeStrings(b)).Ratio()
}

func runeStrings(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
