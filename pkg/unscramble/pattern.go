package unscramble

import (
	"strings"

	"github.com/letterlab/unscramble/pkg/dictionary"
)

// runPatternMode evaluates three whole-input transforms: the text as-is,
// its full character reversal, and its word-order reversal. Whichever
// produces strictly the most exact dictionary words wins; ties keep the
// earlier transform, so the unchanged input always wins a tie.
func runPatternMode(dict *dictionary.Store, req Request) (string, int, []string) {
	transforms := []string{
		req.Text,
		reverseRunes(req.Text),
		reverseWordOrder(req.Text),
	}

	best := transforms[0]
	bestCount := countExactWords(dict, best)
	for _, t := range transforms[1:] {
		if c := countExactWords(dict, t); c > bestCount {
			best, bestCount = t, c
		}
	}

	var rawSuggestions []string
	if req.SuggestAlternatives {
		for _, tok := range strings.Fields(best) {
			if dict.Contains(tok) {
				rawSuggestions = append(rawSuggestions, strings.ToLower(tok))
			}
		}
	}
	return best, bestCount, rawSuggestions
}

// countExactWords counts whitespace-delimited tokens that are exact,
// case-insensitive dictionary members. No multiset matching here: the
// transform comparison is a plain recognizability heuristic.
func countExactWords(dict *dictionary.Store, text string) int {
	count := 0
	for _, tok := range strings.Fields(text) {
		if dict.Contains(tok) {
			count++
		}
	}
	return count
}

func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func reverseWordOrder(s string) string {
	fields := strings.Fields(s)
	for i, j := 0, len(fields)-1; i < j; i, j = i+1, j-1 {
		fields[i], fields[j] = fields[j], fields[i]
	}
	return strings.Join(fields, " ")
}
