package utils

import (
	"sort"
	"strings"
	"unicode"
)

// Letters strips everything but letters from s and lowercases the rest.
// The result is the canonical form every matcher routine works on.
func Letters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// SortLetters returns the sorted-letter signature of s. Two strings are
// anagrams of each other exactly when their signatures are equal.
// Expects cleaned input (see Letters).
func SortLetters(s string) string {
	runes := []rune(s)
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}

// CapitalPositions records which letter positions of s are uppercase.
// Non-letter runes are skipped so the pattern lines up with Letters(s).
func CapitalPositions(s string) []bool {
	positions := make([]bool, 0, len(s))
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		positions = append(positions, unicode.IsUpper(r))
	}
	return positions
}

// ApplyCapitalization re-applies an original capitalization pattern to a
// lowercase replacement word so "CTAS" still comes back as "CATS".
func ApplyCapitalization(word string, capitalPositions []bool) string {
	if len(capitalPositions) == 0 {
		return word
	}
	wordRunes := []rune(word)
	for i := 0; i < len(wordRunes) && i < len(capitalPositions); i++ {
		if capitalPositions[i] {
			wordRunes[i] = unicode.ToUpper(wordRunes[i])
		}
	}
	return string(wordRunes)
}
