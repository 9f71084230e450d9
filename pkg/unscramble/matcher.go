package unscramble

import (
	"sort"
	"unicode/utf8"

	"github.com/letterlab/unscramble/pkg/dictionary"
)

// letterCounts builds a per-letter frequency table. Expects cleaned input
// (lowercase, letters only).
func letterCounts(s string) map[rune]int {
	counts := make(map[rune]int, len(s))
	for _, r := range s {
		counts[r]++
	}
	return counts
}

// containedIn reports whether every letter of word occurs in pool at
// least as often as it occurs in word (multiset containment).
func containedIn(word string, pool map[rune]int) bool {
	need := make(map[rune]int, len(word))
	for _, r := range word {
		need[r]++
		if need[r] > pool[r] {
			return false
		}
	}
	return true
}

// matches returns every dictionary word formable from the given letter
// pool with a length in [minLen, len(letters)]. The pool must be cleaned
// (see utils.Letters). Results keep dictionary scan order; with byLength
// set they are reordered by descending length, ties keeping scan order.
func matches(dict *dictionary.Store, letters string, minLen int, byLength bool) []string {
	poolLen := utf8.RuneCountInString(letters)
	if poolLen == 0 || poolLen < minLen {
		return nil
	}
	pool := letterCounts(letters)

	var found []string
	for _, word := range dict.Words() {
		wordLen := utf8.RuneCountInString(word)
		if wordLen < minLen || wordLen > poolLen {
			continue
		}
		if containedIn(word, pool) {
			found = append(found, word)
		}
	}

	if byLength {
		sort.SliceStable(found, func(i, j int) bool {
			return utf8.RuneCountInString(found[i]) > utf8.RuneCountInString(found[j])
		})
	}
	return found
}
