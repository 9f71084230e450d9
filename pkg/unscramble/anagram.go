package unscramble

import (
	"unicode/utf8"

	"github.com/letterlab/unscramble/internal/utils"
	"github.com/letterlab/unscramble/pkg/dictionary"
)

// maxAnagramPoolLetters bounds the full-pool search. Beyond this the mode
// falls back to per-token processing to keep the cost interactive.
const maxAnagramPoolLetters = 10

// runAnagramMode treats the whole input as one letter pool and looks for
// a word using every letter. The sorted-letter signature index answers
// the full-length lookup directly; the scan only runs for alternates.
func runAnagramMode(dict *dictionary.Store, req Request) (string, int, []string) {
	letters := utils.Letters(req.Text)
	poolLen := utf8.RuneCountInString(letters)
	if poolLen > maxAnagramPoolLetters {
		return runWordMode(dict, req)
	}

	// The index lookup must agree with the matcher's candidate set, so
	// the minimum length bound applies to the full pool as well.
	var full string
	if poolLen >= req.MinWordLength {
		if hits := dict.Anagrams(letters); len(hits) > 0 {
			full = hits[0]
		}
	}
	if full == "" {
		var alternates []string
		if req.SuggestAlternatives {
			alternates = capAlternates(matches(dict, letters, req.MinWordLength, req.SortByLength), req.MaxSuggestions)
		}
		return req.Text, 0, alternates
	}

	var alternates []string
	if req.SuggestAlternatives {
		for _, c := range matches(dict, letters, req.MinWordLength, req.SortByLength) {
			if c == full {
				continue
			}
			alternates = append(alternates, c)
		}
		alternates = capAlternates(alternates, req.MaxSuggestions)
	}

	// The whole pool matched, so every original token is accounted for.
	return full, countTokens(req.Text), alternates
}
