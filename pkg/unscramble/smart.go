package unscramble

import (
	"unicode/utf8"

	"github.com/letterlab/unscramble/pkg/dictionary"
)

// smartPassthroughLen is the token length at or below which Smart mode
// leaves tokens alone: too few interior letters to be scrambled.
const smartPassthroughLen = 3

// runSmartMode models "interior-only scramble" puzzles: for tokens longer
// than three letters the first and last letter are taken as fixed, so
// candidates must share both boundary letters. When no boundary-matching
// candidate exists the first plain multiset match is used instead.
func runSmartMode(dict *dictionary.Store, req Request) (string, int, []string) {
	return runPerSegment(req, smartPicker(dict, req))
}

func smartPicker(dict *dictionary.Store, req Request) pickFunc {
	return func(letters string) (string, []string, bool) {
		runes := []rune(letters)
		if len(runes) <= smartPassthroughLen {
			// Short tokens are never rearranged, but one that already is
			// a dictionary word still counts toward confidence.
			if len(runes) >= req.MinWordLength && dict.Contains(letters) {
				return letters, nil, true
			}
			return "", nil, false
		}

		candidates := matches(dict, letters, req.MinWordLength, req.SortByLength)
		if utf8.RuneCountInString(letters) >= req.MinWordLength && dict.Contains(letters) {
			return letters, exclude(candidates, letters), true
		}
		if len(candidates) == 0 {
			return "", nil, false
		}

		first, last := runes[0], runes[len(runes)-1]
		for _, c := range candidates {
			cr := []rune(c)
			if cr[0] == first && cr[len(cr)-1] == last {
				return c, exclude(candidates, c), true
			}
		}

		// No candidate keeps the boundary letters, fall back to the
		// plain multiset ordering.
		return candidates[0], candidates[1:], true
	}
}
