package unscramble

import (
	"strings"
	"unicode/utf8"

	"github.com/letterlab/unscramble/internal/utils"
	"github.com/letterlab/unscramble/pkg/dictionary"
)

// pickFunc chooses the replacement for one cleaned token. It returns the
// chosen candidate (empty keeps the token unchanged), the remaining
// alternates in candidate order, and whether the token counts as matched.
type pickFunc func(letters string) (string, []string, bool)

// runWordMode splits the input on whitespace and unscrambles every token
// on its own. Tokens without any candidate pass through unchanged so no
// input is ever dropped.
func runWordMode(dict *dictionary.Store, req Request) (string, int, []string) {
	return runPerSegment(req, wordPicker(dict, req))
}

// wordPicker takes the first multiset-matching candidate under the
// configured ordering. A token that is already a dictionary word always
// maps to itself.
func wordPicker(dict *dictionary.Store, req Request) pickFunc {
	return func(letters string) (string, []string, bool) {
		candidates := matches(dict, letters, req.MinWordLength, req.SortByLength)
		if utf8.RuneCountInString(letters) >= req.MinWordLength && dict.Contains(letters) {
			return letters, exclude(candidates, letters), true
		}
		if len(candidates) == 0 {
			return "", nil, false
		}
		return candidates[0], candidates[1:], true
	}
}

// runPerSegment walks the input segment by segment, applies pick to each
// token and reassembles the text. Separator runs are kept verbatim when
// PreserveSpaces is set, otherwise tokens are rejoined with single spaces.
func runPerSegment(req Request, pick pickFunc) (string, int, []string) {
	segments := splitSegments(req.Text)

	matched := 0
	var rawSuggestions []string
	var preserved strings.Builder
	var tokens []string

	for _, seg := range segments {
		if seg.sep {
			preserved.WriteString(seg.text)
			continue
		}

		replacement := seg.text
		letters := utils.Letters(seg.text)
		if letters != "" {
			candidate, alternates, ok := pick(letters)
			if ok {
				matched++
				if candidate != letters {
					replacement = rebuildToken(seg.text, candidate, req)
				} else if !req.PreservePunctuation {
					_, middle, _ := splitAround(seg.text)
					replacement = middle
				}
			}
			if req.SuggestAlternatives {
				rawSuggestions = append(rawSuggestions, capAlternates(alternates, req.MaxSuggestions)...)
			}
		}

		preserved.WriteString(replacement)
		tokens = append(tokens, replacement)
	}

	text := preserved.String()
	if !req.PreserveSpaces {
		text = strings.Join(tokens, " ")
	}
	return text, matched, rawSuggestions
}

// rebuildToken swaps the letter-bearing middle of a raw token for the
// candidate, re-applying the original capitalization pattern and, when
// configured, the surrounding punctuation.
func rebuildToken(raw, candidate string, req Request) string {
	cased := utils.ApplyCapitalization(candidate, utils.CapitalPositions(raw))
	if !req.PreservePunctuation {
		return cased
	}
	lead, _, trail := splitAround(raw)
	return lead + cased + trail
}

// exclude returns candidates without the given word, preserving order.
func exclude(candidates []string, word string) []string {
	var out []string
	for _, c := range candidates {
		if c != word {
			out = append(out, c)
		}
	}
	return out
}

// capAlternates bounds the per-token alternate list. A limit of 0 means
// no suggestions are wanted at all.
func capAlternates(alternates []string, limit int) []string {
	if limit == 0 {
		return nil
	}
	if limit > 0 && len(alternates) > limit {
		return alternates[:limit]
	}
	return alternates
}
