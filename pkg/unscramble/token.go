package unscramble

import (
	"strings"
	"unicode"
)

// segment is a maximal run of either whitespace or non-whitespace input.
// Separator runs are kept verbatim so reconstruction can preserve the
// original spacing exactly.
type segment struct {
	text string
	sep  bool
}

// splitSegments cuts text into alternating word and separator segments.
// Joining the segments back together reproduces the input byte for byte.
func splitSegments(text string) []segment {
	var segments []segment
	var current strings.Builder
	currentSep := false

	flush := func() {
		if current.Len() > 0 {
			segments = append(segments, segment{text: current.String(), sep: currentSep})
			current.Reset()
		}
	}

	for _, r := range text {
		isSep := unicode.IsSpace(r)
		if current.Len() > 0 && isSep != currentSep {
			flush()
		}
		currentSep = isSep
		current.WriteRune(r)
	}
	flush()
	return segments
}

// countTokens counts whitespace-delimited tokens, the denominator for
// confidence scoring.
func countTokens(text string) int {
	return len(strings.Fields(text))
}

// splitAround cuts a raw segment into its leading non-letter run, the
// letter-bearing middle, and the trailing non-letter run. Used to
// re-attach punctuation around a replacement word.
func splitAround(seg string) (lead, middle, trail string) {
	runes := []rune(seg)
	start := 0
	for start < len(runes) && !unicode.IsLetter(runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && !unicode.IsLetter(runes[end-1]) {
		end--
	}
	return string(runes[:start]), string(runes[start:end]), string(runes[end:])
}
