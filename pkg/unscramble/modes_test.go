package unscramble

import (
	"strings"
	"testing"
)

func TestWordModePreserveSpaces(t *testing.T) {
	engine := newTestEngine("cats")

	req := baseRequest(ModeWord, "ctas \t ctas")
	result, err := engine.Run(req)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "cats \t cats" {
		t.Errorf("preserved spacing: got %q, want %q", result.UnscrambledText, "cats \t cats")
	}

	req.PreserveSpaces = false
	result, err = engine.Run(req)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "cats cats" {
		t.Errorf("collapsed spacing: got %q, want %q", result.UnscrambledText, "cats cats")
	}
}

func TestWordModePreservePunctuation(t *testing.T) {
	engine := newTestEngine("cats")

	req := baseRequest(ModeWord, "\"ctas,\"")
	result, err := engine.Run(req)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "\"cats,\"" {
		t.Errorf("kept punctuation: got %q, want %q", result.UnscrambledText, "\"cats,\"")
	}

	req.PreservePunctuation = false
	result, err = engine.Run(req)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "cats" {
		t.Errorf("stripped punctuation: got %q, want %q", result.UnscrambledText, "cats")
	}
}

func TestWordModeCapitalization(t *testing.T) {
	engine := newTestEngine("cats")

	testCases := []struct {
		input, want string
	}{
		{"Ctas", "Cats"},
		{"CTAS", "CATS"},
		{"ctas", "cats"},
	}
	for _, tc := range testCases {
		result, err := engine.Run(baseRequest(ModeWord, tc.input))
		if err != nil {
			t.Fatalf("Run(%q) returned error: %v", tc.input, err)
		}
		if result.UnscrambledText != tc.want {
			t.Errorf("Run(%q) = %q, want %q", tc.input, result.UnscrambledText, tc.want)
		}
	}
}

func TestWordModeUnmatchedTokenKept(t *testing.T) {
	// a token with no candidate must pass through verbatim, punctuation
	// and all: input is never dropped
	engine := newTestEngine("cats")

	result, err := engine.Run(baseRequest(ModeWord, "ctas zq!x ctas"))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "cats zq!x cats" {
		t.Errorf("got %q, want %q", result.UnscrambledText, "cats zq!x cats")
	}
	if result.WordsFound != 2 {
		t.Errorf("WordsFound = %d, want 2", result.WordsFound)
	}
}

func TestWordModeSortByLength(t *testing.T) {
	// with sorting on, the longest formable word wins; otherwise the
	// first dictionary hit does
	engine := newTestEngine("act", "cats")

	req := baseRequest(ModeWord, "stca")
	req.SortByLength = true
	result, err := engine.Run(req)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "cats" {
		t.Errorf("sorted: got %q, want %q", result.UnscrambledText, "cats")
	}

	req.SortByLength = false
	result, err = engine.Run(req)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "act" {
		t.Errorf("scan order: got %q, want %q", result.UnscrambledText, "act")
	}
}

func TestAnagramModeLongInputFallsBack(t *testing.T) {
	// 12 letters exceed the full-pool threshold, so the mode degrades to
	// per-token processing
	engine := newTestEngine("cats")

	result, err := engine.Run(baseRequest(ModeAnagram, "ctas ctas ctas"))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "cats cats cats" {
		t.Errorf("got %q, want %q", result.UnscrambledText, "cats cats cats")
	}
	if result.WordsFound != 3 {
		t.Errorf("WordsFound = %d, want 3", result.WordsFound)
	}
}

func TestAnagramModeNoFullLengthMatch(t *testing.T) {
	// "cat" fits inside the pool but does not use every letter, so the
	// original text comes back
	engine := newTestEngine("cat")

	result, err := engine.Run(baseRequest(ModeAnagram, "catzz"))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "catzz" {
		t.Errorf("got %q, want input unchanged", result.UnscrambledText)
	}
	if result.WordsFound != 0 {
		t.Errorf("WordsFound = %d, want 0", result.WordsFound)
	}
}

func TestAnagramModeMinWordLengthBound(t *testing.T) {
	// the signature index must not resurrect words the matcher would
	// reject: a pool shorter than the minimum length never matches
	engine := newTestEngine("ab")

	result, err := engine.Run(baseRequest(ModeAnagram, "ba"))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "ba" {
		t.Errorf("got %q, want input unchanged", result.UnscrambledText)
	}
	if result.WordsFound != 0 {
		t.Errorf("WordsFound = %d, want 0", result.WordsFound)
	}
	if result.Confidence != 0 {
		t.Errorf("Confidence = %d, want 0", result.Confidence)
	}

	req := baseRequest(ModeAnagram, "ba")
	req.MinWordLength = 2
	result, err = engine.Run(req)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "ab" {
		t.Errorf("min length 2: got %q, want %q", result.UnscrambledText, "ab")
	}
	if result.WordsFound != 1 {
		t.Errorf("min length 2: WordsFound = %d, want 1", result.WordsFound)
	}
}

func TestAnagramModeMissSuggestsShorterMatches(t *testing.T) {
	// no word consumes the whole pool, but partial matches still show up
	// as suggestions while the text stays unchanged
	engine := newTestEngine("cat", "act")

	result, err := engine.Run(baseRequest(ModeAnagram, "catzz"))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "catzz" {
		t.Errorf("got %q, want input unchanged", result.UnscrambledText)
	}
	if result.WordsFound != 0 {
		t.Errorf("WordsFound = %d, want 0", result.WordsFound)
	}
	want := []string{"cat", "act"}
	if len(result.Suggestions) != len(want) {
		t.Fatalf("Suggestions = %v, want %v", result.Suggestions, want)
	}
	for i := range want {
		if result.Suggestions[i] != want[i] {
			t.Errorf("Suggestions[%d] = %q, want %q", i, result.Suggestions[i], want[i])
		}
	}

	req := baseRequest(ModeAnagram, "catzz")
	req.SuggestAlternatives = false
	result, err = engine.Run(req)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(result.Suggestions) != 0 {
		t.Errorf("alternatives disabled, still got %v", result.Suggestions)
	}
}

func TestAnagramModeMultiWordPool(t *testing.T) {
	// spaces and punctuation vanish from the pool before matching
	engine := newTestEngine("listen")

	result, err := engine.Run(baseRequest(ModeAnagram, "nil, set"))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "listen" {
		t.Errorf("got %q, want %q", result.UnscrambledText, "listen")
	}
	if result.Confidence != 100 {
		t.Errorf("Confidence = %d, want 100", result.Confidence)
	}
}

func TestSmartModeBoundaryPreferred(t *testing.T) {
	// "bales" comes first in scan order, but only "sable" keeps the
	// token's first and last letter
	engine := newTestEngine("bales", "sable")

	req := baseRequest(ModeSmart, "sbale")
	req.SortByLength = false
	result, err := engine.Run(req)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "sable" {
		t.Errorf("got %q, want %q", result.UnscrambledText, "sable")
	}
}

func TestSmartModeBoundaryLaw(t *testing.T) {
	engine := newTestEngine("bales", "sable", "ables", "blase")

	inputs := []string{"sbale", "balse", "slabe"}
	for _, input := range inputs {
		result, err := engine.Run(baseRequest(ModeSmart, input))
		if err != nil {
			t.Fatalf("Run(%q) returned error: %v", input, err)
		}
		out := strings.ToLower(result.UnscrambledText)
		if out == input {
			continue
		}
		hasBoundary := false
		for _, w := range []string{"bales", "sable", "ables", "blase"} {
			if w[0] == input[0] && w[len(w)-1] == input[len(input)-1] {
				hasBoundary = true
				break
			}
		}
		if !hasBoundary {
			// fallback to plain multiset order is allowed here
			continue
		}
		if out[0] != input[0] || out[len(out)-1] != input[len(input)-1] {
			t.Errorf("Run(%q) = %q: boundary letters not preserved", input, out)
		}
	}
}

func TestSmartModeFallbackWithoutBoundary(t *testing.T) {
	// nothing keeps s...e, so the first multiset match is used instead
	engine := newTestEngine("bales")

	result, err := engine.Run(baseRequest(ModeSmart, "sbale"))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "bales" {
		t.Errorf("got %q, want %q", result.UnscrambledText, "bales")
	}
}

func TestSmartModeShortTokenPassthrough(t *testing.T) {
	// three letters or fewer never get touched, even with a known anagram
	engine := newTestEngine("cat", "act")

	result, err := engine.Run(baseRequest(ModeSmart, "tca"))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "tca" {
		t.Errorf("got %q, want input unchanged", result.UnscrambledText)
	}
	if result.WordsFound != 0 {
		t.Errorf("WordsFound = %d, want 0", result.WordsFound)
	}
}

func TestSmartModeShortDictionaryWordCounted(t *testing.T) {
	// short tokens are still left alone, but a valid word among them
	// counts as matched instead of dragging confidence to zero
	engine := newTestEngine("cat", "tiger")

	result, err := engine.Run(baseRequest(ModeSmart, "cat"))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "cat" {
		t.Errorf("got %q, want input unchanged", result.UnscrambledText)
	}
	if result.WordsFound != 1 {
		t.Errorf("WordsFound = %d, want 1", result.WordsFound)
	}
	if result.Confidence != 100 {
		t.Errorf("Confidence = %d, want 100", result.Confidence)
	}

	result, err = engine.Run(baseRequest(ModeSmart, "cat tgier"))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "cat tiger" {
		t.Errorf("got %q, want %q", result.UnscrambledText, "cat tiger")
	}
	if result.WordsFound != 2 {
		t.Errorf("WordsFound = %d, want 2", result.WordsFound)
	}
}

func TestPatternModeTieKeepsOriginal(t *testing.T) {
	// all transforms score zero: the unchanged input wins the tie
	engine := newTestEngine("unrelated")

	result, err := engine.Run(baseRequest(ModePattern, "abc def"))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "abc def" {
		t.Errorf("got %q, want input unchanged", result.UnscrambledText)
	}
	if result.WordsFound != 0 {
		t.Errorf("WordsFound = %d, want 0", result.WordsFound)
	}
}

func TestPatternModeOriginalWinsWhenRecognizable(t *testing.T) {
	engine := newTestEngine("hello", "world")

	result, err := engine.Run(baseRequest(ModePattern, "hello world"))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "hello world" {
		t.Errorf("got %q, want input unchanged", result.UnscrambledText)
	}
	if result.WordsFound != 2 {
		t.Errorf("WordsFound = %d, want 2", result.WordsFound)
	}
}

func TestPatternModeExactMatchOnly(t *testing.T) {
	// pattern mode never rearranges letters inside a token: "tca" is not
	// recognized even though "cat" is known
	engine := newTestEngine("cat")

	result, err := engine.Run(baseRequest(ModePattern, "tca"))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "tca" {
		t.Errorf("got %q, want input unchanged", result.UnscrambledText)
	}
	if result.WordsFound != 0 {
		t.Errorf("WordsFound = %d, want 0", result.WordsFound)
	}
}

func TestWordModeAlternatesCollected(t *testing.T) {
	engine := newTestEngine("cat", "act", "tac")

	req := baseRequest(ModeWord, "tca")
	result, err := engine.Run(req)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.UnscrambledText != "cat" {
		t.Errorf("got %q, want %q", result.UnscrambledText, "cat")
	}
	want := []string{"act", "tac"}
	if len(result.Suggestions) != len(want) {
		t.Fatalf("Suggestions = %v, want %v", result.Suggestions, want)
	}
	for i := range want {
		if result.Suggestions[i] != want[i] {
			t.Errorf("Suggestions[%d] = %q, want %q", i, result.Suggestions[i], want[i])
		}
	}

	req.SuggestAlternatives = false
	result, err = engine.Run(req)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(result.Suggestions) != 0 {
		t.Errorf("alternatives disabled, still got %v", result.Suggestions)
	}
}
