package unscramble

import (
	"errors"
	"fmt"
)

// Mode selects the unscrambling strategy.
type Mode string

const (
	// ModeWord unscrambles each whitespace-delimited token independently.
	ModeWord Mode = "word"
	// ModeAnagram treats the whole input as a single letter pool.
	ModeAnagram Mode = "anagram"
	// ModeSmart keeps boundary letters fixed for tokens longer than three letters.
	ModeSmart Mode = "smart"
	// ModePattern tries whole-input transforms and keeps the most recognizable one.
	ModePattern Mode = "pattern"
)

var (
	ErrInvalidMode           = errors.New("unscramble: unknown mode")
	ErrInvalidMinWordLength  = errors.New("unscramble: min word length must be at least 1")
	ErrInvalidMaxSuggestions = errors.New("unscramble: max suggestions must not be negative")
)

// ParseMode converts a string into a Mode, rejecting unknown values.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeWord, ModeAnagram, ModeSmart, ModePattern:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Request describes a single unscramble call.
type Request struct {
	Text                string
	Mode                Mode
	MinWordLength       int
	PreserveSpaces      bool
	PreservePunctuation bool
	SuggestAlternatives bool
	SortByLength        bool
	MaxSuggestions      int
}

// Validate rejects malformed requests before any matching happens.
// An unknown mode is a configuration error, never a runtime one.
func (r Request) Validate() error {
	if _, err := ParseMode(string(r.Mode)); err != nil {
		return err
	}
	if r.MinWordLength < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMinWordLength, r.MinWordLength)
	}
	if r.MaxSuggestions < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxSuggestions, r.MaxSuggestions)
	}
	return nil
}

// Result is the assembled outcome of one unscramble call.
type Result struct {
	OriginalText     string   `json:"original_text"`
	UnscrambledText  string   `json:"unscrambled_text"`
	Suggestions      []string `json:"suggestions,omitempty"`
	Mode             Mode     `json:"mode"`
	WordsFound       int      `json:"words_found"`
	Confidence       int      `json:"confidence"`
	ProcessingTimeMs int64    `json:"time_ms"`
}
