package unscramble

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/letterlab/unscramble/internal/utils"
	"github.com/letterlab/unscramble/pkg/dictionary"
)

// Engine is the entry point: it tokenizes input, dispatches to the
// selected mode and assembles the result. The dictionary is injected at
// construction so callers (and tests) control exactly what is known.
type Engine struct {
	dict *dictionary.Store
}

// New creates an Engine over the given dictionary. A nil dictionary is
// treated as empty: every lookup simply misses.
func New(dict *dictionary.Store) *Engine {
	if dict == nil {
		dict = dictionary.New(nil)
	}
	return &Engine{dict: dict}
}

// Dictionary returns the store the engine matches against.
func (e *Engine) Dictionary() *dictionary.Store {
	return e.dict
}

// Run processes a single request. It returns an error only for malformed
// requests; "nothing matched" is a normal outcome reported through a low
// confidence and an output equal to the input.
func (e *Engine) Run(req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	result := Result{
		OriginalText:    req.Text,
		UnscrambledText: req.Text,
		Mode:            req.Mode,
	}
	if strings.TrimSpace(req.Text) == "" {
		result.UnscrambledText = req.Text
		return result, nil
	}

	start := time.Now()

	var text string
	var matched int
	var rawSuggestions []string
	switch req.Mode {
	case ModeWord:
		text, matched, rawSuggestions = runWordMode(e.dict, req)
	case ModeAnagram:
		text, matched, rawSuggestions = runAnagramMode(e.dict, req)
	case ModeSmart:
		text, matched, rawSuggestions = runSmartMode(e.dict, req)
	case ModePattern:
		text, matched, rawSuggestions = runPatternMode(e.dict, req)
	}

	result.UnscrambledText = text
	result.WordsFound = matched
	result.Suggestions = dedupeSuggestions(rawSuggestions, req.MaxSuggestions)
	result.Confidence = confidence(matched, countTokens(req.Text))
	result.ProcessingTimeMs = time.Since(start).Milliseconds()

	log.Debugf("unscramble: mode=%s matched=%d confidence=%d took=%dms",
		req.Mode, matched, result.Confidence, result.ProcessingTimeMs)
	return result, nil
}

// dedupeSuggestions removes duplicate strings while keeping first-seen
// order, then truncates to the configured limit.
func dedupeSuggestions(raw []string, limit int) []string {
	if len(raw) == 0 || limit == 0 {
		return nil
	}
	filter := utils.NewSuggestionFilter()
	var out []string
	for _, s := range raw {
		if !filter.ShouldInclude(s) {
			continue
		}
		out = append(out, s)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
