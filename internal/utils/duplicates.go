package utils

// SuggestionFilter drops duplicate suggestion strings while keeping
// first-seen order. Comparison is by exact string equality; the engine
// lowercases candidates before they reach the filter.
type SuggestionFilter struct {
	seenWords map[string]bool
}

// NewSuggestionFilter creates an empty filter instance
func NewSuggestionFilter() *SuggestionFilter {
	return &SuggestionFilter{
		seenWords: make(map[string]bool),
	}
}

// ShouldInclude checks if a word should be included in results (not a duplicate)
// Returns true if the word should be included, false if it's a duplicate
func (f *SuggestionFilter) ShouldInclude(word string) bool {
	if f.seenWords[word] {
		return false
	}
	f.seenWords[word] = true
	return true
}
