/*
Package dictionary holds the immutable word store the unscramble engine
matches against.

A Store is built once at startup and never mutated afterwards, so it can be
shared across concurrent engine invocations without locking. Words keep
their insertion order: the matcher's "first candidate" selection depends on
a fixed scan order to stay reproducible across runs.

Membership checks go through a Patricia trie, and an extra sorted-letter
signature index gives near-O(1) lookup of whole anagram classes.
*/
package dictionary

import (
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/letterlab/unscramble/internal/utils"
)

// Store is the canonical, case-insensitive word list.
type Store struct {
	words   []string            // lowercase, deduped, insertion order
	trie    *patricia.Trie      // word -> insertion index
	byClass map[string][]string // sorted-letter signature -> words, insertion order
}

// New builds a Store from a word list. Words are lowercased and deduped;
// the first occurrence wins so iteration order stays stable.
func New(words []string) *Store {
	s := &Store{
		trie:    patricia.NewTrie(),
		byClass: make(map[string][]string),
	}
	for _, w := range words {
		s.add(w)
	}
	return s
}

func (s *Store) add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	if s.trie.Get(patricia.Prefix(word)) != nil {
		return
	}
	s.trie.Insert(patricia.Prefix(word), len(s.words))
	s.words = append(s.words, word)

	sig := utils.SortLetters(word)
	s.byClass[sig] = append(s.byClass[sig], word)
}

// Contains reports case-insensitive exact membership.
func (s *Store) Contains(word string) bool {
	if word == "" {
		return false
	}
	return s.trie.Get(patricia.Prefix(strings.ToLower(word))) != nil
}

// Words returns all known words in stable insertion order. The slice is
// shared, callers must treat it as read-only.
func (s *Store) Words() []string {
	return s.words
}

// Anagrams returns every word whose letters are exactly the given pool,
// in insertion order. The pool may be raw input; it is cleaned first.
func (s *Store) Anagrams(letters string) []string {
	sig := utils.SortLetters(utils.Letters(letters))
	if sig == "" {
		return nil
	}
	return s.byClass[sig]
}

// Len returns the number of stored words.
func (s *Store) Len() int {
	return len(s.words)
}
