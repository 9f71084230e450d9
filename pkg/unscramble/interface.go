/*
Package unscramble reconstructs probable original words from scrambled
input. It is the core engine: a pure, synchronous computation over
in-memory strings and an immutable dictionary, with no I/O and no
cross-call state.

Four modes are available. Word mode unscrambles each whitespace token on
its own. Anagram mode treats the whole input as one letter pool when it is
small enough. Smart mode keeps a token's first and last letter fixed,
matching the common "interior-only scramble" puzzles. Pattern mode tries
whole-input transforms (character reversal, word-order reversal) and keeps
whichever produces the most recognizable words.

Identical input against the same dictionary always yields an identical
result: the dictionary scans in insertion order, so "first candidate"
selection is reproducible across runs.
*/
package unscramble

// IUnscrambler defines the interface for unscrambling engines
type IUnscrambler interface {
	// Run processes a single request and returns the assembled result
	Run(req Request) (Result, error)
}
