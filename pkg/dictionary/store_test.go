package dictionary

import (
	"testing"

	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestStoreInsertionOrder(t *testing.T) {
	store := New([]string{"gamma", "alpha", "beta"})

	want := []string{"gamma", "alpha", "beta"}
	got := store.Words()
	if len(got) != len(want) {
		t.Fatalf("Words() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Words()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStoreDedupAndCaseFolding(t *testing.T) {
	store := New([]string{"Cat", "cat", "CAT", "  dog  ", "", "dog"})

	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}
	if store.Words()[0] != "cat" || store.Words()[1] != "dog" {
		t.Errorf("Words() = %v, want [cat dog]", store.Words())
	}
}

func TestStoreContains(t *testing.T) {
	store := New([]string{"cat", "hello"})

	testCases := []struct {
		word        string
		want        bool
		description string
	}{
		{"cat", true, "exact match"},
		{"CAT", true, "uppercase lookup"},
		{"Hello", true, "mixed case lookup"},
		{"ca", false, "prefix is not a member"},
		{"cats", false, "longer word is not a member"},
		{"", false, "empty string"},
	}
	for _, tc := range testCases {
		if got := store.Contains(tc.word); got != tc.want {
			t.Errorf("%s: Contains(%q) = %v, want %v", tc.description, tc.word, got, tc.want)
		}
	}
}

func TestStoreAnagrams(t *testing.T) {
	store := New([]string{"listen", "cat", "silent", "act", "enlist"})

	got := store.Anagrams("tinsel")
	want := []string{"listen", "silent", "enlist"}
	if len(got) != len(want) {
		t.Fatalf("Anagrams(tinsel) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Anagrams(tinsel)[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// raw input gets cleaned before the signature lookup
	if got := store.Anagrams("T.C A!"); len(got) != 2 || got[0] != "cat" || got[1] != "act" {
		t.Errorf("Anagrams with punctuation = %v, want [cat act]", got)
	}

	if got := store.Anagrams("zzz"); got != nil {
		t.Errorf("Anagrams(zzz) = %v, want nil", got)
	}
	if got := store.Anagrams(""); got != nil {
		t.Errorf("Anagrams(\"\") = %v, want nil", got)
	}
}

func TestStoreEmpty(t *testing.T) {
	store := New(nil)

	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
	if store.Contains("anything") {
		t.Error("empty store should contain nothing")
	}
	if got := store.Anagrams("cat"); got != nil {
		t.Errorf("Anagrams on empty store = %v, want nil", got)
	}
}
