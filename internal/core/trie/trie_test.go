package trie

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func build(words ...string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

func TestInsertContains(t *testing.T) {
	tr := build("hello", "help", "he", "world")

	tests := []struct {
		word string
		want bool
	}{
		{"hello", true},
		{"HELLO", true},
		{"HeLp", true},
		{"he", true},
		{"hel", false}, // prefix only
		{"helloo", false},
		{"h", false},
		{"", false},
		{"world", true},
		{"worlds", false},
		{"xyz", false},
	}
	for _, tt := range tests {
		if got := tr.Contains(tt.word); got != tt.want {
			t.Fatalf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestSpacedEntryIsOneWord(t *testing.T) {
	tr := build("hello world")
	for word, want := range map[string]bool{
		"hello world": true,
		"HELLO WORLD": true,
		"hello":       false,
		"world":       false,
		"hello ":      false,
	} {
		if got := tr.Contains(word); got != want {
			t.Fatalf("Contains(%q) = %v, want %v", word, got, want)
		}
	}
	if tr.Len() != 1 {
		t.Fatalf("Len = %d, want 1", tr.Len())
	}
}

func TestInvalidUTF8NeverMatches(t *testing.T) {
	tr := build("hello")
	if tr.Contains("hel\xfflo") {
		t.Fatalf("invalid bytes must not be dropped into a match")
	}
	tr.Insert("caf\xff")
	if tr.Contains("caf") || !tr.Contains("caf\xff") {
		t.Fatalf("invalid bytes should fold to a replacement rune consistently")
	}
}

func TestInsertIsIdempotentAndCaseInsensitive(t *testing.T) {
	tr := build("Apple", "apple", "APPLE")
	if tr.Len() != 1 {
		t.Fatalf("Len = %d, want 1", tr.Len())
	}
	if !tr.Contains("aPPle") {
		t.Fatalf("case-insensitive lookup failed")
	}
	if got := slices.Collect(tr.Words()); !slices.Equal(got, []string{"apple"}) {
		t.Fatalf("Words = %q", got)
	}
}

func TestEmptyWord(t *testing.T) {
	tr := New()
	if tr.Contains("") || tr.Len() != 0 {
		t.Fatalf("fresh trie should not contain the empty word")
	}
	tr.Insert("")
	if !tr.Contains("") || tr.Len() != 1 {
		t.Fatalf("explicit empty insert should mark the root")
	}
}

func TestWordsSortedAndComplete(t *testing.T) {
	in := []string{"the", "then", "a", "zebra", "abc", "ab", "Zed", "théâtre", "them", "ab"}
	tr := build(in...)

	want := []string{"a", "ab", "abc", "the", "them", "then", "théâtre", "zebra", "zed"}
	got := slices.Collect(tr.Words())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Words mismatch (-want +got):\n%s", diff)
	}
	if tr.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", tr.Len(), len(want))
	}
}

func TestWordsStopsEarlyAndRestarts(t *testing.T) {
	tr := build("alpha", "beta", "gamma", "delta")

	var first []string
	for w := range tr.Words() {
		first = append(first, w)
		if len(first) == 2 {
			break
		}
	}
	if diff := cmp.Diff([]string{"alpha", "beta"}, first); diff != "" {
		t.Fatalf("early stop mismatch:\n%s", diff)
	}

	// a new range starts a fresh walk
	all := slices.Collect(tr.Words())
	if diff := cmp.Diff([]string{"alpha", "beta", "delta", "gamma"}, all); diff != "" {
		t.Fatalf("restart mismatch:\n%s", diff)
	}
}

func TestNodes(t *testing.T) {
	if n := New().Nodes(); n != 1 {
		t.Fatalf("empty trie nodes = %d", n)
	}
	// root + h,e,l,l,o + p
	if n := build("hello", "help", "he").Nodes(); n != 7 {
		t.Fatalf("nodes = %d, want 7", n)
	}
}
