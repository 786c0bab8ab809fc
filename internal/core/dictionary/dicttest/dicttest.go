// Package dicttest ships a small english word list for tests that need a real
// dictionary without reading data/ from disk
package dicttest

import (
	_ "embed"
	"path/filepath"
	"strings"
	"testing"

	"cryptokit/internal/core/dictionary"
	"cryptokit/internal/core/trie"
)

//go:embed english.txt
var english string

// Words returns the raw word list, one entry per line
func Words() string { return english }

// Trie builds a fresh trie from the embedded list
func Trie(tb testing.TB) *trie.Trie {
	tb.Helper()
	t, _, err := dictionary.Build(strings.NewReader(english))
	if err != nil {
		tb.Fatalf("build fixture trie: %v", err)
	}
	return t
}

// File saves the fixture trie into a temp dir and returns its path
func File(tb testing.TB) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), "trie_data.json.gz")
	if err := Trie(tb).SaveFile(path); err != nil {
		tb.Fatalf("save fixture trie: %v", err)
	}
	return path
}
