// Package trie implements the dictionary prefix tree used by the detector.
// Words are folded with normalize.Word on insert and lookup, so the trie is
// case-insensitive by construction. A Trie is not safe for concurrent mutation;
// once loaded it is only read
package trie

import (
	"iter"
	"maps"
	"slices"

	"cryptokit/internal/core/normalize"
)

type node struct {
	children map[rune]*node
	end      bool
}

func (n *node) child(r rune) *node {
	if n.children == nil {
		n.children = make(map[rune]*node)
	}
	c, ok := n.children[r]
	if !ok {
		c = &node{}
		n.children[r] = c
	}
	return c
}

// Trie is a set of words stored as shared rune prefixes
type Trie struct {
	root  *node
	words int
}

// New returns an empty trie
func New() *Trie { return &Trie{root: &node{}} }

// Insert adds word. Inserting a word twice is a no-op
func (t *Trie) Insert(word string) {
	n := t.root
	for _, r := range normalize.Word(word) {
		n = n.child(r)
	}
	if !n.end {
		n.end = true
		t.words++
	}
}

// Contains reports whether word was inserted. Prefixes of inserted words are not members
func (t *Trie) Contains(word string) bool {
	n := t.root
	for _, r := range normalize.Word(word) {
		if n = n.children[r]; n == nil {
			return false
		}
	}
	return n.end
}

// Len returns the number of distinct words
func (t *Trie) Len() int { return t.words }

// Nodes returns the number of nodes including the root
func (t *Trie) Nodes() int {
	var count func(*node) int
	count = func(n *node) int {
		c := 1
		for _, ch := range n.children {
			c += count(ch)
		}
		return c
	}
	return count(t.root)
}

// Words yields every word in ascending rune order. The walk is lazy and
// stops as soon as the consumer breaks out of the range loop
func (t *Trie) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		walk(t.root, make([]rune, 0, 32), yield)
	}
}

func walk(n *node, prefix []rune, yield func(string) bool) bool {
	if n.end && !yield(string(prefix)) {
		return false
	}
	for _, r := range slices.Sorted(maps.Keys(n.children)) {
		if !walk(n.children[r], append(prefix, r), yield) {
			return false
		}
	}
	return true
}
