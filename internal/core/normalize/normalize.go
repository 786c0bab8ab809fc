// Package normalize folds dictionary words and message tokens into the form
// stored in the trie. Both paths must agree or lookups silently miss
//
// Word:  replace invalid UTF-8 with U+FFFD, NFC compose, lower-case
// Token: replace invalid UTF-8 with U+FFFD, NFC compose, strip non-letters, lower-case
package normalize

import (
	"iter"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// chains are not safe for concurrent use, so each caller borrows one
var (
	wordPool = sync.Pool{New: func() any {
		return transform.Chain(norm.NFC, cases.Lower(language.Und))
	}}
	tokenPool = sync.Pool{New: func() any {
		return transform.Chain(norm.NFC, runes.Remove(runes.Predicate(notLetter)), cases.Lower(language.Und))
	}}
)

// invalid stands in for bytes that are not UTF-8. It is never a letter, so
// Token drops it while Word keeps it and the lookup misses
const invalid = string(utf8.RuneError)

func notLetter(r rune) bool { return !unicode.IsLetter(r) }

// Word returns the lower-cased form of a dictionary word
func Word(s string) string {
	if isASCII(s) {
		return asciiFold(s, false)
	}
	return run(&wordPool, strings.ToValidUTF8(s, invalid))
}

// Token returns the letters of s, lower-cased. Digits, punctuation and marks are dropped
func Token(s string) string {
	if isASCII(s) {
		return asciiFold(s, true)
	}
	return run(&tokenPool, strings.ToValidUTF8(s, invalid))
}

// Fields yields the whitespace separated tokens of s without allocating a slice
func Fields(s string) iter.Seq[string] { return strings.FieldsSeq(s) }

// Line trims a raw word-list line, including a trailing \r from CRLF files
func Line(s string) string { return strings.TrimSpace(s) }

func run(p *sync.Pool, s string) string {
	t := p.Get().(transform.Transformer)
	out, _, err := transform.String(t, s)
	p.Put(t)
	if err != nil {
		return ""
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// asciiFold lower-cases s and, when lettersOnly is set, drops everything but a-z
func asciiFold(s string, lettersOnly bool) string {
	clean := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			continue
		}
		if !lettersOnly && !(c >= 'A' && c <= 'Z') {
			continue
		}
		clean = false
		break
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + 'a' - 'A')
		case c >= 'a' && c <= 'z', !lettersOnly:
			b.WriteByte(c)
		}
	}
	return b.String()
}
