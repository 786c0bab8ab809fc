// Package bruteforce recovers keys by decoding with every candidate and asking
// an oracle whether the output reads as English. The first passing candidate in
// enumeration order wins, never the best scoring one
package bruteforce

import (
	"iter"

	"cryptokit/internal/core/cipher"
	perr "cryptokit/internal/platform/errors"
)

// ErrNotDecoded is returned when every candidate key has been tried
var ErrNotDecoded = perr.NotFoundf("message could not be decoded")

// Result pairs a recovered plaintext with the key that produced it
type Result[K any] struct {
	Plaintext string `json:"plaintext"`
	Key       K      `json:"key"`
}

// Oracle judges candidate plaintexts
type Oracle interface {
	IsEnglish(text string) bool
}

// Dictionary is an Oracle that can also enumerate its words in a stable order
type Dictionary interface {
	Oracle
	Words() iter.Seq[string]
}

// Shift tries keys 1 through 25 in order. Key 26 would be the identity
func Shift(o Oracle, ciphertext string) (Result[uint8], error) {
	for k := uint8(1); k < cipher.Alphabet; k++ {
		if pt := cipher.ShiftDecode(ciphertext, k); o.IsEnglish(pt) {
			return Result[uint8]{Plaintext: pt, Key: k}, nil
		}
	}
	return Result[uint8]{}, ErrNotDecoded
}

// Candidates filters words down to usable Vigenère keys (non-empty, ASCII
// letters only) and stops after limit keys; limit <= 0 means no cap
func Candidates(words iter.Seq[string], limit int) iter.Seq[string] {
	return func(yield func(string) bool) {
		n := 0
		for w := range words {
			if limit > 0 && n >= limit {
				return
			}
			if !asciiLetters(w) {
				continue
			}
			n++
			if !yield(w) {
				return
			}
		}
	}
}

func asciiLetters(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		c := w[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

func cancelled(err error) error {
	return perr.Wrap(err, perr.ErrorCodeUnavailable, "search cancelled")
}
