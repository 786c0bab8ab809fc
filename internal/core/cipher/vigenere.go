package cipher

import "strings"

func isLetter(r rune) bool { return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' }

// vigenere walks msg, taking the next key rune for every ASCII letter.
// A key rune that is not an ASCII letter is consumed but leaves its letter unchanged
func vigenere(msg, key string, decode bool) string {
	ks := []rune(key)
	if len(ks) == 0 {
		return msg
	}

	var b strings.Builder
	b.Grow(len(msg))
	i := 0
	for _, r := range msg {
		if !isLetter(r) {
			b.WriteRune(r)
			continue
		}
		k := ks[i%len(ks)]
		i++
		if !isLetter(k) {
			b.WriteRune(r)
			continue
		}
		s := byte(k|0x20) - 'a'
		if decode {
			s = (Alphabet - s) % Alphabet
		}
		b.WriteRune(rotate(r, s))
	}
	return b.String()
}

// VigenereEncode shifts each letter of msg by the matching letter of the repeating key
func VigenereEncode(msg, key string) string { return vigenere(msg, key, false) }

// VigenereDecode undoes VigenereEncode with the same key
func VigenereDecode(msg, key string) string { return vigenere(msg, key, true) }
