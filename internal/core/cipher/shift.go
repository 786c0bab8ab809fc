package cipher

import "strings"

// Alphabet is the number of letters a shift wraps around
const Alphabet = 26

// rotate shifts an ASCII letter forward by k (0..25); other runes are returned unchanged
func rotate(r rune, k byte) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return 'a' + (r-'a'+rune(k))%Alphabet
	case r >= 'A' && r <= 'Z':
		return 'A' + (r-'A'+rune(k))%Alphabet
	}
	return r
}

func shift(msg string, k byte) string {
	if k == 0 {
		return msg
	}
	return strings.Map(func(r rune) rune { return rotate(r, k) }, msg)
}

// ShiftEncode applies a Caesar shift of key mod 26
func ShiftEncode(msg string, key uint8) string { return shift(msg, key%Alphabet) }

// ShiftDecode undoes ShiftEncode with the same key
func ShiftDecode(msg string, key uint8) string {
	return shift(msg, (Alphabet-key%Alphabet)%Alphabet)
}

// ROT13 is its own inverse
func ROT13(msg string) string { return shift(msg, 13) }
