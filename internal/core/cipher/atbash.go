package cipher

import "strings"

func mirror(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return 'z' - (r - 'a')
	case r >= 'A' && r <= 'Z':
		return 'Z' - (r - 'A')
	}
	return r
}

// AtbashEncode maps a<->z, b<->y and so on
func AtbashEncode(msg string) string { return strings.Map(mirror, msg) }

// AtbashDecode is AtbashEncode; the mapping is an involution
func AtbashDecode(msg string) string { return strings.Map(mirror, msg) }
