package cipher

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"strings"

	perr "cryptokit/internal/platform/errors"
)

// Key bytes are drawn from the contiguous range 'A'..'z'
const (
	keyLow  = 'A'
	keySpan = 'z' - 'A' + 1
)

// Pad is the result of a one-time pad encryption
type Pad struct {
	Key     string `json:"key"`
	Encoded string `json:"encoded"`
}

// KeySource supplies n key bytes for PadEncode
type KeySource interface {
	Key(n int) (string, error)
}

// KeySourceFunc adapts a function to KeySource
type KeySourceFunc func(n int) (string, error)

// Key implements KeySource
func (f KeySourceFunc) Key(n int) (string, error) { return f(n) }

// RandomKeySource draws uniformly from 'A'..'z' using crypto/rand
func RandomKeySource() KeySource { return randomKeys{r: rand.Reader} }

type randomKeys struct{ r io.Reader }

func (s randomKeys) Key(n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n+n/4+8)
	// reject the top of the byte range so every key byte is equally likely
	const limit = 256 - 256%keySpan
	for len(out) < n {
		if _, err := io.ReadFull(s.r, buf); err != nil {
			return "", perr.Wrap(err, perr.ErrorCodeUnavailable, "read random key")
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, keyLow+b%keySpan)
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}

// FixedKeySource hands out a caller supplied key; it fails when the key is too short
func FixedKeySource(key string) KeySource {
	return KeySourceFunc(func(n int) (string, error) {
		if len(key) < n {
			return "", perr.InvalidArgf("pad key has %d bytes, message needs %d", len(key), n)
		}
		return key[:n], nil
	})
}

// PadEncode XORs every byte of msg with a key byte from src and returns the
// key together with the URL-safe, padded base64 ciphertext
func PadEncode(msg string, src KeySource) (Pad, error) {
	key, err := src.Key(len(msg))
	if err != nil {
		return Pad{}, err
	}
	if len(key) < len(msg) {
		return Pad{}, perr.InvalidArgf("pad key has %d bytes, message needs %d", len(key), len(msg))
	}
	return Pad{Key: key, Encoded: base64.URLEncoding.EncodeToString(xor([]byte(msg), key))}, nil
}

// PadDecode reverses PadEncode. Padding on encoded is optional; when key is
// shorter than the ciphertext the output stops at the end of the key
func PadDecode(encoded, key string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeInvalidArgument, "ciphertext is not url-safe base64")
	}
	return string(xor(raw, key)), nil
}

func xor(data []byte, key string) []byte {
	n := min(len(data), len(key))
	out := make([]byte, n)
	for i := range n {
		out[i] = data[i] ^ key[i]
	}
	return out
}
