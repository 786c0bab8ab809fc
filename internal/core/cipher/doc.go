// Package cipher holds the classical transforms the crack routines invert.
// Only ASCII letters are transformed; case is kept and every other rune passes through
package cipher
