// Package detector decides whether text is plausibly English by the share of
// whitespace separated tokens found in a dictionary trie
package detector

import (
	"iter"
	"math"
	"sync/atomic"

	"cryptokit/internal/core/normalize"
	"cryptokit/internal/core/trie"
	"cryptokit/internal/platform/validate"
)

// DefaultThreshold is the score at or above which text counts as English
const DefaultThreshold = 0.85

// thresholdRule bounds thresholds to (0, 1]
const thresholdRule = "gt=0,lte=1"

// Options tunes a Detector. A nil Threshold means DefaultThreshold; any value
// that is set goes through SetThreshold, so an explicit 0 is rejected
type Options struct {
	Threshold *float64
}

// WithThreshold returns Options carrying v
func WithThreshold(v float64) Options { return Options{Threshold: &v} }

// Detector scores text against a dictionary. The trie is never mutated after
// construction and the threshold is atomic, so one Detector serves many goroutines
type Detector struct {
	dict      *trie.Trie
	threshold atomic.Uint64 // math.Float64bits
}

// New loads the dictionary at path with the default threshold
func New(path string) (*Detector, error) { return NewWithOptions(path, Options{}) }

// NewWithOptions loads the dictionary at path. Load failures keep their io or format code
func NewWithOptions(path string, opts Options) (*Detector, error) {
	t, err := trie.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return FromTrie(t, opts)
}

// FromTrie wraps an already built trie
func FromTrie(t *trie.Trie, opts Options) (*Detector, error) {
	d := &Detector{dict: t}
	d.threshold.Store(math.Float64bits(DefaultThreshold))
	if opts.Threshold != nil {
		if err := d.SetThreshold(*opts.Threshold); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// SetThreshold changes the threshold. Values outside (0, 1] are rejected and
// the previous threshold stays in effect
func (d *Detector) SetThreshold(v float64) error {
	if err := validate.Var("threshold", v, thresholdRule); err != nil {
		return err
	}
	d.threshold.Store(math.Float64bits(v))
	return nil
}

// Threshold returns the current threshold
func (d *Detector) Threshold() float64 { return math.Float64frombits(d.threshold.Load()) }

// Score returns the fraction of tokens that are dictionary words, or 0 when
// text has no tokens. Tokens are split on whitespace and stripped to their letters
func (d *Detector) Score(text string) float64 {
	tokens, hits := d.count(text)
	if tokens == 0 {
		return 0
	}
	return float64(hits) / float64(tokens)
}

// IsEnglish reports whether Score meets the threshold. Text without tokens is never English
func (d *Detector) IsEnglish(text string) bool {
	tokens, hits := d.count(text)
	if tokens == 0 {
		return false
	}
	return float64(hits)/float64(tokens) >= d.Threshold()
}

func (d *Detector) count(text string) (tokens, hits int) {
	for f := range normalize.Fields(text) {
		tokens++
		if d.dict.Contains(normalize.Token(f)) {
			hits++
		}
	}
	return tokens, hits
}

// Words yields the dictionary in ascending order
func (d *Detector) Words() iter.Seq[string] { return d.dict.Words() }

// Len returns the dictionary size
func (d *Detector) Len() int { return d.dict.Len() }
