package detector

import (
	"math"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"cryptokit/internal/core/dictionary/dicttest"
	"cryptokit/internal/core/trie"
	perr "cryptokit/internal/platform/errors"
	kit "cryptokit/internal/platform/testkit"
)

func newFixture(t *testing.T) *Detector {
	t.Helper()
	d, err := New(dicttest.File(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func TestNewDefaults(t *testing.T) {
	d := newFixture(t)
	if d.Threshold() != DefaultThreshold {
		t.Fatalf("Threshold = %v", d.Threshold())
	}
	if d.Len() != dicttest.Trie(t).Len() {
		t.Fatalf("Len = %d", d.Len())
	}
}

func TestClassification(t *testing.T) {
	d := newFixture(t)
	tests := []struct {
		name    string
		text    string
		english bool
		score   float64
	}{
		{"plain", "hello world", true, 1},
		{"case and punctuation", "Hello, WORLD!", true, 1},
		{"spanish", "Al ofrecerse a ayudar al ciego, el hombre que luego le robó el coche", false, -1},
		{"half", "hello xyzzy", false, 0.5},
		{"prefix is not a word", "hel", false, 0},
		{"empty", "", false, 0},
		{"whitespace only", " \t\n ", false, 0},
		{"digits count as tokens", "hello 42", false, 0.5},
		{"decoded shift", "If he had anything confidential...", true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.IsEnglish(tt.text); got != tt.english {
				t.Fatalf("IsEnglish(%q) = %v, want %v (score %v)", tt.text, got, tt.english, d.Score(tt.text))
			}
			if tt.score >= 0 && math.Abs(d.Score(tt.text)-tt.score) > 1e-9 {
				t.Fatalf("Score(%q) = %v, want %v", tt.text, d.Score(tt.text), tt.score)
			}
		})
	}
}

func TestThresholdBoundaryIsInclusive(t *testing.T) {
	d := newFixture(t)
	if err := d.SetThreshold(0.5); err != nil {
		t.Fatalf("SetThreshold: %v", err)
	}
	if !d.IsEnglish("hello xyzzy") {
		t.Fatalf("score equal to threshold should pass")
	}
}

func TestSetThreshold(t *testing.T) {
	d := newFixture(t)

	for _, bad := range []float64{0, 1.5, -0.1, math.NaN(), math.Inf(1)} {
		err := d.SetThreshold(bad)
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("SetThreshold(%v) code = %v, want validation", bad, perr.CodeOf(err))
		}
		if d.Threshold() != DefaultThreshold {
			t.Fatalf("rejected value %v changed the threshold to %v", bad, d.Threshold())
		}
	}
	for _, good := range []float64{1, 0.01, 0.85} {
		if err := d.SetThreshold(good); err != nil {
			t.Fatalf("SetThreshold(%v): %v", good, err)
		}
		if d.Threshold() != good {
			t.Fatalf("Threshold = %v, want %v", d.Threshold(), good)
		}
	}
}

func TestNewWithOptions(t *testing.T) {
	path := dicttest.File(t)

	d, err := NewWithOptions(path, WithThreshold(0.5))
	if err != nil || d.Threshold() != 0.5 {
		t.Fatalf("NewWithOptions = %v, %v", d, err)
	}

	for _, bad := range []float64{2, 0} {
		_, err = NewWithOptions(path, WithThreshold(bad))
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("threshold %v code = %v, want validation", bad, perr.CodeOf(err))
		}
	}

	d, err = NewWithOptions(path, Options{})
	if err != nil || d.Threshold() != DefaultThreshold {
		t.Fatalf("unset threshold = %v, %v", d, err)
	}
}

func TestNewLoadErrors(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.json.gz"))
	if !perr.IsCode(err, perr.ErrorCodeIO) {
		t.Fatalf("missing file code = %v", perr.CodeOf(err))
	}

	_, err = New(kit.WriteFile(t, "corrupt.json.gz", []byte("garbage")))
	if !perr.IsCode(err, perr.ErrorCodeFormat) {
		t.Fatalf("corrupt file code = %v", perr.CodeOf(err))
	}
}

func TestWordsPassthrough(t *testing.T) {
	tr := trie.New()
	for _, w := range []string{"beta", "alpha"} {
		tr.Insert(w)
	}
	d, err := FromTrie(tr, Options{})
	if err != nil {
		t.Fatalf("FromTrie: %v", err)
	}
	if got := slices.Collect(d.Words()); !slices.Equal(got, []string{"alpha", "beta"}) {
		t.Fatalf("Words = %q", got)
	}
}

func TestConcurrentReadsAndThresholdUpdates(t *testing.T) {
	d := newFixture(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if i%4 == 0 {
					_ = d.SetThreshold(0.5 + float64(j%5)/10)
					continue
				}
				if !d.IsEnglish("hello world") {
					t.Error("full match must pass any valid threshold")
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
