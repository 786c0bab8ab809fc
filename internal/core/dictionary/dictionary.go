// Package dictionary turns newline-delimited word lists into tries and
// compiles them into the compressed file the detector loads
package dictionary

import (
	"bufio"
	"io"
	"os"

	"cryptokit/internal/core/normalize"
	"cryptokit/internal/core/trie"
	perr "cryptokit/internal/platform/errors"
)

// Stats describes one build
type Stats struct {
	Lines   int `json:"lines"`
	Blank   int `json:"blank"`
	Words   int `json:"words"` // distinct after case folding
	Nodes   int `json:"nodes"`
	Written int `json:"written,omitempty"` // compressed bytes, Compile only
}

const maxLine = 1 << 20

// Build reads one word per line from r. Lines are trimmed and blank lines are
// skipped, so the empty word never enters the trie
func Build(r io.Reader) (*trie.Trie, Stats, error) {
	var st Stats
	t := trie.New()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		st.Lines++
		w := normalize.Line(sc.Text())
		if w == "" {
			st.Blank++
			continue
		}
		t.Insert(w)
	}
	if err := sc.Err(); err != nil {
		return nil, st, perr.Wrap(err, perr.ErrorCodeIO, "read word list")
	}

	st.Words = t.Len()
	st.Nodes = t.Nodes()
	return t, st, nil
}

// BuildFile is Build over the file at path
func BuildFile(path string) (*trie.Trie, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, perr.Wrapf(err, perr.ErrorCodeIO, "open %s", path)
	}
	defer f.Close()
	return Build(f)
}

// Compile builds the word list at in and writes the compressed trie to out
func Compile(in, out string) (Stats, error) {
	t, st, err := BuildFile(in)
	if err != nil {
		return st, err
	}
	if err := t.SaveFile(out); err != nil {
		return st, err
	}
	if fi, err := os.Stat(out); err == nil {
		st.Written = int(fi.Size())
	}
	return st, nil
}
