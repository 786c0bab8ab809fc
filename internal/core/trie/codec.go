package trie

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	perr "cryptokit/internal/platform/errors"

	"github.com/klauspost/compress/gzip"
)

// FormatVersion is the only document version Deserialize accepts
const FormatVersion = 1

type document struct {
	Version int       `json:"version"`
	Words   int       `json:"words"`
	Root    *wireNode `json:"root"`
}

type wireNode struct {
	End      bool                 `json:"end"`
	Children map[string]*wireNode `json:"children,omitempty"`
}

// Serialize renders the trie as a JSON document.
// Only present edges are stored and map keys come out sorted, so equal tries serialize identically
func (t *Trie) Serialize() ([]byte, error) {
	b, err := json.Marshal(document{Version: FormatVersion, Words: t.words, Root: toWire(t.root)})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeFormat, "encode trie")
	}
	return b, nil
}

func toWire(n *node) *wireNode {
	w := &wireNode{End: n.end}
	if len(n.children) > 0 {
		w.Children = make(map[string]*wireNode, len(n.children))
		for r, c := range n.children {
			w.Children[string(r)] = toWire(c)
		}
	}
	return w
}

// Deserialize rebuilds a trie from Serialize output. Any structural problem is a format error
func Deserialize(data []byte) (*Trie, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeFormat, "decode trie")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, perr.Formatf("decode trie: trailing data")
	}
	if doc.Version != FormatVersion {
		return nil, perr.Formatf("decode trie: unsupported version %d", doc.Version)
	}
	if doc.Root == nil {
		return nil, perr.Formatf("decode trie: missing root")
	}

	t := &Trie{}
	root, err := fromWire(doc.Root, &t.words)
	if err != nil {
		return nil, err
	}
	t.root = root
	if t.words != doc.Words {
		return nil, perr.Formatf("decode trie: header says %d words, structure holds %d", doc.Words, t.words)
	}
	return t, nil
}

func fromWire(w *wireNode, words *int) (*node, error) {
	n := &node{end: w.End}
	if w.End {
		*words++
	}
	if len(w.Children) == 0 {
		return n, nil
	}
	n.children = make(map[rune]*node, len(w.Children))
	for k, cw := range w.Children {
		r, size := utf8.DecodeRuneInString(k)
		if (r == utf8.RuneError && size <= 1) || size != len(k) {
			return nil, perr.Formatf("decode trie: edge %q is not a single rune", k)
		}
		if cw == nil {
			return nil, perr.Formatf("decode trie: edge %q has no node", k)
		}
		c, err := fromWire(cw, words)
		if err != nil {
			return nil, err
		}
		n.children[r] = c
	}
	return n, nil
}

// Encode writes the serialized trie to w as a gzip stream at best compression
func (t *Trie) Encode(w io.Writer) error {
	data, err := t.Serialize()
	if err != nil {
		return err
	}
	zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeFormat, "gzip writer")
	}
	if _, err := zw.Write(data); err != nil {
		return perr.Wrap(err, perr.ErrorCodeIO, "write trie")
	}
	if err := zw.Close(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeIO, "flush trie")
	}
	return nil
}

// Decode reads a gzip stream produced by Encode
func Decode(r io.Reader) (*Trie, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeFormat, "open gzip stream")
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeFormat, "decompress trie")
	}
	return Deserialize(data)
}

// SaveFile compresses the trie in memory and writes it to path in one call,
// creating parent directories as needed
func (t *Trie) SaveFile(path string) error {
	var buf bytes.Buffer
	if err := t.Encode(&buf); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeIO, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "write %s", path)
	}
	return nil
}

// LoadFile reads path fully and decodes it in memory
func LoadFile(path string) (*Trie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "read %s", path)
	}
	return Decode(bytes.NewReader(data))
}
