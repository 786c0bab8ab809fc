// Command cryptokit-trieloader compiles a newline separated word list into the
// compressed trie file read by the detector
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"cryptokit/internal/core/dictionary"
	perr "cryptokit/internal/platform/errors"
	"cryptokit/internal/platform/logger"
)

type options struct {
	words   string
	out     string
	verbose bool
}

func parse(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("cryptokit-trieloader", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.words, "w", "", "word list, one word per line (required)")
	fs.StringVar(&o.out, "s", "data/trie_data.json.gz", "output path for the compressed trie")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if strings.TrimSpace(o.words) == "" {
		fs.Usage()
		return o, perr.InvalidArgf("-w is required")
	}
	return o, nil
}

func run(args []string, stderr io.Writer) error {
	o, err := parse(args, stderr)
	if err != nil {
		return err
	}

	lo := logger.FromEnv()
	lo.Service = "cryptokit-trieloader"
	lo.Writer = stderr
	if o.verbose {
		lo.Level = "debug"
	}
	log := logger.New(lo)

	log.Debug().Str("words", o.words).Str("out", o.out).Msg("compiling")
	st, err := dictionary.Compile(o.words, o.out)
	if err != nil {
		log.Error().Err(err).Str("words", o.words).Msg("compile failed")
		return err
	}
	log.Info().
		Int("lines", st.Lines).
		Int("blank", st.Blank).
		Int("words", st.Words).
		Int("nodes", st.Nodes).
		Int("bytes", st.Written).
		Str("out", o.out).
		Msg("trie written")
	return nil
}

// exitCode runs the loader and reports why it failed; -h is not a failure
func exitCode(args []string, stderr io.Writer) int {
	err := run(args, stderr)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	fmt.Fprintf(stderr, "cryptokit-trieloader: %v\n", err)
	return 1
}

func main() { os.Exit(exitCode(os.Args[1:], os.Stderr)) }
