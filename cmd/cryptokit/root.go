package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cryptokit/internal/core/detector"
	"cryptokit/internal/core/version"
	"cryptokit/internal/platform/config"
	"cryptokit/internal/platform/logger"

	"github.com/spf13/cobra"
)

// DefaultDictionary is where cryptokit-trieloader writes by default
const DefaultDictionary = "data/trie_data.json.gz"

// app carries the persistent flags shared by every subcommand
type app struct {
	dictionary   string
	threshold    float64
	thresholdSet bool // --threshold or CORE_DETECT_THRESHOLD given
	jsonOut      bool
	verbose      bool
}

func newRootCmd() *cobra.Command {
	detect := config.New().Prefix("CORE_DETECT_")
	envThreshold := detect.MayString("THRESHOLD", "") != ""
	a := &app{}

	root := &cobra.Command{
		Use:           "cryptokit",
		Short:         "Classical ciphers and dictionary driven brute force",
		Version:       version.Info("cryptokit").String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.thresholdSet = envThreshold || cmd.Flags().Changed("threshold")

			opt := logger.FromEnv()
			opt.Service = "cryptokit"
			if a.verbose {
				opt.Level = "debug"
			}
			logger.Init(opt)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.dictionary, "dictionary", detect.MayString("DICTIONARY", DefaultDictionary), "compressed trie file (CORE_DETECT_DICTIONARY)")
	pf.Float64Var(&a.threshold, "threshold", detect.MayFloat64("THRESHOLD", detector.DefaultThreshold), "share of dictionary words needed to count as English, (0,1] (CORE_DETECT_THRESHOLD)")
	pf.BoolVar(&a.jsonOut, "json", false, "print results as JSON")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		shiftCmd(a),
		rot13Cmd(a),
		atbashCmd(a),
		vigenereCmd(a),
		otpCmd(a),
		detectCmd(a),
		crackCmd(a),
		wordsCmd(a),
	)
	return root
}

// loadDetector opens the dictionary named by --dictionary
func (a *app) loadDetector() (*detector.Detector, error) {
	log := logger.Named("cli")
	opts := detector.Options{}
	if a.thresholdSet {
		opts = detector.WithThreshold(a.threshold)
	}
	d, err := detector.NewWithOptions(a.dictionary, opts)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("dictionary", a.dictionary).Int("words", d.Len()).Float64("threshold", d.Threshold()).Msg("dictionary loaded")
	return d, nil
}

// input joins args with spaces, or reads stdin when there are none
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

// print writes v as JSON under --json, otherwise the plain text form
func (a *app) print(cmd *cobra.Command, v any, text string) error {
	w := cmd.OutOrStdout()
	if a.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
