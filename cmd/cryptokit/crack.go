package main

import (
	"fmt"
	"runtime"
	"strconv"

	"cryptokit/internal/core/bruteforce"
	"cryptokit/internal/platform/config"

	"github.com/spf13/cobra"
)

type detectOut struct {
	English   bool    `json:"english"`
	Score     float64 `json:"score"`
	Threshold float64 `json:"threshold"`
}

func detectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "detect [text...]",
		Short: "score text against the dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.loadDetector()
			if err != nil {
				return err
			}
			in, err := input(cmd, args)
			if err != nil {
				return err
			}
			out := detectOut{English: d.IsEnglish(in), Score: d.Score(in), Threshold: d.Threshold()}
			return a.print(cmd, out, fmt.Sprintf("english: %t (score %.2f, threshold %.2f)", out.English, out.Score, out.Threshold))
		},
	}
}

func crackCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "crack", Short: "recover plaintext and key by brute force"}

	shift := &cobra.Command{
		Use:   "shift [ciphertext...]",
		Short: "try shift keys 1 through 25",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.loadDetector()
			if err != nil {
				return err
			}
			in, err := input(cmd, args)
			if err != nil {
				return err
			}
			res, err := bruteforce.Shift(d, in)
			if err != nil {
				return err
			}
			return a.print(cmd, res, "key: "+strconv.Itoa(int(res.Key))+"\nplaintext: "+res.Plaintext)
		},
	}

	env := config.New().Prefix("CORE_CRACK_")
	opts := bruteforce.Options{}
	vigenere := &cobra.Command{
		Use:   "vigenere [ciphertext...]",
		Short: "try every dictionary word as the key",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.loadDetector()
			if err != nil {
				return err
			}
			in, err := input(cmd, args)
			if err != nil {
				return err
			}
			res, err := bruteforce.Polyalphabetic(cmd.Context(), d, in, opts)
			if err != nil {
				return err
			}
			return a.print(cmd, res, "key: "+res.Key+"\nplaintext: "+res.Plaintext)
		},
	}
	vigenere.Flags().IntVar(&opts.Limit, "limit", env.MayInt("LIMIT", 0), "keys to try, 0 for all (CORE_CRACK_LIMIT)")
	vigenere.Flags().IntVar(&opts.Workers, "workers", env.MayInt("WORKERS", runtime.GOMAXPROCS(0)), "parallel decoders (CORE_CRACK_WORKERS)")

	cmd.AddCommand(shift, vigenere)
	return cmd
}

func wordsCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "words",
		Short: "list dictionary words in lexicographic order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := a.loadDetector()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			n := 0
			for word := range d.Words() {
				if limit > 0 && n >= limit {
					break
				}
				if _, err := fmt.Fprintln(w, word); err != nil {
					return err
				}
				n++
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many words, 0 for all")
	return cmd
}
