package main

import (
	"cryptokit/internal/core/cipher"

	"github.com/spf13/cobra"
)

type textOut struct {
	Text string `json:"text"`
}

// pairCmd builds "<name> encode|decode" from two text transforms
func pairCmd(a *app, name, short string, enc, dec func(string) string) *cobra.Command {
	cmd := &cobra.Command{Use: name, Short: short}
	for _, op := range []struct {
		use string
		fn  func(string) string
	}{{"encode", enc}, {"decode", dec}} {
		cmd.AddCommand(&cobra.Command{
			Use:   op.use + " [text...]",
			Short: op.use + " text from args or stdin",
			RunE: func(cmd *cobra.Command, args []string) error {
				in, err := input(cmd, args)
				if err != nil {
					return err
				}
				out := op.fn(in)
				return a.print(cmd, textOut{Text: out}, out)
			},
		})
	}
	return cmd
}

func shiftCmd(a *app) *cobra.Command {
	var key uint8
	cmd := pairCmd(a, "shift", "Caesar shift cipher",
		func(s string) string { return cipher.ShiftEncode(s, key) },
		func(s string) string { return cipher.ShiftDecode(s, key) },
	)
	cmd.PersistentFlags().Uint8VarP(&key, "key", "k", 3, "shift amount, taken mod 26")
	return cmd
}

func rot13Cmd(a *app) *cobra.Command {
	return pairCmd(a, "rot13", "ROT13; encode and decode are the same", cipher.ROT13, cipher.ROT13)
}

func atbashCmd(a *app) *cobra.Command {
	return pairCmd(a, "atbash", "Atbash mirror alphabet", cipher.AtbashEncode, cipher.AtbashDecode)
}

func vigenereCmd(a *app) *cobra.Command {
	var key string
	cmd := pairCmd(a, "vigenere", "Vigenère cipher with a repeating key",
		func(s string) string { return cipher.VigenereEncode(s, key) },
		func(s string) string { return cipher.VigenereDecode(s, key) },
	)
	cmd.PersistentFlags().StringVarP(&key, "key", "k", "", "key word")
	_ = cmd.MarkPersistentFlagRequired("key")
	return cmd
}

func otpCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "otp", Short: "one-time pad: XOR with a random key, URL-safe base64"}

	var encKey string
	encode := &cobra.Command{
		Use:   "encode [text...]",
		Short: "encrypt with a fresh random key, or --key",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(cmd, args)
			if err != nil {
				return err
			}
			src := cipher.RandomKeySource()
			if encKey != "" {
				src = cipher.FixedKeySource(encKey)
			}
			pad, err := cipher.PadEncode(in, src)
			if err != nil {
				return err
			}
			return a.print(cmd, pad, "key: "+pad.Key+"\nencoded: "+pad.Encoded)
		},
	}
	encode.Flags().StringVarP(&encKey, "key", "k", "", "use this key instead of a random one; at least as long as the text")

	var decKey string
	decode := &cobra.Command{
		Use:   "decode [encoded]",
		Short: "decrypt base64 with --key",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(cmd, args)
			if err != nil {
				return err
			}
			out, err := cipher.PadDecode(in, decKey)
			if err != nil {
				return err
			}
			return a.print(cmd, textOut{Text: out}, out)
		},
	}
	decode.Flags().StringVarP(&decKey, "key", "k", "", "key printed by encode")
	_ = decode.MarkFlagRequired("key")

	cmd.AddCommand(encode, decode)
	return cmd
}
