package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Asim-Shaik/Steganography-CLI/stego"
)

func newExtractCmd() *cobra.Command {
	var (
		inPath     string
		keyArg     string
		expectedLn int
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Recover a hidden payload from a stego JPEG",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)

			data, err := os.ReadFile(inPath)
			if err != nil {
				return fmt.Errorf("read stego image: %w: %v", stego.ErrIOError, err)
			}

			key, err := readKey(keyArg)
			if err != nil {
				return fmt.Errorf("resolve key: %w", err)
			}

			opts := stego.ExtractOptions{Logger: &log}
			if cmd.Flags().Changed("len") {
				opts.ExpectedLen = &expectedLn
			}

			plaintext, err := stego.Extract(data, key, opts)
			if err != nil {
				return fmt.Errorf("extract: %w", err)
			}

			_, err = os.Stdout.Write(plaintext)
			return err
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "", "stego image path (required)")
	cmd.Flags().StringVarP(&keyArg, "key", "k", "", "key file path or base64-encoded key (required)")
	cmd.Flags().IntVarP(&expectedLn, "len", "l", 0, "override the ciphertext length declared by the frame")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("key")

	return cmd
}
