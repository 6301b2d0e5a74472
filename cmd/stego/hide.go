package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Asim-Shaik/Steganography-CLI/stego"
)

func newHideCmd() *cobra.Command {
	var (
		inPath  string
		outStem string
		text    string
		keyPath string
		quality int
	)

	cmd := &cobra.Command{
		Use:   "hide",
		Short: "Embed an encrypted payload inside a cover image",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)

			f, err := os.Open(inPath)
			if err != nil {
				return fmt.Errorf("open cover: %w: %v", stego.ErrIOError, err)
			}
			defer f.Close()

			cover, _, err := image.Decode(f)
			if err != nil {
				return fmt.Errorf("decode cover: %w", err)
			}

			outStem = strings.TrimSuffix(outStem, ".jpg")
			jpegPath := outStem + ".jpg"
			if keyPath == "" {
				keyPath = outStem + ".key"
			}

			stegoBytes, key, stats, err := stego.Embed(cover, []byte(text), stego.Options{
				Quality: quality,
				Logger:  &log,
			})
			if err != nil {
				return fmt.Errorf("embed: %w", err)
			}

			if err := os.WriteFile(jpegPath, stegoBytes, 0o644); err != nil {
				return fmt.Errorf("write stego image: %w: %v", stego.ErrIOError, err)
			}
			if err := writeKeyFile(keyPath, key); err != nil {
				return fmt.Errorf("write key file: %w: %v", stego.ErrIOError, err)
			}

			log.Info().
				Str("stego_path", jpegPath).
				Str("key_path", keyPath).
				Int("capacity_bits", stats.Capacity).
				Int("required_bits", stats.RequiredBits).
				Msg("hide complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "", "cover image path (required)")
	cmd.Flags().StringVarP(&outStem, "out", "o", "", "output stem; .jpg is appended (required)")
	cmd.Flags().StringVarP(&text, "data", "d", "", "plaintext to hide (required)")
	cmd.Flags().StringVarP(&keyPath, "key", "k", "", "key output path (default <out>.key)")
	cmd.Flags().IntVarP(&quality, "quality", "q", stego.DefaultQuality, "output JPEG quality, 1-100")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")
	cmd.MarkFlagRequired("data")

	return cmd
}
