// Command stego hides short encrypted payloads inside photographic images
// and recovers them again, per the robust bit-channel described in the
// package doc of github.com/Asim-Shaik/Steganography-CLI/stego.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
}
