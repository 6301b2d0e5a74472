package stego

import "github.com/rs/zerolog"

// DefaultQuality is used by the CLI when -q is not given.
const DefaultQuality = 85

// Options bundles the embed-time knobs, mirroring the small
// value-object-carrying-encode-time-knobs pattern used throughout the
// codec this package is grounded on.
type Options struct {
	// Quality is the JPEG quality factor, 1-100.
	Quality int
	// Key is an optional caller-supplied 32-byte key. If nil, Embed
	// draws a fresh random key.
	Key []byte
	// Logger receives structured progress/diagnostic events. nil
	// disables logging.
	Logger *zerolog.Logger
}

// logger returns opts' logger, or a disabled one if none was set.
func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

// Stats reports diagnostics about a completed Embed call, useful for the
// demo command and for tests.
type Stats struct {
	BlockCount        int
	Capacity          int
	RequiredBits      int
	CiphertextLen     int
	UnusedChannelBits int
}
