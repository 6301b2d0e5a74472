// Package stego implements the sender and receiver halves of the robust
// bit-channel pipeline: Embed hides a short encrypted payload inside a
// cover image's luminance plane and re-encodes it as a JPEG; Extract
// reverses the process given the stego JPEG and the key.
package stego

import "errors"

// Error kinds surfaced to callers. All errors are fatal to the current
// operation — there are no partial outputs and no internal retries.
var (
	// ErrCapacityExceeded means the required channel bits exceed what
	// the cover image can carry. Reported before any DCT work runs.
	ErrCapacityExceeded = errors.New("stego: payload exceeds cover capacity")

	// ErrInvalidQuality means quality is outside [1,100].
	ErrInvalidQuality = errors.New("stego: quality must be in [1,100]")

	// ErrInvalidKey means the key is not exactly 32 bytes.
	ErrInvalidKey = errors.New("stego: key must be 32 bytes")

	// ErrInvalidImage means the image decoder refused the input, or
	// the decoded image has no whole 8x8 blocks to embed into, or (on
	// extract) too few blocks to carry even an empty frame.
	ErrInvalidImage = errors.New("stego: invalid or too-small image")

	// ErrFrameCorrupt means the extracted frame length is implausible.
	ErrFrameCorrupt = errors.New("stego: frame corrupt")

	// ErrIOError wraps filesystem errors surfaced by the CLI layer
	// (reading a cover, or writing a stego image or key file).
	ErrIOError = errors.New("stego: io error")
)
