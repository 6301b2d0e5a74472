package frame

import "errors"

// ErrCorrupt indicates a frame whose declared length is implausible —
// either larger than the caller's sanity bound or larger than the bytes
// actually available.
var ErrCorrupt = errors.New("frame corrupt")

// ErrInvalidKey indicates a key that is not exactly KeySize bytes.
var ErrInvalidKey = errors.New("invalid key")
