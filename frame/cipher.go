package frame

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// RandomBytes draws n cryptographically random bytes using the system
// CSPRNG. No third-party CSPRNG library appears anywhere in the
// retrieval pack; crypto/rand is the correct standard-library
// collaborator here.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("frame: read random bytes: %w", err)
	}
	return b, nil
}

// NewNonce draws a fresh 12-byte ChaCha20 IETF nonce.
func NewNonce() ([NonceSize]byte, error) {
	var n [NonceSize]byte
	b, err := RandomBytes(NonceSize)
	if err != nil {
		return n, err
	}
	copy(n[:], b)
	return n, nil
}

// Apply runs the ChaCha20 (IETF variant) stream cipher over in, keyed by
// key and nonce, counter starting at 0. The cipher is an involution: a
// second call with the same key and nonce recovers the original input.
// It is deliberately not authenticated: a single corrupted ciphertext
// byte corrupts exactly the matching plaintext byte and nothing else,
// which is what lets the repetition-coded channel degrade gracefully
// instead of the whole message failing to decrypt.
func Apply(key []byte, nonce [NonceSize]byte, in []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("frame: %w: key is %d bytes, want %d", ErrInvalidKey, len(key), KeySize)
	}

	c, err := chacha20.NewUnauthenticatedCipher(key, nonce[:])
	if err != nil {
		return nil, fmt.Errorf("frame: construct cipher: %w", err)
	}

	out := make([]byte, len(in))
	c.XORKeyStream(out, in)
	return out, nil
}
