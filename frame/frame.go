// Package frame serialises the unit carried by the bit channel: a fixed
// 12-byte nonce, a 4-byte big-endian ciphertext length, and the
// ciphertext itself. It also provides the ChaCha20 stream-cipher shim
// used to encrypt/decrypt the plaintext before framing.
//
// Wire layout (byte offsets; all multi-byte fields big-endian; the bit
// stream handed to the repetition codec is packed MSB-first within each
// byte, see PackBits):
//
//	offset  size        field
//	0       12 bytes    nonce
//	12      4 bytes     length L (ciphertext byte count)
//	16      L bytes     ciphertext
//
// Total frame size is 16+L bytes. This layout, the nonce length, and the
// length-field width are frozen constants: changing any of them breaks
// interoperability with anything already encoded against this version,
// and there is currently no version byte to negotiate a change.
package frame

import (
	"encoding/binary"
	"fmt"
)

// NonceSize is the ChaCha20 IETF nonce length in bytes.
const NonceSize = 12

// KeySize is the ChaCha20 key length in bytes.
const KeySize = 32

// LengthFieldSize is the width, in bytes, of the big-endian ciphertext
// length field.
const LengthFieldSize = 4

// HeaderSize is the fixed portion of the frame preceding the ciphertext.
const HeaderSize = NonceSize + LengthFieldSize

// Frame is a parsed nonce/length/ciphertext triple.
type Frame struct {
	Nonce      [NonceSize]byte
	Ciphertext []byte
}

// Serialize encodes f into its wire byte representation.
func (f *Frame) Serialize() []byte {
	out := make([]byte, HeaderSize+len(f.Ciphertext))
	copy(out[0:NonceSize], f.Nonce[:])
	binary.BigEndian.PutUint32(out[NonceSize:HeaderSize], uint32(len(f.Ciphertext)))
	copy(out[HeaderSize:], f.Ciphertext)
	return out
}

// ByteLen returns the total serialised size of f in bytes.
func (f *Frame) ByteLen() int { return HeaderSize + len(f.Ciphertext) }

// Parse decodes a wire byte representation into a Frame. maxCiphertext
// bounds the accepted length field as a sanity check against a corrupted
// carrier; Parse fails with ErrCorrupt if the declared length exceeds it
// or exceeds the bytes actually available.
func Parse(data []byte, maxCiphertext int) (*Frame, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("frame: %w: only %d bytes, need at least %d", ErrCorrupt, len(data), HeaderSize)
	}

	var f Frame
	copy(f.Nonce[:], data[0:NonceSize])
	l := binary.BigEndian.Uint32(data[NonceSize:HeaderSize])

	if l > uint32(maxCiphertext) {
		return nil, fmt.Errorf("frame: %w: declared length %d exceeds maximum %d", ErrCorrupt, l, maxCiphertext)
	}
	if HeaderSize+int(l) > len(data) {
		return nil, fmt.Errorf("frame: %w: declared length %d exceeds available %d bytes", ErrCorrupt, l, len(data)-HeaderSize)
	}

	f.Ciphertext = make([]byte, l)
	copy(f.Ciphertext, data[HeaderSize:HeaderSize+int(l)])
	return &f, nil
}
