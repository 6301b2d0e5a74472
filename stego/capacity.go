package stego

import (
	"github.com/Asim-Shaik/Steganography-CLI/channel"
	"github.com/Asim-Shaik/Steganography-CLI/frame"
	"github.com/Asim-Shaik/Steganography-CLI/repetition"
)

// Capacity returns the total number of channel bits a cover with
// blockCount whole 8x8 blocks can carry.
func Capacity(blockCount int) int { return blockCount * channel.PerBlock }

// RequiredChannelBits returns the channel bits needed to carry a frame
// whose ciphertext is ciphertextLen bytes: R * 8 * (HeaderSize +
// ciphertextLen).
func RequiredChannelBits(ciphertextLen int) int {
	payloadBits := 8 * (frame.HeaderSize + ciphertextLen)
	return repetition.ChannelBitsFor(payloadBits)
}

// MaxCiphertextLen returns the largest ciphertext length that fits in a
// cover with blockCount whole blocks, after frame and repetition
// overhead.
func MaxCiphertextLen(blockCount int) int {
	capBits := Capacity(blockCount)
	payloadBits := capBits / repetition.R
	payloadBytes := payloadBits / 8
	if payloadBytes < frame.HeaderSize {
		return 0
	}
	return payloadBytes - frame.HeaderSize
}
