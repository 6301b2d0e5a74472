package stego

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/rs/zerolog"

	"github.com/Asim-Shaik/Steganography-CLI/channel"
	"github.com/Asim-Shaik/Steganography-CLI/dct"
	"github.com/Asim-Shaik/Steganography-CLI/frame"
	"github.com/Asim-Shaik/Steganography-CLI/quant"
	"github.com/Asim-Shaik/Steganography-CLI/repetition"
)

// Embed encrypts plaintext, frames it, repetition-encodes it onto the
// cover's luminance plane via quantization-aware DCT modulation, and
// re-encodes the result as a JPEG at the given quality. If opts.Key is
// nil a fresh 32-byte key is drawn and returned.
func Embed(cover image.Image, plaintext []byte, opts Options) ([]byte, []byte, Stats, error) {
	var stats Stats

	if opts.Quality < 1 || opts.Quality > 100 {
		return nil, nil, stats, ErrInvalidQuality
	}

	key := opts.Key
	if key == nil {
		k, err := frame.RandomBytes(frame.KeySize)
		if err != nil {
			return nil, nil, stats, err
		}
		key = k
	} else if len(key) != frame.KeySize {
		return nil, nil, stats, ErrInvalidKey
	}

	nonce, err := frame.NewNonce()
	if err != nil {
		return nil, nil, stats, err
	}

	ciphertext, err := frame.Apply(key, nonce, plaintext)
	if err != nil {
		return nil, nil, stats, err
	}

	f := &frame.Frame{Nonce: nonce, Ciphertext: ciphertext}
	wireBits := frame.PackBits(f.Serialize())
	channelBits := repetition.Encode(wireBits)

	ycbcr := toYCbCr444(cover)
	plane := lumaPlane(ycbcr)
	blockCount := plane.BlockCount()
	if blockCount == 0 {
		return nil, nil, stats, fmt.Errorf("%w: cover has no whole 8x8 blocks", ErrInvalidImage)
	}

	capacity := Capacity(blockCount)
	stats = Stats{
		BlockCount:    blockCount,
		Capacity:      capacity,
		RequiredBits:  len(channelBits),
		CiphertextLen: len(ciphertext),
	}
	if len(channelBits) > capacity {
		opts.logger().Error().
			Int("required_bits", len(channelBits)).
			Int("capacity", capacity).
			Msg("payload exceeds cover capacity")
		return nil, nil, stats, ErrCapacityExceeded
	}
	stats.UnusedChannelBits = capacity - len(channelBits)

	// The QIM strength table is always derived from the protocol's
	// default quality, independent of opts.Quality (which governs only
	// the real JPEG re-encode below). Extract has no way to learn the
	// quality Embed was called with, so both sides must agree on a
	// fixed strength table out of band for demodulation to recover the
	// same bits regardless of what JPEG quality the cover is ultimately
	// saved at.
	tbl, err := quant.New(DefaultQuality)
	if err != nil {
		return nil, nil, stats, err
	}

	usedBlocks := (len(channelBits) + channel.PerBlock - 1) / channel.PerBlock
	parallelBlocks(usedBlocks, func(i int) {
		bx, by := plane.BlockXY(i)
		b := plane.ReadBlock(bx, by)
		coeff := dct.Forward(b)

		start := i * channel.PerBlock
		end := start + channel.PerBlock
		if end > len(channelBits) {
			end = len(channelBits)
		}
		for j := start; j < end; j++ {
			pos := channel.Positions[j-start]
			s := tbl.Strength(pos.U, pos.V)
			channel.Modulate(coeff, pos, channelBits[j], s)
		}

		plane.WriteBlock(bx, by, dct.Inverse(coeff))
	})

	writeLumaPlane(ycbcr, plane)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, ycbcr, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return nil, nil, stats, fmt.Errorf("stego: encode jpeg: %w", err)
	}

	opts.logger().Debug().
		Int("blocks_used", usedBlocks).
		Int("capacity_bits", capacity).
		Int("required_bits", len(channelBits)).
		Msg("embed complete")

	return out.Bytes(), key, stats, nil
}

// ExtractOptions bundles the receiver-side knobs.
type ExtractOptions struct {
	// ExpectedLen, if non-nil, overrides the ciphertext length the
	// frame itself declares.
	ExpectedLen *int
	// Logger receives structured progress/diagnostic events. nil
	// disables logging.
	Logger *zerolog.Logger
}

func (o ExtractOptions) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

// Extract decodes a stego JPEG, recovers the framed ciphertext via
// quantization-aware DCT demodulation and majority-vote repetition
// decoding, and decrypts it with key.
func Extract(stegoJPEG []byte, key []byte, opts ExtractOptions) ([]byte, error) {
	if len(key) != frame.KeySize {
		return nil, ErrInvalidKey
	}

	src, _, err := image.Decode(bytes.NewReader(stegoJPEG))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	ycbcr := toYCbCr444(src)
	plane := lumaPlane(ycbcr)
	blockCount := plane.BlockCount()
	capacity := Capacity(blockCount)
	if capacity < RequiredChannelBits(0) {
		return nil, fmt.Errorf("%w: too small to carry even an empty payload", ErrInvalidImage)
	}

	tbl, err := quant.New(DefaultQuality)
	if err != nil {
		return nil, err
	}

	channelBits := make([]int, capacity)
	parallelBlocks(blockCount, func(i int) {
		bx, by := plane.BlockXY(i)
		b := plane.ReadBlock(bx, by)
		coeff := dct.Forward(b)

		start := i * channel.PerBlock
		for j, pos := range channel.Positions {
			s := tbl.Strength(pos.U, pos.V)
			channelBits[start+j] = channel.Demodulate(coeff, pos, s)
		}
	})

	payloadBits := repetition.Decode(channelBits)
	nBytes := len(payloadBits) / 8
	wire := frame.UnpackBits(payloadBits[:nBytes*8])

	maxCiphertext := nBytes - frame.HeaderSize
	if maxCiphertext < 0 {
		maxCiphertext = 0
	}

	f, err := frame.Parse(wire, maxCiphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrameCorrupt, err)
	}

	ciphertext := f.Ciphertext
	if opts.ExpectedLen != nil {
		want := *opts.ExpectedLen
		available := nBytes - frame.HeaderSize
		if want > available {
			want = available
		}
		if want < 0 {
			want = 0
		}
		ciphertext = wire[frame.HeaderSize : frame.HeaderSize+want]
	}

	plaintext, err := frame.Apply(key, f.Nonce, ciphertext)
	if err != nil {
		return nil, err
	}

	opts.logger().Debug().
		Int("ciphertext_len", len(ciphertext)).
		Msg("extract complete")

	return plaintext, nil
}
