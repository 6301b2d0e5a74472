package channel

import (
	"math"

	"github.com/Asim-Shaik/Steganography-CLI/dct"
)

// Position identifies one DCT coefficient by its (u,v) frequency indices,
// 0 <= u,v < 8.
type Position struct {
	U, V int
}

// Positions is the ordered, fixed list of middle-frequency coefficients
// the channel transmits through. Both embed and extract must walk this
// exact list in this exact order — changing it changes the on-wire
// format and breaks interoperability across versions.
var Positions = [8]Position{
	{4, 1}, {1, 4}, {3, 2}, {2, 3},
	{5, 0}, {0, 5}, {3, 4}, {4, 3},
}

// PerBlock is the number of channel bits carried by one 8x8 block.
const PerBlock = len(Positions)

func (p Position) index() int { return p.V*dct.Size + p.U }

// at returns the raw coefficient value at p within c.
func (p Position) at(c *dct.CoeffBlock) float64 { return c[p.index()] }

func (p Position) set(c *dct.CoeffBlock, v float64) { c[p.index()] = v }

// Modulate writes bit (0 or 1) into coefficient block c at position p,
// using quantization-aware amplitude s. This is uniform scalar
// quantization index modulation (QIM): the coefficient is snapped to the
// nearest point of one of two interleaved lattices, each with spacing s
// and offset by s/2 from each other, selected by bit (even multiples of
// s/2 for bit 0, odd multiples for bit 1).
func Modulate(c *dct.CoeffBlock, p Position, bit int, s float64) {
	half := s / 2
	m := nearestWithParity(p.at(c)/half, bit)
	p.set(c, float64(m)*half)
}

// Demodulate recovers the bit written at position p by Modulate, given
// the same amplitude s. bit = 1 iff round(C[pos]/(s/2)) is odd.
func Demodulate(c *dct.CoeffBlock, p Position, s float64) int {
	half := s / 2
	m := int64(math.Round(p.at(c) / half))
	return int(m & 1)
}

// nearestWithParity returns the integer closest to x whose value modulo
// 2 equals parity (0 or 1).
func nearestWithParity(x float64, parity int) int64 {
	m0 := int64(math.Round(x))
	if (m0 & 1) == int64(parity&1) {
		return m0
	}
	// m0 has the wrong parity; the nearest integer of the right parity
	// is one of its neighbours — pick whichever side the true value
	// leans toward.
	if x-math.Round(x) >= 0 {
		return m0 + 1
	}
	return m0 - 1
}
