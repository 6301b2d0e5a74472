// Package channel implements the robust bit channel: it views a luminance
// plane as a raster-ordered grid of 8x8 blocks and modulates/demodulates
// one bit per coefficient at a fixed, ordered set of middle-frequency
// coefficient positions in each block.
package channel

import "github.com/Asim-Shaik/Steganography-CLI/dct"

// LumaPlane is an H x W grid of real luminance samples in [0,255], stored
// row-major. Its dimensions need not be multiples of 8; trailing partial
// rows/columns are simply never reached by block iteration.
type LumaPlane struct {
	W, H int
	Pix  []float64 // len == W*H, row-major
}

// NewLumaPlane allocates a zeroed plane of the given dimensions.
func NewLumaPlane(w, h int) *LumaPlane {
	return &LumaPlane{W: w, H: h, Pix: make([]float64, w*h)}
}

// BlockCols and BlockRows are the number of whole 8x8 blocks that fit
// across and down the plane; any trailing partial block is skipped.
func (p *LumaPlane) BlockCols() int { return p.W / dct.Size }
func (p *LumaPlane) BlockRows() int { return p.H / dct.Size }

// BlockCount is the total number of whole 8x8 blocks available for
// embedding, in raster scan order.
func (p *LumaPlane) BlockCount() int { return p.BlockCols() * p.BlockRows() }

// ReadBlock copies the 8x8 block at block-grid coordinates (bx,by) — the
// bx-th block column and by-th block row — out of the plane.
func (p *LumaPlane) ReadBlock(bx, by int) *dct.Block {
	var b dct.Block
	ox, oy := bx*dct.Size, by*dct.Size
	for y := 0; y < dct.Size; y++ {
		row := (oy + y) * p.W
		for x := 0; x < dct.Size; x++ {
			b[y*dct.Size+x] = p.Pix[row+ox+x]
		}
	}
	return &b
}

// WriteBlock writes an 8x8 block back into the plane at block-grid
// coordinates (bx,by).
func (p *LumaPlane) WriteBlock(bx, by int, b *dct.Block) {
	ox, oy := bx*dct.Size, by*dct.Size
	for y := 0; y < dct.Size; y++ {
		row := (oy + y) * p.W
		for x := 0; x < dct.Size; x++ {
			p.Pix[row+ox+x] = b[y*dct.Size+x]
		}
	}
}

// BlockXY converts a raster-order block index into (bx,by) grid
// coordinates. Block scan order is raster (row-major over the block
// grid), identical on embed and extract.
func (p *LumaPlane) BlockXY(index int) (bx, by int) {
	cols := p.BlockCols()
	return index % cols, index / cols
}
