package stego

import (
	"image"
	"image/color"

	"github.com/Asim-Shaik/Steganography-CLI/channel"
)

// toYCbCr444 converts an arbitrary decoded image into a freshly allocated
// 4:4:4 YCbCr image using the BT.601 weights (Y = 0.299R + 0.587G +
// 0.114B, matching image/color.RGBToYCbCr's integer approximation, which
// is what the JPEG encoder itself uses internally). The chrominance
// planes produced here are never rewritten by the embedder; only Y is
// modulated, so Cb/Cr survive the pre-JPEG step bit-exactly.
func toYCbCr444(img image.Image) *image.YCbCr {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewYCbCr(image.Rect(0, 0, w, h), image.YCbCrSubsampleRatio444)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			yy, cb, cr := color.RGBToYCbCr(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
			off := dst.YOffset(x, y)
			dst.Y[off] = yy
			dst.Cb[off] = cb
			dst.Cr[off] = cr
		}
	}
	return dst
}

// lumaPlane builds a channel.LumaPlane view over img's Y channel.
func lumaPlane(img *image.YCbCr) *channel.LumaPlane {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	p := channel.NewLumaPlane(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.Pix[y*w+x] = float64(img.Y[img.YOffset(x, y)])
		}
	}
	return p
}

// writeLumaPlane writes plane's samples back into img's Y channel,
// rounding and clamping to a byte. Cb/Cr are left untouched.
func writeLumaPlane(img *image.YCbCr, plane *channel.LumaPlane) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := plane.Pix[y*w+x]
			img.Y[img.YOffset(x, y)] = clampByte(v)
		}
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
