package raycast3d

import (
	"image"
	"math"
)

// Image16 tone-maps the radiance buffer into a 16-bit image: every channel
// is divided by the peak channel value of the whole frame, then gamma
// corrected. Bright reflections that clamp to 255 in Pix keep their
// gradients here.
func (fb *Framebuffer) Image16(gamma Real) *image.NRGBA64 {
	peak := 0.0
	for _, v := range fb.Radiance {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1 // black frame
	}
	scale := 1.0 / peak

	toU16 := func(v Real) uint16 {
		if !(v > 0) {
			return 0
		}
		n := v * scale
		if n > 1 {
			n = 1
		}
		if gamma > 0 && gamma != 1 {
			n = math.Pow(n, 1.0/gamma)
		}
		return uint16(math.Round(n * 65535.0))
	}

	img := image.NewNRGBA64(image.Rect(0, 0, fb.Width, fb.Height))
	const pxBytes = 8
	for y := 0; y < fb.Height; y++ {
		rowOff := y * img.Stride
		for x := 0; x < fb.Width; x++ {
			i := fb.idx(x, y)
			p := rowOff + x*pxBytes
			for ch := ChR; ch <= ChB; ch++ {
				v := toU16(fb.Radiance[i+ch])
				// big-endian per channel
				img.Pix[p+2*ch] = uint8(v >> 8)
				img.Pix[p+2*ch+1] = uint8(v)
			}
			img.Pix[p+6] = 0xFF
			img.Pix[p+7] = 0xFF
		}
	}
	return img
}
