package raycast3d

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

// encodeGIF writes fb as a single-frame GIF, quantized to the Plan9
// palette with Floyd-Steinberg dithering.
// delay is in 100ths of a second.
func encodeGIF(w io.Writer, fb *Framebuffer, delay int) error {
	rgba := fb.Image()
	pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})

	out := &gif.GIF{
		Image:     []*image.Paletted{pimg},
		Delay:     []int{delay},
		LoopCount: 0,
	}
	return gif.EncodeAll(w, out)
}
