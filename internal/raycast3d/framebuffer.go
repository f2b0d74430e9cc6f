package raycast3d

import (
	"errors"
	"fmt"
	"image"
)

var ErrOutOfBounds = errors.New("pixel out of bounds")

// Framebuffer holds the quantized image (row-major RGB bytes) and the
// unclamped radiance it was produced from.
type Framebuffer struct {
	Width, Height int
	Pix           []uint8 // (y*Width + x)*3 + c
	Radiance      []Real  // same layout as Pix
}

func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("framebuffer size must be positive, got %dx%d", width, height)
	}
	n := width * height * 3
	return &Framebuffer{
		Width:    width,
		Height:   height,
		Pix:      make([]uint8, n),
		Radiance: make([]Real, n),
	}, nil
}

func (fb *Framebuffer) idx(x, y int) int { return (y*fb.Width + x) * 3 }

// Set stores c at (x, y), quantizing each channel on its own.
func (fb *Framebuffer) Set(x, y int, c RGB) error {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, fb.Width, fb.Height)
	}
	i := fb.idx(x, y)
	for ch := ChR; ch <= ChB; ch++ {
		v := c.ch(ch)
		fb.Pix[i+ch] = quantize(v)
		fb.Radiance[i+ch] = v
	}
	return nil
}

// At returns the quantized bytes at (x, y).
func (fb *Framebuffer) At(x, y int) (r, g, b uint8, err error) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return 0, 0, 0, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, fb.Width, fb.Height)
	}
	i := fb.idx(x, y)
	return fb.Pix[i+ChR], fb.Pix[i+ChG], fb.Pix[i+ChB], nil
}

// Image copies the bytes into an opaque NRGBA image.
func (fb *Framebuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		rowOff := y * img.Stride
		for x := 0; x < fb.Width; x++ {
			i := fb.idx(x, y)
			p := rowOff + x*4
			img.Pix[p+0] = fb.Pix[i+ChR]
			img.Pix[p+1] = fb.Pix[i+ChG]
			img.Pix[p+2] = fb.Pix[i+ChB]
			img.Pix[p+3] = 255
		}
	}
	return img
}

// quantize maps a channel to [0,255]: v*255 clamped, truncated.
func quantize(v Real) uint8 {
	x := v * 255
	if !(x > 0) { // also catches NaN
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x)
}
