package raycast3d

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// SaveRawRGB64 dumps the unclamped radiance: int32 Width, int32 Height,
// then Width*Height*3 float64 values, all little-endian.
func (fb *Framebuffer) SaveRawRGB64(path string) error {
	if fb.Width < 0 || fb.Height < 0 {
		return fmt.Errorf("negative dimensions: Width=%d Height=%d", fb.Width, fb.Height)
	}
	exp64 := int64(fb.Width) * int64(fb.Height) * 3
	if int64(len(fb.Radiance)) != exp64 {
		return fmt.Errorf("Radiance length mismatch: got %d, expected %d (Width*Height*3)", len(fb.Radiance), exp64)
	}

	return createAndWrite(path, func(f io.Writer) error {
		w := bufio.NewWriter(f)
		if err := binary.Write(w, binary.LittleEndian, int32(fb.Width)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, int32(fb.Height)); err != nil {
			return err
		}
		if exp64 > 0 {
			if err := binary.Write(w, binary.LittleEndian, fb.Radiance); err != nil {
				return err
			}
		}
		return w.Flush()
	})
}
