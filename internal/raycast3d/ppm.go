package raycast3d

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WritePPM writes fb as binary PPM: "P6 <w> <h> 255\n" then w*h*3 bytes.
func WritePPM(w io.Writer, fb *Framebuffer) error {
	if exp := fb.Width * fb.Height * 3; len(fb.Pix) != exp {
		return fmt.Errorf("Pix length mismatch: got %d, expected %d (Width*Height*3)", len(fb.Pix), exp)
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6 %d %d %d\n", fb.Width, fb.Height, 255); err != nil {
		return err
	}
	if _, err := bw.Write(fb.Pix); err != nil {
		return err
	}
	return bw.Flush()
}

func SavePPM(path string, fb *Framebuffer) error {
	return createAndWrite(path, func(w io.Writer) error { return WritePPM(w, fb) })
}

// createAndWrite makes the parent directory, writes through fn and reports
// the first of the write and close errors.
func createAndWrite(path string, fn func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(f)
}
