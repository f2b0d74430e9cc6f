package raycast3d

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var ErrUnknownFormat = errors.New("unknown image format")

// Supported output formats.
const (
	FormatPPM  = "ppm"
	FormatPNG  = "png"
	FormatGIF  = "gif"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
	// FormatPNG16 is never inferred from an extension: it writes a .png
	// holding the radiance normalized to its peak, 16 bits per channel.
	FormatPNG16 = "png16"
)

// formatOf returns format lower-cased, or infers it from path's extension.
func formatOf(path, format string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch f {
	case FormatPPM, FormatPNG, FormatGIF, FormatBMP, FormatTIFF, FormatPNG16:
		return f, nil
	case "tif":
		return FormatTIFF, nil
	case "":
		return FormatPPM, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// EncodeImage writes fb to w in the given format.
func EncodeImage(w io.Writer, fb *Framebuffer, format string) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, fb)
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, fb.Image())
	case FormatPNG16:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, fb.Image16(PNG16Gamma))
	case FormatGIF:
		return encodeGIF(w, fb, GIFDelay)
	case FormatBMP:
		return bmp.Encode(w, fb.Image())
	case FormatTIFF:
		return tiff.Encode(w, fb.Image(), &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// SaveImage writes fb to path. An empty format is inferred from the extension.
func SaveImage(path string, fb *Framebuffer, format string) error {
	f, err := formatOf(path, format)
	if err != nil {
		return err
	}
	if err := createAndWrite(path, func(w io.Writer) error { return EncodeImage(w, fb, f) }); err != nil {
		return fmt.Errorf("save %s image %s: %w", f, path, err)
	}
	return nil
}
