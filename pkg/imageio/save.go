package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// encoders maps a lower-case file extension to the codec that writes it
var encoders = map[string]func(w io.Writer, img image.Image) error{
	".png":  png.Encode,
	".webp": encodeWebP,
	".tga":  tga.Encode,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeWebP(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// SupportedExtension reports whether Save can write a file with this name
func SupportedExtension(path string) bool {
	_, ok := encoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Save writes img to path, choosing the codec from the file extension
func Save(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	encode, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("imageio: unsupported extension %q for %s", ext, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}

	if err := encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close %s: %w", path, err)
	}
	return nil
}
