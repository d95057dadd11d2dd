package imageio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// decoders maps a lower-case file extension to the codec that reads it.
// The tga package registers itself with an empty magic string, so format
// sniffing through image.Decode cannot be trusted.
var decoders = map[string]func(r io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".tga":  tga.Decode,
	".bmp":  bmp.Decode,
	".tif":  tiff.Decode,
	".tiff": tiff.Decode,
	".webp": webp.Decode,
}

// LoadTexture decodes a PNG, JPEG, TGA, BMP, TIFF or WebP file into a texture
// with linear colors. 8-bit channels are treated as gamma 2 encoded.
func LoadTexture(path string) (*material.ImageTexture, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("imageio: unsupported texture extension %q for %s", ext, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}

	return TextureFromImage(img), nil
}

// TextureFromImage converts img into linear texture pixels
func TextureFromImage(img image.Image) *material.ImageTexture {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, bl, _ := img.At(x+b.Min.X, y+b.Min.Y).RGBA()
			pixels[y*width+x] = core.NewVec3(decodeGamma(r), decodeGamma(g), decodeGamma(bl))
		}
	}

	return material.NewImageTexture(width, height, pixels)
}

// decodeGamma maps a 16-bit channel to linear intensity, undoing gamma 2
func decodeGamma(c uint32) float64 {
	v := float64(c) / 0xffff
	return v * v
}
