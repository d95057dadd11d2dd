package imageio

import (
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail downsizes img so its longer side is at most maxSide, keeping the
// aspect ratio. Images already small enough are returned unchanged.
func Thumbnail(img *image.NRGBA, maxSide int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return img
	}

	tw, th := maxSide, maxSide
	if w >= h {
		th = max(1, h*maxSide/w)
	} else {
		tw = max(1, w*maxSide/h)
	}

	// Path tracer output is fully opaque, so no premultiply pass is needed
	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
