package renderer

import (
	"image"
)

// Framebuffer holds row-major packed pixels, row 0 at the top of the image
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewFramebuffer allocates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

// Rows returns the pixels of rows [r.Start, r.End). Distinct ranges never overlap.
func (fb *Framebuffer) Rows(r RowRange) []uint32 {
	return fb.Pix[r.Start*fb.Width : r.End*fb.Width : r.End*fb.Width]
}

// At returns the packed pixel at (x, y)
func (fb *Framebuffer) At(x, y int) uint32 {
	return fb.Pix[y*fb.Width+x]
}

// Image converts the framebuffer into an image with R,G,B,A byte order
func (fb *Framebuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := UnpackColor(fb.Pix[y*fb.Width+x])
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}
