package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLinearToGamma(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{-1, 0},
		{0.25, 0.5},
		{1, 1},
		{4, 2},
	}

	for _, tt := range tests {
		if got := LinearToGamma(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("LinearToGamma(%f): expected %f, got %f", tt.in, tt.want, got)
		}
	}
}

func TestPackColor(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name string
		in   core.Vec3
		want uint32
	}{
		{"black", core.NewVec3(0, 0, 0), 0xff000000},
		{"white saturates at 255", core.NewVec3(1, 1, 1), 0xffffffff},
		{"overexposed clamps", core.NewVec3(50, 50, 50), 0xffffffff},
		{"negative clamps to zero", core.NewVec3(-1, -2, -3), 0xff000000},
		{"red in low byte", core.NewVec3(1, 0, 0), 0xff0000ff},
		{"green in second byte", core.NewVec3(0, 1, 0), 0xff00ff00},
		{"blue in third byte", core.NewVec3(0, 0, 1), 0xffff0000},
		{"NaN becomes zero", core.NewVec3(nan, nan, nan), 0xff000000},
		{"NaN only in its own channel", core.NewVec3(nan, 1, 0), 0xff00ff00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackColor(tt.in); got != tt.want {
				t.Errorf("Expected %#08x, got %#08x", tt.want, got)
			}
		})
	}
}

func TestPackColor_RoundTrip(t *testing.T) {
	for _, x := range []float64{0.001, 0.01, 0.1, 0.2, 0.5, 0.75, 0.9, 0.99} {
		c := UnpackColor(PackColor(core.NewVec3(x, x, x)))

		if c.A != 255 {
			t.Errorf("Expected alpha 255, got %d", c.A)
		}
		if c.R != c.G || c.G != c.B {
			t.Errorf("Expected equal channels for gray %f, got %v", x, c)
		}

		// Undo gamma: the quantized value is within one step of the input
		decoded := float64(c.R) / 256
		if math.Abs(decoded-math.Sqrt(x)) > 1.0/256 {
			t.Errorf("Gray %f decoded to %f, want %f", x, decoded*decoded, x)
		}
	}
}

func TestFramebuffer_Image(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Pix[0] = PackColor(core.NewVec3(1, 0, 0))
	fb.Pix[1] = PackColor(core.NewVec3(0, 0, 1))

	img := fb.Image()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("Expected 2x1 image, got %v", img.Bounds())
	}

	want := []uint8{255, 0, 0, 255, 0, 0, 255, 255}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d]: expected %d, got %d", i, b, img.Pix[i])
		}
	}
}

func TestFramebuffer_RowsAreDisjoint(t *testing.T) {
	fb := NewFramebuffer(4, 10)
	for i, r := range PartitionRows(10, 3) {
		rows := fb.Rows(r)
		if len(rows) != r.Len()*4 {
			t.Errorf("Range %d: expected %d pixels, got %d", i, r.Len()*4, len(rows))
		}
		for k := range rows {
			rows[k] += uint32(i + 1)
		}
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 4; x++ {
			if p := fb.At(x, y); p == 0 || p > 3 {
				t.Fatalf("Pixel (%d,%d) written %d times or by an unexpected range", x, y, p)
			}
		}
	}
}
