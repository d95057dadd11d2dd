package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestQuad_Hit_BasicIntersection(t *testing.T) {
	// Create a 1x1 quad in the XZ plane at y=0
	corner := core.NewVec3(0, 0, 0)
	u := core.NewVec3(1, 0, 0) // X direction
	v := core.NewVec3(0, 0, 1) // Z direction
	quad := NewQuad(corner, u, v, testMaterial)

	// Ray shooting down at the quad
	ray := core.NewRay(core.NewVec3(0.25, 1, 0.75), core.NewVec3(0, -1, 0))

	hit, isHit := quad.Hit(ray, core.NewInterval(0.001, 1000.0))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got t=%f", hit.T)
	}
	if !hit.Point.Equals(core.NewVec3(0.25, 0, 0.75)) {
		t.Errorf("Expected hit point (0.25, 0, 0.75), got %v", hit.Point)
	}
	if math.Abs(hit.UV.X-0.25) > 1e-9 || math.Abs(hit.UV.Y-0.75) > 1e-9 {
		t.Errorf("Expected uv (0.25, 0.75), got %v", hit.UV)
	}
	// Normal always faces against the incoming ray
	if hit.Normal.Dot(ray.Direction) >= 0 {
		t.Errorf("Expected normal against ray, got %v", hit.Normal)
	}
}

func TestQuad_Hit_Misses(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), testMaterial)

	tests := []struct {
		name      string
		rayOrigin core.Vec3
		rayDir    core.Vec3
		interval  core.Interval
	}{
		{"outside X bounds (negative)", core.NewVec3(-0.5, 1, 0.5), core.NewVec3(0, -1, 0), core.NewInterval(0.001, 1000)},
		{"outside X bounds (positive)", core.NewVec3(1.5, 1, 0.5), core.NewVec3(0, -1, 0), core.NewInterval(0.001, 1000)},
		{"outside Z bounds", core.NewVec3(0.5, 1, 1.5), core.NewVec3(0, -1, 0), core.NewInterval(0.001, 1000)},
		{"parallel to plane", core.NewVec3(0.5, 1, 0.5), core.NewVec3(1, 0, 0), core.NewInterval(0.001, 1000)},
		{"behind ray origin", core.NewVec3(0.5, -1, 0.5), core.NewVec3(0, -1, 0), core.NewInterval(0.001, 1000)},
		{"beyond interval", core.NewVec3(0.5, 5, 0.5), core.NewVec3(0, -1, 0), core.NewInterval(0.001, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDir)
			if hit, isHit := quad.Hit(ray, tt.interval); isHit {
				t.Errorf("Expected miss, got hit at t=%f", hit.T)
			}
		})
	}
}

func TestQuad_PDFValue(t *testing.T) {
	// Unit-area light one unit above the origin, facing down
	light := NewQuad(core.NewVec3(-0.5, 1, -0.5), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), testMaterial)
	origin := core.NewVec3(0, 0, 0)

	tests := []struct {
		direction core.Vec3
		expected  float64
	}{
		{core.NewVec3(0, 1, 0), 1.0},
		{core.NewVec3(0, 2, 0), 1.0}, // direction length does not matter
		{core.NewVec3(0, -1, 0), 0.0},
		{core.NewVec3(1, 0.1, 0), 0.0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("dir=%v", tt.direction), func(t *testing.T) {
			got := light.PDFValue(origin, tt.direction)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected pdf %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestQuad_RandomLandsOnQuad(t *testing.T) {
	light := NewQuad(core.NewVec3(-0.5, 1, -0.5), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), testMaterial)
	origin := core.NewVec3(0.2, -0.3, 0.1)
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 500; i++ {
		p := origin.Add(light.Random(origin, sampler))
		if math.Abs(p.Y-1) > 1e-9 || p.X < -0.5 || p.X > 0.5 || p.Z < -0.5 || p.Z > 0.5 {
			t.Fatalf("Sample %d at %v is not on the quad", i, p)
		}
	}
}
