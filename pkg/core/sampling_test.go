package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleSquareStratified_StaysInCell(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for _, n := range []int{1, 2, 3, 8} {
		cell := 1.0 / float64(n)
		for sj := 0; sj < n; sj++ {
			for si := 0; si < n; si++ {
				for k := 0; k < 20; k++ {
					p := SampleSquareStratified(si, sj, n, sampler.Get2D())
					minX := float64(si)*cell - 0.5
					minY := float64(sj)*cell - 0.5
					const eps = 1e-12
					if p.X < minX-eps || p.X > minX+cell+eps || p.Y < minY-eps || p.Y > minY+cell+eps {
						t.Fatalf("n=%d cell (%d,%d): sample %v outside [%f,%f)x[%f,%f)",
							n, si, sj, p, minX, minX+cell, minY, minY+cell)
					}
				}
			}
		}
	}
}

func TestSampleCosineHemisphere_AboveSurface(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	normal := NewVec3(0.2, 0.9, -0.1).Normalize()

	for i := 0; i < 1000; i++ {
		dir := SampleCosineHemisphere(normal, sampler.Get2D())
		if dir.Dot(normal) < -1e-9 {
			t.Fatalf("Direction %v is below the surface", dir)
		}
		if math.Abs(dir.Length()-1.0) > 1e-9 {
			t.Fatalf("Direction %v is not unit length", dir)
		}
	}
}

func TestSampleOnUnitSphere_UnitLength(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(7)))
	for i := 0; i < 1000; i++ {
		dir := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(dir.Length()-1.0) > 1e-9 {
			t.Fatalf("Direction %v is not unit length", dir)
		}
	}
}

func TestSampleToSphere_InsideCone(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(3)))
	radius := 1.0
	distanceSquared := 25.0
	cosThetaMax := math.Sqrt(1 - radius*radius/distanceSquared)

	for i := 0; i < 1000; i++ {
		dir := SampleToSphere(radius, distanceSquared, sampler.Get2D())
		if dir.Z < cosThetaMax-1e-9 {
			t.Fatalf("Direction %v falls outside the cone (cos %f)", dir, cosThetaMax)
		}
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 || p.X*p.X+p.Y*p.Y > 1.0+1e-9 {
			t.Fatalf("Point %v is outside the unit disk", p)
		}
	}
	if got := SamplePointInUnitDisk(NewVec2(0.5, 0.5)); got != (Vec3{}) {
		t.Errorf("Center sample should map to origin, got %v", got)
	}
}

func TestIntN_Range(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(1)))
	counts := make([]int, 3)
	for i := 0; i < 3000; i++ {
		counts[IntN(sampler, 3)]++
	}
	for i, c := range counts {
		if c < 800 {
			t.Errorf("Bucket %d badly underrepresented: %d", i, c)
		}
	}
}
