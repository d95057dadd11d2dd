package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestHittableList_HitReturnsClosest(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -3), 0.5, testMaterial)
	far := NewSphere(core.NewVec3(0, 0, -10), 0.5, testMaterial)

	tests := []struct {
		name    string
		objects []Hittable
	}{
		{"near first", []Hittable{near, far}},
		{"far first", []Hittable{far, near}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewHittableList(tt.objects...)
			hit, ok := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), core.NewInterval(0.001, math.Inf(1)))
			if !ok {
				t.Fatal("Expected hit, got miss")
			}
			if math.Abs(hit.T-2.5) > 1e-9 {
				t.Errorf("Expected closest hit at t=2.5, got %f", hit.T)
			}
		})
	}
}

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()

	if _, ok := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), core.UniverseInterval); ok {
		t.Error("Expected empty list to never hit")
	}
	if got := list.PDFValue(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)); got != 0 {
		t.Errorf("Expected pdf 0 for empty list, got %f", got)
	}
	if list.Len() != 0 {
		t.Errorf("Expected Len 0, got %d", list.Len())
	}
}

func TestHittableList_PDFValueAveragesMembers(t *testing.T) {
	above := NewQuad(core.NewVec3(-0.5, 1, -0.5), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), testMaterial)
	below := NewQuad(core.NewVec3(-0.5, -1, -0.5), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), testMaterial)
	list := NewHittableList(above)
	list.Add(below)

	origin := core.NewVec3(0, 0, 0)
	if got := list.PDFValue(origin, core.NewVec3(0, 1, 0)); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected pdf 0.5 toward one of two lights, got %f", got)
	}

	// Random picks either light with roughly equal frequency
	sampler := core.NewSeededSampler(42)
	up := 0
	const n = 2000
	for i := 0; i < n; i++ {
		if list.Random(origin, sampler).Y > 0 {
			up++
		}
	}
	if up < n*4/10 || up > n*6/10 {
		t.Errorf("Expected about half the samples toward the upper light, got %d of %d", up, n)
	}
}
