package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

var (
	skyTop    = core.NewVec3(0.5, 0.7, 1.0)
	skyBottom = core.NewVec3(1.0, 1.0, 1.0)
)

func newTestSampler() core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(42)))
}

// createLitFloor builds a diffuse floor at y=0 under a downward-facing 2x2 light at y=2
func createLitFloor() (geometry.Hittable, *geometry.Quad) {
	floor := geometry.NewQuad(
		core.NewVec3(-5, 0, -5), core.NewVec3(0, 0, 10), core.NewVec3(10, 0, 0),
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	)
	light := geometry.NewQuad(
		core.NewVec3(-1, 2, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2),
		material.NewEmissive(core.NewVec3(4, 4, 4)),
	)
	return geometry.NewHittableList(floor, light), light
}

func TestPathTracingDepthTermination(t *testing.T) {
	world, light := createLitFloor()
	integrator := NewPathTracingIntegrator(IntegratorConfig{MaxDepth: 0, BackgroundTop: skyTop, BackgroundBottom: skyBottom})

	// Ray that would otherwise see the sky
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))
	if c := integrator.RayColor(ray, integrator.MaxDepth(), world, light, newTestSampler()); c != (core.Vec3{}) {
		t.Errorf("Expected black color for depth 0, got %v", c)
	}
}

func TestPathTracingBackgroundGradient(t *testing.T) {
	integrator := NewPathTracingIntegrator(IntegratorConfig{MaxDepth: 5, BackgroundTop: skyTop, BackgroundBottom: skyBottom})
	world := geometry.NewHittableList()

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), skyTop},
		{"straight down", core.NewVec3(0, -1, 0), skyBottom},
		{"horizontal", core.NewVec3(1, 0, 0), core.Lerp(skyBottom, skyTop, 0.5)},
		{"unnormalized up", core.NewVec3(0, 7, 0), skyTop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			got := integrator.RayColor(ray, 5, world, world, newTestSampler())
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPathTracingEmitterSeenDirectly(t *testing.T) {
	light := geometry.NewQuad(
		core.NewVec3(-1, -1, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0),
		material.NewEmissive(core.NewVec3(4, 3, 2)),
	)
	integrator := NewPathTracingIntegrator(IntegratorConfig{MaxDepth: 1})

	tests := []struct {
		name     string
		origin   core.Vec3
		dir      core.Vec3
		expected core.Vec3
	}{
		{"front face", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(4, 3, 2)},
		{"back face", core.NewVec3(0, 0, -2), core.NewVec3(0, 0, 1), core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := integrator.RayColor(core.NewRay(tt.origin, tt.dir), 1, light, light, newTestSampler())
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPathTracingSpecularFollowsMirrorRay(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.6, 0.4)
	mirror := geometry.NewQuad(
		core.NewVec3(-10, 0, -10), core.NewVec3(0, 0, 20), core.NewVec3(20, 0, 0),
		material.NewMetal(albedo, 0),
	)
	integrator := NewPathTracingIntegrator(IntegratorConfig{MaxDepth: 3, BackgroundTop: skyTop, BackgroundBottom: skyBottom})

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, -1))
	got := integrator.RayColor(ray, 3, mirror, geometry.NewHittableList(), newTestSampler())

	// Reflected direction is (0,1,-1)/√2, which escapes to the sky
	a := 0.5 * (1/math.Sqrt2 + 1)
	expected := albedo.MultiplyVec(core.Lerp(skyBottom, skyTop, a))
	if !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	// Depth 1 leaves no budget for the reflected ray
	if got := integrator.RayColor(ray, 1, mirror, nil, newTestSampler()); got != (core.Vec3{}) {
		t.Errorf("Expected black with depth 1, got %v", got)
	}
}

func TestPathTracingDiffuseNeedsTwoBounces(t *testing.T) {
	world, light := createLitFloor()
	integrator := NewPathTracingIntegrator(IntegratorConfig{MaxDepth: 2})
	sampler := newTestSampler()
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	if got := integrator.RayColor(ray, 1, world, light, sampler); got != (core.Vec3{}) {
		t.Errorf("Expected black at depth 1 on a non-emitting floor, got %v", got)
	}

	sum := core.Vec3{}
	for i := 0; i < 100; i++ {
		sum = sum.Add(integrator.RayColor(ray, 2, world, light, sampler))
	}
	if sum.X <= 0 || math.IsNaN(sum.X) || math.IsInf(sum.X, 0) {
		t.Errorf("Expected positive finite radiance at depth 2, got %v", sum)
	}
}

func TestPathTracingLightSamplingAgreesWithMaterialSampling(t *testing.T) {
	world, light := createLitFloor()
	integrator := NewPathTracingIntegrator(IntegratorConfig{MaxDepth: 2})
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	const samples = 20000
	estimate := func(lightSet lights.Target) float64 {
		sampler := newTestSampler()
		sum := 0.0
		for i := 0; i < samples; i++ {
			sum += integrator.RayColor(ray, 2, world, lightSet, sampler).X
		}
		return sum / samples
	}

	mixture := estimate(light)
	materialOnly := estimate(nil)
	if materialOnly <= 0 {
		t.Fatalf("Expected material sampling to find the light, got %f", materialOnly)
	}
	if rel := math.Abs(mixture-materialOnly) / materialOnly; rel > 0.1 {
		t.Errorf("Estimators disagree: mixture=%f material=%f", mixture, materialOnly)
	}
}

// zeroDensity scatters along the normal but reports a zero sampling density
type zeroDensity struct{}

func (zeroDensity) Value(core.Vec3) float64 { return 0 }

func (zeroDensity) Generate(core.Sampler) core.Vec3 { return core.NewVec3(0, 1, 0) }

type zeroDensityMaterial struct{}

func (zeroDensityMaterial) Scatter(rayIn core.Ray, hit *material.HitRecord, sampler core.Sampler) (material.ScatterRecord, bool) {
	return material.ScatterRecord{Attenuation: core.NewVec3(1, 1, 1), PDF: pdf.PDF(zeroDensity{})}, true
}

func (zeroDensityMaterial) Emitted(core.Ray, *material.HitRecord, core.Vec2, core.Vec3) core.Vec3 {
	return core.Vec3{}
}

func (zeroDensityMaterial) ScatteringPDF(core.Ray, *material.HitRecord, core.Ray) float64 {
	return 1
}

func TestPathTracingLeavesNonFiniteValues(t *testing.T) {
	floor := geometry.NewQuad(
		core.NewVec3(-5, 0, -5), core.NewVec3(0, 0, 10), core.NewVec3(10, 0, 0),
		zeroDensityMaterial{},
	)
	integrator := NewPathTracingIntegrator(IntegratorConfig{MaxDepth: 2})
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// 0 * (1/0) with a black sky
	got := integrator.RayColor(ray, 2, floor, nil, newTestSampler())
	if !math.IsNaN(got.X) {
		t.Errorf("Expected NaN to propagate to the caller, got %v", got)
	}
}
