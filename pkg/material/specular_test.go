package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/avh/go-whitted-raytracer/pkg/core"
)

func TestSpecular_PerfectMirror(t *testing.T) {
	mat := NewSpecular(core.NewColor(255, 255, 255), 1.0, 0.0)
	random := rand.New(rand.NewSource(1))

	// 45-degree incidence onto an upward-facing surface
	rayIn := core.NewRay(core.NewVec3(0, 1, -1), core.NewVec3(0, -1, 1).Normalize())
	normal := core.NewVec3(0, 1, 0)
	point := core.NewVec3(0, 0, 0)

	out := mat.Scatter(rayIn, point, normal, random)
	expected := core.NewVec3(0, 1, 1).Normalize()

	if out.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected mirror direction %v, got %v", expected, out)
	}
}

func TestSpecular_FuzzPerturbsWithinBound(t *testing.T) {
	fuzz := 0.2
	mat := NewSpecular(core.NewColor(200, 200, 200), 0.8, fuzz)
	random := rand.New(rand.NewSource(7))

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	normal := core.NewVec3(0, 1, 0)
	mirror := rayIn.Direction.Reflect(normal)

	// Each jitter component is uniform in [-fuzz, fuzz]
	maxOffset := math.Sqrt(3) * fuzz
	for i := 0; i < 200; i++ {
		out := mat.Scatter(rayIn, core.NewVec3(0, 0, 0), normal, random)
		offset := out.Subtract(mirror).Length()
		if offset > maxOffset+1e-12 {
			t.Fatalf("Jitter offset %f exceeds bound %f", offset, maxOffset)
		}
	}
}

func TestSpecular_ReflectanceClamped(t *testing.T) {
	if r := NewSpecular(core.NewColor(0, 0, 0), 1.5, 0).Reflectance(); r != 1.0 {
		t.Errorf("Expected reflectance clamped to 1, got %f", r)
	}
	if r := NewSpecular(core.NewColor(0, 0, 0), -0.5, 0).Reflectance(); r != 0.0 {
		t.Errorf("Expected reflectance clamped to 0, got %f", r)
	}
}
