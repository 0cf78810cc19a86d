package material

import (
	"math/rand"

	"github.com/avh/go-whitted-raytracer/pkg/core"
)

// Specular represents a mirror-like material with optional fuzzy reflection
type Specular struct {
	color       core.Color
	reflectance float64
	fuzz        float64 // 0.0 = perfect mirror, larger values roughen the surface
}

// NewSpecular creates a new specular material
func NewSpecular(color core.Color, reflectance, fuzz float64) *Specular {
	return &Specular{
		color:       color,
		reflectance: clamp01(reflectance),
		fuzz:        fuzz,
	}
}

// Color returns the base color of the material
func (s *Specular) Color() core.Color {
	return s.color
}

// Reflectance returns the reflected-light fraction
func (s *Specular) Reflectance() float64 {
	return s.reflectance
}

// Scatter implements the Material interface with mirror reflection.
// A per-component uniform jitter scaled by fuzz simulates rough
// reflective surfaces.
func (s *Specular) Scatter(rayIn core.Ray, point, normal core.Vec3, random *rand.Rand) core.Vec3 {
	reflected := rayIn.Direction.Reflect(normal)

	if s.fuzz > 0 {
		jitter := core.NewVec3(
			(2*random.Float64()-1)*s.fuzz,
			(2*random.Float64()-1)*s.fuzz,
			(2*random.Float64()-1)*s.fuzz,
		)
		reflected = reflected.Add(jitter)
	}

	return reflected
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
