package lights

import (
	"math"

	"github.com/avh/go-whitted-raytracer/pkg/core"
	"github.com/avh/go-whitted-raytracer/pkg/geometry"
)

// shadowBias keeps the shadow ray from re-hitting the surface it starts on
const shadowBias = 1e-10

// PointLight is an omnidirectional light source with inverse-square falloff
type PointLight struct {
	Center core.Vec3
	Power  float64 // radiant power of the source
}

// NewPointLight creates a new point light
func NewPointLight(center core.Vec3, power float64) *PointLight {
	return &PointLight{Center: center, Power: power}
}

// Illuminate implements the Light interface. A shadow ray is cast from the
// surface point toward the light; any surface whose intersection lies
// strictly between the point and the light occludes it completely.
func (pl *PointLight) Illuminate(point, normal core.Vec3, surfaces []geometry.Surface) float64 {
	pointToLight := pl.Center.Subtract(point)
	dist := pointToLight.Length()

	shadowRay := core.NewRay(point, pointToLight.Normalize())
	for _, surface := range surfaces {
		if t, ok := surface.Intersect(shadowRay); ok && t > shadowBias && t < dist {
			return 0
		}
	}

	cosine := pointToLight.Dot(normal) / dist

	energy := pl.Power * cosine / (4 * math.Pi * dist * dist)
	if energy < 0 {
		// Back-facing surfaces receive zero energy, never negative
		return 0
	}
	return energy
}
