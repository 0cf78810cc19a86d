package material

import (
	"math/rand"

	"github.com/avh/go-whitted-raytracer/pkg/core"
)

// Lambertian represents a diffuse material that scatters incoming light
// into the hemisphere around the surface normal
type Lambertian struct {
	color       core.Color
	reflectance float64
}

// NewLambertian creates a new lambertian material
func NewLambertian(color core.Color, reflectance float64) *Lambertian {
	return &Lambertian{color: color, reflectance: clamp01(reflectance)}
}

// Color returns the base color of the material
func (l *Lambertian) Color() core.Color {
	return l.color
}

// Reflectance returns the reflected-light fraction
func (l *Lambertian) Reflectance() float64 {
	return l.reflectance
}

// Scatter implements the Material interface for diffuse scattering.
// A random point inside the unit sphere offset along the normal yields an
// approximately cosine-weighted direction above the surface.
func (l *Lambertian) Scatter(rayIn core.Ray, point, normal core.Vec3, random *rand.Rand) core.Vec3 {
	target := point.Add(normal).Add(core.RandomInUnitSphere(random))
	return target.Subtract(point).Normalize()
}
