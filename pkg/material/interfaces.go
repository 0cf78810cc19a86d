package material

import (
	"math/rand"

	"github.com/avh/go-whitted-raytracer/pkg/core"
)

// Material describes how a surface partitions and redirects light.
// Reflectance is the fraction of the surface's output taken from the
// reflected ray rather than direct shading; Scatter chooses the outgoing
// direction for that reflected ray.
type Material interface {
	// Color returns the base color of the material
	Color() core.Color

	// Reflectance returns the reflected-light fraction in [0, 1]
	Reflectance() float64

	// Scatter computes an outgoing ray direction from the incoming ray and
	// the surface normal at the intersection point
	Scatter(rayIn core.Ray, point, normal core.Vec3, random *rand.Rand) core.Vec3
}
