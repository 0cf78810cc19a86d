package geometry

import (
	"github.com/avh/go-whitted-raytracer/pkg/core"
	"github.com/avh/go-whitted-raytracer/pkg/material"
)

// Surface is the intersection protocol every primitive exposes.
// The implementer set is closed: Sphere and Plane.
type Surface interface {
	// Intersect returns the nearest nonnegative parametric t along the ray,
	// or ok=false when the ray misses. The ray direction must be unit length.
	Intersect(ray core.Ray) (t float64, ok bool)

	// NormalAt returns the unit surface normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3

	// ColorAt returns the surface color at a point on the surface
	ColorAt(point core.Vec3) core.Color

	// Material returns the scattering material of the surface
	Material() material.Material
}
