package geometry

import (
	"math"

	"github.com/avh/go-whitted-raytracer/pkg/core"
	"github.com/avh/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere surface
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

// Intersect tests if a ray intersects the sphere. The quadratic below
// assumes a unit-length ray direction.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	dot := ray.Direction.Dot(oc)
	a := dot * dot
	b := oc.LengthSquared() - s.Radius*s.Radius

	// Negative discriminant means no real root: the ray misses
	if a < b {
		return 0, false
	}

	sqrtD := math.Sqrt(a - b)
	nearRoot := -dot - sqrtD
	farRoot := -dot + sqrtD

	// Discard intersections behind the ray origin, keep the closest
	switch {
	case nearRoot >= 0:
		return nearRoot, true
	case farRoot >= 0:
		return farRoot, true
	default:
		return 0, false
	}
}

// NormalAt returns the unit normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// ColorAt returns the material color regardless of position
func (s *Sphere) ColorAt(point core.Vec3) core.Color {
	return s.Mat.Color()
}

// Material returns the sphere's material
func (s *Sphere) Material() material.Material {
	return s.Mat
}
