package geometry

import (
	"math"

	"github.com/avh/go-whitted-raytracer/pkg/core"
	"github.com/avh/go-whitted-raytracer/pkg/material"
)

// parallelEpsilon rejects rays that run parallel to the plane
const parallelEpsilon = 1e-10

// checkerDark is the fixed dark checker tile color
var checkerDark = core.NewColor(50, 50, 50)

// Plane represents an infinite plane defined by a point and a unit normal
type Plane struct {
	Point  core.Vec3
	Normal core.Vec3
	Mat    material.Material
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
		Mat:    mat,
	}
}

// Intersect tests if a ray intersects the plane
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	ndotl := p.Normal.Dot(ray.Direction)

	// Ray parallel to the plane
	if math.Abs(ndotl) < parallelEpsilon {
		return 0, false
	}

	t := p.Normal.Dot(p.Point.Subtract(ray.Origin)) / ndotl
	if t < 0 {
		return 0, false
	}

	return t, true
}

// NormalAt returns the plane normal for any point
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.Normal
}

// ColorAt returns a checkerboard pattern keyed on the parity of
// round(x)+round(z): even tiles are dark gray, odd tiles take the material
// color. This distinguishes a ground plane without a texture system.
func (p *Plane) ColorAt(point core.Vec3) core.Color {
	parity := int(math.Round(point.X)+math.Round(point.Z)) % 2
	if parity == 0 {
		return checkerDark
	}
	return p.Mat.Color()
}

// Material returns the plane's material
func (p *Plane) Material() material.Material {
	return p.Mat
}
