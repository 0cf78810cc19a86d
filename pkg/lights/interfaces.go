package lights

import (
	"github.com/avh/go-whitted-raytracer/pkg/core"
	"github.com/avh/go-whitted-raytracer/pkg/geometry"
)

// Light is a source of direct illumination. Contributions from multiple
// lights are independent and additive.
type Light interface {
	// Illuminate returns the scalar light energy arriving at a surface point,
	// testing occlusion against the given surfaces. The result is never
	// negative; shadowed or back-facing points receive zero.
	Illuminate(point, normal core.Vec3, surfaces []geometry.Surface) float64
}
