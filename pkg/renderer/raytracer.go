package renderer

import (
	"math"
	"math/rand"

	"github.com/avh/go-whitted-raytracer/pkg/core"
	"github.com/avh/go-whitted-raytracer/pkg/geometry"
	"github.com/avh/go-whitted-raytracer/pkg/lights"
)

// normalBias offsets secondary ray origins along the surface normal so a
// reflected ray cannot re-intersect the surface it just left
const normalBias = 1e-10

// Config contains rendering configuration
type Config struct {
	Width    int   // Image width in pixels
	Height   int   // Image height in pixels
	MaxDepth int   // Remaining-bounce budget per primary ray
	Workers  int   // Worker goroutines; 0 means one per CPU
	Seed     int64 // Base seed for per-worker random sources; 0 picks a time-based seed
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:    640,
		Height:   480,
		MaxDepth: 5,
	}
}

// Scene interface to avoid circular imports with the scene package
type Scene interface {
	GetCamera() *Camera
	GetSurfaces() []geometry.Surface
	GetLights() []lights.Light
}

// Raytracer renders a scene snapshot with one primary ray per pixel and a
// bounded number of recursive reflection bounces
type Raytracer struct {
	scene  Scene
	config Config
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config Config) *Raytracer {
	return &Raytracer{scene: scene, config: config}
}

// Background returns the sky color for a missed ray: white scaled by the
// ray's vertical component, floored so the horizon never goes fully dark.
func Background(ray core.Ray) core.Color {
	return core.NewColor(255, 255, 255).Scale(math.Max(0.1, ray.Direction.Y))
}

// nearestIntersection finds the surface with the smallest nonnegative
// intersection parameter. Exact ties keep the first surface found.
func (rt *Raytracer) nearestIntersection(ray core.Ray) (geometry.Surface, float64, bool) {
	var nearest geometry.Surface
	nearestT := math.MaxFloat64

	for _, surface := range rt.scene.GetSurfaces() {
		if t, ok := surface.Intersect(ray); ok && t < nearestT {
			nearest = surface
			nearestT = t
		}
	}

	return nearest, nearestT, nearest != nil
}

// rayColor traces a ray through the scene with the given remaining-bounce
// budget. The boolean result distinguishes a hit from a miss so the caller
// can substitute the background color for primary rays but plain black for
// exhausted or escaped reflection rays.
func (rt *Raytracer) rayColor(ray core.Ray, depth int, random *rand.Rand) (core.Color, bool) {
	if depth <= 0 {
		return core.Color{}, false
	}

	surface, t, ok := rt.nearestIntersection(ray)
	if !ok {
		return core.Color{}, false
	}

	point := ray.At(t)
	normal := surface.NormalAt(point)

	// Direct lighting: independent contributions are additive
	energy := 0.0
	for _, light := range rt.scene.GetLights() {
		energy += light.Illuminate(point, normal, rt.scene.GetSurfaces())
	}

	baseColor := surface.ColorAt(point)
	shade := baseColor.Scale(energy)

	mat := surface.Material()
	outDir := mat.Scatter(ray, point, normal, random)
	biasedOrigin := point.Add(normal.Multiply(normalBias))

	reflection, hit := rt.rayColor(core.NewRay(biasedOrigin, outDir), depth-1, random)
	if !hit {
		reflection = core.Color{} // escaped or exhausted bounces contribute black
	}

	// Reflectance partitions the output between direct shading and tinted
	// reflection; the per-channel albedo multiply lets a colored surface
	// tint what it reflects.
	reflectance := mat.Reflectance()
	albedo := baseColor.Scale(reflectance / 255)

	return shade.Scale(1 - reflectance).Add(reflection.MultiplyColor(albedo)), true
}

// PixelColor computes the final color of one pixel: the traced color of the
// primary ray through the pixel center, or the background gradient on a miss.
func (rt *Raytracer) PixelColor(x, y int, random *rand.Rand) core.Color {
	u := (float64(x) + 0.5) / float64(rt.config.Width)
	v := (float64(y) + 0.5) / float64(rt.config.Height)

	ray := rt.scene.GetCamera().Trace(u, v)

	if color, hit := rt.rayColor(ray, rt.config.MaxDepth, random); hit {
		return color
	}
	return Background(ray)
}
