package scene

import (
	"github.com/avh/go-whitted-raytracer/pkg/core"
	"github.com/avh/go-whitted-raytracer/pkg/geometry"
	"github.com/avh/go-whitted-raytracer/pkg/lights"
	"github.com/avh/go-whitted-raytracer/pkg/material"
	"github.com/avh/go-whitted-raytracer/pkg/renderer"
)

// Scene holds a fixed list of surfaces and lights plus the camera.
// Surfaces and lights are constructed once and never mutated during
// rendering; only the camera moves, and only between renders.
type Scene struct {
	Camera   *renderer.Camera
	Surfaces []geometry.Surface
	Lights   []lights.Light
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetSurfaces returns the scene surfaces
func (s *Scene) GetSurfaces() []geometry.Surface {
	return s.Surfaces
}

// GetLights returns the scene lights
func (s *Scene) GetLights() []lights.Light {
	return s.Lights
}

// NewDefaultScene creates the built-in demo scene: a checkerboard ground
// plane, a diffuse sphere flanked by two mirror-like spheres, and two point
// lights. The camera sits at the origin looking down +z through a film
// plane one unit ahead.
func NewDefaultScene() *Scene {
	film := renderer.NewFilm(
		core.NewVec3(-1.6, 1.2, 1),
		core.NewVec3(1.6, -1.2, 1),
	)
	camera := renderer.NewCamera(core.NewVec3(0, 0, 0), film)

	// Materials
	checkerWhite := material.NewLambertian(core.NewColor(235, 235, 235), 0.1)
	matteRed := material.NewLambertian(core.NewColor(220, 60, 50), 0.25)
	matteBlue := material.NewLambertian(core.NewColor(60, 90, 220), 0.25)
	mirror := material.NewSpecular(core.NewColor(230, 230, 230), 0.9, 0.02)
	brushedGold := material.NewSpecular(core.NewColor(230, 180, 60), 0.6, 0.15)

	return &Scene{
		Camera: camera,
		Surfaces: []geometry.Surface{
			geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), checkerWhite),
			geometry.NewSphere(core.NewVec3(0, 0, 6), 1.0, matteRed),
			geometry.NewSphere(core.NewVec3(-2.2, 0, 7), 1.0, mirror),
			geometry.NewSphere(core.NewVec3(2.2, 0, 7), 1.0, brushedGold),
			geometry.NewSphere(core.NewVec3(0.9, -0.6, 4.5), 0.4, matteBlue),
		},
		Lights: []lights.Light{
			lights.NewPointLight(core.NewVec3(5, 5, 5), 500),
			lights.NewPointLight(core.NewVec3(-4, 6, 2), 300),
		},
	}
}
