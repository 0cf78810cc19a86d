package renderer

import (
	"github.com/avh/go-whitted-raytracer/pkg/core"
)

// MoveDirection enumerates the discrete camera nudges
type MoveDirection int

const (
	MoveLeft MoveDirection = iota
	MoveRight
	MoveUp
	MoveDown
	MoveForward
	MoveBackward
)

// Film is a rectangular image plane at a fixed depth in front of the eye,
// defined by its top-left and bottom-right corners (shared Z).
type Film struct {
	TopLeft     core.Vec3
	BottomRight core.Vec3
}

// NewFilm creates a new film rectangle
func NewFilm(topLeft, bottomRight core.Vec3) Film {
	return Film{TopLeft: topLeft, BottomRight: bottomRight}
}

// Width returns the horizontal extent of the film
func (f Film) Width() float64 {
	return f.BottomRight.X - f.TopLeft.X
}

// Height returns the vertical extent of the film
func (f Film) Height() float64 {
	return f.TopLeft.Y - f.BottomRight.Y
}

// Project maps normalized image-plane coordinates (x, y) in [0,1]×[0,1] to a
// world point on the film. Row 0 maps to the top edge: y grows downward in
// image space while world Y grows upward.
func (f Film) Project(x, y float64) core.Vec3 {
	return core.NewVec3(
		f.TopLeft.X+x*f.Width(),
		f.TopLeft.Y-y*f.Height(),
		f.TopLeft.Z,
	)
}

// Camera is a pinhole camera: an eye point plus a film rectangle
type Camera struct {
	Eye  core.Vec3
	Film Film
}

// NewCamera creates a new camera
func NewCamera(eye core.Vec3, film Film) *Camera {
	return &Camera{Eye: eye, Film: film}
}

// Trace builds the primary ray through the film point for normalized image
// coordinates (x, y). The direction is normalized before intersection since
// the intersection math assumes unit length.
func (c *Camera) Trace(x, y float64) core.Ray {
	direction := c.Film.Project(x, y).Subtract(c.Eye).Normalize()
	return core.NewRay(c.Eye, direction)
}

// Move nudges the camera by step world units along one axis. The eye and the
// film translate together so the view frustum keeps its shape. Callers must
// not move the camera while a render is in flight.
func (c *Camera) Move(direction MoveDirection, step float64) {
	var delta core.Vec3
	switch direction {
	case MoveLeft:
		delta = core.NewVec3(-step, 0, 0)
	case MoveRight:
		delta = core.NewVec3(step, 0, 0)
	case MoveUp:
		delta = core.NewVec3(0, step, 0)
	case MoveDown:
		delta = core.NewVec3(0, -step, 0)
	case MoveForward:
		delta = core.NewVec3(0, 0, step)
	case MoveBackward:
		delta = core.NewVec3(0, 0, -step)
	default:
		return
	}

	c.Eye = c.Eye.Add(delta)
	c.Film.TopLeft = c.Film.TopLeft.Add(delta)
	c.Film.BottomRight = c.Film.BottomRight.Add(delta)
}
