package renderer

import (
	"math"
	"testing"

	"github.com/avh/go-whitted-raytracer/pkg/core"
)

func testCamera() *Camera {
	film := NewFilm(core.NewVec3(-1, 1, 1), core.NewVec3(1, -1, 1))
	return NewCamera(core.NewVec3(0, 0, 0), film)
}

func TestFilm_Dimensions(t *testing.T) {
	film := NewFilm(core.NewVec3(-1.6, 1.2, 1), core.NewVec3(1.6, -1.2, 1))

	if math.Abs(film.Width()-3.2) > 1e-12 {
		t.Errorf("Expected width 3.2, got %f", film.Width())
	}
	if math.Abs(film.Height()-2.4) > 1e-12 {
		t.Errorf("Expected height 2.4, got %f", film.Height())
	}
}

func TestFilm_Project(t *testing.T) {
	film := NewFilm(core.NewVec3(-1, 1, 1), core.NewVec3(1, -1, 1))

	tests := []struct {
		name     string
		x, y     float64
		expected core.Vec3
	}{
		{"top-left corner", 0, 0, core.NewVec3(-1, 1, 1)},
		{"bottom-right corner", 1, 1, core.NewVec3(1, -1, 1)},
		{"center", 0.5, 0.5, core.NewVec3(0, 0, 1)},
		// Image y grows downward, world y grows upward
		{"top edge midpoint", 0.5, 0, core.NewVec3(0, 1, 1)},
		{"bottom edge midpoint", 0.5, 1, core.NewVec3(0, -1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := film.Project(tt.x, tt.y)
			if p.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Project(%f, %f): expected %v, got %v", tt.x, tt.y, tt.expected, p)
			}
		})
	}
}

func TestCamera_Trace_DirectionIsNormalized(t *testing.T) {
	camera := testCamera()

	for _, coords := range [][2]float64{{0, 0}, {0.5, 0.5}, {1, 1}, {0.25, 0.9}} {
		ray := camera.Trace(coords[0], coords[1])
		if math.Abs(ray.Direction.Length()-1.0) > 1e-12 {
			t.Errorf("Trace(%f, %f): direction not normalized, length %f",
				coords[0], coords[1], ray.Direction.Length())
		}
		if ray.Origin != camera.Eye {
			t.Errorf("Expected ray origin at the eye, got %v", ray.Origin)
		}
	}
}

func TestCamera_Trace_CenterLooksStraightAhead(t *testing.T) {
	camera := testCamera()

	ray := camera.Trace(0.5, 0.5)
	expected := core.NewVec3(0, 0, 1)

	if ray.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected center ray direction %v, got %v", expected, ray.Direction)
	}
}

func TestCamera_Move(t *testing.T) {
	const step = 0.1

	tests := []struct {
		name      string
		direction MoveDirection
		delta     core.Vec3
	}{
		{"left", MoveLeft, core.NewVec3(-step, 0, 0)},
		{"right", MoveRight, core.NewVec3(step, 0, 0)},
		{"up", MoveUp, core.NewVec3(0, step, 0)},
		{"down", MoveDown, core.NewVec3(0, -step, 0)},
		{"forward", MoveForward, core.NewVec3(0, 0, step)},
		{"backward", MoveBackward, core.NewVec3(0, 0, -step)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := testCamera()
			eye := camera.Eye
			topLeft := camera.Film.TopLeft
			bottomRight := camera.Film.BottomRight

			camera.Move(tt.direction, step)

			if camera.Eye != eye.Add(tt.delta) {
				t.Errorf("Expected eye %v, got %v", eye.Add(tt.delta), camera.Eye)
			}
			if camera.Film.TopLeft != topLeft.Add(tt.delta) {
				t.Errorf("Expected film top-left %v, got %v", topLeft.Add(tt.delta), camera.Film.TopLeft)
			}
			if camera.Film.BottomRight != bottomRight.Add(tt.delta) {
				t.Errorf("Expected film bottom-right %v, got %v", bottomRight.Add(tt.delta), camera.Film.BottomRight)
			}
		})
	}
}

func TestCamera_Move_PreservesView(t *testing.T) {
	camera := testCamera()
	before := camera.Trace(0.3, 0.7).Direction

	camera.Move(MoveLeft, 0.1)
	camera.Move(MoveUp, 0.1)
	after := camera.Trace(0.3, 0.7).Direction

	// A rigid translation keeps every ray direction unchanged
	if after.Subtract(before).Length() > 1e-12 {
		t.Errorf("Expected translation to preserve ray directions: %v vs %v", before, after)
	}
}
