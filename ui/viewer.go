package ui

import (
	"fmt"
	"image"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/avh/go-whitted-raytracer/log"
	"github.com/avh/go-whitted-raytracer/pkg/renderer"
	"github.com/avh/go-whitted-raytracer/pkg/scene"
)

var logger = log.New("ui")

// cameraStep is the world-space distance of one camera nudge
const cameraStep = 0.1

// Run opens the interactive viewer window. Arrow keys nudge the camera
// along x and y, W/S move it forward and backward; every move triggers a
// full asynchronous re-render. A mutex serializes renders so the camera is
// only ever mutated between sweeps, never during one.
func Run(sc *scene.Scene, config renderer.Config) error {
	a := app.New()
	w := a.NewWindow("go-whitted-raytracer")

	rt := renderer.NewRaytracer(sc, config)

	frame := image.NewRGBA(image.Rect(0, 0, config.Width, config.Height))
	imgCanvas := canvas.NewImageFromImage(frame)
	imgCanvas.FillMode = canvas.ImageFillContain
	imgCanvas.SetMinSize(fyne.NewSize(float32(config.Width), float32(config.Height)))

	status := widget.NewLabel("Rendering...")

	// Guards the camera and the render loop: a key press waits for the
	// in-flight sweep before moving the camera.
	var mu sync.Mutex

	render := func() {
		go func() {
			mu.Lock()
			defer mu.Unlock()

			img, stats := rt.RenderPass()
			imgCanvas.Image = img
			imgCanvas.Refresh()
			status.SetText(fmt.Sprintf("Rendered %dx%d in %s (eye %.1f, %.1f, %.1f)",
				stats.Width, stats.Height, stats.Duration.Round(time.Millisecond),
				sc.Camera.Eye.X, sc.Camera.Eye.Y, sc.Camera.Eye.Z))
		}()
	}

	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		var direction renderer.MoveDirection
		switch ev.Name {
		case fyne.KeyLeft:
			direction = renderer.MoveLeft
		case fyne.KeyRight:
			direction = renderer.MoveRight
		case fyne.KeyUp:
			direction = renderer.MoveUp
		case fyne.KeyDown:
			direction = renderer.MoveDown
		case fyne.KeyW:
			direction = renderer.MoveForward
		case fyne.KeyS:
			direction = renderer.MoveBackward
		default:
			return
		}

		mu.Lock()
		sc.Camera.Move(direction, cameraStep)
		mu.Unlock()

		logger.Debugf("camera moved to %.2f, %.2f, %.2f",
			sc.Camera.Eye.X, sc.Camera.Eye.Y, sc.Camera.Eye.Z)
		render()
	})

	w.SetContent(container.NewBorder(nil, status, nil, nil, imgCanvas))
	w.Resize(fyne.NewSize(float32(config.Width), float32(config.Height)+40))

	render()
	w.ShowAndRun()
	return nil
}
