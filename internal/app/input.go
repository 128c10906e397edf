package app

import (
	"github.com/aukilabs/go-tooling/pkg/logs"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goendo/pkg/collision"
	"github.com/philipparndt/goendo/pkg/geometry"
)

// windowInteractor feeds one key at a time to the navigation controller and
// lets it force frames in the middle of a key press.
type windowInteractor struct {
	app *App
	key string
}

func (w *windowInteractor) KeySym() string {
	return w.key
}

func (w *windowInteractor) Render() {
	w.app.syncCamera()
	w.app.drawFrame()
}

// repeatable keys keep moving the camera while held
var repeatable = []int32{rl.KeyUp, rl.KeyDown, rl.KeyLeft, rl.KeyRight, rl.KeyZ, rl.KeyS}

// keySym converts a raylib key code to the key symbol the controller expects
func keySym(key int32, shift bool) string {
	switch key {
	case rl.KeyUp:
		return "Up"
	case rl.KeyDown:
		return "Down"
	case rl.KeyLeft:
		return "Left"
	case rl.KeyRight:
		return "Right"
	case rl.KeyEscape:
		return "Escape"
	case rl.KeyLeftShift:
		return "Shift_L"
	case rl.KeyRightShift:
		return "Shift_R"
	case rl.KeySpace:
		return "space"
	}
	if key >= rl.KeyA && key <= rl.KeyZ {
		letter := rune('a' + key - rl.KeyA)
		if shift {
			letter = rune('A' + key - rl.KeyA)
		}
		return string(letter)
	}
	return ""
}

// pressedKeys drains the key queue for this frame, adding auto-repeats of
// held navigation keys
func pressedKeys() []int32 {
	var keys []int32
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		keys = append(keys, key)
	}
	for _, key := range repeatable {
		if rl.IsKeyPressedRepeat(key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// handleInput dispatches this frame's keys. It returns false once the
// controller asked for shutdown.
func (app *App) handleInput() bool {
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	for _, key := range pressedKeys() {
		if app.handleHostKey(key) {
			continue
		}

		app.interactor.key = keySym(key, shift)
		out, err := app.Nav.controller.OnKeyPress(app.Nav.ctx)
		if err != nil {
			logs.Warn(err)
			continue
		}
		app.Nav.last = out
		app.Nav.hasLast = true
		if out.Intent.IsTranslation() {
			app.refreshPatch()
		}
		if out.ShutdownRequested {
			return false
		}
	}
	return true
}

// handleHostKey handles the keys that belong to the viewer rather than to
// navigation
func (app *App) handleHostKey(key int32) bool {
	switch key {
	case rl.KeyC:
		enabled := app.Nav.ctx.ToggleCollision()
		logs.WithTag("enabled", enabled).Info("collision detection toggled")
	case rl.KeyP:
		app.View.showPatch = !app.View.showPatch
	case rl.KeyV:
		app.View.showProxy = !app.View.showProxy
	case rl.KeyF:
		app.View.showFilled = !app.View.showFilled
	default:
		return false
	}
	return true
}

// refreshPatch recomputes the patch overlay around the camera
func (app *App) refreshPatch() {
	if !app.View.showPatch || app.Nav.ctx.Locator() == nil {
		app.Nav.patch = nil
		return
	}
	settings := app.Nav.controller.Settings()
	box := geometry.BoxAround(app.Camera.camera.Position, settings.ProbeHalfWidth)
	app.Nav.patch, _ = collision.ExtractNearest(app.Nav.ctx.Locator(), app.Model.collisionSurface, box)
}
