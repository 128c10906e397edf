package app

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goendo/version"
)

// drawUI draws the status panel and the key help
func (app *App) drawUI() {
	const (
		fontSize   = int32(16)
		lineHeight = int32(20)
		x          = int32(10)
	)
	y := int32(10)

	line := func(text string, color rl.Color) {
		rl.DrawText(text, x, y, fontSize, color)
		y += lineHeight
	}

	line(fmt.Sprintf("goendo %s", version.Version), rl.LightGray)

	collisionText, collisionColor := "collision: on", rl.Green
	if !app.Nav.ctx.CollisionEnabled() {
		collisionText, collisionColor = "collision: off", rl.Orange
	}
	line(collisionText, collisionColor)

	pos := app.Camera.camera.Position
	line(fmt.Sprintf("position: %.2f, %.2f, %.2f", pos.X, pos.Y, pos.Z), rl.White)
	line(fmt.Sprintf("intersections: %d", app.Nav.controller.NumberOfIntersections()), rl.White)

	if app.Nav.hasLast {
		out := app.Nav.last
		color := rl.White
		status := "committed"
		if out.Blocked {
			color = rl.Red
			status = "blocked"
		}
		trace := make([]string, len(out.Trace))
		for i, s := range out.Trace {
			trace[i] = s.String()
		}
		line(fmt.Sprintf("last: %s (%s) %s, patch %d cells", out.Key, out.Intent, status, out.PatchCells), color)
		line(strings.Join(trace, " > "), rl.Gray)
	}

	if app.FileWatch.lastReloadFailed {
		line("reload failed, keeping previous surfaces", rl.Red)
	} else if !app.FileWatch.lastReload.IsZero() {
		line("reloaded at "+app.FileWatch.lastReload.Format("15:04:05"), rl.Gray)
	}

	help := "arrows: look  z/s: forward/back  c: collision  p: patch  v: proxy  f: fill  esc: quit"
	rl.DrawText(help, x, int32(rl.GetScreenHeight())-lineHeight-10, fontSize, rl.Gray)
	rl.DrawFPS(int32(rl.GetScreenWidth())-90, 10)
}
