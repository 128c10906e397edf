// Package app is the raylib host: it owns the window, turns key presses into
// navigation key symbols and draws the surface from the navigation camera.
package app

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goendo/internal/config"
	"github.com/philipparndt/goendo/internal/navigation"
	"github.com/philipparndt/goendo/pkg/collision"
	"github.com/philipparndt/goendo/pkg/stl"
	"github.com/philipparndt/goendo/pkg/viewer"
)

type App struct {
	Camera    CameraState
	Model     ModelData
	Nav       NavigationState
	View      ViewSettings
	FileWatch FileWatchState

	proxy      *collision.SphereSource
	interactor *windowInteractor
}

// Options selects the files to view and the runtime configuration
type Options struct {
	SurfaceFile   string
	CollisionFile string
	Config        config.Config
}

// Run opens the window and blocks until it is closed or Escape is pressed
func Run(opts Options) error {
	surface, collisionSurface, err := stl.ParseSurfaces(opts.SurfaceFile, opts.CollisionFile)
	if err != nil {
		return errors.New("loading surfaces failed").Wrap(err)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(opts.Config.WindowWidth), int32(opts.Config.WindowHeight), "goendo")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	// Escape is a navigation key
	rl.SetExitKey(rl.KeyNull)

	app := &App{
		Camera: CameraState{camera: viewer.NewCamera(surface.BoundingBox())},
		View:   ViewSettings{showFilled: true, showPatch: true},
		FileWatch: FileWatchState{
			surfaceFile:   opts.SurfaceFile,
			collisionFile: opts.CollisionFile,
		},
		proxy: opts.Config.Proxy(),
	}
	app.interactor = &windowInteractor{app: app}
	app.Camera.camera.SetClippingRange(opts.Config.NearClip, opts.Config.FarClip)

	ctx := navigation.NewContext()
	ctx.SetCamera(app.Camera.camera)
	ctx.SetInteractor(app.interactor)
	ctx.SetProxy(app.proxy)
	ctx.SetCollision(opts.Config.Collision)
	app.proxy.SetCenter(app.Camera.camera.Position)
	app.Nav = NavigationState{
		ctx:        ctx,
		controller: navigation.NewController(opts.Config.Navigation()),
	}

	app.Model.material = rl.LoadMaterialDefault()
	app.applySurfaces(surface, collisionSurface)
	defer func() {
		if app.Model.hasMesh {
			rl.UnloadMesh(&app.Model.mesh)
		}
	}()

	if err := app.setupFileWatcher(); err != nil {
		logs.Warn(errors.New("auto-reload will not be available").Wrap(err))
	} else {
		defer app.FileWatch.fileWatcher.Close()
	}

	logs.WithTag("surface", opts.SurfaceFile).
		WithTag("cells", surface.TriangleCount()).
		WithTag("collision", ctx.CollisionEnabled()).
		Info("viewer started")

	for !rl.WindowShouldClose() {
		if app.FileWatch.needsReload.Swap(false) {
			app.reloadSurfaces()
		}

		if !app.handleInput() {
			logs.WithTag("key", app.Nav.last.Key).Info("shutdown requested")
			break
		}

		app.syncCamera()
		app.drawFrame()
	}
	return nil
}

// drawFrame draws one complete frame
func (app *App) drawFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

	rl.BeginMode3D(app.Camera.view)

	if app.View.showFilled && app.Model.hasMesh {
		rl.DrawMesh(app.Model.mesh, app.Model.material, rl.MatrixIdentity())
	} else {
		drawWireframe(app.Model.surface, rl.NewColor(200, 120, 110, 255))
	}

	if app.View.showPatch {
		drawWireframe(app.Nav.patch, rl.Yellow)
	}
	if app.View.showProxy {
		drawWireframe(app.proxy.Output(), rl.NewColor(80, 200, 255, 160))
	}

	rl.EndMode3D()

	app.drawUI()

	rl.EndDrawing()
}
