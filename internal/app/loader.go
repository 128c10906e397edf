package app

import (
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goendo/pkg/stl"
	"github.com/philipparndt/goendo/pkg/watcher"
)

// setupFileWatcher watches the surface files. The callback only raises a
// flag; the render loop does the reload.
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		return err
	}

	files := []string{app.FileWatch.surfaceFile}
	if app.FileWatch.collisionFile != "" && app.FileWatch.collisionFile != app.FileWatch.surfaceFile {
		files = append(files, app.FileWatch.collisionFile)
	}

	callback := func(changedFile string) {
		logs.WithTag("path", changedFile).Info("surface file changed")
		app.FileWatch.needsReload.Store(true)
	}

	if err := fw.Watch(files, callback); err != nil {
		fw.Close()
		return err
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	return nil
}

// reloadSurfaces re-reads the surface files and swaps them in. It runs on the
// render loop, which owns the navigation context and the GL context.
func (app *App) reloadSurfaces() {
	start := time.Now()

	surface, collisionSurface, err := stl.ParseSurfaces(app.FileWatch.surfaceFile, app.FileWatch.collisionFile)
	if err != nil {
		logs.Warn(errors.New("reloading surfaces failed").Wrap(err))
		app.FileWatch.lastReloadFailed = true
		return
	}

	app.applySurfaces(surface, collisionSurface)
	app.FileWatch.lastReload = time.Now()
	app.FileWatch.lastReloadFailed = false

	logs.WithTag("cells", collisionSurface.TriangleCount()).
		WithTag("duration", time.Since(start).String()).
		Info("surfaces reloaded")
}

// applySurfaces installs new surfaces in the navigation context and uploads
// the visual one. The camera pose is kept.
func (app *App) applySurfaces(surface, collisionSurface *stl.Model) {
	ctx := app.Nav.ctx
	ctx.SetSurface(surface)
	ctx.SetCollisionSurface(collisionSurface)
	if err := ctx.BindIntersection(); err != nil {
		logs.Warn(err)
	}

	oldMesh, hadMesh := app.Model.mesh, app.Model.hasMesh
	app.Model.surface = surface
	app.Model.collisionSurface = collisionSurface
	app.Model.mesh = stlToRaylibMesh(surface, app.Camera.camera.DirectionOfProjection())
	app.Model.hasMesh = true
	if hadMesh {
		rl.UnloadMesh(&oldMesh)
	}

	app.refreshPatch()
}
