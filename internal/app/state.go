package app

import (
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goendo/internal/navigation"
	"github.com/philipparndt/goendo/pkg/stl"
	"github.com/philipparndt/goendo/pkg/viewer"
	"github.com/philipparndt/goendo/pkg/watcher"
)

// CameraState holds the navigation camera and its raylib mirror
type CameraState struct {
	camera *viewer.Camera
	view   rl.Camera3D
}

// ModelData holds the surfaces and their GPU meshes
type ModelData struct {
	surface          *stl.Model
	collisionSurface *stl.Model
	mesh             rl.Mesh
	material         rl.Material
	hasMesh          bool
}

// NavigationState holds the controller, its context and the last key outcome
type NavigationState struct {
	ctx        *navigation.Context
	controller *navigation.Controller
	last       navigation.Outcome
	hasLast    bool
	patch      *stl.Model
}

// ViewSettings holds display settings
type ViewSettings struct {
	showFilled bool
	showPatch  bool
	showProxy  bool
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	surfaceFile      string
	collisionFile    string
	fileWatcher      *watcher.FileWatcher
	needsReload      atomic.Bool // set by the watcher, consumed by the render loop
	lastReload       time.Time
	lastReloadFailed bool
}
