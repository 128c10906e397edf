package navigation

import (
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/philipparndt/goendo/pkg/collision"
	"github.com/philipparndt/goendo/pkg/geometry"
)

// Controller handles key presses one at a time. It holds no locks; callers
// deliver keys from the thread that owns the camera.
type Controller struct {
	settings          Settings
	state             State
	lastIntersections int
}

// NewController creates a controller with the given settings
func NewController(settings Settings) *Controller {
	return &Controller{settings: settings}
}

// Settings returns the controller settings
func (c *Controller) Settings() Settings {
	return c.settings
}

// State is Idle between key presses
func (c *Controller) State() State {
	return c.state
}

// NumberOfIntersections is the count reported by the last probe
func (c *Controller) NumberOfIntersections() int {
	return c.lastIntersections
}

// OnKeyPress reads the pending key from the context's interactor and handles it
func (c *Controller) OnKeyPress(ctx *Context) (Outcome, error) {
	if ctx == nil || ctx.interactor == nil {
		return Outcome{}, notConfigured("interactor")
	}
	return c.HandleKey(ctx, ctx.interactor.KeySym())
}

// HandleKey applies one key press to the camera.
//
// Rotations are never checked for collisions. Translations with collision
// detection enabled probe the local patch around the camera, step, and undo
// part of the step when the proxy intersects the patch. Every key ends with
// the clipping range and focal distance reset, the proxy re-centred and a
// render.
func (c *Controller) HandleKey(ctx *Context, key string) (Outcome, error) {
	out := Outcome{Key: key, Intent: IntentFor(key)}
	if ctx == nil {
		return out, notConfigured("context")
	}
	if err := ctx.validate(); err != nil {
		return out, err
	}

	c.state = Idle
	out.Trace = []State{Idle}
	c.transition(&out, IntentDispatched)
	instrumentKeyPress(out.Intent)

	cam := ctx.camera
	cam.SetDistance(c.settings.FocalDistance)

	switch out.Intent {
	case IntentPitchUp:
		cam.Pitch(c.settings.RotationStep)
	case IntentPitchDown:
		cam.Pitch(-c.settings.RotationStep)
	case IntentAzimuthLeft:
		cam.Azimuth(c.settings.RotationStep)
	case IntentAzimuthRight:
		cam.Azimuth(-c.settings.RotationStep)
	case IntentForward:
		c.translate(ctx, &out, c.settings.ForwardFactor, c.settings.ForwardCorrection)
	case IntentBackward:
		c.translate(ctx, &out, c.settings.BackwardFactor, c.settings.BackwardCorrection)
	case IntentShutdown:
		out.ShutdownRequested = true
	}

	if c.state != Reverted {
		c.transition(&out, Committed)
	}

	cam.SetClippingRange(c.settings.NearClip, c.settings.FarClip)
	cam.SetDistance(c.settings.FocalDistance)
	ctx.proxy.SetCenter(cam.Position)
	c.render(ctx, &out)

	c.transition(&out, Idle)
	return out, nil
}

func (c *Controller) translate(ctx *Context, out *Outcome, factor, correction float64) {
	cam := ctx.camera

	if !ctx.collision {
		cam.Dolly(factor)
		cam.SetDistance(c.settings.FocalDistance)
		return
	}

	box := geometry.BoxAround(cam.Position, c.settings.ProbeHalfWidth)
	patch, empty := collision.ExtractNearest(ctx.locator, ctx.collisionSurface, box)
	out.PatchCells = patch.TriangleCount()
	instrumentPatch(out.PatchCells)

	if !empty {
		ctx.tester.Configure(ctx.proxy, collision.Static(patch))
		c.transition(out, ProbeBuilt)
	}

	cam.Dolly(factor)
	cam.SetDistance(c.settings.FocalDistance)

	if empty {
		logs.WithTag("key", out.Key).Debug("no cells near camera, step stands")
		return
	}

	ctx.proxy.SetCenter(cam.Position)
	c.render(ctx, out)
	hits := ctx.tester.Update()
	c.lastIntersections = hits
	out.Intersections = hits
	out.Probed = true

	logs.WithTag("key", out.Key).
		WithTag("patch_cells", out.PatchCells).
		WithTag("intersections", hits).
		Debug("collision probe")

	if hits == 0 {
		return
	}

	cam.Dolly(correction)
	cam.SetDistance(c.settings.FocalDistance)
	c.render(ctx, out)
	out.Blocked = true
	c.transition(out, Reverted)
	instrumentBlock(out.Intent)

	logs.WithTag("direction", out.Intent.String()).
		WithTag("intersections", hits).
		Info("move blocked by collision surface")
}

func (c *Controller) render(ctx *Context, out *Outcome) {
	ctx.interactor.Render()
	out.Renders++
}

func (c *Controller) transition(out *Outcome, next State) {
	c.state = next
	out.Trace = append(out.Trace, next)
}
