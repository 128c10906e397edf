// Package navigation turns key presses into camera motion and keeps the
// camera from passing through the collision surface.
package navigation

import (
	"github.com/philipparndt/goendo/pkg/collision"
	"github.com/philipparndt/goendo/pkg/geometry"
	"github.com/philipparndt/goendo/pkg/locator"
	"github.com/philipparndt/goendo/pkg/stl"
	"github.com/philipparndt/goendo/pkg/viewer"
)

// Interactor is the render window side of navigation: it knows the last key
// pressed and can force a frame.
type Interactor interface {
	KeySym() string
	Render()
}

// Proxy is the bounding volume that follows the camera
type Proxy interface {
	collision.Source
	SetCenter(center geometry.Vector3)
	Center() geometry.Vector3
}

// IntersectionTester counts the intersections between two meshes
type IntersectionTester interface {
	Configure(a, b collision.Source)
	Update() int
	NumberOfIntersectionPoints() int
}

// Context carries everything a key press operates on. It is owned by the
// render loop and must not be shared between goroutines.
type Context struct {
	camera           *viewer.Camera
	interactor       Interactor
	surface          *stl.Model
	collisionSurface *stl.Model
	proxy            Proxy
	tester           IntersectionTester
	locator          *locator.CellLocator
	collision        bool
	bound            bool
}

// NewContext creates a context with collision detection enabled and a fresh
// intersection filter.
func NewContext() *Context {
	return &Context{
		tester:    collision.NewIntersectionFilter(),
		collision: true,
	}
}

func (c *Context) SetCamera(camera *viewer.Camera) {
	c.camera = camera
}

func (c *Context) Camera() *viewer.Camera {
	return c.camera
}

func (c *Context) SetInteractor(interactor Interactor) {
	c.interactor = interactor
}

// SetSurface sets the visual surface. Call BindIntersection afterwards to
// make it the initial tester input.
func (c *Context) SetSurface(surface *stl.Model) {
	c.surface = surface
	c.bound = false
}

func (c *Context) Surface() *stl.Model {
	return c.surface
}

// SetCollisionSurface sets the mesh used for collision queries and rebuilds
// the spatial index over it.
func (c *Context) SetCollisionSurface(surface *stl.Model) {
	c.collisionSurface = surface
	if surface == nil {
		c.locator = nil
		return
	}
	if c.locator == nil {
		c.locator = locator.New(surface)
	} else {
		c.locator.SetModel(surface)
	}
	c.locator.Build()
}

func (c *Context) CollisionSurface() *stl.Model {
	return c.collisionSurface
}

// Locator returns the spatial index over the collision surface
func (c *Context) Locator() *locator.CellLocator {
	return c.locator
}

func (c *Context) SetProxy(proxy Proxy) {
	c.proxy = proxy
	c.bound = false
}

func (c *Context) Proxy() Proxy {
	return c.proxy
}

// SetTester replaces the intersection tester. The new tester is unbound.
func (c *Context) SetTester(tester IntersectionTester) {
	c.tester = tester
	c.bound = false
}

func (c *Context) Tester() IntersectionTester {
	return c.tester
}

// BindIntersection binds the proxy and the visual surface to the tester
func (c *Context) BindIntersection() error {
	switch {
	case c.proxy == nil:
		return notConfigured("proxy")
	case c.surface == nil:
		return notConfigured("surface")
	case c.tester == nil:
		return notConfigured("tester")
	}
	c.tester.Configure(c.proxy, collision.Static(c.surface))
	c.bound = true
	return nil
}

func (c *Context) SetCollision(enabled bool) {
	c.collision = enabled
}

func (c *Context) CollisionEnabled() bool {
	return c.collision
}

// ToggleCollision flips collision detection and returns the new value
func (c *Context) ToggleCollision() bool {
	c.collision = !c.collision
	return c.collision
}

func (c *Context) validate() error {
	switch {
	case c.camera == nil:
		return notConfigured("camera")
	case c.interactor == nil:
		return notConfigured("interactor")
	case c.surface == nil:
		return notConfigured("surface")
	case c.collisionSurface == nil:
		return notConfigured("collision_surface")
	case c.proxy == nil:
		return notConfigured("proxy")
	case c.tester == nil || !c.bound:
		return notConfigured("intersection")
	}
	return nil
}
