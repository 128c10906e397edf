// Package replay drives the navigation controller from a list of key symbols
// without a window and reports the camera pose after every key.
package replay

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/philipparndt/goendo/internal/config"
	"github.com/philipparndt/goendo/internal/navigation"
	"github.com/philipparndt/goendo/pkg/analysis"
	"github.com/philipparndt/goendo/pkg/geometry"
	"github.com/philipparndt/goendo/pkg/stl"
	"github.com/philipparndt/goendo/pkg/viewer"
	"github.com/segmentio/encoding/json"
)

// Step is the state after one key press
type Step struct {
	navigation.Outcome
	Position   geometry.Vector3 `json:"position"`
	FocalPoint geometry.Vector3 `json:"focal_point"`
	Clearance  *float64         `json:"clearance,omitempty"` // nil when no cell is within reach
}

// headlessInteractor stands in for a render window
type headlessInteractor struct {
	key     string
	renders int
}

func (h *headlessInteractor) KeySym() string {
	return h.key
}

func (h *headlessInteractor) Render() {
	h.renders++
}

// Camera places the camera at position and focal, given as "x,y,z". An empty
// position means the surface center; an empty focal point means one unit down
// -Z from the position.
func Camera(surface *stl.Model, position, focal string) (*viewer.Camera, error) {
	camera := viewer.NewCamera(surface.BoundingBox())
	if position != "" {
		p, err := ParseVector(position)
		if err != nil {
			return nil, err
		}
		camera = viewer.NewCameraAt(p, p.Add(geometry.NewVector3(0, 0, -1)))
	}
	if focal != "" {
		f, err := ParseVector(focal)
		if err != nil {
			return nil, err
		}
		if f.ApproxEqual(camera.Position, 0) {
			return nil, errors.New("focal point must differ from position").
				WithTag("focal", focal)
		}
		camera = viewer.NewCameraAt(camera.Position, f)
	}
	return camera, nil
}

// Run feeds keys to a controller one at a time. It stops after a key that
// requests shutdown.
func Run(conf config.Config, camera *viewer.Camera, surface, collisionSurface *stl.Model, keys []string) ([]Step, error) {
	interactor := &headlessInteractor{}
	proxy := conf.Proxy()
	proxy.SetCenter(camera.Position)

	ctx := navigation.NewContext()
	ctx.SetCamera(camera)
	ctx.SetInteractor(interactor)
	ctx.SetSurface(surface)
	ctx.SetCollisionSurface(collisionSurface)
	ctx.SetProxy(proxy)
	ctx.SetCollision(conf.Collision)
	if err := ctx.BindIntersection(); err != nil {
		return nil, err
	}

	controller := navigation.NewController(conf.Navigation())
	reach := math.Max(conf.ProbeHalfWidth, conf.ProxyRadius) * 2

	steps := make([]Step, 0, len(keys))
	for _, key := range keys {
		interactor.key = strings.TrimSpace(key)
		out, err := controller.OnKeyPress(ctx)
		if err != nil {
			return steps, err
		}

		step := Step{
			Outcome:    out,
			Position:   camera.Position,
			FocalPoint: camera.FocalPoint,
		}
		if clearance := analysis.Clearance(ctx.Locator(), camera.Position, reach); !math.IsInf(clearance, 1) {
			step.Clearance = &clearance
		}
		steps = append(steps, step)
		if out.ShutdownRequested {
			break
		}
	}
	return steps, nil
}

// WriteJSON writes v as indented JSON
func WriteJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.New("encoding report failed").Wrap(err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// WriteTable writes one line per step
func WriteTable(w io.Writer, steps []Step) {
	fmt.Fprintf(w, "%-4s %-8s %-14s %-10s %6s %6s %9s  %s\n", "#", "KEY", "INTENT", "RESULT", "CELLS", "HITS", "CLEARANCE", "POSITION")
	for i, step := range steps {
		result := "moved"
		switch {
		case step.Blocked:
			result = "blocked"
		case step.ShutdownRequested:
			result = "shutdown"
		case !step.Intent.IsTranslation():
			result = "-"
		}
		clearance := "-"
		if step.Clearance != nil {
			clearance = strconv.FormatFloat(*step.Clearance, 'f', 3, 64)
		}
		fmt.Fprintf(w, "%-4d %-8s %-14s %-10s %6d %6d %9s  %s\n",
			i+1, step.Key, step.Intent, result, step.PatchCells, step.Intersections, clearance, analysis.FormatVector(step.Position))
	}
}

// ParseVector parses "x,y,z"
func ParseVector(s string) (geometry.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geometry.Vector3{}, errors.New("expected x,y,z").WithTag("value", s)
	}

	var coords [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geometry.Vector3{}, errors.New("invalid coordinate").
				WithTag("value", s).
				Wrap(err)
		}
		coords[i] = v
	}
	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}
