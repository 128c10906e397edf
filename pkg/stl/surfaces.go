package stl

import "fmt"

// ParseSurfaces reads the visual surface and, when set, a separate collision
// surface. Without one the visual surface doubles as the collision surface.
func ParseSurfaces(surfaceFile, collisionFile string) (surface, collisionSurface *Model, err error) {
	surface, err = Parse(surfaceFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading surface %s: %w", surfaceFile, err)
	}
	if collisionFile == "" || collisionFile == surfaceFile {
		return surface, surface, nil
	}

	collisionSurface, err = Parse(collisionFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading collision surface %s: %w", collisionFile, err)
	}
	return surface, collisionSurface, nil
}
