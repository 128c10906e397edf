package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goendo/pkg/geometry"
	"github.com/philipparndt/goendo/pkg/stl"
)

// stlToRaylibMesh converts a surface to a raylib mesh with baked lighting.
// The light sits at the camera so the lumen wall ahead is lit.
func stlToRaylibMesh(model *stl.Model, lightDir geometry.Vector3) rl.Mesh {
	triangleCount := len(model.Triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	colors := make([]uint8, vertexCount*4)

	lightDir = lightDir.Normalize()

	idx := 0
	for _, triangle := range model.Triangles {
		normal := triangle.CalculateNormal()

		// Both faces are lit; the camera sits inside the surface.
		lightIntensity := math.Max(0.3, math.Abs(normal.Dot(lightDir)))
		r := uint8(230 * lightIntensity)
		g := uint8(150 * lightIntensity)
		b := uint8(140 * lightIntensity)

		for _, v := range triangle.Vertices() {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			colors[idx*4+0] = r
			colors[idx*4+1] = g
			colors[idx*4+2] = b
			colors[idx*4+3] = 255
			idx++
		}
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Colors = &colors[0]
	}

	rl.UploadMesh(&mesh, false)

	return mesh
}

// drawWireframe draws the edges of model, each shared edge once
func drawWireframe(model *stl.Model, color rl.Color) {
	if model == nil {
		return
	}

	type edge [2]geometry.Vector3
	drawn := make(map[edge]bool, len(model.Triangles)*3)

	for _, triangle := range model.Triangles {
		v := triangle.Vertices()
		for i := 0; i < 3; i++ {
			a, b := v[i], v[(i+1)%3]
			if drawn[edge{a, b}] || drawn[edge{b, a}] {
				continue
			}
			drawn[edge{a, b}] = true
			rl.DrawLine3D(toRaylib(a), toRaylib(b), color)
		}
	}
}
