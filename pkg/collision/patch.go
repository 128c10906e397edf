package collision

import (
	"github.com/philipparndt/goendo/pkg/geometry"
	"github.com/philipparndt/goendo/pkg/locator"
	"github.com/philipparndt/goendo/pkg/stl"
)

// ExtractCells copies the addressed triangles of model into a new patch.
// Ids outside the model are skipped. An empty id list yields an empty patch.
func ExtractCells(model *stl.Model, ids []int) *stl.Model {
	patch := stl.NewModel("patch")
	if model == nil {
		return patch
	}
	for _, id := range ids {
		if id < 0 || id >= model.TriangleCount() {
			continue
		}
		patch.AddTriangle(model.Cell(id))
	}
	return patch
}

// ExtractNearest queries loc for the cells whose bounds overlap box and
// returns them as a patch. empty reports whether no cell was found.
func ExtractNearest(loc *locator.CellLocator, model *stl.Model, box geometry.BoundingBox) (patch *stl.Model, empty bool) {
	if loc == nil {
		return stl.NewModel("patch"), true
	}
	if model != nil && loc.Model() != model {
		loc.SetModel(model)
	}
	ids := loc.FindCellsWithinBounds(box)
	patch = ExtractCells(loc.Model(), ids)
	return patch, patch.IsEmpty()
}
