// Package locator indexes the cells of a triangle mesh for axis-aligned range
// queries.
package locator

import (
	"sort"

	"github.com/philipparndt/goendo/pkg/geometry"
	"github.com/philipparndt/goendo/pkg/stl"
)

const (
	// maxCellsPerLeaf is the threshold for splitting nodes
	maxCellsPerLeaf = 8
	maxDepth        = 32
)

// node is a BVH node: either two children or a list of cell ids
type node struct {
	bounds      geometry.BoundingBox
	left, right *node
	cells       []int
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// Stats describes the shape of a built hierarchy
type Stats struct {
	Cells  int
	Nodes  int
	Leaves int
	Depth  int
}

// CellLocator is a bounding volume hierarchy over the cells of one model.
//
// The locator remembers the model version it was built against and rebuilds
// itself before answering a query when the model changed since.
type CellLocator struct {
	model   *stl.Model
	root    *node
	bounds  []geometry.BoundingBox
	version uint64
	built   bool
	stats   Stats
}

// New creates a locator over model. Build must be called (or a query made)
// before the hierarchy exists.
func New(model *stl.Model) *CellLocator {
	return &CellLocator{model: model}
}

// Model returns the indexed model
func (l *CellLocator) Model() *stl.Model {
	return l.model
}

// SetModel re-points the locator at another model and drops the hierarchy
func (l *CellLocator) SetModel(model *stl.Model) {
	l.model = model
	l.root = nil
	l.bounds = nil
	l.built = false
	l.stats = Stats{}
}

// IsStale reports whether the hierarchy no longer matches the model
func (l *CellLocator) IsStale() bool {
	if l.model == nil {
		return false
	}
	return !l.built || l.version != l.model.Version()
}

// Build (re)creates the hierarchy from the current model geometry
func (l *CellLocator) Build() {
	l.root = nil
	l.bounds = nil
	l.stats = Stats{}
	l.built = true

	if l.model == nil {
		return
	}
	l.version = l.model.Version()

	count := l.model.TriangleCount()
	if count == 0 {
		return
	}

	l.bounds = make([]geometry.BoundingBox, count)
	ids := make([]int, count)
	for i, tri := range l.model.Triangles {
		l.bounds[i] = tri.Bounds()
		ids[i] = i
	}

	l.stats.Cells = count
	l.root = l.buildNode(ids, 0)
}

func (l *CellLocator) buildNode(ids []int, depth int) *node {
	n := &node{bounds: geometry.NewBoundingBox()}
	for _, id := range ids {
		n.bounds.Merge(l.bounds[id])
	}

	l.stats.Nodes++
	if depth+1 > l.stats.Depth {
		l.stats.Depth = depth + 1
	}

	if len(ids) <= maxCellsPerLeaf || depth >= maxDepth {
		n.cells = ids
		l.stats.Leaves++
		return n
	}

	// Split at the median centroid along the longest axis
	axis := n.bounds.LongestAxis()
	sort.Slice(ids, func(i, j int) bool {
		return l.bounds[ids[i]].Center().Axis(axis) < l.bounds[ids[j]].Center().Axis(axis)
	})

	mid := len(ids) / 2
	n.left = l.buildNode(ids[:mid], depth+1)
	n.right = l.buildNode(ids[mid:], depth+1)
	return n
}

// FindCellsWithinBounds returns the ids of every cell whose bounding box
// overlaps box, in ascending order. The result is conservative: a cell whose
// box overlaps but whose triangle does not is still returned.
func (l *CellLocator) FindCellsWithinBounds(box geometry.BoundingBox) []int {
	if l.IsStale() {
		l.Build()
	}
	if l.root == nil {
		return nil
	}

	var ids []int
	l.query(l.root, box, &ids)
	sort.Ints(ids)
	return ids
}

func (l *CellLocator) query(n *node, box geometry.BoundingBox, ids *[]int) {
	if !n.bounds.Intersects(box) {
		return
	}

	if n.isLeaf() {
		for _, id := range n.cells {
			if l.bounds[id].Intersects(box) {
				*ids = append(*ids, id)
			}
		}
		return
	}

	l.query(n.left, box, ids)
	l.query(n.right, box, ids)
}

// Stats returns the shape of the hierarchy, building it first if needed
func (l *CellLocator) Stats() Stats {
	if l.IsStale() {
		l.Build()
	}
	return l.stats
}
