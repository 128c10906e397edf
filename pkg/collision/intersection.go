package collision

import (
	"math"

	"github.com/philipparndt/goendo/pkg/geometry"
)

// DefaultMergeTolerance is the distance under which two intersection points
// are counted once.
const DefaultMergeTolerance = 1e-6

// Segment is the part of a triangle pair that lies on both triangles
type Segment struct {
	Start, End geometry.Vector3
}

// IntersectionFilter computes where the surfaces of two meshes cross.
//
// Inputs are pulled from their sources on every Update so a moved sphere is
// picked up without rebinding. Results stay cached until the next Update.
type IntersectionFilter struct {
	inputA    Source
	inputB    Source
	tolerance float64

	points   []geometry.Vector3
	segments []Segment
}

// NewIntersectionFilter creates an unconfigured filter
func NewIntersectionFilter() *IntersectionFilter {
	return &IntersectionFilter{tolerance: DefaultMergeTolerance}
}

// Configure binds the two meshes to test against each other
func (f *IntersectionFilter) Configure(a, b Source) {
	f.inputA = a
	f.inputB = b
}

// IsConfigured reports whether both inputs are bound
func (f *IntersectionFilter) IsConfigured() bool {
	return f.inputA != nil && f.inputB != nil
}

// Inputs returns the bound sources
func (f *IntersectionFilter) Inputs() (Source, Source) {
	return f.inputA, f.inputB
}

// SetTolerance sets the merge distance for intersection points
func (f *IntersectionFilter) SetTolerance(tolerance float64) {
	f.tolerance = tolerance
}

// Update recomputes the intersection and returns the number of distinct
// intersection points. An unconfigured filter yields zero.
func (f *IntersectionFilter) Update() int {
	f.points = nil
	f.segments = nil

	if !f.IsConfigured() {
		return 0
	}
	a := f.inputA.Output()
	b := f.inputB.Output()
	if a == nil || b == nil || a.IsEmpty() || b.IsEmpty() {
		return 0
	}

	merger := newPointMerger(f.tolerance)
	boundsA := a.BoundingBox()
	boundsB := b.BoundingBox()
	if !boundsA.Intersects(boundsB) {
		return 0
	}

	candidates := make([]geometry.Triangle, 0, len(b.Triangles))
	for _, tb := range b.Triangles {
		if tb.Bounds().Intersects(boundsA) {
			candidates = append(candidates, tb)
		}
	}

	for _, ta := range a.Triangles {
		boxA := ta.Bounds()
		if !boxA.Intersects(boundsB) {
			continue
		}
		for _, tb := range candidates {
			if !boxA.Intersects(tb.Bounds()) {
				continue
			}
			hits := intersectPair(ta, tb)
			if len(hits) == 0 {
				continue
			}
			for _, p := range hits {
				merger.insert(p)
			}
			if seg, ok := spanOf(hits); ok {
				f.segments = append(f.segments, seg)
			}
		}
	}

	f.points = merger.points
	return len(f.points)
}

// NumberOfIntersectionPoints returns the result of the last Update
func (f *IntersectionFilter) NumberOfIntersectionPoints() int {
	return len(f.points)
}

// NumberOfIntersectionLines returns the number of crossing triangle pairs
// found by the last Update
func (f *IntersectionFilter) NumberOfIntersectionLines() int {
	return len(f.segments)
}

// Points returns the merged intersection points of the last Update
func (f *IntersectionFilter) Points() []geometry.Vector3 {
	return f.points
}

// Segments returns the intersection segments of the last Update
func (f *IntersectionFilter) Segments() []Segment {
	return f.segments
}

// intersectPair collects the points where an edge of one triangle crosses
// the other. For two non-coplanar triangles these include both ends of their
// common segment.
func intersectPair(a, b geometry.Triangle) []geometry.Vector3 {
	var hits []geometry.Vector3
	collect := func(edges, target geometry.Triangle) {
		v := edges.Vertices()
		for i := 0; i < 3; i++ {
			if p, ok := target.IntersectSegment(v[i], v[(i+1)%3]); ok {
				hits = append(hits, p)
			}
		}
	}
	collect(a, b)
	collect(b, a)
	return hits
}

// spanOf returns the two hits furthest apart
func spanOf(hits []geometry.Vector3) (Segment, bool) {
	if len(hits) == 0 {
		return Segment{}, false
	}
	best := Segment{Start: hits[0], End: hits[0]}
	bestDist := -1.0
	for i := 0; i < len(hits); i++ {
		for j := i + 1; j < len(hits); j++ {
			if d := hits[i].Distance(hits[j]); d > bestDist {
				bestDist = d
				best = Segment{Start: hits[i], End: hits[j]}
			}
		}
	}
	return best, true
}

// pointMerger deduplicates points on a uniform grid with cell size tol.
// Neighbouring cells are checked so points straddling a cell border merge.
type pointMerger struct {
	tol    float64
	grid   map[[3]int64][]int
	points []geometry.Vector3
}

func newPointMerger(tol float64) *pointMerger {
	if tol <= 0 {
		tol = DefaultMergeTolerance
	}
	return &pointMerger{
		tol:  tol,
		grid: make(map[[3]int64][]int),
	}
}

func (m *pointMerger) key(p geometry.Vector3) [3]int64 {
	return [3]int64{
		int64(math.Floor(p.X / m.tol)),
		int64(math.Floor(p.Y / m.tol)),
		int64(math.Floor(p.Z / m.tol)),
	}
}

func (m *pointMerger) insert(p geometry.Vector3) {
	k := m.key(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				for _, idx := range m.grid[[3]int64{k[0] + dx, k[1] + dy, k[2] + dz}] {
					if m.points[idx].Distance(p) <= m.tol {
						return
					}
				}
			}
		}
	}
	m.grid[k] = append(m.grid[k], len(m.points))
	m.points = append(m.points, p)
}
