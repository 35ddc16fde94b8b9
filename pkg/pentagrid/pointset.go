package pentagrid

import (
	"github.com/google/btree"
)

const pointSetDegree = 16

// PointSet is an ordered set of crossings under Compare.
type PointSet struct {
	tree *btree.BTreeG[Point]
}

func NewPointSet() *PointSet {
	return &PointSet{tree: btree.NewG(pointSetDegree, Less)}
}

// Insert adds p and reports whether it was not already present.
func (s *PointSet) Insert(p Point) bool {
	_, found := s.tree.ReplaceOrInsert(p)
	return !found
}

// Add inserts p together with its boundary duplicates. It reports whether
// every copy was new.
func (s *PointSet) Add(p Point) bool {
	base := p
	base.dups = nil
	ok := s.Insert(base)
	for _, d := range p.dups {
		if !s.Insert(d) {
			ok = false
		}
	}
	return ok
}

func (s *PointSet) Has(p Point) bool {
	return s.tree.Has(p)
}

func (s *PointSet) Len() int {
	return s.tree.Len()
}

// Points returns the members in ascending order.
func (s *PointSet) Points() []Point {
	r := make([]Point, 0, s.tree.Len())
	s.tree.Ascend(func(p Point) bool {
		r = append(r, p)
		return true
	})
	return r
}

// Boundaries returns the positions in Points() where the cell changes. The
// first member is always a boundary.
func Boundaries(points []Point) []int {
	var r []int
	for i := range points {
		if i == 0 || !points[i].SameCell(points[i-1]) {
			r = append(r, i)
		}
	}
	return r
}
