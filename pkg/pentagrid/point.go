package pentagrid

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// BarRef names one bar of one sequence of a plane.
type BarRef struct {
	Seq      int
	Rotation float64
	Bar      int64
}

// Point is the crossing of two bars. The owning bars are stored in rotation
// order, so the same crossing has one encoding whichever bar came first.
//
// Layer and Theta classify the point by the cell of a square grid it falls in:
// Layer is the Chebyshev ring of the cell around the origin and Theta the
// polar angle of the cell. Points sort by cell first, so a sorted set is laid
// out cell by cell.
type Point struct {
	geom.Coord
	First, Second BarRef

	Layer, Theta float64

	// dups are copies filed under neighbouring cells when the point sits
	// within BOX_OVERLAP of a cell edge.
	dups []Point
}

// Classify returns the ring layer and ring angle of cell (x, y).
func Classify(x, y float64) (layer, theta float64) {
	layer = math.Max(math.Abs(x), math.Abs(y))
	theta = math.Mod(math.Atan2(y, x), 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return layer, theta
}

// NewPoint builds the crossing of bars a and b at c, classifying it and
// deriving its boundary duplicates.
func NewPoint(a, b BarRef, c geom.Coord) Point {
	if a.Rotation >= b.Rotation {
		a, b = b, a
	}
	p := Point{Coord: c, First: a, Second: b}

	xBoxes := (c.X - BOX_ORIGIN) / BOX_DIM
	yBoxes := (c.Y - BOX_ORIGIN) / BOX_DIM

	xFloor := math.Floor(xBoxes)
	yFloor := math.Floor(yBoxes)

	xOverflow := (xBoxes-xFloor)*BOX_DIM + BOX_OVERLAP
	yOverflow := (yBoxes-yFloor)*BOX_DIM + BOX_OVERLAP

	if xOverflow > BOX_DIM && yOverflow > BOX_DIM {
		p.dups = append(p.dups, p.derived(xFloor+1, yFloor+1))
	}
	if xOverflow > BOX_DIM {
		p.dups = append(p.dups, p.derived(xFloor+1, yFloor))
	}
	if yOverflow > BOX_DIM {
		p.dups = append(p.dups, p.derived(xFloor, yFloor+1))
	}

	p.Layer, p.Theta = Classify(xFloor, yFloor)
	return p
}

func (p Point) derived(x, y float64) Point {
	d := Point{Coord: p.Coord, First: p.First, Second: p.Second}
	d.Layer, d.Theta = Classify(x, y)
	return d
}

// Duplicates returns the copies of p filed under neighbouring cells.
func (p Point) Duplicates() []Point {
	return p.dups
}

// RotationDelta is the angle between the two owning sequences.
func (p Point) RotationDelta() float64 {
	return p.Second.Rotation - p.First.Rotation
}

// SameCell reports whether p and q carry the same classification key.
func (p Point) SameCell(q Point) bool {
	return compareTolerant(p.Layer, q.Layer) == 0 && compareTolerant(p.Theta, q.Theta) == 0
}

// Compare orders points by cell, then by owning rotations, then by bar.
// Coordinates take no part, so two derivations of one crossing are equal.
func Compare(p, q Point) int {
	if c := compareTolerant(p.Layer, q.Layer); c != 0 {
		return c
	}
	if c := compareTolerant(p.Theta, q.Theta); c != 0 {
		return c
	}
	if c := compareTolerant(p.First.Rotation, q.First.Rotation); c != 0 {
		return c
	}
	if c := compareTolerant(p.Second.Rotation, q.Second.Rotation); c != 0 {
		return c
	}
	if c := compareInt(p.First.Bar, q.First.Bar); c != 0 {
		return c
	}
	return compareInt(p.Second.Bar, q.Second.Bar)
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func Less(p, q Point) bool {
	return Compare(p, q) < 0
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
