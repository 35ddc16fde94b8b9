package tiling

import (
	"math"

	"github.com/jbeda/geom"

	"penrose-tiling/pkg/pentagrid"
)

// The dart template comes from the ace configuration: three crossings of bar
// 0 of sequences 0, 2 and 3, with the crossings of sequence 0 against 4 and 1
// as the corners that decide forcing.
var (
	dartTemplate      *template
	dartOptionalLeft  pentagrid.Point
	dartOptionalRight pentagrid.Point
	dartShape         halves
)

func init() {
	plane := pentagrid.AcePlane()
	dartTemplate = newTemplate([]pentagrid.Point{
		mustIntersect(plane, 0, 0, 2, 0),
		mustIntersect(plane, 0, 0, 3, 0),
		mustIntersect(plane, 2, 0, 3, 0),
	}, 0, 2)
	dartOptionalLeft = mustIntersect(plane, 0, 0, 4, 0)
	dartOptionalRight = mustIntersect(plane, 0, 0, 1, 0)

	corner := geom.Coord{
		X: math.Cos(math.Pi/5) * (pentagrid.MinnickX + pentagrid.MinnickY),
		Y: math.Sin(math.Pi/5) * (pentagrid.MinnickX + pentagrid.MinnickY),
	}
	dartShape = newHalves(corner.X-math.Cos(2*math.Pi/5), corner)
}

// +++ Dart
type Dart struct {
	mapped
	left, right *optional
}

// testDart accepts a pair only when the pattern is supported and at least one
// of its corners already has a forced bar through it.
func testDart(cloud *Cloud, plane *pentagrid.Plane) func(pair) (Dart, bool) {
	return func(p pair) (Dart, bool) {
		mapping, ok := testRequired(cloud, plane, p, dartTemplate)
		if !ok {
			return Dart{}, false
		}

		d := Dart{mapped: mapped{halves: dartShape, mapping: mapping}}
		if o, ok := mapOptional(dartOptionalLeft, mapping, plane, 4); ok {
			d.left = &o
		}
		if o, ok := mapOptional(dartOptionalRight, mapping, plane, 1); ok {
			d.right = &o
		}
		if d.left == nil && d.right == nil {
			return Dart{}, false
		}
		return d, true
	}
}

// Darts finds every dart in cloud.
func Darts(cloud *Cloud, plane *pentagrid.Plane) []Dart {
	return constellations(cloud, dartTemplate, testDart(cloud, plane))
}

// ForceBars completes the left corner if it lacks a bar, else the right one.
func (me Dart) ForceBars(plane *pentagrid.Plane) bool {
	if me.left != nil && !me.left.complete {
		return me.left.force(plane)
	}
	return me.right.force(plane)
}
