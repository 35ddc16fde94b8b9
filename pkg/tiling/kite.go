package tiling

import (
	"math"

	"github.com/jbeda/geom"

	"penrose-tiling/pkg/pentagrid"
)

// The kite template is the triangle of bar 0 crossings of sequences 0, 1 and
// 4 in the sun configuration.
var (
	kiteTemplate *template
	kiteShape    halves
)

func init() {
	plane := pentagrid.SunPlane()
	kiteTemplate = newTemplate([]pentagrid.Point{
		mustIntersect(plane, 0, 0, 1, 0),
		mustIntersect(plane, 0, 0, 4, 0),
		mustIntersect(plane, 1, 0, 4, 0),
	}, 0, 1)

	corner := geom.Coord{
		X: math.Cos(math.Pi/5) * (pentagrid.MinnickX + pentagrid.MinnickY),
		Y: math.Sin(math.Pi/5) * (pentagrid.MinnickX + pentagrid.MinnickY),
	}
	kiteShape = newHalves(pentagrid.MinnickB+pentagrid.MinnickE, corner)
}

// +++ Kite
type Kite struct {
	mapped
}

// Kites finds every kite in cloud.
func Kites(cloud *Cloud, plane *pentagrid.Plane) []Kite {
	return constellations(cloud, kiteTemplate, func(p pair) (Kite, bool) {
		mapping, ok := testRequired(cloud, plane, p, kiteTemplate)
		if !ok {
			return Kite{}, false
		}
		return Kite{mapped{halves: kiteShape, mapping: mapping}}, true
	})
}

// ForceBars never forces: a kite has no undetermined neighbours.
func (Kite) ForceBars(*pentagrid.Plane) bool {
	return false
}
