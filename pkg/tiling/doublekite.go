package tiling

import (
	"penrose-tiling/pkg/pentagrid"
)

// The double kite spans five bar 0 crossings of the deuce configuration. Its
// interior point is where bar -1 of sequence 2, read shorter, meets bar 0 of
// sequence 1.
var (
	doubleKiteTemplate *template
	doubleKiteForce    pentagrid.Point
)

func init() {
	plane := pentagrid.DeucePlane()
	doubleKiteTemplate = newTemplate([]pentagrid.Point{
		mustIntersect(plane, 0, 0, 1, 0),
		mustIntersect(plane, 0, 0, 2, 0),
		mustIntersect(plane, 0, 0, 4, 0),
		mustIntersect(plane, 2, 0, 4, 0),
		mustIntersect(plane, 3, 0, 4, 0),
	}, 1, 3)

	forced := pentagrid.DeucePlane()
	forced.Sequence(2).Force(-1, pentagrid.Shorter)
	doubleKiteForce = mustIntersect(forced, 2, -1, 1, 0)
}

// +++ DoubleKite
type DoubleKite struct {
	mapping Transform
}

// DoubleKites finds every double kite in cloud.
func DoubleKites(cloud *Cloud, plane *pentagrid.Plane) []DoubleKite {
	return constellations(cloud, doubleKiteTemplate, func(p pair) (DoubleKite, bool) {
		mapping, ok := testRequired(cloud, plane, p, doubleKiteTemplate)
		if !ok {
			return DoubleKite{}, false
		}
		return DoubleKite{mapping: mapping}, true
	})
}

func (me DoubleKite) Mapping() Transform {
	return me.mapping
}

// ForceBars forces the bar through the interior point when only one forced
// bar crosses it so far.
func (me DoubleKite) ForceBars(plane *pentagrid.Plane) bool {
	o, ok := mapOptional(doubleKiteForce, me.mapping, plane, 1)
	if !ok {
		return false
	}
	return o.force(plane)
}
