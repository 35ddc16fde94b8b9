package tiling

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"

	"penrose-tiling/pkg/pentagrid"
)

// Transform is a 2D affine map in row-major form:
//
//	[ a b c ]
//	[ d e f ]
//
// where (x', y') = (a*x + b*y + c, d*x + e*y + f). Matches only ever build
// rotations followed by translations; rendering adds a uniform scale.
type Transform struct {
	A, B, C float64
	D, E, F float64
}

func Identity() Transform {
	return Transform{A: 1, E: 1}
}

func Translation(v geom.Coord) Transform {
	return Transform{A: 1, C: v.X, E: 1, F: v.Y}
}

func Scaling(s float64) Transform {
	return Transform{A: s, E: s}
}

func Rotation(theta float64) Transform {
	s, c := math.Sincos(theta)
	return Transform{A: c, B: -s, D: s, E: c}
}

// Apply maps c through t.
func (t Transform) Apply(c geom.Coord) geom.Coord {
	return geom.Coord{
		X: t.A*c.X + t.B*c.Y + t.C,
		Y: t.D*c.X + t.E*c.Y + t.F,
	}
}

// Then composes two transforms: u is applied after t.
func (t Transform) Then(u Transform) Transform {
	return Transform{
		A: u.A*t.A + u.B*t.D,
		B: u.A*t.B + u.B*t.E,
		C: u.A*t.C + u.B*t.F + u.C,
		D: u.D*t.A + u.E*t.D,
		E: u.D*t.B + u.E*t.E,
		F: u.D*t.C + u.E*t.F + u.F,
	}
}

// Inverse returns the inverse transform. A degenerate transform means the
// template data is broken, so it panics rather than returning an error.
func (t Transform) Inverse() Transform {
	det := t.A*t.E - t.B*t.D
	if math.Abs(det) < pentagrid.Epsilon {
		panic(fmt.Sprintf("tiling: transform %+v is not invertible", t))
	}
	return Transform{
		A: t.E / det, B: -t.B / det, C: (t.B*t.F - t.C*t.E) / det,
		D: -t.D / det, E: t.A / det, F: (t.C*t.D - t.A*t.F) / det,
	}
}

func heading(from, to geom.Coord) float64 {
	theta := math.Mod(math.Atan2(to.Y-from.Y, to.X-from.X), 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}

// MatchPair returns the rigid transform taking segment real[0]->real[1] onto
// the direction of test[0]->test[1], with real[0] landing on test[0]. It never
// reflects.
func MatchPair(real, test [2]geom.Coord) Transform {
	theta := heading(test[0], test[1]) - heading(real[0], real[1])
	return Translation(real[0].Times(-1)).
		Then(Rotation(theta)).
		Then(Translation(test[0]))
}
