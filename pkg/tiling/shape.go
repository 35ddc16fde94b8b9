package tiling

import (
	"github.com/jbeda/geom"
)

// Shape is a closed polygon with a fixed number of vertices.
type Shape interface {
	Contains(p geom.Coord) bool
	Path() []geom.Coord
}

// +++ triangle
type triangle struct {
	*geom.Triangle
}

func newTriangle(a, b, c geom.Coord) triangle {
	return triangle{&geom.Triangle{A: a, B: b, C: c}}
}

// Contains uses barycentric signs. Points on the edges through A count as
// inside; points on the edge BC do not.
func (me triangle) Contains(p geom.Coord) bool {
	a, b, c := me.A, me.B, me.C

	area := (-b.Y*c.X + a.Y*(-b.X+c.X) + a.X*(b.Y-c.Y) + b.X*c.Y) / 2
	sign := 1.0
	if area < 0 {
		sign = -1
	}

	s := (a.Y*c.X - a.X*c.Y + (c.Y-a.Y)*p.X + (a.X-c.X)*p.Y) * sign
	t := (a.X*b.Y - a.Y*b.X + (a.Y-b.Y)*p.X + (b.X-a.X)*p.Y) * sign

	return s >= 0 && t >= 0 && s+t < 2*area*sign
}

func (me triangle) Path() []geom.Coord {
	return []geom.Coord{me.A, me.B, me.C}
}

// halves is a quadrilateral made of two triangles sharing the edge from the
// origin along the positive x axis, one above it and one below. Kites and
// darts are both described this way in their template frame.
type halves struct {
	upper, lower triangle
	box          geom.Rect
}

func newHalves(tip float64, corner geom.Coord) halves {
	origin := geom.Coord{}
	top := geom.Coord{X: tip}
	h := halves{
		upper: newTriangle(origin, top, corner),
		lower: newTriangle(origin, top, geom.Coord{X: corner.X, Y: -corner.Y}),
	}
	h.box = h.upper.Bounds()
	h.box.ExpandToContainRect(h.lower.Bounds())
	return h
}

func (h halves) contains(p geom.Coord) bool {
	if p.X < h.box.Min.X || p.X >= h.box.Max.X || p.Y < h.box.Min.Y || p.Y >= h.box.Max.Y {
		return false
	}
	if p.Y >= 0 {
		return h.upper.Contains(p)
	}
	return h.lower.Contains(p)
}

// outline walks origin, upper corner, tip, lower corner.
func (h halves) outline() [4]geom.Coord {
	return [4]geom.Coord{h.upper.A, h.upper.C, h.upper.B, h.lower.C}
}

// mapped is a template shape placed in the plane by a match transform.
type mapped struct {
	halves
	mapping Transform
}

func (m mapped) Contains(p geom.Coord) bool {
	return m.halves.contains(m.mapping.Inverse().Apply(p))
}

func (m mapped) Path() []geom.Coord {
	outline := m.outline()
	r := make([]geom.Coord, len(outline))
	for i, c := range outline {
		r[i] = m.mapping.Apply(c)
	}
	return r
}

// Mapping is the transform from the template frame onto the plane.
func (m mapped) Mapping() Transform {
	return m.mapping
}
