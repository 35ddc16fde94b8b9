package pentagrid

import (
	"math"

	"github.com/jbeda/geom"
)

// pairKey identifies the crossing of bar aBar of sequence a with bar bBar of
// sequence b, a < b.
type pairKey struct {
	a    int
	aBar int64
	b    int
	bBar int64
}

// Plane is a pentagrid: five bar sequences at 72° rotations plus the cache of
// crossings between their forced bars.
//
// Crossings live in an arena owned by the plane and the cache maps each bar
// pair to its arena handle. Forcing a bar records the sequence so the next
// Refresh only revisits pairs involving it; a second forcing before that
// refresh is a programming error.
type Plane struct {
	sequences [N]BarSequence

	arena []Point
	cache map[pairKey]int

	lastForced int
}

func NewPlane() *Plane {
	p := &Plane{
		cache:      make(map[pairKey]int),
		lastForced: -1,
	}
	for i := range p.sequences {
		p.sequences[i] = NewBarSequence(float64(i) * 2 * math.Pi / N)
	}
	return p
}

// Sequence returns sequence i for configuration. Constraining it after the
// first Refresh bypasses the cache bookkeeping; use ForceNear instead.
func (p *Plane) Sequence(i int) *BarSequence {
	return &p.sequences[i]
}

// CacheLen is the number of crossings computed so far.
func (p *Plane) CacheLen() int {
	return len(p.cache)
}

// LastForced returns the sequence forced since the last Refresh, if any.
func (p *Plane) LastForced() (int, bool) {
	return p.lastForced, p.lastForced >= 0
}

func (p *Plane) ref(seq int, bar int64) BarRef {
	return BarRef{Seq: seq, Rotation: p.sequences[seq].rotation, Bar: bar}
}

// offset is the signed distance of bar from the origin, measured along the
// sequence axis.
func offset(ms *BarSequence, bar int64) float64 {
	return geom.DotProduct(ms.anchor, ms.Axis()) + ms.BarDistance(bar)
}

// crossing solves p·u1 = o1, p·u2 = o2 for the point where two lines with
// unit normals u1, u2 meet. Parallel lines have no crossing.
func crossing(u1 geom.Coord, o1 float64, u2 geom.Coord, o2 float64) (geom.Coord, bool) {
	det := geom.CrossProduct(u1, u2)
	if math.Abs(det) < Epsilon {
		return geom.Coord{}, false
	}
	return geom.Coord{
		X: (o1*u2.Y - o2*u1.Y) / det,
		Y: (u1.X*o2 - u2.X*o1) / det,
	}, true
}

// Intersect returns the crossing of bar aBar of sequence a with bar bBar of
// sequence b. Bars of parallel sequences never cross.
func (p *Plane) Intersect(a int, aBar int64, b int, bBar int64) (Point, bool) {
	sa, sb := &p.sequences[a], &p.sequences[b]
	c, ok := crossing(sa.Axis(), offset(sa, aBar), sb.Axis(), offset(sb, bBar))
	if !ok {
		return Point{}, false
	}
	return NewPoint(p.ref(a, aBar), p.ref(b, bBar), c), true
}

// DistanceAlong projects c onto the axis of sequence seq, relative to its
// anchor.
func (p *Plane) DistanceAlong(c geom.Coord, seq int) float64 {
	ms := &p.sequences[seq]
	return geom.DotProduct(c.Minus(ms.anchor), ms.Axis())
}

// BarAt returns the bar of sequence seq nearest to c.
func (p *Plane) BarAt(c geom.Coord, seq int) int64 {
	return p.sequences[seq].Bar(p.DistanceAlong(c, seq))
}

// IsForcedAt reports whether c lies on a forced bar of sequence seq.
func (p *Plane) IsForcedAt(c geom.Coord, seq int) bool {
	ms := &p.sequences[seq]
	distance := p.DistanceAlong(c, seq)
	bar := ms.Bar(distance)
	if !FloatAlmostEqual(distance, ms.BarDistance(bar)) {
		return false
	}
	return ms.IsForced(bar)
}

// ForcedAt lists the sequences having a forced bar through c, in rotation
// order.
func (p *Plane) ForcedAt(c geom.Coord) []int {
	var r []int
	for i := range p.sequences {
		if p.IsForcedAt(c, i) {
			r = append(r, i)
		}
	}
	return r
}

// IntersectionAt identifies c as a crossing of forced bars. When more than two
// bars pass through c the two lowest rotations own it.
func (p *Plane) IntersectionAt(c geom.Coord) (Point, bool) {
	seqs := p.ForcedAt(c)
	if len(seqs) < 2 {
		return Point{}, false
	}
	a, b := seqs[0], seqs[1]
	return NewPoint(p.ref(a, p.BarAt(c, a)), p.ref(b, p.BarAt(c, b)), c), true
}

// barRange returns the bars of seq whose lines can pass through bounds.
func (p *Plane) barRange(bounds geom.Rect, seq int) (first, last int64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range []float64{bounds.Min.X, bounds.Max.X} {
		for _, y := range []float64{bounds.Min.Y, bounds.Max.Y} {
			d := p.DistanceAlong(geom.Coord{X: x, Y: y}, seq)
			lo = math.Min(lo, d)
			hi = math.Max(hi, d)
		}
	}
	ms := &p.sequences[seq]
	return ms.Bar(lo), ms.Bar(hi)
}

func (p *Plane) forcedBars(bounds geom.Rect, seq int) []int64 {
	first, last := p.barRange(bounds, seq)
	return p.sequences[seq].ForcedBars(first, last)
}

// Refresh computes the missing crossings of forced bars that may fall within
// bounds. After a ForceNear only the pairs involving the forced sequence are
// revisited; the result is the same as a full refresh.
func (p *Plane) Refresh(bounds geom.Rect) {
	forced := p.lastForced
	p.lastForced = -1

	var bars [N][]int64
	for i := range p.sequences {
		bars[i] = p.forcedBars(bounds, i)
	}

	for a := 0; a < N; a++ {
		for b := a + 1; b < N; b++ {
			if forced >= 0 && a != forced && b != forced {
				continue
			}
			for _, aBar := range bars[a] {
				for _, bBar := range bars[b] {
					key := pairKey{a: a, aBar: aBar, b: b, bBar: bBar}
					if _, ok := p.cache[key]; ok {
						continue
					}
					point, ok := p.Intersect(a, aBar, b, bBar)
					if !ok {
						continue
					}
					p.cache[key] = len(p.arena)
					p.arena = append(p.arena, point)
				}
			}
		}
	}
}

// Contains reports whether c lies in bounds, min edges inclusive.
func Contains(bounds geom.Rect, c geom.Coord) bool {
	return c.X >= bounds.Min.X && c.X < bounds.Max.X &&
		c.Y >= bounds.Min.Y && c.Y < bounds.Max.Y
}

// PointsWithin collects the cached crossings inside bounds, with their
// boundary duplicates, into an ordered set.
func (p *Plane) PointsWithin(bounds geom.Rect) *PointSet {
	set := NewPointSet()
	for _, point := range p.arena {
		if Contains(bounds, point.Coord) {
			set.Add(point)
		}
	}
	return set
}

// ForceNear forces the bar of sequence seq nearest to c and reports whether a
// new constraint was introduced. It panics if an earlier forcing has not been
// consumed by Refresh.
func (p *Plane) ForceNear(c geom.Coord, seq int) bool {
	if p.lastForced >= 0 {
		panic("pentagrid: forcing requested before the previous one was refreshed")
	}
	if !p.sequences[seq].ForceNearest(p.DistanceAlong(c, seq)) {
		return false
	}
	p.lastForced = seq
	return true
}
