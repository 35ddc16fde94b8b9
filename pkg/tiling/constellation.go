package tiling

import (
	"math"
	"runtime"

	"github.com/google/btree"
	"github.com/jbeda/geom"
	"golang.org/x/sync/errgroup"

	"penrose-tiling/pkg/pentagrid"
)

// Constellation is a matched occurrence of one of the rigid bar patterns:
// Dart, Kite or DoubleKite.
type Constellation interface {
	// Mapping takes the pattern's template frame onto the plane.
	Mapping() Transform

	// ForceBars forces at most one bar the match shows to be determined and
	// reports whether it did.
	ForceBars(plane *pentagrid.Plane) bool
}

// template is the fixed geometry of a pattern, taken from the crossings of a
// reference plane.
type template struct {
	pattern []pentagrid.Point
	keyPair [2]pentagrid.Point
	delta   float64
}

func newTemplate(pattern []pentagrid.Point, first, second int) *template {
	return &template{
		pattern: pattern,
		keyPair: [2]pentagrid.Point{pattern[first], pattern[second]},
		delta:   pattern[first].DistanceFrom(pattern[second].Coord),
	}
}

// mustIntersect is for template construction only. A reference plane whose
// bars do not cross is broken template data.
func mustIntersect(plane *pentagrid.Plane, a int, aBar int64, b int, bBar int64) pentagrid.Point {
	p, ok := plane.Intersect(a, aBar, b, bBar)
	if !ok {
		panic("tiling: template bars do not cross")
	}
	return p
}

// Cloud is the sorted crossing set a round of matching runs against.
type Cloud struct {
	Set    *pentagrid.PointSet
	Points []pentagrid.Point

	// Boundaries are the indices in Points where the cell changes. Candidate
	// pairs are only looked for between points of the same band. Nil scans the
	// whole cloud at once.
	Boundaries []int
}

func NewCloud(set *pentagrid.PointSet) *Cloud {
	points := set.Points()
	return &Cloud{
		Set:        set,
		Points:     points,
		Boundaries: pentagrid.Boundaries(points),
	}
}

// Unbanded returns the same cloud scanned without band partitioning.
func (c *Cloud) Unbanded() *Cloud {
	return &Cloud{Set: c.Set, Points: c.Points}
}

// bands splits the cloud at its boundaries. Each band runs from one boundary
// up to and including the next; the last band is open ended.
func (c *Cloud) bands() [][]pentagrid.Point {
	if len(c.Boundaries) < 2 {
		return [][]pentagrid.Point{c.Points}
	}
	r := make([][]pentagrid.Point, 0, len(c.Boundaries))
	for i := 1; i < len(c.Boundaries); i++ {
		r = append(r, c.Points[c.Boundaries[i-1]:c.Boundaries[i]+1])
	}
	return append(r, c.Points[c.Boundaries[len(c.Boundaries)-1]:])
}

type pair [2]pentagrid.Point

func lessPair(a, b pair) bool {
	if c := pentagrid.Compare(a[0], b[0]); c != 0 {
		return c < 0
	}
	return pentagrid.Less(a[1], b[1])
}

// pairScan finds every pair in points whose distance is delta, each ordered
// smaller point first.
func pairScan(points []pentagrid.Point, delta float64) []pair {
	var r []pair
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			p, q := points[i], points[j]
			if math.Abs(p.DistanceFrom(q.Coord)-delta) >= pentagrid.Epsilon {
				continue
			}
			if pentagrid.Less(q, p) {
				p, q = q, p
			}
			r = append(r, pair{p, q})
		}
	}
	return r
}

// candidates scans the bands in parallel and merges the pairs into one
// deduplicated, ordered list.
func (c *Cloud) candidates(delta float64) []pair {
	bands := c.bands()
	found := make([][]pair, len(bands))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, band := range bands {
		g.Go(func() error {
			found[i] = pairScan(band, delta)
			return nil
		})
	}
	// The scans cannot fail; Wait only joins them.
	_ = g.Wait()

	merged := btree.NewG(8, lessPair)
	for _, pairs := range found {
		for _, p := range pairs {
			merged.ReplaceOrInsert(p)
		}
	}

	r := make([]pair, 0, merged.Len())
	merged.Ascend(func(p pair) bool {
		r = append(r, p)
		return true
	})
	return r
}

// testRequired maps the template onto pair and checks every pattern point
// lands on a crossing of the cloud joining sequences at the same relative
// rotation.
func testRequired(cloud *Cloud, plane *pentagrid.Plane, p pair, t *template) (Transform, bool) {
	mapping := MatchPair(
		[2]geom.Coord{t.keyPair[0].Coord, t.keyPair[1].Coord},
		[2]geom.Coord{p[0].Coord, p[1].Coord},
	)

	for _, unmapped := range t.pattern {
		found, ok := plane.IntersectionAt(mapping.Apply(unmapped.Coord))
		if !ok || !cloud.Set.Has(found) {
			return Transform{}, false
		}

		real := unmapped.RotationDelta()
		test := found.RotationDelta()
		if !pentagrid.FloatAlmostEqual(real, test) && !pentagrid.FloatAlmostEqual(real+test, 2*math.Pi) {
			return Transform{}, false
		}
	}

	return mapping, true
}

// optional is a template point checked after a match. A complete optional is
// already a crossing of forced bars. Otherwise one bar passes through it and
// companion is the sequence whose bar still has to be forced there.
type optional struct {
	at        geom.Coord
	complete  bool
	companion int
}

// mapOptional places p through mapping. It reports false when no forced bar
// passes through the mapped point.
func mapOptional(p pentagrid.Point, mapping Transform, plane *pentagrid.Plane, amount int) (optional, bool) {
	at := mapping.Apply(p.Coord)
	seqs := plane.ForcedAt(at)
	switch {
	case len(seqs) >= 2:
		return optional{at: at, complete: true}, true
	case len(seqs) == 1:
		return optional{at: at, companion: (seqs[0] + amount) % pentagrid.N}, true
	}
	return optional{}, false
}

// force forces o's companion bar if o is incomplete.
func (o *optional) force(plane *pentagrid.Plane) bool {
	if o == nil || o.complete {
		return false
	}
	return plane.ForceNear(o.at, o.companion)
}

type barID struct {
	seq int
	bar int64
}

// matchKey identifies a match by the crossings its key pair landed on,
// whichever cell copy of them the scan used.
type matchKey [4]barID

func keyOf(p pair) matchKey {
	return matchKey{
		{p[0].First.Seq, p[0].First.Bar}, {p[0].Second.Seq, p[0].Second.Bar},
		{p[1].First.Seq, p[1].First.Bar}, {p[1].Second.Seq, p[1].Second.Bar},
	}
}

// constellations runs the shared search: candidate pairs at the template's key
// distance, each tried in both assignments. A match reached through several
// cell copies of the same crossings is reported once.
func constellations[T Constellation](cloud *Cloud, t *template, test func(pair) (T, bool)) []T {
	var r []T
	seen := make(map[matchKey]bool)
	for _, p := range cloud.candidates(t.delta) {
		for _, assigned := range []pair{p, {p[1], p[0]}} {
			found, ok := test(assigned)
			if !ok {
				continue
			}
			if k := keyOf(assigned); !seen[k] {
				seen[k] = true
				r = append(r, found)
			}
			break
		}
	}
	return r
}

// anyForced forces bars for the first constellation that can. At most one
// forcing happens per call, which keeps the plane's one-at-a-time contract.
func anyForced[T Constellation](plane *pentagrid.Plane, cs []T) bool {
	for _, c := range cs {
		if c.ForceBars(plane) {
			return true
		}
	}
	return false
}
