package pentagrid

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
)

func square(half float64) geom.Rect {
	return geom.Rect{Min: geom.Coord{X: -half, Y: -half}, Max: geom.Coord{X: half, Y: half}}
}

func TestIntersect(t *testing.T) {
	plane := NewPlane()

	if _, ok := plane.Intersect(2, 0, 2, 1); ok {
		t.Error("bars of one sequence are parallel and must not cross")
	}

	p, ok := plane.Intersect(3, 0, 1, 0)
	if !ok {
		t.Fatal("bar 0 of sequences 1 and 3 should cross")
	}
	if p.First.Seq != 1 || p.Second.Seq != 3 {
		t.Errorf("owners = %d, %d, want 1, 3", p.First.Seq, p.Second.Seq)
	}
	if p.Magnitude() > Epsilon {
		t.Errorf("crossing of zeroth bars at %v, want the origin", p)
	}

	p, ok = plane.Intersect(0, 1, 1, -1)
	if !ok {
		t.Fatal("expected a crossing")
	}
	for _, ref := range []BarRef{p.First, p.Second} {
		if got := plane.DistanceAlong(p.Coord, ref.Seq); !FloatAlmostEqual(got, plane.Sequence(ref.Seq).BarDistance(ref.Bar)) {
			t.Errorf("crossing is %v along sequence %d, bar %d is at %v",
				got, ref.Seq, ref.Bar, plane.Sequence(ref.Seq).BarDistance(ref.Bar))
		}
	}
}

// Every crossing lies on both of its bars, measured from anchors moved off
// the origin.
func TestCrossingsLieOnTheirBars(t *testing.T) {
	plane := JackPlane()
	bounds := square(6)
	plane.Refresh(bounds)

	points := plane.PointsWithin(bounds).Points()
	if len(points) == 0 {
		t.Fatal("no crossings in bounds")
	}
	for _, p := range points {
		for _, ref := range []BarRef{p.First, p.Second} {
			ms := plane.Sequence(ref.Seq)
			if got, want := plane.DistanceAlong(p.Coord, ref.Seq), ms.BarDistance(ref.Bar); math.Abs(got-want) > 1e-9 {
				t.Errorf("%v is %v along sequence %d, bar %d is at %v", p, got, ref.Seq, ref.Bar, want)
			}
			if got := plane.BarAt(p.Coord, ref.Seq); got != ref.Bar {
				t.Errorf("BarAt(%v, %d) = %d, want %d", p, ref.Seq, got, ref.Bar)
			}
		}
	}
}

// Forcing bar 1 shorter on every sequence of an origin-anchored plane puts
// ten crossings of zeroth bars at the origin, in the middle of its cell.
func TestRefreshAroundOrigin(t *testing.T) {
	plane := NewPlane()
	for i := 0; i < N; i++ {
		plane.Sequence(i).Force(1, Shorter)
	}

	bounds := square(1.2)
	plane.Refresh(bounds)
	set := plane.PointsWithin(bounds)

	if set.Len() != 10 {
		t.Fatalf("got %d points, want 10", set.Len())
	}
	for _, p := range set.Points() {
		if p.Magnitude() > 1e-9 {
			t.Errorf("%v is not at the origin", p)
		}
		if p.First.Bar != 0 || p.Second.Bar != 0 {
			t.Errorf("%v is owned by bars %d, %d", p, p.First.Bar, p.Second.Bar)
		}
	}
	if got := Boundaries(set.Points()); len(got) != 1 {
		t.Errorf("points span %d cells, want 1", len(got))
	}
}

func TestRefreshIsIdempotent(t *testing.T) {
	plane := KingPlane()
	bounds := square(10)

	plane.Refresh(bounds)
	n := plane.CacheLen()
	if n == 0 {
		t.Fatal("refresh computed no crossings")
	}
	plane.Refresh(bounds)
	if plane.CacheLen() != n {
		t.Errorf("second refresh grew the cache from %d to %d", n, plane.CacheLen())
	}
}

func TestIncrementalRefresh(t *testing.T) {
	bounds := square(10)
	at := geom.Coord{X: 3.3, Y: -2.1}
	const seq = 2

	incremental := KingPlane()
	incremental.Refresh(bounds)
	if !incremental.ForceNear(at, seq) {
		t.Fatal("ForceNear introduced no constraint")
	}
	if got, ok := incremental.LastForced(); !ok || got != seq {
		t.Errorf("LastForced() = %d, %v", got, ok)
	}
	incremental.Refresh(bounds)
	if _, ok := incremental.LastForced(); ok {
		t.Error("Refresh did not consume the forcing")
	}

	full := KingPlane()
	full.Sequence(seq).ForceNearest(full.DistanceAlong(at, seq))
	full.Refresh(bounds)

	if incremental.CacheLen() != full.CacheLen() {
		t.Fatalf("cache sizes differ: incremental %d, full %d", incremental.CacheLen(), full.CacheLen())
	}
	got := incremental.PointsWithin(bounds).Points()
	want := full.PointsWithin(bounds).Points()
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range got {
		if Compare(got[i], want[i]) != 0 || got[i].DistanceFrom(want[i].Coord) > Epsilon {
			t.Errorf("point %d: %v, want %v", i, got[i], want[i])
		}
	}
}

func TestForceNearTwicePanics(t *testing.T) {
	plane := NewPlane()
	plane.Refresh(square(5))
	if !plane.ForceNear(geom.Coord{X: 2.5}, 0) {
		t.Fatal("ForceNear introduced no constraint")
	}

	defer func() {
		if recover() == nil {
			t.Error("a second forcing before Refresh should panic")
		}
	}()
	plane.ForceNear(geom.Coord{Y: 2.5}, 1)
}

func TestForceNearOnForcedBar(t *testing.T) {
	plane := NewPlane()
	if plane.ForceNear(geom.Coord{}, 0) {
		t.Error("bar 0 is already forced")
	}
	if _, ok := plane.LastForced(); ok {
		t.Error("a no-op forcing was recorded")
	}
}

func TestIntersectionAt(t *testing.T) {
	plane := QueenPlane()
	bounds := square(8)
	plane.Refresh(bounds)

	for _, p := range plane.PointsWithin(bounds).Points() {
		got, ok := plane.IntersectionAt(p.Coord)
		if !ok {
			t.Fatalf("no crossing found at %v", p)
		}
		if len(plane.ForcedAt(p.Coord)) > 2 {
			continue
		}
		if got.First.Seq != p.First.Seq || got.First.Bar != p.First.Bar ||
			got.Second.Seq != p.Second.Seq || got.Second.Bar != p.Second.Bar {
			t.Errorf("IntersectionAt(%v) owned by %v / %v, want %v / %v", p, got.First, got.Second, p.First, p.Second)
		}
	}

	// Midway between two bar 0 crossings no forced pair meets.
	a, _ := plane.Intersect(0, 0, 1, 0)
	b, _ := plane.Intersect(0, 0, 2, 0)
	mid := a.Plus(b.Coord).Times(0.5)
	if _, ok := plane.IntersectionAt(mid); ok {
		t.Errorf("unexpected crossing at %v", mid)
	}
}

func TestContains(t *testing.T) {
	bounds := square(1)
	tests := []struct {
		at   geom.Coord
		want bool
	}{
		{geom.Coord{X: 0, Y: 0}, true},
		{geom.Coord{X: -1, Y: -1}, true},
		{geom.Coord{X: 1, Y: 0}, false},
		{geom.Coord{X: 0, Y: 1}, false},
		{geom.Coord{X: 0.999, Y: 0.999}, true},
		{geom.Coord{X: math.Nextafter(-1, -2), Y: 0}, false},
	}
	for _, tt := range tests {
		if got := Contains(bounds, tt.at); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
}
