package tiling

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/jbeda/geom"

	"penrose-tiling/pkg/pentagrid"
)

func TestTriangleContains(t *testing.T) {
	tri := newTriangle(geom.Coord{X: 136, Y: 7}, geom.Coord{X: 316, Y: 177}, geom.Coord{X: 217, Y: 419})

	tests := []struct {
		at   geom.Coord
		want bool
	}{
		{geom.Coord{X: 243, Y: 166}, true},
		{geom.Coord{X: 200, Y: 200}, true},
		{geom.Coord{X: 100, Y: 100}, false},
		{geom.Coord{X: 300, Y: 400}, false},
		{geom.Coord{X: 136, Y: 7}, true},
	}
	for _, tt := range tests {
		if got := tri.Contains(tt.at); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.at, got, tt.want)
		}
	}

	// Winding does not matter.
	flipped := newTriangle(tri.A, tri.C, tri.B)
	if !flipped.Contains(geom.Coord{X: 243, Y: 166}) {
		t.Error("clockwise triangle lost its interior")
	}
}

// inPolygon is an even-odd ray cast, independent of the triangle split.
func inPolygon(path []geom.Coord, p geom.Coord) bool {
	in := false
	for i, j := 0, len(path)-1; i < len(path); j, i = i, i+1 {
		a, b := path[i], path[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

// Samples a margin around each shape's bounding box so points beyond the
// box are checked as well as those inside it.
func TestShapeContainsMatchesPath(t *testing.T) {
	m := Rotation(0.7).Then(Translation(geom.Coord{X: 12, Y: -3}))
	shapes := map[string]Shape{
		"kite": Kite{mapped{halves: kiteShape, mapping: m}},
		"dart": Dart{mapped: mapped{halves: dartShape, mapping: m}},
	}

	ml, err := New(pentagrid.KingPlane(), square(10), quiet()).Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	for i, d := range ml.Darts {
		shapes[fmt.Sprintf("king dart %d", i)] = d
	}
	for i, k := range ml.Kites {
		shapes[fmt.Sprintf("king kite %d", i)] = k
	}

	rng := rand.New(rand.NewSource(7))
	for name, s := range shapes {
		path := s.Path()
		if len(path) != 4 {
			t.Fatalf("%s: path has %d vertices, want 4", name, len(path))
		}

		box := geom.Rect{Min: path[0], Max: path[0]}
		for _, c := range path[1:] {
			box.ExpandToContainCoord(c)
		}
		margin := geom.Coord{X: box.Width() / 4, Y: box.Height() / 4}
		box = geom.Rect{Min: box.Min.Minus(margin), Max: box.Max.Plus(margin)}

		inside, outside := 0, 0
		for i := 0; i < 1000; i++ {
			p := geom.Coord{
				X: box.Min.X + rng.Float64()*box.Width(),
				Y: box.Min.Y + rng.Float64()*box.Height(),
			}
			want := inPolygon(path, p)
			if got := s.Contains(p); got != want {
				t.Errorf("%s: Contains(%v) = %v, ray cast says %v", name, p, got, want)
			}
			if want {
				inside++
			} else {
				outside++
			}
		}
		if inside == 0 || outside == 0 {
			t.Errorf("%s: %d samples inside and %d outside", name, inside, outside)
		}
	}
}

func TestShapeOutline(t *testing.T) {
	kite := kiteShape.outline()
	if kite[0] != (geom.Coord{}) {
		t.Errorf("kite outline starts at %v, want the origin", kite[0])
	}
	if kite[2].X <= kite[1].X {
		t.Error("kite tip should lie beyond its corners")
	}
	dart := dartShape.outline()
	if dart[2].X >= dart[1].X {
		t.Error("dart tip should lie inside its corners")
	}
	if kite[1] != dart[1] || kite[3] != dart[3] {
		t.Error("kite and dart should share their corners")
	}
}
