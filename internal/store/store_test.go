package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jbeda/geom"

	"penrose-tiling/internal/render"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "tilings.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var bounds = geom.Rect{Min: geom.Coord{X: -40, Y: -20}, Max: geom.Coord{X: 40, Y: 20}}

func TestKey(t *testing.T) {
	k := Key("king", bounds)
	if len(k) != 64 {
		t.Errorf("Key() = %q, want 64 hex characters", k)
	}
	if Key("king", bounds) != k {
		t.Error("Key() is not deterministic")
	}
	if Key("queen", bounds) == k {
		t.Error("different presets share a key")
	}
	other := bounds
	other.Max.X = 41
	if Key("king", other) == k {
		t.Error("different bounds share a key")
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	rec := Record{
		Preset:     "king",
		Bounds:     bounds,
		Iterations: 6,
		Tiles: []render.Tile{
			{Kind: render.KindDart, Path: []geom.Coord{{X: 0, Y: 0}, {X: 1.309, Y: 0.951}, {X: 1, Y: 0}, {X: 1.309, Y: -0.951}}},
			{Kind: render.KindKite, Path: []geom.Coord{{X: 0, Y: 0}, {X: 1.309, Y: 0.951}, {X: 1.618, Y: 0}, {X: 1.309, Y: -0.951}}},
		},
	}

	key, err := s.Save(ctx, rec)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if key != Key("king", bounds) {
		t.Errorf("Save() key = %q, want the derived key", key)
	}

	got, ok, err := s.Load(ctx, key)
	if err != nil || !ok {
		t.Fatalf("Load() = %v, %v", ok, err)
	}
	if got.Preset != rec.Preset || got.Bounds != rec.Bounds || got.Iterations != rec.Iterations {
		t.Errorf("Load() = %+v", got)
	}
	if len(got.Tiles) != len(rec.Tiles) {
		t.Fatalf("loaded %d tiles, want %d", len(got.Tiles), len(rec.Tiles))
	}
	for i := range rec.Tiles {
		if got.Tiles[i].Kind != rec.Tiles[i].Kind {
			t.Errorf("tile %d kind = %s", i, got.Tiles[i].Kind)
		}
		for j := range rec.Tiles[i].Path {
			if got.Tiles[i].Path[j] != rec.Tiles[i].Path[j] {
				t.Errorf("tile %d vertex %d = %v, want %v", i, j, got.Tiles[i].Path[j], rec.Tiles[i].Path[j])
			}
		}
	}
}

func TestLoadMissing(t *testing.T) {
	s := openTemp(t)
	_, ok, err := s.Load(context.Background(), Key("sun", bounds))
	if err != nil || ok {
		t.Errorf("Load() = %v, %v, want a miss", ok, err)
	}
}

func TestSaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	for _, n := range []int{3, 4} {
		if _, err := s.Save(ctx, Record{Preset: "star", Bounds: bounds, Iterations: n}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	got, _, err := s.Load(ctx, Key("star", bounds))
	if err != nil {
		t.Fatal(err)
	}
	if got.Iterations != 4 {
		t.Errorf("Iterations = %d, want the later save", got.Iterations)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Errorf("List() has %d records, want 1", len(list))
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, preset := range []string{"ace", "deuce", "sun"} {
		rec := Record{Preset: preset, Bounds: bounds, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		if _, err := s.Save(ctx, rec); err != nil {
			t.Fatalf("Save(%s) error = %v", preset, err)
		}
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	var got []string
	for _, r := range list {
		got = append(got, r.Preset)
		if r.Tiles != nil {
			t.Errorf("%s: List() should not load tiles", r.Preset)
		}
	}
	want := []string{"sun", "deuce", "ace"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List() = %v, want newest first %v", got, want)
			break
		}
	}
	if !list[0].CreatedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("CreatedAt = %v", list[0].CreatedAt)
	}
}
