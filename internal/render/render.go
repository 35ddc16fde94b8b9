// Package render draws a converged tiling as SVG: darts in red, kites in
// green, outlined in black.
package render

import (
	"io"

	"github.com/jbeda/geom"

	"penrose-tiling/pkg/errors"
	"penrose-tiling/pkg/tiling"
)

// Kind tells darts from kites.
type Kind string

const (
	KindDart Kind = "dart"
	KindKite Kind = "kite"
)

// Fill is the colour a tile of kind k is painted with.
func (k Kind) Fill() string {
	if k == KindDart {
		return "red"
	}
	return "green"
}

// Tile is one shape of a tiling in plane coordinates.
type Tile struct {
	Kind Kind         `json:"kind"`
	Path []geom.Coord `json:"path"`
}

// Tiles flattens a match list, darts first.
func Tiles(ml *tiling.MatchList) []Tile {
	r := make([]Tile, 0, len(ml.Darts)+len(ml.Kites))
	for _, d := range ml.Darts {
		r = append(r, Tile{Kind: KindDart, Path: d.Path()})
	}
	for _, k := range ml.Kites {
		r = append(r, Tile{Kind: KindKite, Path: k.Path()})
	}
	return r
}

const strokeStyle = "stroke: black; stroke-width: 3; stroke-linecap: round"

// Document writes tiles as an SVG document. Bounds are moved so their min
// corner is the origin and everything is scaled by scale.
func Document(w io.Writer, tiles []Tile, bounds geom.Rect, scale float64) error {
	if scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive, got %v", scale)
	}

	view := tiling.Translation(bounds.Min.Times(-1)).Then(tiling.Scaling(scale))
	viewBox := geom.Rect{Min: view.Apply(bounds.Min), Max: view.Apply(bounds.Max)}

	svg := NewSVG(w)
	svg.Start(viewBox)
	for _, tile := range tiles {
		points := make([]geom.Coord, len(tile.Path))
		for i, p := range tile.Path {
			points[i] = view.Apply(p)
		}
		svg.Polygon(points, "fill='"+tile.Kind.Fill()+"'", strokeStyle)
	}
	svg.End()

	return svg.Err()
}
