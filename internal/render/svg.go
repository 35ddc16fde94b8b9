package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jbeda/geom"
)

// SVG writes SVG elements to an underlying writer. The first write error is
// kept and every later call is a no-op.
type SVG struct {
	writer io.Writer
	err    error
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{writer: w}
}

func (svg *SVG) printf(format string, a ...any) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.writer, format, a...)
}

// Err returns the first error hit while writing.
func (svg *SVG) Err() error {
	return svg.err
}

// attrs turns name=value pairs into attributes and anything else into a
// style attribute. Values are not escaped.
func attrs(s []string) string {
	var b strings.Builder
	for _, a := range s {
		switch {
		case strings.Index(a, "=") > 0:
			b.WriteString(a)
			b.WriteByte(' ')
		case a != "":
			fmt.Fprintf(&b, "style='%s' ", a)
		}
	}
	return b.String()
}

func (svg *SVG) Start(viewBox geom.Rect, s ...string) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg" %s>
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), attrs(s))
}

func (svg *SVG) End() {
	svg.printf("</svg>\n")
}

func (svg *SVG) StartPath(p geom.Coord, s ...string) {
	svg.printf("<path %sd='M%f,%f", attrs(s), p.X, p.Y)
}

func (svg *SVG) PathLineTo(p geom.Coord) {
	svg.printf("\n  L%f,%f", p.X, p.Y)
}

func (svg *SVG) ClosePath() {
	svg.printf(" Z")
}

func (svg *SVG) EndPath() {
	svg.printf("'/>\n")
}

// Polygon draws a closed path through points.
func (svg *SVG) Polygon(points []geom.Coord, s ...string) {
	if len(points) == 0 {
		return
	}
	svg.StartPath(points[0], s...)
	for _, p := range points[1:] {
		svg.PathLineTo(p)
	}
	svg.ClosePath()
	svg.EndPath()
}
