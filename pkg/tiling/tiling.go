package tiling

import (
	"github.com/charmbracelet/log"
	"github.com/jbeda/geom"

	"penrose-tiling/pkg/errors"
	"penrose-tiling/pkg/pentagrid"
)

// DefaultMaxIterations bounds the forcing loop. Convergence is guaranteed, so
// hitting it means something is wrong with the plane or its bounds.
const DefaultMaxIterations = 100000

// State is the phase of a Tiling's forcing loop.
type State int

const (
	Unstable State = iota
	Converged
)

func (s State) String() string {
	if s == Converged {
		return "converged"
	}
	return "unstable"
}

// MatchList is the converged tiling: every dart and kite found in bounds.
type MatchList struct {
	Darts []Dart
	Kites []Kite
}

// Shapes returns the darts followed by the kites.
func (ml *MatchList) Shapes() []Shape {
	r := make([]Shape, 0, len(ml.Darts)+len(ml.Kites))
	for _, d := range ml.Darts {
		r = append(r, d)
	}
	for _, k := range ml.Kites {
		r = append(r, k)
	}
	return r
}

// Option configures a Tiling.
type Option func(*Tiling)

func WithLogger(l *log.Logger) Option { return func(t *Tiling) { t.logger = l } }
func WithMaxIterations(n int) Option  { return func(t *Tiling) { t.maxIterations = n } }

// Tiling grows a tiling over bounds by forcing bars of plane until no dart or
// double kite asks for more.
type Tiling struct {
	plane         *pentagrid.Plane
	bounds        geom.Rect
	logger        *log.Logger
	maxIterations int

	state      State
	iterations int
	cloud      *Cloud
	result     *MatchList
}

func New(plane *pentagrid.Plane, bounds geom.Rect, opts ...Option) *Tiling {
	t := &Tiling{
		plane:         plane,
		bounds:        bounds,
		logger:        log.Default(),
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tiling) State() State     { return t.state }
func (t *Tiling) Iterations() int  { return t.iterations }
func (t *Tiling) Cloud() *Cloud    { return t.cloud }
func (t *Tiling) Bounds() geom.Rect { return t.bounds }

// Compute runs the forcing loop to its fixed point and returns the tiling.
//
// Each round refreshes the crossings, matches darts and double kites and lets
// the first match that can force a bar do so. Forcing may create or remove
// crossings, so all matches of that round are discarded. A round without
// forcing converges, and kites are matched once against its cloud. Later
// calls return the same converged tiling.
func (t *Tiling) Compute() (*MatchList, error) {
	if t.state == Converged {
		return t.result, nil
	}
	if t.bounds.Width() <= 0 || t.bounds.Height() <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidBounds, "empty bounds %v", t.bounds)
	}

	var darts []Dart
	for t.state == Unstable {
		if t.iterations >= t.maxIterations {
			return nil, errors.New(errors.ErrCodeNotConverged,
				"no fixed point after %d iterations", t.iterations)
		}
		t.iterations++

		t.plane.Refresh(t.bounds)
		t.cloud = NewCloud(t.plane.PointsWithin(t.bounds))

		darts = Darts(t.cloud, t.plane)
		doubleKites := DoubleKites(t.cloud, t.plane)

		t.logger.Debug("matched",
			"iteration", t.iterations,
			"points", len(t.cloud.Points),
			"cells", len(t.cloud.Boundaries),
			"darts", len(darts),
			"doubleKites", len(doubleKites))

		if anyForced(t.plane, darts) || anyForced(t.plane, doubleKites) {
			if seq, ok := t.plane.LastForced(); ok {
				t.logger.Debug("forced bar", "iteration", t.iterations, "sequence", seq)
			}
			continue
		}
		t.state = Converged
	}

	kites := Kites(t.cloud, t.plane)
	t.logger.Info("tiling converged",
		"iterations", t.iterations,
		"points", len(t.cloud.Points),
		"darts", len(darts),
		"kites", len(kites))

	t.result = &MatchList{Darts: darts, Kites: kites}
	return t.result, nil
}

// ComputeArea grows a tiling over bounds with default options.
func ComputeArea(plane *pentagrid.Plane, bounds geom.Rect) (*MatchList, error) {
	return New(plane, bounds).Compute()
}
