// Package tiling reads Penrose kites and darts off a pentagrid and grows the
// tiling by forcing the bars the tiles determine.
//
// A tile is found by rigid pattern matching. Each pattern is a set of bar
// crossings taken from a reference configuration; a match is a rotation and
// translation that lands every pattern point on a crossing of the plane
// joining sequences at the same relative angle. Darts and double kites then
// know which bar must pass through a neighbouring corner and force it.
//
// Tiling runs that to a fixed point:
//
//	t := tiling.New(pentagrid.KingPlane(), bounds, tiling.WithLogger(logger))
//	ml, err := t.Compute()
//	for _, s := range ml.Shapes() {
//	    draw(s.Path())
//	}
//
// Each round refreshes the plane, matches darts and double kites and forces
// at most one bar. A round that forces nothing has converged and its kites
// are matched once. Matching scans the cells of the crossing cloud in
// parallel.
package tiling
