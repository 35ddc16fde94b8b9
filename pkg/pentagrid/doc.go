// Package pentagrid models the five families of Ammann bars a Penrose tiling
// is read from.
//
// Each family is a BarSequence: parallel bars at short or long gaps following
// the Fibonacci word. Which gaps are known is tracked by two golden-ratio
// markers, and a bar is forced once both agree on it. Forcing only ever adds
// constraints, so a forced bar never moves.
//
// A Plane holds five sequences at 72° rotations and caches the crossings of
// their forced bars. Crossings are filed under the cells of a square grid and
// ordered cell by cell, so a PointSet can be scanned locally:
//
//	plane := pentagrid.KingPlane()
//	plane.Refresh(bounds)
//	for _, p := range plane.PointsWithin(bounds).Points() {
//	    fmt.Println(p.First.Seq, p.Second.Seq, p)
//	}
//
// Refresh is incremental. After ForceNear only the pairs involving the forced
// sequence are recomputed, so a plane accepts a single forcing between
// refreshes.
package pentagrid
