package pentagrid

import (
	"math"
)

// N is the number of bar sequences in a pentagrid.
const N = 5

// Epsilon is the single tolerance used for distance comparisons, ordering
// and forced-bar detection.
const Epsilon = 0.0000000001

// Spatial classification grid. A point closer than BOX_OVERLAP to the right or
// bottom edge of its cell is also filed under the neighbouring cell.
const (
	BOX_DIM     = 10.0
	BOX_ORIGIN  = -BOX_DIM / 2
	BOX_OVERLAP = 2.126627021
)

// Minnick offsets, in units of the short Ammann segment. They place the zeroth
// bar of each sequence for the named starting configurations.
var (
	MinnickA = math.Sin(degToRads(54)) * (1 + math.Cos(degToRads(72)))
	MinnickB = 1.0 / 4.0
	MinnickE = math.Phi - MinnickB
	MinnickW = 3.0 / 4.0
	MinnickX = 1 + math.Cos(degToRads(72))
	MinnickY = math.Cos(degToRads(72))
	MinnickZ = 1.0 / 4.0
)

// Bar spacing. Short and long gaps alternate in the Fibonacci word.
var (
	Scale = MinnickA + MinnickW
	Short = Scale
	Long  = math.Phi * Scale
)

func degToRads(d float64) float64 {
	return d * math.Pi / 180.0
}

func FloatAlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// compareTolerant orders a and b, treating values within Epsilon as equal.
func compareTolerant(a, b float64) int {
	switch {
	case FloatAlmostEqual(a, b):
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}
