package pentagrid

import (
	"math"

	"github.com/jbeda/geom"
)

// Bound selects which side of an undetermined bar a forcing narrows towards.
type Bound int

const (
	Longer Bound = iota
	Shorter
)

func (b Bound) String() string {
	if b == Longer {
		return "longer"
	}
	return "shorter"
}

// marker is one of the two lines bounding the admissible gap sequences: the
// line of slope Phi through (bar, value).
type marker struct {
	bar   int64
	value int64
}

func (m marker) intercept() float64 {
	return float64(m.value) - float64(float64(m.bar)*math.Phi)
}

// at evaluates the marker line at bar. The explicit conversion keeps the
// product from being fused into a multiply-add, so the integer hits of the
// line stay exact across architectures.
func (m marker) at(bar int64) float64 {
	return float64(float64(bar)*math.Phi) + m.intercept()
}

// BarSequence is one family of parallel Ammann bars (a musical sequence). Bar
// 0 passes through the anchor perpendicular to the sequence axis, and later
// bars follow at short or long gaps. Which gaps are fixed is recorded by the
// upper and lower markers; a bar is forced when both agree on it.
type BarSequence struct {
	upper    marker
	lower    marker
	anchor   geom.Coord
	rotation float64
}

// NewBarSequence returns an unconstrained sequence anchored at the origin.
func NewBarSequence(rotation float64) BarSequence {
	return BarSequence{
		upper:    marker{value: 1},
		rotation: rotation,
	}
}

func (me *BarSequence) Rotation() float64  { return me.rotation }
func (me *BarSequence) Anchor() geom.Coord { return me.anchor }

// Axis is the unit vector along which bars are counted.
func (me *BarSequence) Axis() geom.Coord {
	return geom.Coord{X: math.Cos(me.rotation), Y: math.Sin(me.rotation)}
}

// SetZeroeth moves the anchor so bar 0 lies at the given signed distance from
// the origin along the axis.
func (me *BarSequence) SetZeroeth(distance float64) {
	me.anchor = me.Axis().Times(distance)
}

func truncateOpen(value float64) int64 {
	return int64(math.Floor(value))
}

func truncateClosed(value float64) int64 {
	temp := math.Floor(value)
	if temp == value {
		return int64(temp) - 1
	}
	return int64(temp)
}

func (me *BarSequence) upperPoint(bar int64) int64 {
	return truncateClosed(me.upper.at(bar))
}

func (me *BarSequence) lowerPoint(bar int64) int64 {
	return truncateOpen(me.lower.at(bar))
}

// Force fixes the gap pattern up to bar, choosing the longer or shorter
// reading. Forcing an already forced bar does nothing.
func (me *BarSequence) Force(bar int64, bound Bound) {
	longer := me.upperPoint(bar)
	shorter := me.lowerPoint(bar)
	if longer == shorter {
		return
	}

	if (bound == Longer && bar >= 0) || (bound == Shorter && bar < 0) {
		me.lower = marker{bar: bar, value: longer}
	} else {
		me.upper = marker{bar: bar, value: longer}
	}
}

func (me *BarSequence) IsForced(bar int64) bool {
	return me.upperPoint(bar) == me.lowerPoint(bar)
}

// BarDistance is the signed distance of bar from the anchor along the axis.
func (me *BarSequence) BarDistance(bar int64) float64 {
	y := me.upperPoint(bar)
	shorts := 2*bar - y
	longs := y - bar

	return Scale * (float64(shorts) + math.Phi*float64(longs))
}

// Bar returns the bar index nearest to a signed distance along the axis.
func (me *BarSequence) Bar(distance float64) int64 {
	shorts := distance / (Short + math.Phi*Long)
	longs := shorts * math.Phi

	sum := shorts + longs
	floor := math.Floor(sum)

	// Halves round up, towards positive infinity.
	if sum-floor >= 0.5 {
		return int64(floor) + 1
	}
	return int64(floor)
}

// joinDistance measures how far a combination of short and long gaps lands
// from a scaled distance.
func joinDistance(shorts, longs int64, distance float64) float64 {
	return math.Abs(distance - (float64(shorts) + math.Phi*float64(longs)))
}

// ForceNearest forces the bar closest to distance and reports whether that
// introduced a new constraint.
func (me *BarSequence) ForceNearest(distance float64) bool {
	scaled := distance / Scale

	shortsF := scaled / (2 + math.Phi)
	longsF := shortsF * math.Phi

	firstShort := int64(math.Floor(shortsF))
	firstLong := int64(math.Floor(longsF))

	bestShort, bestLong := 0, 0
	best := math.Inf(1)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			d := joinDistance(firstShort+int64(i), firstLong+int64(j), scaled)
			if d < best {
				best = d
				bestShort, bestLong = i, j
			}
		}
	}

	bar := firstShort + int64(bestShort) + firstLong + int64(bestLong)
	if me.IsForced(bar) {
		return false
	}

	if (bestLong == 1 && bar > -1) || (bestLong == 0 && bar < 0) {
		me.Force(bar, Longer)
	} else {
		me.Force(bar, Shorter)
	}
	return true
}

// Forcings reports IsForced for every bar in [from, to).
func (me *BarSequence) Forcings(from, to int64) []bool {
	r := make([]bool, 0, max(to-from, 0))
	for bar := from; bar < to; bar++ {
		r = append(r, me.IsForced(bar))
	}
	return r
}

// GuessBars reads the gap following each bar in [from, to) off the lower
// marker.
func (me *BarSequence) GuessBars(from, to int64) []Bound {
	r := make([]Bound, 0, max(to-from, 0))
	lastHigh := int64(0)
	for bar := from + 1; bar <= to; bar++ {
		shorter := me.lowerPoint(bar)
		if shorter-lastHigh == 1 {
			r = append(r, Shorter)
		} else {
			r = append(r, Longer)
		}
		lastHigh = shorter
	}
	return r
}

// ForcedBars returns the forced bars with indices in [first, last].
func (me *BarSequence) ForcedBars(first, last int64) []int64 {
	var r []int64
	for bar := first; bar <= last; bar++ {
		if me.IsForced(bar) {
			r = append(r, bar)
		}
	}
	return r
}
