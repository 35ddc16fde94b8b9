package pentagrid

import (
	"strings"

	"penrose-tiling/pkg/errors"
)

// Preset names one of the seven vertex configurations a tiling can be grown
// from.
type Preset int

const (
	Ace Preset = iota
	Deuce
	Sun
	Star
	Jack
	Queen
	King
)

var presetNames = [...]string{"ace", "deuce", "sun", "star", "jack", "queen", "king"}

func (p Preset) String() string {
	if p < Ace || p > King {
		return "unknown"
	}
	return presetNames[p]
}

// Presets lists every configuration in declaration order.
func Presets() []Preset {
	return []Preset{Ace, Deuce, Sun, Star, Jack, Queen, King}
}

// ParsePreset resolves a configuration name, ignoring case.
func ParsePreset(name string) (Preset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range presetNames {
		if n == name {
			return Preset(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidPreset,
		"unknown configuration %q (must be one of %s)", name, strings.Join(presetNames[:], ", "))
}

// Plane builds a fresh plane in this configuration.
func (p Preset) Plane() *Plane {
	switch p {
	case Ace:
		return AcePlane()
	case Deuce:
		return DeucePlane()
	case Sun:
		return SunPlane()
	case Star:
		return StarPlane()
	case Jack:
		return JackPlane()
	case Queen:
		return QueenPlane()
	default:
		return KingPlane()
	}
}

// far is the anchor offset shared by the configurations whose zeroth bars sit
// behind the origin.
func far() float64 {
	return -(MinnickX + MinnickY + MinnickZ)
}

func AcePlane() *Plane {
	p := NewPlane()
	p.Sequence(0).SetZeroeth(MinnickA)
	p.Sequence(1).SetZeroeth(MinnickA)
	p.Sequence(2).SetZeroeth(far())
	p.Sequence(3).SetZeroeth(far())
	p.Sequence(4).SetZeroeth(MinnickA)
	return p
}

func DeucePlane() *Plane {
	p := NewPlane()
	p.Sequence(0).SetZeroeth(MinnickA)
	p.Sequence(1).SetZeroeth(far())
	p.Sequence(2).SetZeroeth(far())
	p.Sequence(3).SetZeroeth(far())
	p.Sequence(4).SetZeroeth(MinnickA)
	return p
}

func SunPlane() *Plane {
	p := NewPlane()
	for i := 0; i < N; i++ {
		p.Sequence(i).SetZeroeth(MinnickB)
	}
	return p
}

func StarPlane() *Plane {
	p := NewPlane()
	for i := 0; i < N; i++ {
		p.Sequence(i).SetZeroeth(far())
		p.Sequence(i).Force(1, Longer)
	}
	return p
}

func JackPlane() *Plane {
	p := NewPlane()
	p.Sequence(0).SetZeroeth(MinnickE)
	p.Sequence(0).Force(-1, Longer)
	p.Sequence(1).SetZeroeth(MinnickZ)
	p.Sequence(1).Force(-1, Longer)
	p.Sequence(2).SetZeroeth(MinnickB)
	p.Sequence(3).SetZeroeth(MinnickB)
	p.Sequence(4).SetZeroeth(MinnickZ)
	p.Sequence(4).Force(-1, Longer)
	return p
}

func QueenPlane() *Plane {
	p := NewPlane()
	p.Sequence(0).SetZeroeth(MinnickA)
	p.Sequence(1).SetZeroeth(-MinnickW)
	p.Sequence(1).Force(1, Shorter)
	p.Sequence(2).SetZeroeth(far())
	p.Sequence(2).Force(1, Longer)
	p.Sequence(3).SetZeroeth(far())
	p.Sequence(3).Force(1, Longer)
	p.Sequence(4).SetZeroeth(-MinnickW)
	p.Sequence(4).Force(1, Shorter)
	return p
}

func KingPlane() *Plane {
	p := NewPlane()
	p.Sequence(0).SetZeroeth(-MinnickW)
	p.Sequence(0).Force(1, Shorter)
	for i := 1; i < N; i++ {
		p.Sequence(i).SetZeroeth(far())
		p.Sequence(i).Force(1, Longer)
	}
	return p
}
