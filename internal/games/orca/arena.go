// Package orca implements Orca Chase: the player collects fish while a swarm
// of pursuers closes in using a decaying predator-swarm update rule.
package orca

import (
	"github.com/vovakirdan/orca-arcade/internal/core"
)

// Rand is the subset of *rand.Rand the simulation draws from.
// Tests substitute scripted sources to pin down every draw.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Arena is the fixed-size playfield in pixel coordinates.
// Every entity position stays within [0, Width] x [0, Height].
type Arena struct {
	Width  int
	Height int
}

// ClampPoint pulls a point back inside the arena.
func (a Arena) ClampPoint(p core.Vec) core.Vec {
	return core.Vec{
		X: core.ClampF(p.X, 0, float64(a.Width)),
		Y: core.ClampF(p.Y, 0, float64(a.Height)),
	}
}

// ClampBox moves a box so that it lies entirely within the arena.
func (a Arena) ClampBox(r core.Rect) core.Rect {
	r.X = core.Clamp(r.X, 0, a.Width-r.W)
	r.Y = core.Clamp(r.Y, 0, a.Height-r.H)
	return r
}

// Contains reports whether a point lies within the arena, edges included.
func (a Arena) Contains(p core.Vec) bool {
	return p.X >= 0 && p.X <= float64(a.Width) && p.Y >= 0 && p.Y <= float64(a.Height)
}

// RandomPoint returns a uniformly random integer point, both bounds inclusive.
func (a Arena) RandomPoint(rng Rand) (int, int) {
	x := rng.Intn(a.Width + 1)
	y := rng.Intn(a.Height + 1)
	return x, y
}
