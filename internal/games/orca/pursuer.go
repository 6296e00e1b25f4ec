package orca

import (
	"github.com/vovakirdan/orca-arcade/internal/core"
)

// Pursuer is one member of the hunting swarm.
type Pursuer struct {
	Pos    core.Vec
	Radius float64
	Speed  float64
}

// NewPursuer places a pursuer at a random integer point in the arena.
func NewPursuer(rng Rand, arena Arena, radius, speed float64) Pursuer {
	x, y := arena.RandomPoint(rng)
	return Pursuer{
		Pos:    core.V(float64(x), float64(y)),
		Radius: radius,
		Speed:  speed,
	}
}

// MoveToward steps Speed pixels along the straight line to target.
// A pursuer already on the target stays put.
func (p *Pursuer) MoveToward(target core.Vec) {
	dir, ok := core.Direction(p.Pos, target)
	if !ok {
		return
	}
	p.Pos = p.Pos.Add(dir.Scale(p.Speed))
}

// DistanceTo returns the distance from the pursuer to a point.
func (p Pursuer) DistanceTo(pt core.Vec) float64 {
	return core.Distance(p.Pos, pt)
}
