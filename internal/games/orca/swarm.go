package orca

import (
	"math"

	"github.com/vovakirdan/orca-arcade/internal/core"
)

// MaxCoefficient is the step coefficient at tick 0.
const MaxCoefficient = 2.0

// Coefficient returns the exploration coefficient a(t) = 2 * (1 - t/T).
// The tick is clamped to [0, maxTick], so a stays 0 once t reaches T.
// A non-positive maxTick yields 0.
func Coefficient(tick, maxTick int) float64 {
	if maxTick <= 0 {
		return 0
	}
	t := core.Clamp(tick, 0, maxTick)
	return MaxCoefficient * (1 - float64(t)/float64(maxTick))
}

// Best returns the index of the pursuer closest to target.
// Ties go to the earliest pursuer; an empty swarm returns -1.
func Best(pursuers []Pursuer, target core.Vec) int {
	best := -1
	bestDist := 0.0
	for i := range pursuers {
		d := pursuers[i].DistanceTo(target)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// UpdateSwarm moves every pursuer one step of the predator rule.
//
// For each pursuer, in order, one uniform r in [0, 1) and one random sign s
// are drawn and shared by both axes:
//
//	D  = |r*best - p|
//	p' = best + s*a*D
//
// and p' is clamped to the arena. best refers to the leader itself rather
// than a copy, so pursuers after the leader see its updated position.
func UpdateSwarm(pursuers []Pursuer, target core.Vec, tick, maxTick int, arena Arena, rng Rand) {
	leader := Best(pursuers, target)
	if leader < 0 {
		return
	}
	a := Coefficient(tick, maxTick)

	for i := range pursuers {
		r := rng.Float64()
		sign := 1.0
		if rng.Float64() < 0.5 {
			sign = -1
		}

		best := pursuers[leader].Pos
		p := &pursuers[i]

		dx := math.Abs(r*best.X - p.Pos.X)
		dy := math.Abs(r*best.Y - p.Pos.Y)
		next := core.V(best.X+sign*a*dx, best.Y+sign*a*dy)

		p.Pos = arena.ClampPoint(next)
	}
}
