package orca

import (
	"github.com/vovakirdan/orca-arcade/internal/core"
)

// Fish is the collectible. It only moves when picked up.
type Fish struct {
	X, Y   int
	Radius int
}

// NewFish places a fish at a random integer point in the arena.
func NewFish(rng Rand, arena Arena, radius int) Fish {
	f := Fish{Radius: radius}
	f.Reposition(rng, arena)
	return f
}

// Reposition moves the fish to a new uniformly random point.
// The new point may coincide with the old one by chance.
func (f *Fish) Reposition(rng Rand, arena Arena) {
	f.X, f.Y = arena.RandomPoint(rng)
}

// Center returns the fish position as a Vec.
func (f Fish) Center() core.Vec {
	return core.V(float64(f.X), float64(f.Y))
}

// CollectedBy reports whether the player's collection circle overlaps the fish.
func (f Fish) CollectedBy(p Player) bool {
	return core.Distance(p.Center(), f.Center()) < p.HalfWidth()+float64(f.Radius)
}
