package orca

import (
	"github.com/vovakirdan/orca-arcade/internal/core"
)

// Player is the avatar steered by the user.
type Player struct {
	Box   core.Rect // Bounding box in arena pixels
	Speed int       // Pixels per tick per active direction
	Score int
}

// NewPlayer creates a player centered in the arena.
func NewPlayer(arena Arena, w, h, speed int) Player {
	return Player{
		Box:   core.NewRect(arena.Width/2-w/2, arena.Height/2-h/2, w, h),
		Speed: speed,
	}
}

// Move applies the held directions and keeps the box inside the arena.
// Directions add up independently, so diagonals cover sqrt(2) times the
// distance of a straight move.
func (p *Player) Move(in core.InputFrame, arena Arena) {
	if in.Has(core.ActionLeft) {
		p.Box.X -= p.Speed
	}
	if in.Has(core.ActionRight) {
		p.Box.X += p.Speed
	}
	if in.Has(core.ActionUp) {
		p.Box.Y -= p.Speed
	}
	if in.Has(core.ActionDown) {
		p.Box.Y += p.Speed
	}

	// Prevent the player from moving out of bounds
	p.Box = arena.ClampBox(p.Box)
}

// Center returns the center of the player's box.
func (p Player) Center() core.Vec {
	return p.Box.CenterVec()
}

// HalfWidth is the player's effective collection radius.
func (p Player) HalfWidth() float64 {
	return float64(p.Box.W) / 2
}
