package orca

// Point is a plain coordinate pair for snapshots.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Snapshot captures the complete observable state of a game.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        int     `yaml:"tick"`
	Score       int     `yaml:"score"`
	Paused      bool    `yaml:"paused"`
	Coefficient float64 `yaml:"coefficient"`
	Player      Point   `yaml:"player"` // Top-left of the player box
	Fish        Point   `yaml:"fish"`
	Pursuers    []Point `yaml:"pursuers"`
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        g.tick,
		Score:       g.player.Score,
		Paused:      g.paused,
		Coefficient: g.Coefficient(),
		Player:      Point{X: float64(g.player.Box.X), Y: float64(g.player.Box.Y)},
		Fish:        Point{X: float64(g.fish.X), Y: float64(g.fish.Y)},
		Pursuers:    make([]Point, len(g.pursuers)),
	}
	for i, p := range g.pursuers {
		snap.Pursuers[i] = Point{X: p.Pos.X, Y: p.Pos.Y}
	}
	return snap
}
