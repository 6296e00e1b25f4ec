package orca

import (
	"testing"

	"github.com/vovakirdan/orca-arcade/internal/config"
	"github.com/vovakirdan/orca-arcade/internal/core"
)

// scriptedRand replays fixed draws, cycling when exhausted.
type scriptedRand struct {
	floats []float64
	ints   []int // Intn returns ints[i] % n; negative means n-1
	fi, ii int
}

func (s *scriptedRand) Float64() float64 {
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptedRand) Intn(n int) int {
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	if v < 0 {
		return n - 1
	}
	return v % n
}

var testArena = Arena{Width: 800, Height: 600}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := New(config.DefaultOrcaConfig())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func assertInArena(t *testing.T, g *Game) {
	t.Helper()
	a := g.Arena()
	for i, p := range g.pursuers {
		if !a.Contains(p.Pos) {
			t.Fatalf("tick %d: pursuer %d out of bounds at %+v", g.tick, i, p.Pos)
		}
	}
	if !a.Contains(g.fish.Center()) {
		t.Fatalf("tick %d: fish out of bounds at (%d, %d)", g.tick, g.fish.X, g.fish.Y)
	}
	box := g.player.Box
	if box.X < 0 || box.Y < 0 || box.Right() > a.Width || box.Bottom() > a.Height {
		t.Fatalf("tick %d: player box out of bounds: %+v", g.tick, box)
	}
}
