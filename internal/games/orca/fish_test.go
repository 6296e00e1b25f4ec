package orca

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/orca-arcade/internal/core"
)

func TestFishRepositionStaysInArena(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f := NewFish(rng, testArena, 12)

	for i := 0; i < 1000; i++ {
		f.Reposition(rng, testArena)
		if !testArena.Contains(f.Center()) {
			t.Fatalf("fish out of bounds at (%d, %d)", f.X, f.Y)
		}
	}
	if f.Radius != 12 {
		t.Errorf("radius changed to %d", f.Radius)
	}
}

func TestFishRepositionUsesBothAxes(t *testing.T) {
	rng := &scriptedRand{floats: []float64{0}, ints: []int{123, 456}}
	f := Fish{Radius: 12}
	f.Reposition(rng, testArena)

	if f.X != 123 || f.Y != 456 {
		t.Errorf("position = (%d, %d), expected (123, 456)", f.X, f.Y)
	}
}

func TestFishCollectedBy(t *testing.T) {
	p := NewPlayer(testArena, 80, 80, 4) // center (400, 300), half width 40

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"on center", 400, 300, true},
		{"just inside", 451, 300, true},
		{"exactly touching", 452, 300, false}, // strict inequality
		{"far away", 10, 10, false},
		{"diagonal inside", 430, 330, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := Fish{X: tc.x, Y: tc.y, Radius: 12}
			if got := f.CollectedBy(p); got != tc.expected {
				t.Errorf("CollectedBy() = %v, expected %v (distance %f)",
					got, tc.expected, core.Distance(p.Center(), f.Center()))
			}
		})
	}
}
