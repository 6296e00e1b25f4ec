package orca

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/orca-arcade/internal/config"
	"github.com/vovakirdan/orca-arcade/internal/core"
	"github.com/vovakirdan/orca-arcade/internal/sprite"
)

// Game is the simulation context: it owns the arena, every entity, the tick
// counter and the RNG. All mutation happens through Reset and Step.
type Game struct {
	cfg     config.OrcaConfig
	palette config.Palette
	sprite  *sprite.Sprite // nil draws the player as a solid box

	arena    Arena
	player   Player
	pursuers []Pursuer
	fish     Fish

	tick    int
	maxTick int
	paused  bool
	rng     *rand.Rand
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithSprite draws the player with the given image.
func WithSprite(s *sprite.Sprite) Option {
	return func(g *Game) {
		g.sprite = s
	}
}

// New creates a game from a configuration. Reset must be called before Step.
func New(cfg config.OrcaConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Display.Palette()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		palette: palette,
		arena:   Arena{Width: cfg.Arena.Width, Height: cfg.Arena.Height},
		maxTick: cfg.Swarm.MaxIterations,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "orca"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Orca Interaction Game"
}

// Reset initializes or restarts the game.
// Entities are spawned in a fixed order so a seed fully determines a run:
// player (no draws), then each pursuer, then the fish.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.paused = false

	g.player = NewPlayer(g.arena, g.cfg.Player.Width, g.cfg.Player.Height, g.cfg.Player.Speed)

	g.pursuers = make([]Pursuer, g.cfg.Pursuers.Count)
	for i := range g.pursuers {
		g.pursuers[i] = NewPursuer(g.rng, g.arena, g.cfg.Pursuers.Radius, g.cfg.Pursuers.Speed)
	}

	g.fish = NewFish(g.rng, g.arena, g.cfg.Fish.Radius)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.player.Move(in, g.arena)
	UpdateSwarm(g.pursuers, g.player.Center(), g.tick, g.maxTick, g.arena, g.rng)

	// Check for collecting fish
	collected := g.fish.CollectedBy(g.player)
	if collected {
		g.player.Score++
		g.fish.Reposition(g.rng, g.arena)
	}

	g.tick = min(g.tick+1, g.maxTick)

	return core.StepResult{State: g.State(), Collected: collected}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.player.Score,
		Tick:   g.tick,
		Paused: g.paused,
	}
}

// Coefficient returns the swarm step coefficient the next tick will use.
func (g *Game) Coefficient() float64 {
	return Coefficient(g.tick, g.maxTick)
}

// Arena returns the playfield dimensions.
func (g *Game) Arena() Arena {
	return g.arena
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Pursuers returns a copy of the swarm.
func (g *Game) Pursuers() []Pursuer {
	out := make([]Pursuer, len(g.pursuers))
	copy(out, g.pursuers)
	return out
}

// Fish returns a copy of the collectible.
func (g *Game) Fish() Fish {
	return g.fish
}

// scoreText is the HUD line drawn at the top-left of the arena.
func (g *Game) scoreText() string {
	return fmt.Sprintf("Score: %d", g.player.Score)
}
