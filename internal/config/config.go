// Package config provides YAML-based game configuration loading for the
// orca arcade.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/orca-arcade/internal/core"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// OrcaConfig contains all configuration for the Orca Chase game.
type OrcaConfig struct {
	Arena    ArenaConfig   `yaml:"arena"`
	Player   PlayerConfig  `yaml:"player"`
	Pursuers PursuerConfig `yaml:"pursuers"`
	Fish     FishConfig    `yaml:"fish"`
	Swarm    SwarmConfig   `yaml:"swarm"`
	Input    InputConfig   `yaml:"input"`
	Display  DisplayConfig `yaml:"display"`
}

// ArenaConfig defines the playfield size in pixels.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player box and sprite.
type PlayerConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Speed  int    `yaml:"speed"`  // Pixels per tick per active direction
	Sprite string `yaml:"sprite"` // Image asset path, scaled to Width x Height
}

// PursuerConfig defines the swarm members.
type PursuerConfig struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// FishConfig defines the collectible.
type FishConfig struct {
	Radius int `yaml:"radius"`
}

// SwarmConfig defines the swarm update rule parameters.
type SwarmConfig struct {
	MaxIterations int `yaml:"max_iterations"` // Tick at which the step coefficient reaches 0
}

// InputConfig defines terminal input handling.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a direction stays held after its last press
}

// DisplayConfig names the palette colors used for rendering.
type DisplayConfig struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Player     string `yaml:"player"` // Used when no sprite is loaded
	Pursuer    string `yaml:"pursuer"`
	Fish       string `yaml:"fish"`
}

// Palette is the resolved form of DisplayConfig.
type Palette struct {
	Background core.Color
	Text       core.Color
	Player     core.Color
	Pursuer    core.Color
	Fish       core.Color
}

// Palette resolves the configured color names.
func (d DisplayConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		key  string
		name string
		dst  *core.Color
	}{
		{"display.background", d.Background, &p.Background},
		{"display.text", d.Text, &p.Text},
		{"display.player", d.Player, &p.Player},
		{"display.pursuer", d.Pursuer, &p.Pursuer},
		{"display.fish", d.Fish, &p.Fish},
	}
	for _, f := range fields {
		c, ok := core.ParseColor(f.name)
		if !ok {
			return p, fmt.Errorf("%w: %s: unknown color %q", ErrInvalid, f.key, f.name)
		}
		*f.dst = c
	}
	return p, nil
}

// Validate checks that the configuration describes a playable game.
func (c OrcaConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Arena.Width > 0, "arena.width must be positive, got %d", c.Arena.Width)
	check(c.Arena.Height > 0, "arena.height must be positive, got %d", c.Arena.Height)
	check(c.Player.Width > 0 && c.Player.Width <= c.Arena.Width,
		"player.width must be in (0, arena.width], got %d", c.Player.Width)
	check(c.Player.Height > 0 && c.Player.Height <= c.Arena.Height,
		"player.height must be in (0, arena.height], got %d", c.Player.Height)
	check(c.Player.Speed >= 0, "player.speed must not be negative, got %d", c.Player.Speed)
	check(c.Pursuers.Count >= 0, "pursuers.count must not be negative, got %d", c.Pursuers.Count)
	check(c.Pursuers.Radius >= 0, "pursuers.radius must not be negative, got %g", c.Pursuers.Radius)
	check(c.Pursuers.Speed >= 0, "pursuers.speed must not be negative, got %g", c.Pursuers.Speed)
	check(c.Fish.Radius >= 0, "fish.radius must not be negative, got %d", c.Fish.Radius)
	check(c.Swarm.MaxIterations > 0, "swarm.max_iterations must be positive, got %d", c.Swarm.MaxIterations)
	check(c.Input.HoldTicks > 0, "input.hold_ticks must be positive, got %d", c.Input.HoldTicks)

	if _, err := c.Display.Palette(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
