package config

import (
	_ "embed"
)

//go:embed defaults/orca.yaml
var defaultOrcaYAML []byte

// DefaultOrcaConfig returns the default Orca Chase configuration.
func DefaultOrcaConfig() OrcaConfig {
	return OrcaConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:  80,
			Height: 80,
			Speed:  4,
			Sprite: "assets/orca.png",
		},
		Pursuers: PursuerConfig{
			Count:  5,
			Radius: 10,
			Speed:  2,
		},
		Fish: FishConfig{
			Radius: 12,
		},
		Swarm: SwarmConfig{
			MaxIterations: 500,
		},
		Input: InputConfig{
			HoldTicks: 20, // ~1/3s at 60fps, bridges the terminal's key-repeat delay
		},
		Display: DisplayConfig{
			Background: "white",
			Text:       "black",
			Player:     "blue",
			Pursuer:    "red",
			Fish:       "green",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultOrcaYAML
}
