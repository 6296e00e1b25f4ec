package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/orca-arcade/internal/core"
	"github.com/vovakirdan/orca-arcade/internal/games/orca"
)

var (
	flagTicks int
	flagHold  []string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless",
	Long: `Run the game loop without a terminal UI, holding the given directions
on every tick, and print the final state as YAML.

Examples:
  orca simulate --ticks 10 --hold right
  orca simulate --ticks 500 --hold up,left --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 500, "Number of ticks to simulate")
	simulateCmd.Flags().StringSliceVar(&flagHold, "hold", nil, "Directions held on every tick: up, down, left, right")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	if flagTicks < 0 {
		return fmt.Errorf("--ticks must not be negative, got %d", flagTicks)
	}

	frame, err := parseHold(flagHold)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	game, err := orca.New(cfg)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: seed})
	logger.Debug("simulating", "ticks", flagTicks, "seed", seed, "hold", flagHold)

	for range flagTicks {
		result := game.Step(frame)
		if result.Collected {
			logger.Debug("fish collected", "score", result.State.Score, "tick", result.State.Tick)
		}
	}

	out, err := yaml.Marshal(game.Snapshot())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// parseHold converts direction names to an input frame.
func parseHold(names []string) (core.InputFrame, error) {
	frame := core.NewInputFrame()
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "up":
			frame.Set(core.ActionUp)
		case "down":
			frame.Set(core.ActionDown)
		case "left":
			frame.Set(core.ActionLeft)
		case "right":
			frame.Set(core.ActionRight)
		case "":
		default:
			return frame, fmt.Errorf("unknown direction %q (want up, down, left, right)", name)
		}
	}
	return frame, nil
}
