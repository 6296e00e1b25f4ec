package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/orca-arcade/internal/audio"
	"github.com/vovakirdan/orca-arcade/internal/core"
	"github.com/vovakirdan/orca-arcade/internal/games/orca"
	"github.com/vovakirdan/orca-arcade/internal/platform/tui"
	"github.com/vovakirdan/orca-arcade/internal/sprite"
)

const soundVolume = 0.5

var (
	flagSprite string
	flagSound  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Orca Chase.

Controls:
  Arrows/WASD  - Swim (keys stay held briefly after each press)
  Space        - Stop
  P/Esc        - Pause
  Ctrl+S       - Save a screenshot to ~/.orca/screenshots
  Q/Ctrl+C     - Quit

Examples:
  orca play
  orca play --seed 42 --fps 30
  orca play --sprite ./whale.png --sound
  orca play --log-file orca.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command carries
// them too, since play is its default action.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSprite, "sprite", "", "Player image (overrides player.sprite in config)")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play a chime when a fish is collected")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	spritePath := cfg.Player.Sprite
	if flagSprite != "" {
		spritePath = flagSprite
	}
	spr, err := sprite.Load(spritePath, cfg.Player.Width, cfg.Player.Height)
	if err != nil {
		return fmt.Errorf("load player sprite: %w", err)
	}

	game, err := orca.New(cfg, orca.WithSprite(spr))
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	opts := tui.Options{
		HoldTicks: cfg.Input.HoldTicks,
		Logger:    logger,
	}

	if flagSound {
		sm := audio.NewSoundManager(soundVolume)
		if soundErr := sm.Initialize(); soundErr != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", soundErr)
		} else {
			defer sm.Cleanup()
			opts.Sound = sm
		}
	}

	logger.Info("starting", "sprite", spritePath, "seed", seed, "fps", runtime.TickRate)

	// The terminal belongs to Bubble Tea while the game runs
	if flagLogFile == "" {
		logger.SetOutput(io.Discard)
	}

	state, runErr := tui.Run(game, runtime, opts)

	if flagLogFile == "" {
		logger.SetOutput(os.Stderr)
	}

	if runErr != nil {
		return fmt.Errorf("run game: %w", runErr)
	}

	logger.Info("game over", "score", state.Score, "tick", state.Tick)
	return nil
}
