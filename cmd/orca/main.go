// orca is a terminal arcade game: steer the orca, eat the fish, and stay
// clear of the hunting swarm.
//
// Usage:
//
//	orca [play]             - Play the game (default)
//	orca simulate           - Run the simulation headless and print the final state
//	orca config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load configuration from a YAML file
//	--log-file <path>   - Write logs to a file
//	--debug             - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/orca-arcade/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "orca",
	Short: "Orca Chase - eat fish, dodge the swarm",
	Long: `Orca Chase is a terminal arcade game. Steer the orca to collect fish
while a swarm of pursuers closes in around you.

Available commands:
  play      - Play the game (default)
  simulate  - Run the simulation without a terminal UI
  config    - Print the effective configuration

Examples:
  orca
  orca play --seed 42
  orca simulate --ticks 500 --hold right
  orca config --config ./my-orca.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the application logger. The returned closer releases
// the log file, if any.
func newLogger() (*log.Logger, io.Closer, error) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "orca",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// loadConfig loads the game configuration and logs where it came from.
func loadConfig(logger *log.Logger) (config.OrcaConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.OrcaConfig{}, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}
