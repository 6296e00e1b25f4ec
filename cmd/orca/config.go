package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orca-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The file is searched in this order:
  --config <path>
  ~/.orca/configs/orca.yaml
  ./configs/orca.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "# source: %s\n", source)
	_, err = w.Write(out)
	return err
}
