package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a loaded configuration came from.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the Orca Chase configuration and reports where it came from.
// Search order: customPath -> ~/.orca/configs/orca.yaml -> ./configs/orca.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (OrcaConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return OrcaConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return OrcaConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{userConfigPath("orca.yaml"), filepath.Join("configs", "orca.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, path, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultOrcaYAML)
	if err != nil {
		return DefaultOrcaConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (OrcaConfig, error) {
	cfg := DefaultOrcaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return OrcaConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return OrcaConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg OrcaConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".orca", "configs", filename)
}
