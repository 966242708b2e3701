package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigDir is the per-user directory under the home directory.
const ConfigDir = ".aimtrainer"

// LoadTrainer loads the trainer configuration.
// Search order: customPath -> ~/.aimtrainer/configs/trainer.yaml -> ./configs/trainer.yaml -> embedded default
func LoadTrainer(customPath string) (TrainerConfig, error) {
	var cfg TrainerConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		cfg.fillDefaults()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("trainer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.fillDefaults()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "trainer.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.fillDefaults()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg = TrainerConfig{}
	if err := yaml.Unmarshal(defaultTrainerYAML, &cfg); err != nil {
		return DefaultTrainerConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.fillDefaults()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDir, "configs", filename)
}

// DefaultDBPath returns the default preferences database location.
func DefaultDBPath() string {
	return filepath.Join("~", ConfigDir, "prefs.db")
}
