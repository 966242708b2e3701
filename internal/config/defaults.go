package config

import (
	_ "embed"
)

//go:embed defaults/trainer.yaml
var defaultTrainerYAML []byte

// DefaultTrainerConfig returns the default trainer configuration.
func DefaultTrainerConfig() TrainerConfig {
	return TrainerConfig{
		Field: FieldConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Presets: map[DifficultyPreset]PresetConfig{
			DifficultyEasy:   {TargetSize: 50, TargetSpeed: 2, TargetCount: 5, Duration: 60},
			DifficultyMedium: {TargetSize: 35, TargetSpeed: 3.5, TargetCount: 10, Duration: 60},
			DifficultyHard:   {TargetSize: 20, TargetSpeed: 5, TargetCount: 15, Duration: 60},
			DifficultyCustom: {TargetSize: 35, TargetSpeed: 3.5, TargetCount: 5, Duration: 60},
		},
	}
}

// GetDefaultYAML returns the embedded default trainer YAML.
func GetDefaultYAML() []byte {
	return defaultTrainerYAML
}
