// Package config provides YAML-based trainer configuration loading,
// difficulty presets and TOML mouse profiles.
package config

// TrainerConfig contains all configuration for the aim trainer.
type TrainerConfig struct {
	Field   FieldConfig                       `yaml:"field"`
	Presets map[DifficultyPreset]PresetConfig `yaml:"presets"`
}

// FieldConfig maps terminal cells to field pixels.
type FieldConfig struct {
	CellWidth  int `yaml:"cell_width"`  // pixels per column
	CellHeight int `yaml:"cell_height"` // pixels per row
}

// PresetConfig defines the session settings of one difficulty preset.
type PresetConfig struct {
	TargetSize  float64 `yaml:"target_size"`
	TargetSpeed float64 `yaml:"target_speed"`
	TargetCount int     `yaml:"target_count"`
	Duration    int     `yaml:"duration"` // seconds
}

// fillDefaults copies hardcoded values into anything the loaded file left out.
func (c *TrainerConfig) fillDefaults() {
	def := DefaultTrainerConfig()
	if c.Field.CellWidth <= 0 {
		c.Field.CellWidth = def.Field.CellWidth
	}
	if c.Field.CellHeight <= 0 {
		c.Field.CellHeight = def.Field.CellHeight
	}
	if c.Presets == nil {
		c.Presets = make(map[DifficultyPreset]PresetConfig, len(def.Presets))
	}
	for name, p := range def.Presets {
		if _, ok := c.Presets[name]; !ok {
			c.Presets[name] = p
		}
	}
}
