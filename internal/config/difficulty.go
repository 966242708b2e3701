package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/aimtrainer/internal/trainer"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyCustom}

// ParsePreset converts a user-supplied name into a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium, hard or custom)", name)
}

// Settings returns the session settings for a preset, clamped into range.
// The custom preset starts from its configured values, or the trainer
// defaults when the file defines none.
func (c TrainerConfig) Settings(preset DifficultyPreset) (trainer.Settings, error) {
	p, ok := c.Presets[preset]
	if !ok {
		if preset != DifficultyCustom {
			return trainer.Settings{}, fmt.Errorf("config: preset %q not defined", preset)
		}
		return trainer.DefaultSettings(), nil
	}
	return trainer.Settings{
		TargetSize:  p.TargetSize,
		TargetSpeed: p.TargetSpeed,
		TargetCount: p.TargetCount,
		Duration:    p.Duration,
	}.Clamp(), nil
}
