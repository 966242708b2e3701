package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/aimtrainer/internal/recommend"
	"github.com/vovakirdan/aimtrainer/internal/trainer"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// isolate points HOME and the working directory at an empty temp dir so
// the search order only sees files the test creates.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := LoadTrainer("")
	if err != nil {
		t.Fatalf("LoadTrainer() error = %v", err)
	}

	def := DefaultTrainerConfig()
	if cfg.Field != def.Field {
		t.Errorf("Field = %+v, expected %+v", cfg.Field, def.Field)
	}
	for _, name := range Presets {
		if cfg.Presets[name] != def.Presets[name] {
			t.Errorf("preset %s = %+v, expected %+v", name, cfg.Presets[name], def.Presets[name])
		}
	}
}

func TestLoadTrainerCustomPath(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "custom.yaml", `
field:
  cell_width: 10
presets:
  hard:
    target_size: 15
    target_speed: 7
    target_count: 20
    duration: 30
`)

	cfg, err := LoadTrainer(path)
	if err != nil {
		t.Fatalf("LoadTrainer() error = %v", err)
	}
	if cfg.Field.CellWidth != 10 || cfg.Field.CellHeight != 16 {
		t.Errorf("Field = %+v, expected width 10 and default height 16", cfg.Field)
	}

	hard, err := cfg.Settings(DifficultyHard)
	if err != nil {
		t.Fatalf("Settings(hard) error = %v", err)
	}
	want := trainer.Settings{TargetSize: 15, TargetSpeed: 7, TargetCount: 20, Duration: 30}
	if hard != want {
		t.Errorf("Settings(hard) = %+v, expected %+v", hard, want)
	}

	// Presets missing from the file come from the defaults.
	if _, ok := cfg.Presets[DifficultyEasy]; !ok {
		t.Error("easy preset should be filled from defaults")
	}
}

func TestLoadTrainerCustomPathErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := LoadTrainer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := writeFile(t, dir, "bad.yaml", "presets: [not, a, map")
	if _, err := LoadTrainer(bad); err == nil {
		t.Error("malformed custom config should be an error")
	}
}

func TestLoadTrainerSearchOrder(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "configs/trainer.yaml", "field:\n  cell_width: 6\n")

	cfg, err := LoadTrainer("")
	if err != nil {
		t.Fatalf("LoadTrainer() error = %v", err)
	}
	if cfg.Field.CellWidth != 6 {
		t.Errorf("local config: CellWidth = %d, expected 6", cfg.Field.CellWidth)
	}

	writeFile(t, dir, filepath.Join(ConfigDir, "configs", "trainer.yaml"), "field:\n  cell_width: 12\n")
	cfg, err = LoadTrainer("")
	if err != nil {
		t.Fatalf("LoadTrainer() error = %v", err)
	}
	if cfg.Field.CellWidth != 12 {
		t.Errorf("user config should win over local: CellWidth = %d, expected 12", cfg.Field.CellWidth)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input   string
		want    DifficultyPreset
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"MEDIUM", DifficultyMedium, false},
		{" hard ", DifficultyHard, false},
		{"custom", DifficultyCustom, false},
		{"insane", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.input, got, tc.want)
		}
	}
}

func TestPresetSettings(t *testing.T) {
	cfg := DefaultTrainerConfig()

	tests := []struct {
		preset DifficultyPreset
		want   trainer.Settings
	}{
		{DifficultyEasy, trainer.Settings{TargetSize: 50, TargetSpeed: 2, TargetCount: 5, Duration: 60}},
		{DifficultyMedium, trainer.Settings{TargetSize: 35, TargetSpeed: 3.5, TargetCount: 10, Duration: 60}},
		{DifficultyHard, trainer.Settings{TargetSize: 20, TargetSpeed: 5, TargetCount: 15, Duration: 60}},
	}

	for _, tc := range tests {
		got, err := cfg.Settings(tc.preset)
		if err != nil {
			t.Fatalf("Settings(%s) error = %v", tc.preset, err)
		}
		if got != tc.want {
			t.Errorf("Settings(%s) = %+v, expected %+v", tc.preset, got, tc.want)
		}
	}

	// Out-of-range values in a file are clamped.
	cfg.Presets[DifficultyHard] = PresetConfig{TargetSize: 1, TargetSpeed: 50, TargetCount: 0, Duration: 1000}
	got, _ := cfg.Settings(DifficultyHard)
	want := trainer.Settings{TargetSize: 10, TargetSpeed: 10, TargetCount: 1, Duration: 300}
	if got != want {
		t.Errorf("clamped Settings(hard) = %+v, expected %+v", got, want)
	}

	delete(cfg.Presets, DifficultyCustom)
	if got, err := cfg.Settings(DifficultyCustom); err != nil || got != trainer.DefaultSettings() {
		t.Errorf("undefined custom preset = %+v, %v; expected trainer defaults", got, err)
	}

	delete(cfg.Presets, DifficultyEasy)
	if _, err := cfg.Settings(DifficultyEasy); err == nil {
		t.Error("undefined easy preset should be an error")
	}
}

func TestLoadMouseProfile(t *testing.T) {
	dir := t.TempDir()

	p, err := LoadMouseProfile(filepath.Join(dir, "absent.toml"))
	if err != nil {
		t.Fatalf("missing profile should not be an error, got %v", err)
	}
	if got := p.Apply(recommend.DefaultMouseSettings()); got != recommend.DefaultMouseSettings() {
		t.Errorf("empty profile changed settings: %+v", got)
	}

	path := writeFile(t, dir, "mouse.toml", `
[mouse]
name = "tournament"
model = "Zowie EC2"
dpi = 1600
sensitivity = 85
acceleration = true
`)
	p, err = LoadMouseProfile(path)
	if err != nil {
		t.Fatalf("LoadMouseProfile() error = %v", err)
	}

	got := p.Apply(recommend.DefaultMouseSettings())
	if got.Profile != "tournament" || got.Model != "Zowie EC2" {
		t.Errorf("profile/model = %q/%q", got.Profile, got.Model)
	}
	if got.DPI != 1600 || got.Sensitivity != 85 || !got.Acceleration {
		t.Errorf("overlay = %+v, expected dpi 1600, sensitivity 85, acceleration on", got)
	}
	if got.PollingRate != 1000 {
		t.Errorf("PollingRate = %d, expected 1000 from the known model", got.PollingRate)
	}
	if got.Smoothing != 0 {
		t.Errorf("Smoothing = %d, expected default 0", got.Smoothing)
	}
}

func TestLoadMouseProfileErrors(t *testing.T) {
	if _, err := LoadMouseProfile(""); err == nil {
		t.Error("empty path should be an error")
	}

	path := writeFile(t, t.TempDir(), "broken.toml", "[mouse\ndpi = ")
	if _, err := LoadMouseProfile(path); err == nil {
		t.Error("malformed TOML should be an error")
	}
}
