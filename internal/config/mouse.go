package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/vovakirdan/aimtrainer/internal/recommend"
)

// ProfileFile represents a TOML mouse profile.
//
//	[mouse]
//	model = "Zowie EC2"
//	dpi = 800
//	sensitivity = 45
//	polling-rate = 1000
//	acceleration = false
type ProfileFile struct {
	Mouse MouseProfile `toml:"mouse"`
}

// MouseProfile maps mouse settings. Unset keys keep their defaults.
type MouseProfile struct {
	Name         *string `toml:"name"`
	Model        *string `toml:"model"`
	DPI          *int    `toml:"dpi"`
	Sensitivity  *int    `toml:"sensitivity"`
	PollingRate  *int    `toml:"polling-rate"`
	Acceleration *bool   `toml:"acceleration"`
	Smoothing    *int    `toml:"smoothing"`
}

// DefaultMouseProfilePath returns ~/.aimtrainer/mouse.toml, or empty if home is unavailable.
func DefaultMouseProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDir, "mouse.toml")
}

// LoadMouseProfile reads a TOML mouse profile from the given path. Missing file is not an error.
func LoadMouseProfile(path string) (ProfileFile, error) {
	if path == "" {
		return ProfileFile{}, fmt.Errorf("config: mouse profile path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ProfileFile{}, nil
		}
		return ProfileFile{}, fmt.Errorf("config: stat mouse profile: %w", err)
	}
	var p ProfileFile
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return ProfileFile{}, fmt.Errorf("config: decode mouse profile: %w", err)
	}
	return p, nil
}

// Apply overlays the keys set in the profile onto s.
// A known model fills the polling rate unless the profile sets it.
func (p ProfileFile) Apply(s recommend.MouseSettings) recommend.MouseSettings {
	m := p.Mouse
	if m.Name != nil {
		s.Profile = *m.Name
	}
	if m.Model != nil {
		s.Model = *m.Model
		if model, ok := recommend.LookupModel(*m.Model); ok {
			s.PollingRate = model.PollingRate
		}
	}
	if m.DPI != nil {
		s.DPI = *m.DPI
	}
	if m.Sensitivity != nil {
		s.Sensitivity = *m.Sensitivity
	}
	if m.PollingRate != nil {
		s.PollingRate = *m.PollingRate
	}
	if m.Acceleration != nil {
		s.Acceleration = *m.Acceleration
	}
	if m.Smoothing != nil {
		s.Smoothing = *m.Smoothing
	}
	return s
}
