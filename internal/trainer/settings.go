package trainer

import "github.com/vovakirdan/aimtrainer/internal/core"

// Accepted ranges for session settings.
const (
	MinTargetSize  = 10.0
	MaxTargetSize  = 100.0
	MinTargetSpeed = 1.0
	MaxTargetSpeed = 10.0
	MinTargetCount = 1
	MaxTargetCount = 20
	MinDuration    = 10
	MaxDuration    = 300
)

// Settings configures a training session. Size is in field pixels, speed in
// pixels per frame and duration in seconds.
type Settings struct {
	TargetSize  float64
	TargetSpeed float64
	TargetCount int
	Duration    int
}

// DefaultSettings returns the medium difficulty with five targets for one minute.
func DefaultSettings() Settings {
	return Settings{
		TargetSize:  35,
		TargetSpeed: 3.5,
		TargetCount: 5,
		Duration:    60,
	}
}

// Clamp returns a copy of s with every field forced into its accepted range.
func (s Settings) Clamp() Settings {
	return Settings{
		TargetSize:  core.Clamp(s.TargetSize, MinTargetSize, MaxTargetSize),
		TargetSpeed: core.Clamp(s.TargetSpeed, MinTargetSpeed, MaxTargetSpeed),
		TargetCount: core.Clamp(s.TargetCount, MinTargetCount, MaxTargetCount),
		Duration:    core.Clamp(s.Duration, MinDuration, MaxDuration),
	}
}
