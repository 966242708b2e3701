package recommend

import (
	"sort"
	"strings"
)

// MouseSettings describes the user's pointer configuration.
type MouseSettings struct {
	Profile      string
	Model        string
	Sensitivity  int // 1-100
	DPI          int
	PollingRate  int // Hz
	Acceleration bool
	Smoothing    int // 0-100
}

// DefaultMouseSettings returns a common office-mouse setup.
func DefaultMouseSettings() MouseSettings {
	return MouseSettings{
		Profile:     "default",
		Sensitivity: 50,
		DPI:         800,
		PollingRate: 1000,
	}
}

// EffectiveSensitivity returns DPI scaled by the in-game sensitivity percentage.
func EffectiveSensitivity(dpi, sensitivity int) float64 {
	return float64(dpi) * float64(sensitivity) / 100
}

// MouseModel holds the published specification of a mouse.
type MouseModel struct {
	Name         string
	MaxDPI       int
	PollingRate  int
	Buttons      int
	Wireless     bool
	Manufacturer string
}

var knownModels = []MouseModel{
	{Name: "Logitech G Pro X Superlight", MaxDPI: 25600, PollingRate: 1000, Buttons: 5, Wireless: true, Manufacturer: "Logitech"},
	{Name: "Razer Viper Ultimate", MaxDPI: 20000, PollingRate: 1000, Buttons: 8, Wireless: true, Manufacturer: "Razer"},
	{Name: "SteelSeries Prime", MaxDPI: 18000, PollingRate: 1000, Buttons: 6, Wireless: false, Manufacturer: "SteelSeries"},
	{Name: "Zowie EC2", MaxDPI: 3200, PollingRate: 1000, Buttons: 5, Wireless: false, Manufacturer: "BenQ"},
	{Name: "Glorious Model O", MaxDPI: 12000, PollingRate: 1000, Buttons: 6, Wireless: false, Manufacturer: "Glorious"},
}

// GenericModel is reported for mice that are not in the known list.
var GenericModel = MouseModel{
	Name:         "Unknown Mouse",
	MaxDPI:       800,
	PollingRate:  125,
	Buttons:      3,
	Manufacturer: "Generic",
}

// KnownModels returns the known models sorted by name.
func KnownModels() []MouseModel {
	out := make([]MouseModel, len(knownModels))
	copy(out, knownModels)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupModel finds a known model by name, ignoring case and surrounding space.
func LookupModel(name string) (MouseModel, bool) {
	name = strings.TrimSpace(name)
	for _, m := range knownModels {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return MouseModel{}, false
}

// Detect returns the known model with the given name or GenericModel.
func Detect(name string) MouseModel {
	if m, ok := LookupModel(name); ok {
		return m
	}
	return GenericModel
}
