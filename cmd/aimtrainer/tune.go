package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aimtrainer/internal/config"
	"github.com/vovakirdan/aimtrainer/internal/recommend"
)

var (
	flagProfile     string
	flagModel       string
	flagDPI         int
	flagSensitivity int
	flagPolling     int
	flagAccel       bool
	flagSmoothing   int
	flagListModels  bool
)

var tuneCmd = &cobra.Command{
	Use:   "tune",
	Short: "Check mouse settings and get recommendations",
	Long: `Reads your mouse profile, applies any flags on top and prints the
effective sensitivity with tips for aim training.

The profile is a TOML file (default: ~/.aimtrainer/mouse.toml):

  [mouse]
  model = "Zowie EC2"
  dpi = 800
  sensitivity = 45
  acceleration = false

Examples:
  aimtrainer tune
  aimtrainer tune --dpi 1600 --sensitivity 30
  aimtrainer tune --model "Razer Viper Ultimate"
  aimtrainer tune --models`,
	Args: cobra.NoArgs,
	RunE: runTune,
}

func init() {
	tuneCmd.Flags().StringVar(&flagProfile, "profile", config.DefaultMouseProfilePath(), "Path to mouse profile TOML")
	tuneCmd.Flags().StringVar(&flagModel, "model", "", "Mouse model name")
	tuneCmd.Flags().IntVar(&flagDPI, "dpi", 0, "Mouse DPI")
	tuneCmd.Flags().IntVar(&flagSensitivity, "sensitivity", 0, "Pointer sensitivity (1-100)")
	tuneCmd.Flags().IntVar(&flagPolling, "polling", 0, "Polling rate in Hz")
	tuneCmd.Flags().BoolVar(&flagAccel, "accel", false, "Mouse acceleration enabled")
	tuneCmd.Flags().IntVar(&flagSmoothing, "smoothing", 0, "Pointer smoothing (0-100)")
	tuneCmd.Flags().BoolVar(&flagListModels, "models", false, "List known mouse models")
}

func runTune(cmd *cobra.Command, _ []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()
	t := a.lang.T

	if flagListModels {
		printModels(t)
		return nil
	}

	settings := recommend.DefaultMouseSettings()
	if flagProfile != "" {
		profile, err := config.LoadMouseProfile(flagProfile)
		if err != nil {
			return err
		}
		settings = profile.Apply(settings)
	}
	settings = applyMouseFlags(cmd, settings)
	a.logger.Debug("mouse settings", "dpi", settings.DPI, "sensitivity", settings.Sensitivity, "model", settings.Model)

	onOff := func(b bool) string {
		if b {
			return t("settings.enabled")
		}
		return t("settings.disabled")
	}

	fmt.Println(t("settings.title"))
	fmt.Println()
	fmt.Printf("  %-28s  %s\n", t("settings.currentProfile"), settings.Profile)
	fmt.Printf("  %-28s  %d\n", t("settings.dpi"), settings.DPI)
	fmt.Printf("  %-28s  %d\n", t("settings.mouseSensitivity"), settings.Sensitivity)
	fmt.Printf("  %-28s  %.0f\n", t("settings.effectiveSensitivity"),
		recommend.EffectiveSensitivity(settings.DPI, settings.Sensitivity))
	fmt.Printf("  %-28s  %d\n", t("settings.pollingRate"), settings.PollingRate)
	fmt.Printf("  %-28s  %s\n", t("settings.mouseAcceleration"), onOff(settings.Acceleration))
	fmt.Printf("  %-28s  %d\n", t("settings.pointerSmoothing"), settings.Smoothing)

	model := recommend.Detect(settings.Model)
	fmt.Println()
	fmt.Println(t("settings.detectedMouse"))
	printModel(t, model)

	fmt.Println()
	fmt.Println(t("recommendations.title"))
	recs := recommend.ForSettings(settings)
	if len(recs) == 0 {
		fmt.Println("  " + t("recommendations.empty"))
		return nil
	}
	for _, r := range recs {
		message, details := r.Text(t)
		fmt.Printf("  [%s] %s\n", strings.ToUpper(t(r.KindKey())), message)
		fmt.Printf("      %s\n", details)
	}
	return nil
}

// applyMouseFlags overrides profile values with the flags the user set.
func applyMouseFlags(cmd *cobra.Command, s recommend.MouseSettings) recommend.MouseSettings {
	flags := cmd.Flags()
	if flags.Changed("model") {
		s.Model = flagModel
	}
	if flags.Changed("dpi") {
		s.DPI = flagDPI
	}
	if flags.Changed("sensitivity") {
		s.Sensitivity = flagSensitivity
	}
	if flags.Changed("polling") {
		s.PollingRate = flagPolling
	}
	if flags.Changed("accel") {
		s.Acceleration = flagAccel
	}
	if flags.Changed("smoothing") {
		s.Smoothing = flagSmoothing
	}
	return s
}

func printModel(t func(string) string, m recommend.MouseModel) {
	conn := t("settings.wired")
	if m.Wireless {
		conn = t("settings.wireless")
	}
	fmt.Printf("  %-28s  %s\n", t("settings.name"), m.Name)
	fmt.Printf("  %-28s  %s\n", t("settings.manufacturer"), m.Manufacturer)
	fmt.Printf("  %-28s  %d\n", t("settings.dpi"), m.MaxDPI)
	fmt.Printf("  %-28s  %d\n", t("settings.pollingRate"), m.PollingRate)
	fmt.Printf("  %-28s  %d\n", t("settings.buttons"), m.Buttons)
	fmt.Printf("  %-28s  %s\n", t("settings.connection"), conn)
}

func printModels(t func(string) string) {
	for i, m := range recommend.KnownModels() {
		if i > 0 {
			fmt.Println()
		}
		printModel(t, m)
	}
}
