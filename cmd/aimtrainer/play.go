package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aimtrainer/internal/config"
	"github.com/vovakirdan/aimtrainer/internal/platform/tui"
	"github.com/vovakirdan/aimtrainer/internal/trainer"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSize       float64
	flagSpeed      float64
	flagCount      int
	flagDuration   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a training session",
	Long: `Open the training field with the chosen difficulty.

Controls:
  Mouse      - Click a target to hit it (first click starts the session)
  Space/P    - Pause or resume
  R          - Reset to a fresh session
  S          - Settings (while idle or after a session)
  G          - Switch language
  Esc/B      - Back to the menu
  Q/Ctrl+C   - Quit

Difficulty options:
  easy    - Large, slow targets
  medium  - The default mix
  hard    - Small, fast targets and plenty of them
  custom  - The custom preset from your trainer.yaml

Setting flags override the preset and are clamped into range:
  --size 10-100, --speed 1-10, --count 1-20, --duration 10-300

Examples:
  aimtrainer play
  aimtrainer play --difficulty easy
  aimtrainer play --difficulty hard --duration 30
  aimtrainer play --config ./my-trainer.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom trainer config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", string(config.DifficultyMedium), "Difficulty preset: easy, medium, hard, custom")
	playCmd.Flags().Float64Var(&flagSize, "size", 0, "Target size in pixels")
	playCmd.Flags().Float64Var(&flagSpeed, "speed", 0, "Target speed in pixels per frame")
	playCmd.Flags().IntVar(&flagCount, "count", 0, "Number of targets on the field")
	playCmd.Flags().IntVar(&flagDuration, "duration", 0, "Session length in seconds")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	tc, err := config.LoadTrainer(flagConfig)
	if err != nil {
		return err
	}
	settings, err := tc.Settings(preset)
	if err != nil {
		return err
	}
	settings = applySettingFlags(cmd, settings)

	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	a.logger.Info("starting training", "difficulty", preset,
		"size", settings.TargetSize, "speed", settings.TargetSpeed,
		"count", settings.TargetCount, "duration", settings.Duration)

	outcome, err := tui.RunTrainer(tui.TrainerOptions{
		Settings: settings,
		Config:   runtimeConfig(tc),
		Lang:     a.lang,
		Logger:   a.logger,
	})
	if err != nil {
		return fmt.Errorf("running trainer: %w", err)
	}
	printSummary(outcome.Results)

	// Back from the field opens the menu
	if outcome.BackToMenu {
		return menuLoop(a, tc)
	}
	return nil
}

// applySettingFlags overrides preset values with the flags the user set.
func applySettingFlags(cmd *cobra.Command, s trainer.Settings) trainer.Settings {
	flags := cmd.Flags()
	if flags.Changed("size") {
		s.TargetSize = flagSize
	}
	if flags.Changed("speed") {
		s.TargetSpeed = flagSpeed
	}
	if flags.Changed("count") {
		s.TargetCount = flagCount
	}
	if flags.Changed("duration") {
		s.Duration = flagDuration
	}
	return s.Clamp()
}

// printSummary writes one line per completed session after the TUI exits.
func printSummary(results []trainer.Results) {
	if len(results) == 0 {
		return
	}
	fmt.Printf("  %-3s  %-8s  %-6s  %-8s  %-8s  %s\n", "#", "Accuracy", "Hits", "Misses", "CPM", "Reaction")
	fmt.Printf("  %-3s  %-8s  %-6s  %-8s  %-8s  %s\n", "-", "--------", "----", "------", "---", "--------")
	for i, r := range results {
		fmt.Printf("  %-3d  %-8s  %-6d  %-8d  %-8.1f  %.0f ms\n",
			i+1, fmt.Sprintf("%.1f%%", r.Accuracy), r.Hits, r.Misses, r.ClicksPerMinute, r.AverageReactionTimeMs)
	}
}
