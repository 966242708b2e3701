package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aimtrainer/internal/config"
	"github.com/vovakirdan/aimtrainer/internal/platform/tui"
	"github.com/vovakirdan/aimtrainer/internal/trainer"
)

var flagMenuConfig string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty interactively",
	Long: `Show the difficulty menu, then train with the chosen preset.
Leaving the field with Esc returns to the menu.

Controls:
  Up/Down   - Navigate
  Enter     - Select
  G         - Switch language
  Q/Esc     - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuConfig, "config", "", "Path to custom trainer config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	tc, err := config.LoadTrainer(flagMenuConfig)
	if err != nil {
		return err
	}

	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	return menuLoop(a, tc)
}

// menuLoop alternates between the menu and the trainer until the user quits.
func menuLoop(a *app, tc config.TrainerConfig) error {
	cfg := runtimeConfig(tc)
	var all []trainer.Results

	for {
		result, err := tui.RunMenu(tc, a.lang, cfg)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		cfg = result.Config
		if result.Quit {
			break
		}

		a.logger.Info("starting training", "difficulty", result.Preset)
		outcome, err := tui.RunTrainer(tui.TrainerOptions{
			Settings: result.Settings,
			Config:   cfg,
			Lang:     a.lang,
			Logger:   a.logger,
		})
		if err != nil {
			return fmt.Errorf("running trainer: %w", err)
		}
		all = append(all, outcome.Results...)
		if outcome.Quit {
			break
		}
	}

	printSummary(all)
	return nil
}
