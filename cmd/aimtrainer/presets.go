package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aimtrainer/internal/config"
)

var (
	flagPresetsConfig string
	flagPresetsYAML   bool
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long: `Shows the settings of every difficulty preset.

Presets come from --config, ~/.aimtrainer/configs/trainer.yaml,
./configs/trainer.yaml or the built-in defaults, in that order.
Use --yaml to print the built-in defaults as a starting point.`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func init() {
	presetsCmd.Flags().StringVar(&flagPresetsConfig, "config", "", "Path to custom trainer config YAML")
	presetsCmd.Flags().BoolVar(&flagPresetsYAML, "yaml", false, "Print the built-in default config")
}

func runPresets(_ *cobra.Command, _ []string) error {
	if flagPresetsYAML {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	tc, err := config.LoadTrainer(flagPresetsConfig)
	if err != nil {
		return err
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-8s  %-6s  %-6s  %-7s  %s\n", "Preset", "Size", "Speed", "Targets", "Duration")
	fmt.Printf("  %-8s  %-6s  %-6s  %-7s  %s\n", "------", "----", "-----", "-------", "--------")

	for _, p := range config.Presets {
		s, err := tc.Settings(p)
		if err != nil {
			fmt.Printf("  %-8s  (%v)\n", p, err)
			continue
		}
		fmt.Printf("  %-8s  %-6.0f  %-6.1f  %-7d  %ds\n", p, s.TargetSize, s.TargetSpeed, s.TargetCount, s.Duration)
	}

	fmt.Println()
	fmt.Println("Run 'aimtrainer play --difficulty <preset>' to train.")
	return nil
}
