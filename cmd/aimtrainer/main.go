// aimtrainer is a terminal mouse-aim trainer: click bouncing targets
// before the countdown runs out, then review accuracy and reaction time.
//
// Usage:
//
//	aimtrainer menu              - Pick a difficulty interactively
//	aimtrainer play              - Start training right away
//	aimtrainer presets           - List difficulty presets
//	aimtrainer tune              - Check mouse settings and get advice
//	aimtrainer lang [code]       - Show or set the display language
//
// Global flags:
//
//	--fps <rate>        - Set animation rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible target placement
//	--db <path>         - Set preferences database (default: ~/.aimtrainer/prefs.db)
//	--lang <code>       - Override the display language for this run
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aimtrainer/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLang     string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aimtrainer",
	Short: "Aim Trainer - Sharpen your mouse aim in the terminal",
	Long: `Aim Trainer is a terminal-based mouse aim trainer. Targets bounce
around the field; click them before the countdown ends.

Available commands:
  menu     - Interactive difficulty picker
  play     - Start a training session directly
  presets  - Show difficulty presets
  tune     - Inspect mouse settings and get recommendations
  lang     - Show or change the display language

Examples:
  aimtrainer menu
  aimtrainer play --difficulty hard
  aimtrainer play --count 8 --duration 30
  aimtrainer tune --dpi 1600 --sensitivity 40
  aimtrainer lang ar`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Animation rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.DefaultDBPath(), "Path to preferences database")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Display language for this run: en, ar")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs while training)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(tuneCmd)
	rootCmd.AddCommand(langCmd)
}
