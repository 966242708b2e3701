package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aimtrainer/internal/i18n"
	"github.com/vovakirdan/aimtrainer/internal/storage"
)

var langCmd = &cobra.Command{
	Use:   "lang [code]",
	Short: "Show or set the display language",
	Long: `Without arguments, shows the current language and the available ones.
With a code, saves it as the display language. --reset forgets the saved
choice so the language follows LANG again.

Examples:
  aimtrainer lang
  aimtrainer lang ar
  aimtrainer lang --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLang,
}

var flagLangReset bool

func init() {
	langCmd.Flags().BoolVar(&flagLangReset, "reset", false, "Forget the saved language")
}

func runLang(_ *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	if flagLangReset {
		if a.store == nil {
			return errors.New("preferences database unavailable")
		}
		if err := a.store.DeletePreference(storage.LanguageKey); err != nil {
			return fmt.Errorf("forgetting language: %w", err)
		}
		fmt.Println("Saved language cleared")
		return nil
	}

	if len(args) == 0 {
		current := a.lang.Language()
		for _, l := range a.lang.Languages() {
			marker := "  "
			if l == current {
				marker = "* "
			}
			fmt.Printf("%s%-4s %s\n", marker, l, a.lang.Name(l))
		}
		return nil
	}

	lang, err := i18n.ParseLanguage(args[0])
	if err != nil {
		return err
	}
	if a.store == nil {
		return errors.New("preferences database unavailable, language not saved")
	}
	if err := a.store.SetPreference(storage.LanguageKey, string(lang)); err != nil {
		return fmt.Errorf("saving language: %w", err)
	}
	if err := a.lang.SetLanguage(lang); err != nil {
		return err
	}
	fmt.Printf("Language set to %s\n", a.lang.Name(lang))
	return nil
}
