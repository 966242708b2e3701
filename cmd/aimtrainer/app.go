package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/aimtrainer/internal/config"
	"github.com/vovakirdan/aimtrainer/internal/core"
	"github.com/vovakirdan/aimtrainer/internal/i18n"
	"github.com/vovakirdan/aimtrainer/internal/storage"
)

// app bundles the services every command shares.
type app struct {
	logger *log.Logger
	store  *storage.Store // nil when the database could not be opened
	lang   *i18n.Store

	closers []func()
}

// newApp sets up logging, preferences and the language store.
// The language comes from --lang, then the saved preference, then the
// environment. Later language changes are saved back to the database.
// Interactive commands discard logs unless --log-file is set; the rest
// log to stderr.
func newApp(interactive bool) (*app, error) {
	a := &app{}

	var fallback io.Writer = os.Stderr
	if interactive {
		fallback = io.Discard
	}
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel, fallback)
	if err != nil {
		return nil, err
	}
	a.logger = logger
	a.closers = append(a.closers, closeLog)

	// Open preferences storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open preferences database", "path", flagDBPath, "error", err)
		// Continue without storage - training still works
		store = nil
	} else {
		a.store = store
		a.closers = append(a.closers, func() { store.Close() })
	}

	saved := ""
	if store != nil {
		if v, ok, err := store.Preference(storage.LanguageKey); err != nil {
			logger.Warn("could not read language preference", "error", err)
		} else if ok {
			saved = v
		}
	}

	initial := i18n.Detect(saved, os.Getenv)
	if flagLang != "" {
		if initial, err = i18n.ParseLanguage(flagLang); err != nil {
			a.Close()
			return nil, err
		}
	}

	lang, err := i18n.NewStore(initial)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("load translations: %w", err)
	}
	a.lang = lang
	a.closers = append(a.closers, lang.Close)

	if store != nil {
		lang.Subscribe(func(l i18n.Language) {
			if err := store.SetPreference(storage.LanguageKey, string(l)); err != nil {
				logger.Warn("could not save language preference", "error", err)
				return
			}
			logger.Debug("language saved", "lang", l)
		})
	}

	return a, nil
}

// Close releases everything newApp opened, newest first.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// newLogger creates the process logger writing to path, or to fallback
// when path is empty.
func newLogger(path, level string, fallback io.Writer) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	w := fallback
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "aimtrainer",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig(tc config.TrainerConfig) core.RuntimeConfig {
	cfg := core.DefaultConfig()

	// Get terminal size
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.CellW = tc.Field.CellWidth
	cfg.CellH = tc.Field.CellHeight
	return cfg
}
