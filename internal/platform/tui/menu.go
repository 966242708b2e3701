package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/aimtrainer/internal/config"
	"github.com/vovakirdan/aimtrainer/internal/core"
	"github.com/vovakirdan/aimtrainer/internal/i18n"
	"github.com/vovakirdan/aimtrainer/internal/trainer"
)

// menuItemKind distinguishes preset rows from the fixed rows below them.
type menuItemKind int

const (
	menuItemPreset menuItemKind = iota
	menuItemLanguage
	menuItemQuit
)

// MenuItem represents a selectable row in the menu.
type MenuItem struct {
	Kind     menuItemKind
	Preset   config.DifficultyPreset
	Settings trainer.Settings
}

// presetLevels maps presets to their skill level subtitle key.
var presetLevels = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "difficulty.beginner",
	config.DifficultyMedium: "difficulty.intermediate",
	config.DifficultyHard:   "difficulty.advanced",
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	lang      *i18n.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user picks a preset
}

// NewMenuModel creates a new menu model listing every preset in cfg.
// Presets that fail to resolve are left out.
func NewMenuModel(cfg config.TrainerConfig, lang *i18n.Store, rc core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(config.Presets)+2)
	for _, p := range config.Presets {
		s, err := cfg.Settings(p)
		if err != nil {
			continue
		}
		items = append(items, MenuItem{Kind: menuItemPreset, Preset: p, Settings: s})
	}
	items = append(items,
		MenuItem{Kind: menuItemLanguage},
		MenuItem{Kind: menuItemQuit},
	)

	cursor := 0
	for i, item := range items {
		if item.Preset == config.DifficultyMedium {
			cursor = i
			break
		}
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     rc.ScreenW,
		height:    rc.ScreenH,
		lang:      lang,
		config:    rc,
		keyMapper: NewKeyMapper(DefaultTrainerKeyMap()),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLanguage:
		m.lang.Next()

	case MenuActionSelect:
		switch item := m.items[m.cursor]; item.Kind {
		case menuItemLanguage:
			m.lang.Next()
		case menuItemQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.selected = &item
			return m, tea.Quit // Exit menu to start training
		}
	}

	return m, nil
}

// label returns the display text of a menu row.
func (m MenuModel) label(item MenuItem) string {
	switch item.Kind {
	case menuItemLanguage:
		return m.lang.Format("menu.language", map[string]string{
			"name": m.lang.Name(m.lang.Language()),
		})
	case menuItemQuit:
		return m.lang.T("menu.quit")
	}

	title := m.lang.T("difficulty." + string(item.Preset))
	if level, ok := presetLevels[item.Preset]; ok {
		title += " (" + m.lang.T(level) + ")"
	}
	return title
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(m.lang.T("app.title")))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.lang.T("menu.improvePrecision")))
	b.WriteString("\n\n")
	b.WriteString(m.lang.T("difficulty.title"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + m.label(item)
		if i == m.cursor {
			line = cursorStyle.Render("> " + m.label(item))
		}
		b.WriteString(line)
		b.WriteString("\n")
		if item.Kind == menuItemPreset {
			b.WriteString(dimStyle.Render("    " + settingsSummary(item.Settings)))
			b.WriteString("\n")
		}
		if item.Kind == menuItemPreset && i+1 < len(m.items) && m.items[i+1].Kind != menuItemPreset {
			b.WriteString("\n")
		}
	}

	// Footer with controls
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  G: Language  |  Q: Quit"))
	b.WriteString("\n")

	return alignBlock(b.String(), m.lang, m.width)
}

// settingsSummary condenses a preset's settings into one line.
func settingsSummary(s trainer.Settings) string {
	return fmt.Sprintf("%d targets, size %.0f, speed %.1f, %ds",
		s.TargetCount, s.TargetSize, s.TargetSpeed, s.Duration)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset   config.DifficultyPreset
	Settings trainer.Settings
	Config   core.RuntimeConfig
	Quit     bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg config.TrainerConfig, lang *i18n.Store, rc core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(cfg, lang, rc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: rc}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: rc, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.Preset = m.Selected().Preset
	result.Settings = m.Selected().Settings
	return result, nil
}
