package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/aimtrainer/internal/i18n"
	"github.com/vovakirdan/aimtrainer/internal/trainer"
)

// settingsField identifies one row of the settings panel.
type settingsField int

const (
	fieldDuration settingsField = iota
	fieldCount
	fieldSize
	fieldSpeed
	settingsFieldCount
)

// Step sizes for each settings row.
const (
	durationStep = 10
	countStep    = 1
	sizeStep     = 5.0
	speedStep    = 0.5
)

// settingsPanel edits a draft copy of the session settings.
type settingsPanel struct {
	draft  trainer.Settings
	cursor settingsField
}

func newSettingsPanel(s trainer.Settings) settingsPanel {
	return settingsPanel{draft: s}
}

func (p *settingsPanel) up() {
	p.cursor = (p.cursor + settingsFieldCount - 1) % settingsFieldCount
}

func (p *settingsPanel) down() {
	p.cursor = (p.cursor + 1) % settingsFieldCount
}

// adjust moves the selected value by dir steps, keeping it in range.
func (p *settingsPanel) adjust(dir int) {
	switch p.cursor {
	case fieldDuration:
		p.draft.Duration += dir * durationStep
	case fieldCount:
		p.draft.TargetCount += dir * countStep
	case fieldSize:
		p.draft.TargetSize += float64(dir) * sizeStep
	case fieldSpeed:
		p.draft.TargetSpeed += float64(dir) * speedStep
	}
	p.draft = p.draft.Clamp()
}

func (p settingsPanel) view(lang *i18n.Store, width int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	rowStyle := lipgloss.NewStyle()

	rows := []struct {
		label string
		value string
	}{
		{lang.T("training.sessionDuration"), fmt.Sprintf("%d", p.draft.Duration)},
		{lang.T("training.targetCount"), fmt.Sprintf("%d", p.draft.TargetCount)},
		{lang.T("training.targetSize"), fmt.Sprintf("%.0f", p.draft.TargetSize)},
		{lang.T("training.targetSpeed"), fmt.Sprintf("%.1f", p.draft.TargetSpeed)},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(lang.T("training.settings")))
	b.WriteString("\n\n")
	for i, r := range rows {
		line := " " + runewidth.FillRight(r.label, 28) + fmt.Sprintf(" < %6s > ", r.value)
		if settingsField(i) == p.cursor {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("enter: " + lang.T("training.applyReset")))

	return alignBlock(b.String(), lang, width)
}

// alignBlock centers a block of text, or right-aligns it for right-to-left languages.
func alignBlock(s string, lang *i18n.Store, width int) string {
	pos := lipgloss.Center
	if lang.Direction() == i18n.RTL {
		pos = lipgloss.Right
	}
	return lipgloss.PlaceHorizontal(width, pos, s)
}
