package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/aimtrainer/internal/i18n"
	"github.com/vovakirdan/aimtrainer/internal/recommend"
	"github.com/vovakirdan/aimtrainer/internal/trainer"
)

// Results layout constants
const (
	resultsHeaderRows = 14 // title, description, metrics and margins
	minTableRows      = 3
)

// kindColors maps recommendation kinds to label colors.
var kindColors = map[recommend.Kind]lipgloss.Color{
	recommend.KindCritical: lipgloss.Color("9"),
	recommend.KindWarning:  lipgloss.Color("208"),
	recommend.KindPositive: lipgloss.Color("10"),
	recommend.KindInfo:     lipgloss.Color("6"),
}

// resultsView shows the metrics of a finished session and the advice
// derived from them.
type resultsView struct {
	results trainer.Results
	recs    []recommend.Recommendation
	lang    *i18n.Store
	table   table.Model
}

func newResultsView(r trainer.Results, lang *i18n.Store, width, height int) resultsView {
	recs := recommend.ForResults(r)
	if len(recs) == 0 {
		recs = recommend.Defaults()
	}
	v := resultsView{
		results: r,
		recs:    recs,
		lang:    lang,
	}
	v.table = v.createTable(width, height)
	return v
}

// createTable creates the recommendations table sized for the terminal.
func (v *resultsView) createTable(width, height int) table.Model {
	detailsWidth := max(width-4-10-36-6, 20)
	columns := []table.Column{
		{Title: v.lang.T("recommendations.type"), Width: 10},
		{Title: v.lang.T("recommendations.advice"), Width: 36},
		{Title: v.lang.T("recommendations.details"), Width: detailsWidth},
	}

	rows := make([]table.Row, len(v.recs))
	for i, r := range v.recs {
		message, details := r.Text(v.lang.T)
		rows[i] = table.Row{v.lang.T(r.KindKey()), message, details}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(min(len(rows), height-resultsHeaderRows), minTableRows)),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (v *resultsView) resize(width, height int) {
	cursor := v.table.Cursor()
	v.table = v.createTable(width, height)
	v.table.SetCursor(cursor)
}

func (v resultsView) update(msg tea.Msg) (resultsView, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// selected returns the recommendation under the table cursor.
func (v resultsView) selected() (recommend.Recommendation, bool) {
	i := v.table.Cursor()
	if i < 0 || i >= len(v.recs) {
		return recommend.Recommendation{}, false
	}
	return v.recs[i], true
}

func (v resultsView) view(lang *i18n.Store, width int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle := lipgloss.NewStyle().Width(22)
	valueStyle := lipgloss.NewStyle().Bold(true)

	r := v.results
	metrics := []struct {
		label, value, hint string
	}{
		{lang.T("results.accuracy"), fmt.Sprintf("%.1f%%", r.Accuracy), lang.T("results.targetsHitPercentage")},
		{lang.T("results.reactionTime"), fmt.Sprintf("%.0f ms", r.AverageReactionTimeMs), lang.T("results.averageResponseTime")},
		{lang.T("results.clicksPerMinute"), fmt.Sprintf("%.1f", r.ClicksPerMinute), lang.T("results.yourClickingSpeed")},
		{lang.T("results.targetsHit"), lang.Format("results.targetsHitValue", map[string]string{
			"hits":  fmt.Sprintf("%d", r.Hits),
			"total": fmt.Sprintf("%d", r.TotalClicks()),
		}), ""},
		{lang.T("results.sessionDuration"), formatDuration(r.SessionDurationSeconds) + " " + lang.T("results.minutes"), ""},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(lang.T("results.title")))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(lang.T("results.description")))
	b.WriteString("\n\n")
	for _, m := range metrics {
		line := labelStyle.Render(m.label) + valueStyle.Render(m.value)
		if m.hint != "" {
			line += "  " + dimStyle.Render(m.hint)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(lang.T("recommendations.title")))
	b.WriteString("\n")
	if len(v.recs) == 0 {
		b.WriteString(dimStyle.Italic(true).Render(lang.T("recommendations.empty")))
		b.WriteString("\n")
	} else {
		b.WriteString(v.table.View())
		b.WriteString("\n")
		if rec, ok := v.selected(); ok {
			kind := lipgloss.NewStyle().Bold(true).Foreground(kindColors[rec.Kind]).Render(strings.ToUpper(lang.T(rec.KindKey())))
			b.WriteString(kind + " " + lang.T(rec.DetailsKey()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("enter/r: %s  |  esc/b: %s",
		lang.T("results.tryAgain"), lang.T("results.backToMenu"))))

	return alignBlock(b.String(), lang, width)
}

// formatDuration renders whole seconds as m:ss.
func formatDuration(seconds int) string {
	seconds = max(seconds, 0)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
