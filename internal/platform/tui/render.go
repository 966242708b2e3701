package tui

import (
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/aimtrainer/internal/core"
)

// colorStyles caches one lipgloss style per core.Color. Target colors are
// arbitrary hex values, so styles are created on first use.
var (
	colorStylesMu sync.Mutex
	colorStyles   = map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
)

func styleFor(c core.Color) lipgloss.Style {
	colorStylesMu.Lock()
	defer colorStylesMu.Unlock()

	if style, ok := colorStyles[c]; ok {
		return style
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
	colorStyles[c] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				if cell.Rune != 0 { // continuation of a wide rune
					run.WriteRune(cell.Rune)
				}
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// targetRect returns the terminal cells that overlap a field box, the same
// cells a click registers on. Every target covers at least one cell.
func targetRect(b core.Box, cfg core.RuntimeConfig) core.Rect {
	cellW := float64(max(cfg.CellW, 1))
	cellH := float64(max(cfg.CellH, 1))

	col0 := int(math.Floor(b.X / cellW))
	row0 := int(math.Floor(b.Y / cellH))
	col1 := max(int(math.Ceil(b.Right()/cellW))-1, col0)
	row1 := max(int(math.Ceil(b.Bottom()/cellH))-1, row0)

	return core.NewRect(col0, row0+core.HUDRows, col1-col0+1, row1-row0+1)
}
