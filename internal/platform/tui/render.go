package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/butterfly-effect/internal/core"
)

// palette gives each board role its terminal look.
var palette = map[core.Color]lipgloss.Style{
	core.ColorWall:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorWallLost:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorWallWon:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorTrail:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorGoal:        lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorRocket:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	core.ColorRocketSpent: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorHUD:         lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorNotice:      lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("229")),
}

// RenderScreen converts a Screen buffer to a styled string for display, one
// escape sequence per same-colored run.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		var sb strings.Builder
		for _, span := range s.Spans(y) {
			style, ok := palette[span.Color]
			if !ok {
				sb.WriteString(span.Text)
				continue
			}
			sb.WriteString(style.Render(span.Text))
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}
