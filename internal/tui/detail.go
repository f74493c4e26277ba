package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Layout constants
const (
	listPanelRatio = 0.6 // List takes 60% of the body width
	minDetailWidth = 24
)

// Detail panel styles
var (
	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	detailLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	detailValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	panelBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))
)

// renderDetail draws every field of the selected entry, wrapping long values.
func renderDetail(e entry, ok bool, width, height int) string {
	inner := max(width-4, 10)

	var b strings.Builder
	if !ok {
		b.WriteString(detailLabelStyle.Render("Nothing selected"))
	} else {
		b.WriteString(detailTitleStyle.Render(wordwrap.String(e.title, inner)))
		b.WriteString("\n\n")
		for _, f := range e.fields {
			b.WriteString(detailLabelStyle.Render(f.label + ":"))
			b.WriteString("\n")
			value := f.value
			if value == "" {
				value = "-"
			}
			b.WriteString(detailValueStyle.Render(wordwrap.String(value, inner)))
			b.WriteString("\n")
		}
		if !e.repository.IsEmpty() {
			b.WriteString("\n")
			b.WriteString(detailLabelStyle.Render("ctrl+o opens " + e.repository.URL()))
		}
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if limit := max(height-2, 1); len(lines) > limit {
		lines = append(lines[:limit-1], "...")
	}

	return panelBorderStyle.
		Width(width-2).
		Height(max(height-2, 1)).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
