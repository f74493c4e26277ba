package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var (
	// HelpOverlayStyle defines the style for the help overlay container.
	HelpOverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)
)

// HelpModel wraps the bubbles help component.
type HelpModel struct {
	help   help.Model
	keymap KeyMap
}

// NewHelpModel creates a new help overlay model.
func NewHelpModel(keymap KeyMap) HelpModel {
	return HelpModel{
		help:   help.New(),
		keymap: keymap,
	}
}

// ShortView renders the one-line key summary shown under the prompt.
func (m HelpModel) ShortView(width int) string {
	m.help.Width = width
	return m.help.ShortHelpView(m.keymap.ShortHelp())
}

// View renders the help overlay: the full key map followed by the command
// reference.
func (m HelpModel) View(width int, commands string) string {
	m.help.Width = width - 8 // Account for padding and border
	m.help.ShowAll = true
	body := m.help.View(m.keymap) + "\n\n" + commands
	return HelpOverlayStyle.Render(body)
}
