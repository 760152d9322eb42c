package view

import "github.com/charmbracelet/lipgloss"

// FooterState holds the single footer line. A status message, when set,
// replaces the key help.
type FooterState struct {
	InnerW      int
	StatusText  string
	HelpText    string
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	Bg          lipgloss.Color
}

// RenderFooter renders the footer line.
func RenderFooter(state FooterState) string {
	line := FitLine(state.InnerW, state.HelpStyle, state.HelpText)
	if state.StatusText != "" {
		line = FitLine(state.InnerW, state.StatusStyle, state.StatusText)
	}
	return PadLinesWithBackground(line, state.InnerW, 1, state.Bg)
}
