package controller

import "github.com/charmbracelet/lipgloss"

// Styles decorates UI output. The zero value leaves text untouched.
type Styles struct {
	Added   *lipgloss.Style
	Removed *lipgloss.Style
	Header  *lipgloss.Style
	Strip   *lipgloss.Style
}

// NewStyles returns the terminal color scheme.
func NewStyles() Styles {
	added := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removed := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	header := lipgloss.NewStyle().Bold(true)
	strip := lipgloss.NewStyle().Faint(true)

	return Styles{Added: &added, Removed: &removed, Header: &header, Strip: &strip}
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}

	return style.Render(text)
}
