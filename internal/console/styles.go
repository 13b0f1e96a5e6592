package console

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#89b4fa")
	colorMuted  = lipgloss.Color("#6c7086")
	colorError  = lipgloss.Color("#f38ba8")
)

// Styles groups the lipgloss styles used to draw a panel.
type Styles struct {
	Title   lipgloss.Style
	Loading lipgloss.Style
	Error   lipgloss.Style
	Retry   lipgloss.Style
	Body    lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns the styles used when none are supplied.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1),
		Loading: lipgloss.NewStyle().Italic(true).Foreground(colorMuted),
		Error:   lipgloss.NewStyle().Foreground(colorError),
		Retry:   lipgloss.NewStyle().Bold(true),
		Body:    lipgloss.NewStyle().PaddingLeft(2),
		Help:    lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
	}
}
