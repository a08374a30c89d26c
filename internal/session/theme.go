package session

import "github.com/charmbracelet/lipgloss"

// Theme styles the session's own messages. A disabled theme prints text
// unchanged.
type Theme struct {
	enabled bool
	banner  lipgloss.Style
	hint    lipgloss.Style
	problem lipgloss.Style
	story   lipgloss.Style
}

// NewTheme returns the default palette, or a plain theme when color is false.
func NewTheme(color bool) Theme {
	return Theme{
		enabled: color,
		banner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		hint:    lipgloss.NewStyle().Faint(true),
		problem: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		story:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
	}
}

// Banner styles the welcome line.
func (t Theme) Banner(s string) string { return t.apply(t.banner, s) }

// Hint styles retry and navigation hints such as an invalid selection.
func (t Theme) Hint(s string) string { return t.apply(t.hint, s) }

// Problem styles error reports shown to the player.
func (t Theme) Problem(s string) string { return t.apply(t.problem, s) }

// Story styles the finished story.
func (t Theme) Story(s string) string { return t.apply(t.story, s) }

func (t Theme) apply(style lipgloss.Style, s string) string {
	if !t.enabled {
		return s
	}
	return style.Render(s)
}
