package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for console output.
type Theme struct {
	Key     lipgloss.Style
	Count   lipgloss.Style
	Summary lipgloss.Style
	Dim     lipgloss.Style

	enabled bool
}

// NewTheme creates the default theme bound to w. Styles only produce escape
// sequences when w is a terminal that supports color.
func NewTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	return Theme{
		Key:     r.NewStyle().Foreground(lipgloss.Color("39")),
		Count:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Summary: r.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
		Dim:     r.NewStyle().Foreground(lipgloss.Color("245")),
		enabled: true,
	}
}

// PlainTheme returns a theme that leaves text untouched.
func PlainTheme() Theme {
	return Theme{}
}

func (t Theme) paint(s lipgloss.Style, text string) string {
	if !t.enabled {
		return text
	}
	return s.Render(text)
}
