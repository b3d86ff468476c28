// Package terminal renders the questionnaire and its results on a text
// terminal and reads answers back from the user.
package terminal

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles used for prompts and results.
type Styles struct {
	Question lipgloss.Style
	Option   lipgloss.Style
	Input    lipgloss.Style
	Error    lipgloss.Style
	Score    lipgloss.Style
	Heading  lipgloss.Style
	Code     lipgloss.Style
	Muted    lipgloss.Style
}

// NewStyles builds styles bound to w. Output that is not a terminal gets no
// escape sequences; color=false strips colors entirely.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	base := r.NewStyle()
	if !color {
		return Styles{
			Question: base,
			Option:   base,
			Input:    base,
			Error:    base,
			Score:    base,
			Heading:  base.Bold(true),
			Code:     base.Bold(true),
			Muted:    base,
		}
	}
	return Styles{
		Question: base.Foreground(lipgloss.Color("2")),
		Option:   base.Foreground(lipgloss.Color("7")),
		Input:    base.Foreground(lipgloss.Color("6")),
		Error:    base.Foreground(lipgloss.Color("1")),
		Score:    base.Foreground(lipgloss.Color("2")),
		Heading:  base.Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		Code:     base.Bold(true).Foreground(lipgloss.Color("#2196F3")),
		Muted:    base.Foreground(lipgloss.Color("8")),
	}
}
