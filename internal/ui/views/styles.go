package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Counter       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	Help          lipgloss.Style
	Frame         lipgloss.Style
	FrameTitle    lipgloss.Style
	InactiveDot   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Counter:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:          lipgloss.NewStyle().Faint(true),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		FrameTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		InactiveDot: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
