package views

import (
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
)

// Indicator draws one dot per page with the current page highlighted.
// It holds no paging state of its own.
type Indicator struct {
	dots paginator.Model
}

// NewIndicator creates an indicator whose active dot uses activeColor
func NewIndicator(activeColor string, inactive lipgloss.Style) *Indicator {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color(activeColor)).Render("●") + " "
	p.InactiveDot = inactive.Render("●") + " "
	return &Indicator{dots: p}
}

// Render returns the dots for index out of total, centred in width
func (i *Indicator) Render(index, total, width int) string {
	p := i.dots
	p.SetTotalPages(max(total, 1))
	p.Page = max(0, min(index, p.TotalPages-1))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, p.View())
}
