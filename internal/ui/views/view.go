package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swiper/internal/domain"
)

// StatusKind selects how the status line is coloured
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusWarning
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width      int
	Height     int
	Pages      []domain.Page
	Index      int
	Total      int
	Offset     float64 // strip scroll in cells
	ShowPager  bool
	Border     bool
	Dragging   bool
	Status     string
	StatusKind StatusKind
	HelpView   string
}

// Renderer handles all view rendering
type Renderer struct {
	styles    *Styles
	strip     *StripRenderer
	indicator *Indicator
}

// NewRenderer creates a new renderer
func NewRenderer(activeDotColor string) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:    styles,
		strip:     NewStripRenderer(styles),
		indicator: NewIndicator(activeDotColor, styles.InactiveDot),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	header := r.renderHeader(state)

	var footer []string
	if state.ShowPager {
		footer = append(footer, r.indicator.Render(state.Index, state.Total, state.Width))
	}
	footer = append(footer, r.renderStatus(state))
	if state.HelpView != "" {
		footer = append(footer, r.styles.Help.Render(state.HelpView))
	}

	used := lipgloss.Height(header)
	for _, f := range footer {
		used += lipgloss.Height(f)
	}
	stripHeight := state.Height - used
	if stripHeight < 1 {
		stripHeight = 1
	}

	parts := []string{header, r.strip.Render(state.Pages, state.Width, stripHeight, state.Offset, state.Border)}
	parts = append(parts, footer...)
	return strings.Join(parts, "\n")
}

func (r *Renderer) renderHeader(state ViewState) string {
	title := "swiper"
	if state.Index >= 0 && state.Index < len(state.Pages) {
		title = state.Pages[state.Index].Title
	}
	counter := r.styles.Counter.Render(fmt.Sprintf("%d/%d", state.Index+1, max(state.Total, 1)))

	left := r.styles.Title.Render(title)
	gap := state.Width - lipgloss.Width(left) - lipgloss.Width(counter)
	if gap < 1 {
		return fmt.Sprintf("%s %s", left, counter)
	}
	return left + strings.Repeat(" ", gap) + counter
}

func (r *Renderer) renderStatus(state ViewState) string {
	msg := state.Status
	if msg == "" {
		if len(state.Pages) == 0 {
			msg = "No pages found"
		} else if state.Dragging {
			msg = "Dragging…"
		}
	}
	switch state.StatusKind {
	case StatusWarning:
		return r.styles.StatusWarning.Render(msg)
	case StatusError:
		return r.styles.StatusError.Render(msg)
	default:
		return r.styles.Status.Render(msg)
	}
}
