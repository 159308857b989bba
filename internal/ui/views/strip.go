package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"swiper/internal/domain"
)

const tabWidth = 4

// StripRenderer draws the row of pages as seen through the viewport
type StripRenderer struct {
	styles *Styles
}

// NewStripRenderer creates a new strip renderer
func NewStripRenderer(styles *Styles) *StripRenderer {
	return &StripRenderer{styles: styles}
}

// Render returns height lines of exactly width cells showing the strip
// scrolled by offset cells. An offset of k*width shows page k alone;
// anything in between shows the right edge of one page and the left
// edge of the next. Positions with no page render blank.
func (sr *StripRenderer) Render(pages []domain.Page, width, height int, offset float64, border bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	left := int(math.Round(offset))
	first := floorDiv(left, width)
	shift := left - first*width

	a := sr.Frame(pageAt(pages, first), width, height, border)
	if shift == 0 {
		return strings.Join(a, "\n")
	}
	b := sr.Frame(pageAt(pages, first+1), width, height, border)

	lines := make([]string, height)
	for row := range lines {
		line := ansi.TruncateLeft(a[row]+b[row], shift, "")
		lines[row] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}

// Frame renders a single page as height lines of exactly width cells
func (sr *StripRenderer) Frame(page *domain.Page, width, height int, border bool) []string {
	if page == nil {
		return blank(width, height)
	}

	framed := border && width >= 4 && height >= 3
	innerW, innerH := width, height
	if framed {
		innerW, innerH = width-2, height-2
	}

	content := make([]string, 0, innerH)
	content = append(content, sr.styles.FrameTitle.Render(ansi.Truncate(page.Title, innerW, "…")))
	for _, line := range strings.Split(page.Body, "\n") {
		if len(content) == innerH {
			break
		}
		line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
		content = append(content, ansi.Truncate(line, innerW, "…"))
	}
	if len(content) > innerH {
		content = content[:innerH]
	}

	body := strings.Join(content, "\n")
	if framed {
		body = sr.styles.Frame.Width(innerW).Height(innerH).Render(body)
	}
	return fit(strings.Split(body, "\n"), width, height)
}

func pageAt(pages []domain.Page, i int) *domain.Page {
	if i < 0 || i >= len(pages) {
		return nil
	}
	return &pages[i]
}

// fit pads or cuts lines to exactly width cells and height rows
func fit(lines []string, width, height int) []string {
	out := make([]string, height)
	pad := strings.Repeat(" ", width)
	for i := range out {
		if i >= len(lines) {
			out[i] = pad
			continue
		}
		line := ansi.Truncate(lines[i], width, "")
		if w := ansi.StringWidth(line); w < width {
			line += pad[:width-w]
		}
		out[i] = line
	}
	return out
}

func blank(width, height int) []string {
	return fit(nil, width, height)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

