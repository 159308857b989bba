package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"swiper/internal/domain"
)

// PageViewer shows a page full screen outside the Bubble Tea renderer
type PageViewer struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPageViewer creates a new page viewer
func NewPageViewer(program *tea.Program) *PageViewer {
	return &PageViewer{
		program: program,
	}
}

// Show runs ov on the page body and blocks until the user quits it
func (v *PageViewer) Show(page domain.Page) error {
	if v.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := v.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = v.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(page.Body))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showPageCmd runs the viewer off the update loop
func showPageCmd(v *PageViewer, page domain.Page) tea.Cmd {
	return func() tea.Msg {
		return pagerDoneMsg{title: page.Title, err: v.Show(page)}
	}
}
