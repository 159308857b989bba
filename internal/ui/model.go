package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"swiper/internal/animation"
	"swiper/internal/config"
	"swiper/internal/domain"
	"swiper/internal/eventbus"
	"swiper/internal/gesture"
	"swiper/internal/pages"
	"swiper/internal/paging"
	"swiper/internal/ui/views"
)

// DefaultColumns is the viewport width assumed until the terminal reports
// its size
const DefaultColumns = 80

// cellAspect is how much taller a terminal cell is than it is wide
const cellAspect = 2.0

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	pages  domain.PageSet

	scroll     *animation.Value
	controller *paging.Controller
	recognizer *gesture.Recognizer

	width         int
	height        int
	pixelsPerCell float64
	frameInterval time.Duration
	ticking       bool

	lastIndex  int
	status     string
	statusKind views.StatusKind

	keys     keyMap
	help     help.Model
	renderer *views.Renderer
	viewer   *PageViewer
	loader   pages.Loader

	now func() time.Time
}

// NewModel creates a new UI model paging through set
func NewModel(bus eventbus.EventBus, cfg *config.Config, set domain.PageSet) *Model {
	settings := cfg.Pager

	m := &Model{
		bus:           bus,
		config:        cfg,
		pages:         set,
		scroll:        animation.NewValue(0, settings.FPS),
		pixelsPerCell: settings.PixelsPerCell,
		keys:          newKeyMap(),
		help:          help.New(),
		renderer:      views.NewRenderer(settings.ActiveDotColor),
		viewer:        NewPageViewer(nil),
		now:           time.Now,
	}
	m.frameInterval = time.Second / time.Duration(m.scroll.FPS())

	var gate paging.Gate
	if len(settings.Locked) > 0 {
		locked := paging.NewLockedPages(settings.Locked)
		log.Printf("Swipes into pages %v are locked", locked.Indices())
		gate = &lockedGate{locked: locked, onVeto: m.vetoed}
	}

	m.controller = paging.NewController(m.scroll, paging.Options{
		InitialIndex:  settings.Index,
		TotalPages:    set.Len(),
		ViewportWidth: DefaultColumns * m.pixelsPerCell,
		Spring:        settings.Spring(),
		Gate:          gate,
		OnPageChange:  paging.PageChangeFunc(m.pageChanged),
	})
	m.recognizer = gesture.NewRecognizer(settings.Threshold, m.controller)
	m.lastIndex = m.controller.Index()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.viewer = NewPageViewer(p)
}

// SetLoader enables reloading the page source with the reload key
func (m *Model) SetLoader(l pages.Loader) {
	m.loader = l
}

// Index returns the page currently committed
func (m *Model) Index() int {
	return m.controller.Index()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.controller.SetViewportWidth(float64(msg.Width) * m.pixelsPerCell)
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, m.animate()

	case tea.BlurMsg:
		if m.recognizer.Cancel() {
			log.Printf("Drag terminated by focus loss")
		}
		return m, m.animate()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case PageRequestMsg:
		idx := m.controller.SetExternalIndex(msg.Index)
		log.Printf("External page request %d -> %d", msg.Index, idx)
		// The controller stays quiet about external changes; the rest of
		// the app still needs to hear about them
		if idx != m.lastIndex {
			m.pageChanged(idx)
		}
		return m, m.animate()

	case pagesReloadedMsg:
		if msg.err != nil {
			m.reportError("Reload failed", msg.err)
			return m, nil
		}
		m.pages = msg.set
		m.controller.SetTotalPages(msg.set.Len())
		if idx := m.controller.Index(); idx != m.lastIndex {
			m.pageChanged(idx)
		}
		m.setStatus(fmt.Sprintf("Reloaded %d pages", len(msg.set.Pages)), views.StatusInfo)
		return m, m.animate()

	case frameMsg:
		moving := m.scroll.Tick()
		m.controller.Sync()
		if !moving {
			m.ticking = false
			return m, nil
		}
		return m, m.nextFrame()

	case pagerDoneMsg:
		if msg.err != nil {
			m.reportError("Pager failed", fmt.Errorf("%s: %w", msg.title, msg.err))
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	p := gesture.Point{
		X: float64(msg.X) * m.pixelsPerCell,
		Y: float64(msg.Y) * m.pixelsPerCell * cellAspect,
	}
	at := m.now()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.recognizer.Down(p, at)
		}
	case tea.MouseActionMotion:
		m.recognizer.Move(p, at)
	case tea.MouseActionRelease:
		m.recognizer.Up(p, at)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Prev):
		m.controller.GoToPage(m.controller.Index() - 1)

	case key.Matches(msg, m.keys.Next):
		m.controller.GoToPage(m.controller.Index() + 1)

	case key.Matches(msg, m.keys.First):
		m.requestPage(0)

	case key.Matches(msg, m.keys.Last):
		m.requestPage(m.controller.TotalPages() - 1)

	case key.Matches(msg, m.keys.Jump):
		m.requestPage(int(msg.String()[0] - '1'))

	case key.Matches(msg, m.keys.Cancel):
		m.recognizer.Cancel()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if m.loader == nil || m.pages.Root == "" {
			return m, nil
		}
		return m, reloadCmd(m.loader, m.pages.Root)

	case key.Matches(msg, m.keys.Open):
		if page := m.currentPage(); page != nil {
			return m, showPageCmd(m.viewer, *page)
		}
		return m, nil
	}

	return m, m.animate()
}

// requestPage asks for a page through the bus, the same way any other
// owner of the pager would. The request comes back as a PageRequestMsg.
func (m *Model) requestPage(index int) {
	m.bus.Publish(eventbus.PageRequestedEvent{Index: index})
}

func (m *Model) pageChanged(index int) {
	// A snap-back keeps whatever the gate had to say about it
	if index != m.lastIndex {
		m.setStatus("", views.StatusInfo)
	}
	m.lastIndex = index
	title := ""
	if index < len(m.pages.Pages) {
		title = m.pages.Pages[index].Title
	}
	m.bus.Publish(eventbus.PageChangedEvent{Index: index, Title: title})
}

func (m *Model) vetoed(candidate int) {
	m.setStatus(fmt.Sprintf("Page %d is locked", candidate+1), views.StatusWarning)
	m.bus.Publish(eventbus.GateVetoedEvent{Candidate: candidate})
}

func (m *Model) reportError(what string, err error) {
	m.setStatus(fmt.Sprintf("%s: %v", what, err), views.StatusError)
	m.bus.Publish(eventbus.ErrorEvent{Message: what, Err: err})
}

func reloadCmd(l pages.Loader, root string) tea.Cmd {
	return func() tea.Msg {
		set, err := l.Load(context.Background(), root)
		return pagesReloadedMsg{set: set, err: err}
	}
}

func (m *Model) setStatus(msg string, kind views.StatusKind) {
	m.status = msg
	m.statusKind = kind
}

func (m *Model) currentPage() *domain.Page {
	i := m.controller.Index()
	if i < 0 || i >= len(m.pages.Pages) {
		return nil
	}
	return &m.pages.Pages[i]
}

// animate starts the frame loop if the scroll position is moving and no
// loop is running yet
func (m *Model) animate() tea.Cmd {
	if m.ticking || m.scroll.Settled() {
		m.controller.Sync()
		return nil
	}
	m.ticking = true
	return m.nextFrame()
}

func (m *Model) nextFrame() tea.Cmd {
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	return m.renderer.Render(views.ViewState{
		Width:      m.width,
		Height:     m.height,
		Pages:      m.pages.Pages,
		Index:      m.controller.Index(),
		Total:      m.controller.TotalPages(),
		Offset:     -m.controller.Translation() / m.pixelsPerCell,
		ShowPager:  m.config.Pager.ShowPager,
		Border:     m.config.Pager.ContainerBorder,
		Dragging:   m.controller.State() == paging.Dragging,
		Status:     m.status,
		StatusKind: m.statusKind,
		HelpView:   m.help.View(m.keys),
	})
}

// lockedGate refuses swipes into locked pages and reports each refusal
type lockedGate struct {
	locked paging.LockedPages
	onVeto func(candidate int)
}

func (g *lockedGate) ShouldContinue(candidate int) paging.Verdict {
	v := g.locked.ShouldContinue(candidate)
	if !v.Allows() && g.onVeto != nil {
		g.onVeto(candidate)
	}
	return v
}
