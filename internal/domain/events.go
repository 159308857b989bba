package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPagesLoaded   EventType = "PagesLoaded"
	EventPageChanged   EventType = "PageChanged"
	EventPageRequested EventType = "PageRequested"
	EventGateVetoed    EventType = "GateVetoed"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PagesLoadedEvent is emitted once a page source has been read
type PagesLoadedEvent struct {
	Root  string
	Count int
}

func (e PagesLoadedEvent) Type() EventType { return EventPagesLoaded }

// PageChangedEvent is emitted after every committed page change
type PageChangedEvent struct {
	Index int
	Title string
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// PageRequestedEvent asks the pager to show a page from outside the
// gesture path. The index is clamped by the receiver.
type PageRequestedEvent struct {
	Index int
}

func (e PageRequestedEvent) Type() EventType { return EventPageRequested }

// GateVetoedEvent is emitted when a swipe into a page was refused
type GateVetoedEvent struct {
	Candidate int
}

func (e GateVetoedEvent) Type() EventType { return EventGateVetoed }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path   string
	Source string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
