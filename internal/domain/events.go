package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged     EventType = "QueryChanged"
	EventOverlayOpened    EventType = "OverlayOpened"
	EventOverlayClosed    EventType = "OverlayClosed"
	EventTopicSelected    EventType = "TopicSelected"
	EventNavigated        EventType = "Navigated"
	EventThemeToggled     EventType = "ThemeToggled"
	EventContactSubmitted EventType = "ContactSubmitted"
	EventPlaygroundRun    EventType = "PlaygroundRun"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent is emitted when the shared search query is replaced
type QueryChangedEvent struct {
	Query string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// OverlayOpenedEvent is emitted when the global search overlay becomes visible
type OverlayOpenedEvent struct{}

func (e OverlayOpenedEvent) Type() EventType { return EventOverlayOpened }

// OverlayClosedEvent is emitted when the overlay is dismissed without a selection
type OverlayClosedEvent struct {
	Query string // query retained after closing
}

func (e OverlayClosedEvent) Type() EventType { return EventOverlayClosed }

// TopicSelectedEvent is emitted when a topic is picked from the overlay
type TopicSelectedEvent struct {
	TopicID string
}

func (e TopicSelectedEvent) Type() EventType { return EventTopicSelected }

// NavigatedEvent is emitted when the router changes the current path
type NavigatedEvent struct {
	From string
	To   string
}

func (e NavigatedEvent) Type() EventType { return EventNavigated }

// ThemeToggledEvent is emitted when the light/dark theme flips
type ThemeToggledEvent struct {
	Dark bool
}

func (e ThemeToggledEvent) Type() EventType { return EventThemeToggled }

// ContactSubmittedEvent is emitted when the contact form passes validation
type ContactSubmittedEvent struct {
	Reference string
	Name      string
	Email     string
	Subject   string
}

func (e ContactSubmittedEvent) Type() EventType { return EventContactSubmitted }

// PlaygroundRunEvent is emitted when the playground finishes a run
type PlaygroundRunEvent struct {
	Language string
	Lines    int
}

func (e PlaygroundRunEvent) Type() EventType { return EventPlaygroundRun }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
