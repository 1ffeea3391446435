package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"dsaexplorer/internal/ui/services/routing"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeOverlay
	ModeQueryEdit
	ModeCategorySelect
	ModeDifficultySelect
	ModePlayground
	ModeContact
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentPage() routing.Page
	TopicFound() bool
	CurrentIndex() int
	ItemCount() int
	CurrentTopicID() string
	SearchQuery() string
	CurrentCategory() string
	CurrentDifficulty() string
	CanGoBack() bool
	OverlayResultCount() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
