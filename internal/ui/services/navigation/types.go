package navigation

// State holds the cursor of one list
type State struct {
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	MaxIndex       int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// CursorMovedEvent is published when the cursor of a list changes
type CursorMovedEvent struct {
	List     string
	OldIndex int
	NewIndex int
}

// ViewportChangedEvent is published when a list scrolls
type ViewportChangedEvent struct {
	List   string
	Offset int
	Height int
}
