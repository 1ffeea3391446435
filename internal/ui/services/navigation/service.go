package navigation

import (
	"dsaexplorer/internal/ui/services/events"
)

// Service moves a cursor over a list whose length it learns from maxFn
type Service struct {
	name  string
	state *State
	bus   events.EventBus
	maxFn func() int // Function returning the last selectable index
}

// NewService creates a cursor for the named list
func NewService(name string, bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		name: name,
		state: &State{
			ViewportHeight: 10, // Default, will be updated
		},
		bus: bus,
	}
}

// SetMaxIndexFunction sets the function reporting the last selectable index
func (s *Service) SetMaxIndexFunction(fn func() int) {
	s.maxFn = fn
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns how many rows of the list are visible
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates the number of visible rows
func (s *Service) SetViewportHeight(rows int) {
	if rows < 1 {
		rows = 1
	}
	s.state.ViewportHeight = rows
	s.ensureVisible()
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	s.refreshMax()
	oldCursor := s.state.Cursor

	switch direction {
	case DirectionUp:
		if s.state.Cursor > 0 {
			s.state.Cursor--
		}
	case DirectionDown:
		if s.state.Cursor < s.state.MaxIndex {
			s.state.Cursor++
		}
	case DirectionPageUp:
		s.state.Cursor = s.clampIndex(s.state.Cursor - s.pageSize())
	case DirectionPageDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + s.pageSize())
	case DirectionHome:
		s.state.Cursor = 0
	case DirectionEnd:
		s.state.Cursor = s.state.MaxIndex
	}

	s.ensureVisible()
	s.publishMove(oldCursor)
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	s.refreshMax()
	oldCursor := s.state.Cursor
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
	s.publishMove(oldCursor)
}

// Reset moves the cursor back to the top, used when the list contents change
func (s *Service) Reset() {
	oldCursor := s.state.Cursor
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
	s.publishMove(oldCursor)
}

// Clamp pulls the cursor back inside the list after it shrank
func (s *Service) Clamp() {
	s.MoveToIndex(s.state.Cursor)
}

func (s *Service) refreshMax() {
	if s.maxFn != nil {
		s.state.MaxIndex = s.maxFn()
	}
	if s.state.MaxIndex < 0 {
		s.state.MaxIndex = 0
	}
}

func (s *Service) pageSize() int {
	if s.state.ViewportHeight > 1 {
		return s.state.ViewportHeight - 1
	}
	return 1
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index > s.state.MaxIndex {
		return s.state.MaxIndex
	}
	return index
}

func (s *Service) publishMove(oldCursor int) {
	if oldCursor != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			List:     s.name,
			OldIndex: oldCursor,
			NewIndex: s.state.Cursor,
		})
	}
}

func (s *Service) ensureVisible() {
	offset := s.state.ViewportOffset
	if s.state.Cursor < offset {
		offset = s.state.Cursor
	} else if s.state.Cursor >= offset+s.state.ViewportHeight {
		offset = s.state.Cursor - s.state.ViewportHeight + 1
	}

	if offset != s.state.ViewportOffset {
		s.state.ViewportOffset = offset
		s.bus.Publish(ViewportChangedEvent{
			List:   s.name,
			Offset: offset,
			Height: s.state.ViewportHeight,
		})
	}
}
