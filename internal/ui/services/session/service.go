package session

import (
	"log"
	"sync"

	"dsaexplorer/internal/eventbus"
)

// Service owns the search query and the overlay visibility shared by the
// catalog page and the global search overlay
type Service struct {
	mu         sync.RWMutex
	state      State
	bus        eventbus.EventBus
	navigateFn func(string) // Function to navigate to a path
}

// NewService creates a new session service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{bus: bus}
}

// SetNavigateFunction sets the function used to navigate to a path
func (s *Service) SetNavigateFunction(fn func(string)) {
	s.navigateFn = fn
}

// SetQuery replaces the query verbatim
func (s *Service) SetQuery(text string) {
	s.mu.Lock()
	if s.state.Query == text {
		s.mu.Unlock()
		return
	}
	s.state.Query = text
	s.mu.Unlock()

	s.publish(eventbus.QueryChangedEvent{Query: text})
}

// OpenOverlay shows the global search overlay
func (s *Service) OpenOverlay() {
	s.mu.Lock()
	wasVisible := s.state.OverlayVisible
	s.state.OverlayVisible = true
	s.mu.Unlock()

	if !wasVisible {
		s.publish(eventbus.OverlayOpenedEvent{})
	}
}

// CloseOverlay hides the overlay. The query is kept.
func (s *Service) CloseOverlay() {
	s.mu.Lock()
	wasVisible := s.state.OverlayVisible
	s.state.OverlayVisible = false
	query := s.state.Query
	s.mu.Unlock()

	if wasVisible {
		s.publish(eventbus.OverlayClosedEvent{Query: query})
	}
}

// SelectTopic hides the overlay, clears the query and navigates to the
// topic. Both fields change under one lock.
func (s *Service) SelectTopic(id string) {
	s.mu.Lock()
	hadQuery := s.state.Query != ""
	s.state = State{}
	s.mu.Unlock()

	log.Printf("Search session: selected topic %q", id)

	if s.navigateFn != nil {
		s.navigateFn(TopicPath(id))
	}
	if hadQuery {
		s.publish(eventbus.QueryChangedEvent{Query: ""})
	}
	s.publish(eventbus.TopicSelectedEvent{TopicID: id})
}

// Snapshot returns a consistent copy of the session
func (s *Service) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Query returns the current query
func (s *Service) Query() string {
	return s.Snapshot().Query
}

// OverlayVisible reports whether the overlay is shown
func (s *Service) OverlayVisible() bool {
	return s.Snapshot().OverlayVisible
}

func (s *Service) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
