package routing

import (
	"log"
	"strings"
	"sync"

	"dsaexplorer/internal/eventbus"
)

var staticPages = map[string]Page{
	"/":           PageCatalog,
	"/playground": PagePlayground,
	"/about":      PageAbout,
	"/contact":    PageContact,
	"/faq":        PageFAQ,
	"/roadmap":    PageRoadmap,
}

// Parse maps a path to a route. Unknown paths yield PageNotFound; topic ids
// are not checked against the catalog here.
func Parse(path string) Route {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		path = Home
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	if page, ok := staticPages[path]; ok {
		return Route{Path: path, Page: page}
	}

	if id, ok := strings.CutPrefix(path, "/topic/"); ok && id != "" && !strings.Contains(id, "/") {
		return Route{Path: path, Page: PageTopic, TopicID: id}
	}

	return Route{Path: path, Page: PageNotFound}
}

// Service keeps the current route and a back stack
type Service struct {
	mu      sync.RWMutex
	current Route
	history []Route
	bus     eventbus.EventBus
}

// NewService creates a router positioned at the given path
func NewService(bus eventbus.EventBus, start string) *Service {
	return &Service{
		current: Parse(start),
		bus:     bus,
	}
}

// Current returns the current route
func (s *Service) Current() Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Navigate moves to path, pushing the current route on the back stack.
// Navigating to the current path does nothing.
func (s *Service) Navigate(path string) Route {
	next := Parse(path)

	s.mu.Lock()
	from := s.current
	if from.Path == next.Path {
		s.mu.Unlock()
		return from
	}
	s.history = append(s.history, from)
	s.current = next
	s.mu.Unlock()

	log.Printf("Router: %s -> %s (%s)", from.Path, next.Path, next.Page)
	s.publish(from, next)
	return next
}

// Back returns to the previous route. It reports false when there is none.
func (s *Service) Back() (Route, bool) {
	s.mu.Lock()
	if len(s.history) == 0 {
		current := s.current
		s.mu.Unlock()
		return current, false
	}
	from := s.current
	s.current = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	to := s.current
	s.mu.Unlock()

	s.publish(from, to)
	return to, true
}

// Depth returns the number of routes on the back stack
func (s *Service) Depth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

func (s *Service) publish(from, to Route) {
	if s.bus != nil {
		s.bus.Publish(eventbus.NavigatedEvent{From: from.Path, To: to.Path})
	}
}
