package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsaexplorer/internal/eventbus"
)

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(event eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) Close() {}

func (b *recordingBus) types() []eventbus.EventType {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []eventbus.EventType
	for _, e := range b.events {
		out = append(out, e.Type())
	}
	return out
}

func TestNewSessionIsEmpty(t *testing.T) {
	s := NewService(&recordingBus{})
	assert.Equal(t, State{}, s.Snapshot())
}

func TestSetQueryIsVerbatim(t *testing.T) {
	bus := &recordingBus{}
	s := NewService(bus)

	s.SetQuery("  Tree ")
	assert.Equal(t, "  Tree ", s.Query())

	// Same text again is not a change
	s.SetQuery("  Tree ")
	assert.Equal(t, []eventbus.EventType{eventbus.EventQueryChanged}, bus.types())
}

func TestCloseOverlayKeepsQuery(t *testing.T) {
	bus := &recordingBus{}
	s := NewService(bus)

	s.OpenOverlay()
	s.SetQuery("graph")
	assert.True(t, s.OverlayVisible())

	s.CloseOverlay()
	assert.Equal(t, State{Query: "graph", OverlayVisible: false}, s.Snapshot())
	assert.Equal(t, []eventbus.EventType{
		eventbus.EventOverlayOpened,
		eventbus.EventQueryChanged,
		eventbus.EventOverlayClosed,
	}, bus.types())
}

func TestOverlayToggleIsIdempotent(t *testing.T) {
	bus := &recordingBus{}
	s := NewService(bus)

	s.CloseOverlay()
	s.OpenOverlay()
	s.OpenOverlay()
	assert.Equal(t, []eventbus.EventType{eventbus.EventOverlayOpened}, bus.types())
}

func TestSelectTopicResetsAndNavigates(t *testing.T) {
	bus := &recordingBus{}
	s := NewService(bus)

	var navigated []string
	var seenAtNavigation State
	s.SetNavigateFunction(func(path string) {
		navigated = append(navigated, path)
		seenAtNavigation = s.Snapshot()
	})

	s.OpenOverlay()
	s.SetQuery("array")
	s.SelectTopic("arrays")

	assert.Equal(t, State{}, s.Snapshot())
	assert.Equal(t, []string{"/topic/arrays"}, navigated)
	// Navigation already sees the reset session
	assert.Equal(t, State{}, seenAtNavigation)

	types := bus.types()
	require.NotEmpty(t, types)
	assert.Equal(t, eventbus.EventTopicSelected, types[len(types)-1])
}

func TestSelectTopicWithoutNavigator(t *testing.T) {
	s := NewService(nil)
	s.OpenOverlay()
	s.SetQuery("x")

	assert.NotPanics(t, func() { s.SelectTopic("nope") })
	assert.Equal(t, State{}, s.Snapshot())
}

func TestSnapshotNeverHalfApplied(t *testing.T) {
	s := NewService(nil)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	bad := make(chan State, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			st := s.Snapshot()
			// The writer only produces {q, true} and {"", false}
			if st.OverlayVisible != (st.Query != "") {
				select {
				case bad <- st:
				default:
				}
			}
		}
	}()

	for i := 0; i < 2000; i++ {
		s.mu.Lock()
		s.state = State{Query: "q", OverlayVisible: true}
		s.mu.Unlock()
		s.SelectTopic("arrays")
	}
	close(stop)
	wg.Wait()

	select {
	case st := <-bad:
		t.Fatalf("observed half-applied session %+v", st)
	default:
	}
}
