package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsaexplorer/internal/catalog"
	"dsaexplorer/internal/config"
	"dsaexplorer/internal/content"
	"dsaexplorer/internal/domain"
	"dsaexplorer/internal/eventbus"
	inputtypes "dsaexplorer/internal/ui/input/types"
	"dsaexplorer/internal/ui/views"
)

func newTestModel(t *testing.T, start string) *Model {
	t.Helper()
	pages, err := content.Load()
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.Playground.DelayMS = 0

	m := NewModel(nil, cfg, Options{
		Catalog:   catalog.MustLoad(),
		Pages:     pages,
		StartPath: start,
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func plainView(m *Model) string {
	return views.StripANSI(m.View())
}

// drain runs cmd and every command it batches, collecting the messages
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drain(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func TestOverlaySelectionResetsSessionAndNavigates(t *testing.T) {
	m := newTestModel(t, "/")

	m.Update(keyMsg(tea.KeyCtrlK))
	assert.True(t, m.session.OverlayVisible())
	assert.Equal(t, inputtypes.ModeOverlay, m.inputHandler.CurrentMode())

	typeText(m, "segment")
	assert.Equal(t, "segment", m.session.Query())
	assert.Contains(t, plainView(m), "Segment Tree")

	m.Update(keyMsg(tea.KeyEnter))

	snap := m.session.Snapshot()
	assert.Empty(t, snap.Query)
	assert.False(t, snap.OverlayVisible)
	assert.Equal(t, "/topic/segment-tree", m.router.Current().Path)
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())

	view := plainView(m)
	assert.Contains(t, view, "Segment Tree")
	assert.NotContains(t, view, views.NotFoundTitle)
}

func TestOverlayEscapeKeepsQuery(t *testing.T) {
	m := newTestModel(t, "/")

	m.Update(keyMsg(tea.KeyCtrlK))
	typeText(m, "tree")
	m.Update(keyMsg(tea.KeyEsc))

	assert.False(t, m.session.OverlayVisible())
	assert.Equal(t, "tree", m.session.Query())
	assert.Equal(t, "/", m.router.Current().Path)
	assert.Contains(t, plainView(m), "Search: tree")

	// Reopening starts from the kept query
	m.Update(keyMsg(tea.KeyCtrlK))
	require.NotNil(t, m.inputHandler.TextInput())
	assert.Equal(t, "tree", m.inputHandler.TextInput().Value())
}

func TestOverlayEnterWithoutResultsStaysOpen(t *testing.T) {
	m := newTestModel(t, "/")

	m.Update(keyMsg(tea.KeyCtrlK))
	typeText(m, "zzzz")
	assert.Contains(t, plainView(m), views.OverlayNoResults("zzzz"))

	m.Update(keyMsg(tea.KeyEnter))
	assert.True(t, m.session.OverlayVisible())
	assert.Equal(t, "/", m.router.Current().Path)
}

func TestHiddenOverlayIsNotRecomputed(t *testing.T) {
	m := newTestModel(t, "/")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	assert.Equal(t, inputtypes.ModeQueryEdit, m.inputHandler.CurrentMode())
	typeText(m, "arr")
	m.Update(keyMsg(tea.KeyEnter))
	_ = m.View()

	assert.Equal(t, "arr", m.session.Query())
	assert.Zero(t, m.overlayResults.Stats().Computations)
	assert.NotZero(t, m.catalogResults.Stats().Computations)
}

func TestClosedOverlayStaysIdle(t *testing.T) {
	m := newTestModel(t, "/")

	m.Update(keyMsg(tea.KeyCtrlK))
	typeText(m, "tree")
	_ = m.View()
	m.Update(keyMsg(tea.KeyEsc))
	require.False(t, m.session.OverlayVisible())

	before := m.overlayResults.Stats()
	require.NotZero(t, before.Computations)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	typeText(m, "s")
	_ = m.View()
	m.Update(keyMsg(tea.KeyEnter))
	m.Update(keyMsg(tea.KeyDown))
	_ = m.View()

	assert.Equal(t, "trees", m.session.Query())
	assert.Equal(t, before, m.overlayResults.Stats())
}

func TestQueryEditEscapeRestoresQuery(t *testing.T) {
	m := newTestModel(t, "/")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	typeText(m, "graph")
	assert.Equal(t, "graph", m.session.Query())

	m.Update(keyMsg(tea.KeyEsc))
	assert.Empty(t, m.session.Query())
}

func TestCatalogFiltersWithNoMatches(t *testing.T) {
	m := newTestModel(t, "/")

	// Linear Data Structures is the first category after All
	typeText(m, "c")
	assert.Equal(t, inputtypes.ModeCategorySelect, m.inputHandler.CurrentMode())
	typeText(m, "j")
	m.Update(keyMsg(tea.KeyEnter))
	assert.Equal(t, "Linear Data Structures", m.category)

	// Up from All wraps around to Hard
	typeText(m, "d")
	typeText(m, "k")
	m.Update(keyMsg(tea.KeyEnter))
	assert.Equal(t, string(domain.DifficultyHard), m.difficulty)

	view := plainView(m)
	assert.Contains(t, view, views.NoTopicsTitle)
	assert.Contains(t, view, views.NoTopicsHint)

	typeText(m, "x")
	assert.Equal(t, domain.All, m.category)
	assert.Equal(t, domain.All, m.difficulty)
	assert.NotContains(t, plainView(m), views.NoTopicsTitle)
}

func TestCategoryPickerEscapeRestores(t *testing.T) {
	m := newTestModel(t, "/")

	typeText(m, "c")
	typeText(m, "jj")
	assert.Equal(t, "Trees", m.category)
	for _, topic := range m.catalogTopics() {
		assert.Equal(t, "Trees", topic.Category)
	}

	m.Update(keyMsg(tea.KeyEsc))
	assert.Equal(t, domain.All, m.category)
	assert.Len(t, m.catalogTopics(), 7)
}

func TestCatalogEnterOpensTopicUnderCursor(t *testing.T) {
	m := newTestModel(t, "/")

	typeText(m, "jj")
	m.Update(keyMsg(tea.KeyEnter))
	assert.Equal(t, "/topic/binary-tree", m.router.Current().Path)

	typeText(m, "b")
	assert.Equal(t, "/", m.router.Current().Path)
}

func TestUnknownRoutesRenderNotFound(t *testing.T) {
	for _, start := range []string{"/topic/nope", "/no-such-page"} {
		t.Run(start, func(t *testing.T) {
			m := newTestModel(t, start)

			view := plainView(m)
			assert.Contains(t, view, views.NotFoundTitle)
			assert.Contains(t, view, views.BackToHome)

			m.Update(keyMsg(tea.KeyEnter))
			assert.Equal(t, "/", m.router.Current().Path)
			assert.Contains(t, plainView(m), "Explore DSA Topics")
		})
	}
}

func TestTopicTabsAndLanguage(t *testing.T) {
	m := newTestModel(t, "/topic/arrays")

	m.Update(keyMsg(tea.KeyTab))
	assert.Equal(t, views.TabAlgorithms, m.topicTab)
	assert.Equal(t, "python", m.language)

	typeText(m, "L")
	assert.Equal(t, "java", m.language)

	typeText(m, "4")
	assert.Equal(t, views.TabTips, m.topicTab)

	m.Update(keyMsg(tea.KeyShiftTab))
	assert.Equal(t, views.TabProblems, m.topicTab)

	// Without history esc goes home
	m.Update(keyMsg(tea.KeyEsc))
	assert.Equal(t, "/", m.router.Current().Path)
}

func TestPlaygroundRun(t *testing.T) {
	m := newTestModel(t, "/")

	m.Update(keyMsg(tea.KeyF2))
	require.Equal(t, "/playground", m.router.Current().Path)

	_, cmd := m.Update(keyMsg(tea.KeyCtrlR))
	assert.True(t, m.running)

	for _, msg := range drain(cmd) {
		if res, ok := msg.(runResultMsg); ok {
			m.Update(res)
		}
	}

	assert.False(t, m.running)
	assert.Equal(t, "fResult: {result}", m.output)

	m.Update(keyMsg(tea.KeyCtrlN))
	assert.Equal(t, 0, m.sample)
	assert.Empty(t, m.output)

	typeText(m, "L")
	assert.Equal(t, "java", m.editorLanguage)
}

func TestStaleRunResultIsDropped(t *testing.T) {
	m := newTestModel(t, "/playground")

	m.runCode()
	m.runCode()
	m.Update(runResultMsg{seq: 1})
	assert.True(t, m.running)
}

func TestContactFormValidation(t *testing.T) {
	m := newTestModel(t, "/contact")

	m.Update(keyMsg(tea.KeyEnter))
	require.Equal(t, inputtypes.ModeContact, m.inputHandler.CurrentMode())

	m.Update(keyMsg(tea.KeyCtrlS))
	assert.Equal(t, "Full Name is required", m.contactError)

	typeText(m, "Ada")
	m.Update(keyMsg(tea.KeyTab))
	typeText(m, "bad")
	m.Update(keyMsg(tea.KeyTab))
	typeText(m, "Hi")
	m.Update(keyMsg(tea.KeyTab))
	typeText(m, "Hello")
	m.Update(keyMsg(tea.KeyEnter))
	assert.Equal(t, "Please enter a valid email address", m.contactError)
	assert.Equal(t, contactEmail, m.contactFocus)

	typeText(m, "@example.com")
	m.Update(keyMsg(tea.KeyCtrlS))

	assert.Empty(t, m.contactError)
	assert.NotEmpty(t, m.contactRef)
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Empty(t, m.contactInputs[0].Value())
	assert.Contains(t, plainView(m), views.ContactThanks)
}

func TestFAQToggle(t *testing.T) {
	m := newTestModel(t, "/faq")

	typeText(m, "j")
	m.Update(keyMsg(tea.KeyEnter))
	assert.Equal(t, 1, m.faqOpen)

	m.Update(keyMsg(tea.KeyEnter))
	assert.Equal(t, -1, m.faqOpen)
}

func TestThemeIsSavedOnQuit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := config.NewConfigService(path)
	m := newTestModel(t, "/")
	m.configSvc = svc

	typeText(m, "t")
	assert.Equal(t, views.ThemeLight, m.renderer.Theme())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, quitMsg{saveConfig: true}, msg)
	m.Update(msg)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UISettings.Theme)
}

func TestHelpPopupSwallowsNextKey(t *testing.T) {
	m := newTestModel(t, "/")

	typeText(m, "?")
	assert.True(t, m.showHelp)
	assert.Contains(t, plainView(m), "DSA Explorer Help")

	typeText(m, "j")
	assert.False(t, m.showHelp)
	assert.Zero(t, m.catalogNav.GetCursor())
}

func TestErrorsReachStatusLine(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	errs := make(chan eventbus.DomainEvent, 4)
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) { errs <- e })

	m := newTestModel(t, "/playground")
	m.bus = bus

	next := func(t *testing.T) EventMsg {
		t.Helper()
		select {
		case e := <-errs:
			return EventMsg{Event: e}
		case <-time.After(2 * time.Second):
			t.Fatal("no error event published")
			return EventMsg{}
		}
	}

	tests := []struct {
		name    string
		trigger func()
		want    string
	}{
		{
			name: "run failure",
			trigger: func() {
				m.runCode()
				m.Update(runResultMsg{seq: m.runSeq, err: context.DeadlineExceeded})
			},
			want: "Playground run failed: context deadline exceeded",
		},
		{
			name: "config save failure",
			trigger: func() {
				blocker := filepath.Join(t.TempDir(), "blocker")
				require.NoError(t, os.WriteFile(blocker, nil, 0644))
				m.configSvc = config.NewConfigService(filepath.Join(blocker, "config.toml"))
				m.saveConfig()
			},
			want: "Failed to save config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.trigger()
			m.Update(next(t))
			assert.True(t, m.statusIsError)
			assert.Contains(t, m.statusMessage, tt.want)
			assert.Contains(t, plainView(m), tt.want)
		})
	}
}
