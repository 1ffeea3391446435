package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsaexplorer/internal/catalog"
	"dsaexplorer/internal/domain"
	"dsaexplorer/internal/ui/services/routing"
)

func baseState(path string) ViewState {
	return ViewState{
		Width:  120,
		Height: 40,
		Route:  routing.Parse(path),
	}
}

func TestCatalogNoResultsState(t *testing.T) {
	r := NewRenderer(ThemeDark)
	state := baseState("/")
	state.Catalog = CatalogState{Query: "graph", Category: "Trees", Difficulty: "Hard"}

	out := StripANSI(r.Render(state))
	assert.Contains(t, out, NoTopicsTitle)
	assert.Contains(t, out, NoTopicsHint)
}

func TestCatalogListsTopics(t *testing.T) {
	c := catalog.MustLoad()
	r := NewRenderer(ThemeLight)
	state := baseState("/")
	state.Catalog = CatalogState{
		Category:   domain.All,
		Difficulty: domain.All,
		Topics:     c.All(),
		Rows:       3,
		Total:      c.Len(),
		ShowStats:  true,
	}

	out := StripANSI(r.Render(state))
	assert.Contains(t, out, "Arrays")
	assert.Contains(t, out, "Binary Tree")
	assert.NotContains(t, out, "Shortest Path Algorithms")
	assert.Contains(t, out, "↓ 4 more below ↓")
	assert.Contains(t, out, "7+ DSA Topics")
	assert.NotContains(t, out, NoTopicsTitle)
}

func TestOverlayNoResults(t *testing.T) {
	r := NewRenderer(ThemeDark)
	state := baseState("/about")
	state.Overlay = OverlayState{Visible: true, Query: "zzz", Input: "zzz"}

	out := StripANSI(r.Render(state))
	assert.Contains(t, out, `No topics found matching "zzz"`)
}

func TestOverlayHiddenRendersNothing(t *testing.T) {
	r := NewRenderer(ThemeDark)
	state := baseState("/")
	state.Overlay = OverlayState{Visible: false, Query: "zzz"}

	out := StripANSI(r.Render(state))
	assert.NotContains(t, out, "No topics found matching")
}

func TestTopicNotFound(t *testing.T) {
	r := NewRenderer(ThemeDark)
	state := baseState("/topic/does-not-exist")
	state.Topic = TopicState{Found: false, ID: "does-not-exist"}

	out := StripANSI(r.Render(state))
	assert.Contains(t, out, NotFoundTitle)
	assert.Contains(t, out, BackToHome)
}

func TestUnknownRouteRendersNotFound(t *testing.T) {
	out := StripANSI(NewRenderer(ThemeDark).Render(baseState("/nowhere")))
	assert.Contains(t, out, NotFoundTitle)
}

func TestTopicBodyTabs(t *testing.T) {
	c := catalog.MustLoad()
	topic, ok := c.Get("arrays")
	require.True(t, ok)
	r := NewRenderer(ThemeDark)

	overview := StripANSI(r.TopicBody(topic, TabOverview, "python", 100))
	assert.Contains(t, overview, "Definition")
	assert.Contains(t, overview, "When to Use")

	algos := StripANSI(r.TopicBody(topic, TabAlgorithms, "cpp", 100))
	assert.Contains(t, algos, topic.Algorithms[0].Name)
	assert.Contains(t, algos, "No C++ implementation yet")

	problems := StripANSI(r.TopicBody(topic, TabProblems, "python", 100))
	assert.Contains(t, problems, topic.SampleProblems[0].Title)

	tips := StripANSI(r.PlainTopicBody(topic, TabTips, "python"))
	assert.True(t, strings.HasPrefix(tips, "Arrays"))
	assert.Contains(t, tips, "Interview Tips")
}

func TestNextLanguage(t *testing.T) {
	assert.Equal(t, "java", NextLanguage("python"))
	assert.Equal(t, "cpp", NextLanguage("java"))
	assert.Equal(t, "python", NextLanguage("cpp"))
	assert.Equal(t, "python", NextLanguage(""))
}

func TestPopupKeepsBaseAroundModal(t *testing.T) {
	pr := NewPopupRenderer(NewStyles(ThemeDark))
	base := strings.Join([]string{
		"0123456789012345678901234567890123456789",
		"abcdefghijabcdefghijabcdefghijabcdefghij",
		"ABCDEFGHIJABCDEFGHIJABCDEFGHIJABCDEFGHIJ",
	}, "\n")

	out := StripANSI(pr.RenderPopupAt(base, "POP", 3, 40, 1, lipgloss.NewStyle()))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "0123456789012345678901234567890123456789", lines[0])
	assert.Equal(t, "abcdefghijabcdefghPOPbcdefghijabcdefghij", lines[1])
	assert.Equal(t, 40, lipgloss.Width(lines[2]))
}

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeDark, ParseTheme("sepia"))

	r := NewRenderer(ThemeDark)
	r.SetTheme(ThemeLight)
	assert.Equal(t, ThemeLight, r.Theme())
}
