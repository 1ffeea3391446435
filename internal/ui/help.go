package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"dsaexplorer/internal/ui/services/routing"
	"dsaexplorer/internal/ui/views"
)

// keyMap lists the bindings shown in the footer and the help popup. Input
// modes do the actual key matching; these only describe them.
type keyMap struct {
	Search   key.Binding
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Back     key.Binding
	Filter   key.Binding
	Category key.Binding
	Level    key.Binding
	Clear    key.Binding
	Tabs     key.Binding
	Language key.Binding
	Pager    key.Binding
	Run      key.Binding
	Edit     key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Search:   key.NewBinding(key.WithKeys("ctrl+k", "s"), key.WithHelp("ctrl+k", "search")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b/esc", "back")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		Level:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "difficulty")),
		Clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
		Tabs:     key.NewBinding(key.WithKeys("tab", "shift+tab", "1", "2", "3", "4"), key.WithHelp("tab/1-4", "tabs")),
		Language: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "language")),
		Pager:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "pager")),
		Run:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "run")),
		Edit:     key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter", "edit")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// pageKeys returns the footer bindings for a page
func (k keyMap) pageKeys(page routing.Page) []key.Binding {
	switch page {
	case routing.PageCatalog:
		return []key.Binding{k.Up, k.Down, k.Open, k.Filter, k.Category, k.Level, k.Search, k.Help, k.Quit}
	case routing.PageTopic:
		return []key.Binding{k.Tabs, k.Language, k.Pager, k.Back, k.Search, k.Help, k.Quit}
	case routing.PagePlayground:
		return []key.Binding{k.Edit, k.Run, k.Language, k.Search, k.Help, k.Quit}
	case routing.PageContact:
		return []key.Binding{k.Edit, k.Search, k.Help, k.Quit}
	case routing.PageNotFound:
		return []key.Binding{k.Open, k.Back, k.Search, k.Quit}
	default:
		return []key.Binding{k.Up, k.Down, k.Open, k.Back, k.Search, k.Help, k.Quit}
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Back},
		{k.Filter, k.Category, k.Level, k.Clear},
		{k.Tabs, k.Language, k.Pager},
		{k.Run, k.Edit, k.Search, k.Theme, k.Help, k.Quit},
	}
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys keyMap
	help help.Model
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{keys: newKeyMap(), help: help.New()}
}

// SetWidth limits the footer help to width columns
func (r *HelpRenderer) SetWidth(width int) {
	r.help.Width = width
}

// ShortLine renders the footer help for a page
func (r *HelpRenderer) ShortLine(page routing.Page) string {
	return r.help.ShortHelpView(r.keys.pageKeys(page))
}

// RenderHelpContent renders the compact help popup
func (r *HelpRenderer) RenderHelpContent(styles *views.Styles) string {
	full := r.help
	full.ShowAll = true
	return styles.Title.Render("DSA Explorer Help") + "\n\n" +
		full.FullHelpView(r.keys.FullHelp()) + "\n\n" +
		styles.Help.Render("o full help in pager • any other key closes")
}

// RenderHelpContentPlain renders the help for the pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	plain := lipgloss.NewStyle()
	return r.render(plain.Bold(true), plain.Bold(true), plain, plain)
}

func (r *HelpRenderer) render(titleStyle, sectionStyle, keyStyle, descStyle lipgloss.Style) string {
	var b strings.Builder
	row := func(keys, desc string) {
		b.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-14s", keys)), descStyle.Render(desc)))
	}

	b.WriteString(titleStyle.Render("DSA Explorer Help"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Pages"))
	b.WriteString("\n")
	for _, l := range routing.NavLinks {
		row(l.Key, l.Label)
	}
	row("b/esc", "Back")
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	row("↑/↓, j/k", "Move up/down")
	row("PgUp/PgDn", "Page up/down")
	row("gg/G", "Go to top/bottom")
	row("enter", "Open topic")
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Search & Filter"))
	b.WriteString("\n")
	row("ctrl+k, s", "Search all topics")
	row("/", "Edit the catalog search")
	row("c", "Choose category")
	row("d", "Choose difficulty")
	row("x", "Clear search and filters")
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Topic"))
	b.WriteString("\n")
	row("tab, ←/→", "Switch tab")
	row("1-4", "Jump to tab")
	row("L", "Switch code language")
	row("o", "Open in pager")
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Playground"))
	b.WriteString("\n")
	row("enter", "Edit code")
	row("ctrl+r", "Run")
	row("ctrl+l", "Reset to starter")
	row("ctrl+n", "Next sample")
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Other"))
	b.WriteString("\n")
	row("t", "Toggle theme")
	row("?", "Toggle this help")
	b.WriteString(fmt.Sprintf("  %s  %s", keyStyle.Render(fmt.Sprintf("%-14s", "q")), descStyle.Render("Quit")))

	return b.String()
}
