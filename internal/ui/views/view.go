package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dsaexplorer/internal/content"
	"dsaexplorer/internal/ui/services/routing"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Route         routing.Route
	ModeName      string
	StatusMessage string
	StatusIsError bool
	ShowHelp      bool
	HelpContent   string // full key help
	HelpLine      string // short key help for the footer

	Catalog    CatalogState
	Overlay    OverlayState
	Topic      TopicState
	About      content.About
	FAQ        FAQState
	Roadmap    RoadmapState
	Playground PlaygroundState
	Contact    ContactState
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(theme Theme) *Renderer {
	styles := NewStyles(theme)
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// SetTheme rebuilds the styles for a theme
func (r *Renderer) SetTheme(theme Theme) {
	r.styles = NewStyles(theme)
	r.popupRender = NewPopupRenderer(r.styles)
}

// Theme returns the active theme
func (r *Renderer) Theme() Theme {
	return r.styles.Theme
}

// Styles returns the active styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	height := state.Height
	if height <= 0 {
		height = 24
	}
	inner := width - 4 // Main container padding

	body := &strings.Builder{}
	body.WriteString(r.renderHeader(state.Route, inner))
	body.WriteString("\n\n")
	body.WriteString(r.renderPage(state, inner))

	footer := r.renderFooter(state)

	// Push the footer to the bottom
	currentLines := strings.Count(body.String(), "\n") + 1
	footerLines := strings.Count(footer, "\n") + 1
	availableLines := height - 2
	if padding := availableLines - currentLines - footerLines; padding > 0 {
		body.WriteString(strings.Repeat("\n", padding))
	}
	body.WriteString("\n")
	body.WriteString(footer)

	finalContent := r.styles.Main.MaxHeight(height).Render(body.String())

	if state.Overlay.Visible {
		popup := r.renderOverlay(state.Overlay, width)
		return r.popupRender.RenderPopupAt(finalContent, popup, height, width, 3, r.styles.PopupBox)
	}

	if state.ShowHelp && state.HelpContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, state.HelpContent, height, width, r.styles.InfoBox)
	}

	return finalContent
}

func (r *Renderer) renderPage(state ViewState, width int) string {
	switch state.Route.Page {
	case routing.PageCatalog:
		return r.renderCatalog(state.Catalog, width)
	case routing.PageTopic:
		return r.renderTopic(state.Topic, state.Route.Path)
	case routing.PagePlayground:
		return r.renderPlayground(state.Playground)
	case routing.PageAbout:
		return r.renderAbout(state.About, width)
	case routing.PageContact:
		return r.renderContact(state.Contact)
	case routing.PageFAQ:
		return r.renderFAQ(state.FAQ, width)
	case routing.PageRoadmap:
		return r.renderRoadmap(state.Roadmap)
	default:
		return r.renderNotFound(state.Route.Path)
	}
}

func (r *Renderer) renderHeader(route routing.Route, width int) string {
	s := r.styles
	brand := s.Brand.Render("DSA Explorer")

	links := make([]string, len(routing.NavLinks))
	for i, l := range routing.NavLinks {
		label := fmt.Sprintf("%s %s", l.Key, l.Label)
		if l.Path == route.Path {
			links[i] = s.NavActive.Render(label)
		} else {
			links[i] = s.NavItem.Render(label)
		}
	}
	nav := lipgloss.JoinHorizontal(lipgloss.Top, links...)

	themeIcon := "☾"
	if !s.Theme.IsDark() {
		themeIcon = "☀"
	}
	right := s.Dim.Render("ctrl+k search  " + themeIcon)

	left := brand + "  " + nav
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right); pad > 0 {
		return left + strings.Repeat(" ", pad) + right
	}
	return left + "  " + right
}

func (r *Renderer) renderFooter(state ViewState) string {
	s := r.styles
	var lines []string

	if state.StatusMessage != "" {
		if state.StatusIsError {
			lines = append(lines, s.StatusError.Render(state.StatusMessage))
		} else {
			lines = append(lines, s.StatusSuccess.Render(state.StatusMessage))
		}
	}

	help := state.HelpLine
	if help == "" {
		help = "Press ? for help"
	}
	if state.ModeName != "" && state.ModeName != "normal" {
		help = "[" + state.ModeName + "] " + help
	}
	lines = append(lines, s.Help.Render(help))

	return strings.Join(lines, "\n")
}
