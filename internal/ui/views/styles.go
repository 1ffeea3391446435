package views

import (
	"github.com/charmbracelet/lipgloss"

	"dsaexplorer/internal/domain"
)

// Theme selects one of the two palettes
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// IsDark reports whether t is the dark theme
func (t Theme) IsDark() bool {
	return t != ThemeLight
}

// ParseTheme maps a config value to a theme, defaulting to dark
func ParseTheme(s string) Theme {
	if s == string(ThemeLight) {
		return ThemeLight
	}
	return ThemeDark
}

type palette struct {
	accent, text, muted, faint, border, selection lipgloss.Color
	easy, medium, hard, errorFg, success         lipgloss.Color
}

var palettes = map[Theme]palette{
	ThemeDark: {
		accent:    "99",
		text:      "252",
		muted:     "245",
		faint:     "241",
		border:    "238",
		selection: "237",
		easy:      "78",
		medium:    "214",
		hard:      "203",
		errorFg:   "203",
		success:   "78",
	},
	ThemeLight: {
		accent:    "27",
		text:      "235",
		muted:     "240",
		faint:     "246",
		border:    "250",
		selection: "254",
		easy:      "28",
		medium:    "130",
		hard:      "160",
		errorFg:   "160",
		success:   "28",
	},
}

// Styles contains all the style definitions for the UI
type Styles struct {
	Theme Theme

	Title         lipgloss.Style
	Brand         lipgloss.Style
	NavItem       lipgloss.Style
	NavActive     lipgloss.Style
	Heading       lipgloss.Style
	Section       lipgloss.Style
	Text          lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Key           lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	Selected      lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	Tag           lipgloss.Style
	Code          lipgloss.Style
	Link          lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	PopupBox      lipgloss.Style
	InfoBox       lipgloss.Style
	Empty         lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style

	easy, medium, hard lipgloss.Style
	faint              lipgloss.Color
}

// NewStyles creates the styles for a theme
func NewStyles(theme Theme) *Styles {
	p, ok := palettes[theme]
	if !ok {
		theme = ThemeDark
		p = palettes[ThemeDark]
	}

	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	return &Styles{
		Theme: theme,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),
		Brand:     lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		NavItem:   lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		NavActive: lipgloss.NewStyle().Bold(true).Foreground(p.accent).Underline(true).Padding(0, 1),
		Heading:   lipgloss.NewStyle().Bold(true).Foreground(p.text),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent).
			MarginTop(1),
		Text:  lipgloss.NewStyle().Foreground(p.text),
		Dim:   lipgloss.NewStyle().Foreground(p.muted),
		Help:  lipgloss.NewStyle().Faint(true),
		Key:   lipgloss.NewStyle().Foreground(p.medium),
		Main:  lipgloss.NewStyle().Padding(1, 2),
		Scroll: lipgloss.NewStyle().
			Foreground(p.faint).
			Italic(true),
		Highlight: lipgloss.NewStyle().Foreground(p.medium).Bold(true),
		Selected:  lipgloss.NewStyle().Background(p.selection),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),
		Tag:         lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		Code:        lipgloss.NewStyle().Foreground(p.text).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(p.border).PaddingLeft(1),
		Link:        lipgloss.NewStyle().Foreground(p.accent).Underline(true),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(p.accent).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),
		PopupBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(p.faint),
		Empty:         lipgloss.NewStyle().Foreground(p.muted).Align(lipgloss.Center),
		StatusError:   lipgloss.NewStyle().Foreground(p.errorFg),
		StatusSuccess: lipgloss.NewStyle().Foreground(p.success),

		easy:   badge.Foreground(p.easy),
		medium: badge.Foreground(p.medium),
		hard:   badge.Foreground(p.hard),
		faint:  p.faint,
	}
}

// Difficulty renders a difficulty badge
func (s *Styles) Difficulty(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyEasy:
		return s.easy.Render(string(d))
	case domain.DifficultyMedium:
		return s.medium.Render(string(d))
	case domain.DifficultyHard:
		return s.hard.Render(string(d))
	default:
		return s.Dim.Render(string(d))
	}
}

// CategoryIcon returns the glyph shown on topic cards
func CategoryIcon(category string) string {
	switch category {
	case "Linear Data Structures":
		return "📊"
	case "Trees":
		return "🌳"
	case "Graphs":
		return "🕸"
	case "Algorithms":
		return "⚡"
	default:
		return "💡"
	}
}
