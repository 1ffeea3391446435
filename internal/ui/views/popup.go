package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered on top of main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	y := (height - lipgloss.Height(styledPopup)) / 2
	return pr.compose(mainContent, styledPopup, height, width, y)
}

// RenderPopupAt renders a popup horizontally centered, top rows from the top
func (pr *PopupRenderer) RenderPopupAt(mainContent, popupContent string, height, width, top int, popupStyle lipgloss.Style) string {
	return pr.compose(mainContent, popupStyle.Render(popupContent), height, width, top)
}

func (pr *PopupRenderer) compose(mainContent, styledPopup string, height, width, y int) string {
	modalW := lipgloss.Width(styledPopup)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(ansiRE.ReplaceAllString(mainContent, ""), "\n")
	popupLines := strings.Split(styledPopup, "\n")

	for len(baseLines) < height || len(baseLines) < y+len(popupLines) {
		baseLines = append(baseLines, "")
	}

	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	out := make([]string, len(baseLines))
	for i, plain := range baseLines {
		row := i - y
		if row < 0 || row >= len(popupLines) {
			out[i] = gray.Render(plain)
			continue
		}

		left := runewidth.FillRight(runewidth.Truncate(plain, x, ""), x)
		right := ""
		if runewidth.StringWidth(plain) > x+modalW {
			right = runewidth.TruncateLeft(plain, x+modalW, "")
		}
		line := popupLines[row]
		if pad := modalW - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[i] = gray.Render(left) + line + gray.Render(right)
	}

	return strings.Join(out, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes color and style codes
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
