package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"dsaexplorer/internal/domain"
	"dsaexplorer/internal/logic"
)

// OverlayState is what the global search overlay needs to render
type OverlayState struct {
	Visible bool
	Query   string
	Input   string // rendered text input
	Results []domain.Topic
	Cursor  int
	Offset  int
	Rows    int
}

// OverlayNoResults is shown when the query matches nothing
func OverlayNoResults(query string) string {
	return fmt.Sprintf("No topics found matching %q", query)
}

func (r *Renderer) renderOverlay(o OverlayState, width int) string {
	s := r.styles

	boxWidth := width - 10
	if boxWidth > 72 {
		boxWidth = 72
	}
	if boxWidth < 30 {
		boxWidth = 30
	}

	var b strings.Builder
	input := o.Input
	if input == "" {
		input = s.Dim.Render("Search DSA topics...")
	}
	b.WriteString("🔍 " + input)
	b.WriteString("\n")
	b.WriteString(s.Dim.Render(strings.Repeat("─", boxWidth-2)))
	b.WriteString("\n")

	if len(o.Results) == 0 {
		b.WriteString(s.Dim.Render(OverlayNoResults(o.Query)))
		return b.String()
	}

	end := o.Offset + o.Rows
	if o.Rows <= 0 || end > len(o.Results) {
		end = len(o.Results)
	}
	if o.Offset > 0 {
		b.WriteString(s.Scroll.Render(fmt.Sprintf("↑ %d more", o.Offset)))
		b.WriteString("\n")
	}
	for i := o.Offset; i < end; i++ {
		t := o.Results[i]
		title := runewidth.FillRight(runewidth.Truncate(t.Title, boxWidth-len(t.Category)-6, "…"), boxWidth-len(t.Category)-6)
		line := fmt.Sprintf("%s  %s", title, s.Dim.Render(t.Category))
		desc := s.Dim.Render(runewidth.Truncate(t.Description, boxWidth-4, "…"))
		if i == o.Cursor {
			b.WriteString(s.Highlight.Render("› ") + s.Selected.Render(line) + "\n  " + desc)
		} else {
			b.WriteString("  " + line + "\n  " + desc)
		}
		b.WriteString("\n")
	}
	if below := len(o.Results) - end; below > 0 {
		b.WriteString(s.Scroll.Render(fmt.Sprintf("↓ %d more", below)))
	}
	b.WriteString("\n")
	b.WriteString(s.Help.Render("↑/↓ move • Enter open • Esc close"))

	return b.String()
}

// matchedTags lists the tags that matched the query, highlighted
func (r *Renderer) matchedTags(t domain.Topic, query string) string {
	tags := logic.MatchingTags(t, query)
	if len(tags) == 0 {
		return ""
	}
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = r.styles.Highlight.Render("#" + tag)
	}
	return strings.Join(out, " ")
}
