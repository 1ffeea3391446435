package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"dsaexplorer/internal/domain"
)

const (
	NoTopicsTitle = "No topics found"
	NoTopicsHint  = "Try adjusting your search or filter criteria"
)

// CatalogState is what the catalog page needs to render
type CatalogState struct {
	Query      string
	Category   string
	Difficulty string
	Topics     []domain.Topic // already filtered
	Cursor     int
	Offset     int
	Rows       int // topics that fit on screen

	Total      int
	Algorithms int
	Problems   int
	ShowStats  bool

	Editing    bool
	QueryInput string

	Picker        string // "category", "difficulty" or ""
	PickerOptions []string
	PickerIndex   int
}

// Empty reports whether the filters matched nothing
func (c CatalogState) Empty() bool {
	return len(c.Topics) == 0
}

func (r *Renderer) renderCatalog(c CatalogState, width int) string {
	s := r.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("Explore DSA Topics"))
	b.WriteString("\n")
	if c.ShowStats {
		b.WriteString(s.Dim.Render(fmt.Sprintf("%d+ DSA Topics · %d Algorithms · %d Practice Problems",
			c.Total, c.Algorithms, c.Problems)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(r.renderFilterBar(c))
	b.WriteString("\n\n")

	if c.Empty() {
		block := s.Heading.Render(NoTopicsTitle) + "\n" + s.Dim.Render(NoTopicsHint)
		b.WriteString(s.Empty.Width(max(width, 20)).Render(block))
		return b.String()
	}

	end := c.Offset + c.Rows
	if c.Rows <= 0 || end > len(c.Topics) {
		end = len(c.Topics)
	}

	if c.Offset > 0 {
		b.WriteString(s.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", c.Offset)))
		b.WriteString("\n")
	}
	for i := c.Offset; i < end; i++ {
		b.WriteString(r.renderTopicRow(c.Topics[i], i == c.Cursor, c.Query, width))
		b.WriteString("\n")
	}
	if below := len(c.Topics) - end; below > 0 {
		b.WriteString(s.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) renderFilterBar(c CatalogState) string {
	s := r.styles

	query := c.Query
	if c.Editing {
		query = c.QueryInput
	} else if query == "" {
		query = s.Dim.Render("(none, press / to search)")
	}

	parts := []string{
		s.Key.Render("Search:") + " " + query,
		s.Key.Render("Category:") + " " + c.Category,
		s.Key.Render("Difficulty:") + " " + c.Difficulty,
	}
	line := strings.Join(parts, "   ")

	if c.Picker == "" {
		return line
	}

	var opts []string
	for i, o := range c.PickerOptions {
		if i == c.PickerIndex {
			opts = append(opts, s.TabActive.Render(o))
		} else {
			opts = append(opts, s.TabInactive.Render(o))
		}
	}
	label := strings.ToUpper(c.Picker[:1]) + c.Picker[1:]
	return line + "\n" + s.Dim.Render(label+": ") + strings.Join(opts, " ") + "\n" +
		s.Help.Render("↑/↓ or j/k to change • Enter to accept • Esc to cancel")
}

func (r *Renderer) renderTopicRow(t domain.Topic, selected bool, query string, width int) string {
	s := r.styles

	marker := "  "
	if selected {
		marker = s.Highlight.Render("▌ ")
	}

	title := s.Heading.Render(t.Title)
	head := fmt.Sprintf("%s%s %s %s", marker, CategoryIcon(t.Category), title, s.Difficulty(t.Difficulty))

	descWidth := width - 6
	if descWidth < 20 {
		descWidth = 20
	}
	desc := "    " + s.Dim.Render(runewidth.Truncate(t.Description, descWidth, "…"))

	meta := fmt.Sprintf("%d algorithms", len(t.Algorithms))
	if tags := r.matchedTags(t, query); tags != "" {
		meta += " · " + tags
	}
	metaLine := "    " + s.Tag.Render(meta)

	row := head + "\n" + desc + "\n" + metaLine
	if selected {
		return s.Selected.Render(row)
	}
	return row
}
