package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dsaexplorer/internal/content"
)

// ContactThanks is shown after a successful submission
const ContactThanks = "Thank you for your message! I'll get back to you soon."

// PlaygroundPlaceholder is shown before the first run
const PlaygroundPlaceholder = "Press ctrl+r to run, output appears here..."

var playgroundTips = []string{
	"Use print() statements to see your output",
	"Test your solutions with different inputs",
	"Try the sample problems to get started",
	"Focus on understanding the algorithm, not just getting the right answer",
}

// FAQState is the FAQ list with one answer expanded at most
type FAQState struct {
	Entries []content.FAQEntry
	Cursor  int
	Open    int // -1 when all answers are collapsed
}

// RoadmapPhase is a roadmap phase with its topics resolved
type RoadmapPhase struct {
	Phase content.Phase
	Items []content.RoadmapItem
}

// RoadmapState is the roadmap with a cursor over all topics of all phases
type RoadmapState struct {
	Phases []RoadmapPhase
	Cursor int
}

// PlaygroundState is the playground page
type PlaygroundState struct {
	Editor   string // textarea output
	Editing  bool
	Language string
	Output   string
	Running  bool
	Spinner  string
	Samples  []content.Sample
	Sample   int // index of the loaded sample, -1 for the starter program
}

// ContactField is one rendered form field
type ContactField struct {
	Label   string
	Input   string
	Focused bool
}

// ContactState is the contact form
type ContactState struct {
	Fields    []ContactField
	Editing   bool
	Error     string
	Reference string // set after a successful submission
}

func (r *Renderer) renderAbout(a content.About, width int) string {
	s := r.styles
	wrap := lipgloss.NewStyle().Width(max(width, 20))

	var b strings.Builder
	b.WriteString(s.Title.Render(a.Name))
	b.WriteString("\n")
	b.WriteString(s.Dim.Render(a.Headline))
	b.WriteString("\n")

	b.WriteString(s.Section.Render("About Me"))
	b.WriteString("\n")
	for _, p := range a.Bio {
		b.WriteString(wrap.Render(s.Text.Render(p)))
		b.WriteString("\n\n")
	}

	b.WriteString(s.Section.Render("Skills & Expertise"))
	b.WriteString("\n")
	for _, skill := range a.Skills {
		b.WriteString("  • " + skill + "\n")
	}

	b.WriteString(s.Section.Render("My Mission"))
	b.WriteString("\n")
	b.WriteString(wrap.Render(s.Text.Render(a.Mission)))
	b.WriteString("\n")

	b.WriteString(s.Section.Render("Connect With Me"))
	b.WriteString("\n")
	for _, l := range a.Links {
		b.WriteString(fmt.Sprintf("  %-9s %s\n", l.Label, s.Link.Render(l.URL)))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) renderFAQ(f FAQState, width int) string {
	s := r.styles
	wrap := lipgloss.NewStyle().Width(max(width-4, 20)).PaddingLeft(4)

	var b strings.Builder
	b.WriteString(s.Title.Render("Frequently Asked Questions"))
	b.WriteString("\n\n")

	for i, e := range f.Entries {
		arrow := "▸"
		if i == f.Open {
			arrow = "▾"
		}
		line := fmt.Sprintf("%s %s", arrow, e.Question)
		if i == f.Cursor {
			b.WriteString(s.Highlight.Render(line))
		} else {
			b.WriteString(s.Heading.Render(line))
		}
		b.WriteString("\n")
		if i == f.Open {
			b.WriteString(wrap.Render(s.Text.Render(e.Answer)))
			b.WriteString("\n\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) renderRoadmap(rm RoadmapState) string {
	s := r.styles

	var b strings.Builder
	b.WriteString(s.Title.Render("DSA Learning Roadmap"))
	b.WriteString("\n")

	idx := 0
	for _, p := range rm.Phases {
		b.WriteString(s.Section.Render(p.Phase.Phase) + "  " + s.Dim.Render(p.Phase.EstimatedTime))
		b.WriteString("\n")
		b.WriteString(s.Dim.Render(p.Phase.Description))
		b.WriteString("\n")
		for _, item := range p.Items {
			marker := "  "
			if idx == rm.Cursor {
				marker = s.Highlight.Render("▌ ")
			}
			if item.Available {
				b.WriteString(marker + s.Heading.Render(item.Title) + " " + s.Link.Render("Learn Now →"))
			} else {
				b.WriteString(marker + s.Dim.Render(item.Title+" (coming soon)"))
			}
			b.WriteString("\n")
			idx++
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) renderPlayground(p PlaygroundState) string {
	s := r.styles

	var b strings.Builder
	b.WriteString(s.Title.Render("DSA Playground"))
	b.WriteString("  ")
	b.WriteString(s.Dim.Render("Language: ") + s.Highlight.Render(p.Language))
	b.WriteString("\n\n")

	if len(p.Samples) > 0 {
		names := make([]string, len(p.Samples))
		for i, sample := range p.Samples {
			label := fmt.Sprintf("%s (%s)", sample.Title, sample.Difficulty)
			if i == p.Sample {
				names[i] = s.TabActive.Render(label)
			} else {
				names[i] = s.TabInactive.Render(label)
			}
		}
		b.WriteString(s.Dim.Render("Samples: ") + strings.Join(names, " "))
		b.WriteString("\n\n")
	}

	editorStyle := s.Input
	if p.Editing {
		editorStyle = s.InputFocused
	}
	editor := editorStyle.Render(s.Dim.Render("Code Editor") + "\n" + p.Editor)

	output := p.Output
	switch {
	case p.Running:
		output = p.Spinner + " Running code..."
	case output == "":
		output = s.Dim.Render(PlaygroundPlaceholder)
	}
	out := s.Input.Render(s.Dim.Render("Output") + "\n" + output)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, editor, " ", out))
	b.WriteString("\n")

	b.WriteString(s.Section.Render("💡 Tips for using the playground:"))
	b.WriteString("\n")
	for _, tip := range playgroundTips {
		b.WriteString(s.Dim.Render("  • " + tip))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) renderContact(c ContactState) string {
	s := r.styles

	var b strings.Builder
	b.WriteString(s.Title.Render("Get In Touch"))
	b.WriteString("\n")
	b.WriteString(s.Dim.Render("Have questions about DSA concepts or need help with your preparation? Send a message."))
	b.WriteString("\n\n")
	b.WriteString(s.Section.Render("Send a Message"))
	b.WriteString("\n")

	for _, f := range c.Fields {
		style := s.Input
		if f.Focused && c.Editing {
			style = s.InputFocused
		}
		b.WriteString(s.Heading.Render(f.Label + " *"))
		b.WriteString("\n")
		b.WriteString(style.Render(f.Input))
		b.WriteString("\n")
	}

	switch {
	case c.Error != "":
		b.WriteString(s.StatusError.Render(c.Error))
	case c.Reference != "":
		b.WriteString(s.StatusSuccess.Render(ContactThanks))
		b.WriteString("\n")
		b.WriteString(s.Dim.Render("Reference: " + c.Reference))
	case !c.Editing:
		b.WriteString(s.Help.Render("Press Enter to fill in the form"))
	default:
		b.WriteString(s.Help.Render("Tab to move • Enter on the last field or ctrl+s to send • Esc to leave"))
	}

	return b.String()
}
