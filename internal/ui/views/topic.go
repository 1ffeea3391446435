package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dsaexplorer/internal/domain"
)

const (
	NotFoundTitle = "Topic not found"
	BackToHome    = "← Back to Home"
)

// Tabs of the topic detail page
var TopicTabs = []string{"Overview", "Algorithms", "Problems", "Interview Tips"}

const (
	TabOverview = iota
	TabAlgorithms
	TabProblems
	TabTips
)

// Languages offered for algorithm code, in toggle order
var Languages = []string{"python", "java", "cpp"}

// LanguageName returns the display name of a code language
func LanguageName(lang string) string {
	switch lang {
	case "python":
		return "Python"
	case "java":
		return "Java"
	case "cpp":
		return "C++"
	default:
		return lang
	}
}

// NextLanguage returns the language after lang in toggle order
func NextLanguage(lang string) string {
	for i, l := range Languages {
		if l == lang {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return Languages[0]
}

// TopicState is what the topic detail page needs to render
type TopicState struct {
	Found    bool
	ID       string
	Topic    domain.Topic
	Tab      int
	Language string
	Body     string // viewport output
	Percent  float64
}

func (r *Renderer) renderNotFound(path string) string {
	s := r.styles
	var b strings.Builder
	b.WriteString(s.Heading.Render(NotFoundTitle))
	b.WriteString("\n\n")
	if path != "" {
		b.WriteString(s.Dim.Render(fmt.Sprintf("Nothing lives at %s", path)))
		b.WriteString("\n\n")
	}
	b.WriteString(s.Link.Render(BackToHome))
	b.WriteString("\n")
	b.WriteString(s.Help.Render("Enter, b or Esc to go home"))
	return b.String()
}

func (r *Renderer) renderTopic(t TopicState, path string) string {
	if !t.Found {
		return r.renderNotFound(path)
	}

	s := r.styles
	topic := t.Topic

	var b strings.Builder
	b.WriteString(s.Link.Render("← Back to Home"))
	b.WriteString("\n\n")
	b.WriteString(s.Title.Render(topic.Title) + "  " + s.Difficulty(topic.Difficulty))
	b.WriteString("\n")
	b.WriteString(s.Dim.Render(topic.Description))
	b.WriteString("\n")
	b.WriteString(s.Dim.Render(fmt.Sprintf("Time: %s   Space: %s   Category: %s",
		topic.TimeComplexity, topic.SpaceComplexity, topic.Category)))
	b.WriteString("\n\n")

	b.WriteString(r.renderTabs(t.Tab))
	if t.Tab == TabAlgorithms {
		b.WriteString("   " + r.renderLanguages(t.Language))
	}
	b.WriteString("\n\n")
	b.WriteString(t.Body)
	b.WriteString("\n")
	b.WriteString(s.Scroll.Render(fmt.Sprintf("%3.f%%", t.Percent*100)))

	return b.String()
}

func (r *Renderer) renderTabs(active int) string {
	tabs := make([]string, len(TopicTabs))
	for i, name := range TopicTabs {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == active {
			tabs[i] = r.styles.TabActive.Render(label)
		} else {
			tabs[i] = r.styles.TabInactive.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (r *Renderer) renderLanguages(active string) string {
	out := make([]string, len(Languages))
	for i, l := range Languages {
		if l == active {
			out[i] = r.styles.Highlight.Render("[" + LanguageName(l) + "]")
		} else {
			out[i] = r.styles.Dim.Render(LanguageName(l))
		}
	}
	return strings.Join(out, " ")
}

// TopicBody renders the content of one tab, for the scrolling viewport
func (r *Renderer) TopicBody(topic domain.Topic, tab int, lang string, width int) string {
	s := r.styles
	wrap := lipgloss.NewStyle().Width(max(width, 20))

	var b strings.Builder
	section := func(title string) {
		b.WriteString(s.Section.Render(title))
		b.WriteString("\n")
	}
	para := func(text string) {
		b.WriteString(wrap.Render(s.Text.Render(text)))
		b.WriteString("\n")
	}

	switch tab {
	case TabOverview:
		section("Definition")
		para(topic.Definition)
		section("When to Use")
		para(topic.WhenToUse)
		section("Complexity Analysis")
		para(fmt.Sprintf("Time Complexity:  %s", topic.TimeComplexity))
		para(fmt.Sprintf("Space Complexity: %s", topic.SpaceComplexity))
		if len(topic.Tags) > 0 {
			section("Tags")
			para("#" + strings.Join(topic.Tags, " #"))
		}

	case TabAlgorithms:
		for i, alg := range topic.Algorithms {
			if i > 0 {
				b.WriteString("\n")
			}
			section(alg.Name)
			para(alg.Description)
			b.WriteString(s.Dim.Render(fmt.Sprintf("Time: %s   Space: %s", alg.TimeComplexity, alg.SpaceComplexity)))
			b.WriteString("\n")
			if alg.Approach != "" {
				para("Approach: " + alg.Approach)
			}
			b.WriteString("\n")
			if code, ok := alg.Code[lang]; ok && strings.TrimSpace(code) != "" {
				b.WriteString(s.Code.Render(strings.TrimRight(code, "\n")))
			} else {
				b.WriteString(s.Dim.Render(fmt.Sprintf("No %s implementation yet", LanguageName(lang))))
			}
			b.WriteString("\n")
		}

	case TabProblems:
		section("Practice Problems")
		for _, p := range topic.SampleProblems {
			b.WriteString("\n")
			b.WriteString(s.Heading.Render(p.Title) + " " + s.Difficulty(p.Difficulty) + " " + s.Dim.Render(p.Platform))
			b.WriteString("\n")
			para(p.Description)
			if p.Approach != "" {
				para("Approach: " + p.Approach)
			}
			b.WriteString(s.Link.Render(fmt.Sprintf("Solve on %s: %s", p.Platform, p.URL)))
			b.WriteString("\n")
		}

	case TabTips:
		section("Interview Tips")
		for _, tip := range topic.InterviewTips {
			para("💡 " + tip)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// PlainTopicBody renders a tab without styling, for the pager
func (r *Renderer) PlainTopicBody(topic domain.Topic, tab int, lang string) string {
	header := fmt.Sprintf("%s (%s, %s)\n%s\n\n", topic.Title, topic.Category, topic.Difficulty, topic.Description)
	return header + StripANSI(r.TopicBody(topic, tab, lang, 100)) + "\n"
}
