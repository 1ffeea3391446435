// Package content holds the static pages that surround the topic catalog:
// about, FAQ, roadmap and the playground samples.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"dsaexplorer/internal/logic"
)

//go:embed pages.yaml
var embeddedPages []byte

// Pages is the static page content
type Pages struct {
	About      About        `yaml:"about"`
	FAQ        []FAQEntry   `yaml:"faq"`
	Roadmap    []Phase      `yaml:"roadmap"`
	Playground PlaygroundKit `yaml:"playground"`
}

// About is the author profile page
type About struct {
	Name     string   `yaml:"name"`
	Headline string   `yaml:"headline"`
	Bio      []string `yaml:"bio"`
	Skills   []string `yaml:"skills"`
	Mission  string   `yaml:"mission"`
	Links    []Link   `yaml:"links"`
}

// Link is an outbound link; it is only displayed, never fetched
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// FAQEntry is one question and its answer
type FAQEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Phase is one step of the learning roadmap
type Phase struct {
	Phase         string   `yaml:"phase"`
	Description   string   `yaml:"description"`
	Topics        []string `yaml:"topics"` // topic ids, not all of them exist yet
	EstimatedTime string   `yaml:"estimatedTime"`
}

// PlaygroundKit is the starter program and sample problems of the playground
type PlaygroundKit struct {
	Starter string   `yaml:"starter"`
	Samples []Sample `yaml:"samples"`
}

// Sample is a playground sample problem
type Sample struct {
	Title      string `yaml:"title"`
	Difficulty string `yaml:"difficulty"`
	Code       string `yaml:"code"`
}

// RoadmapItem is a roadmap topic id resolved against the catalog
type RoadmapItem struct {
	TopicID   string
	Title     string
	Available bool
}

// Load parses the pages embedded in the binary
func Load() (*Pages, error) {
	return Parse(embeddedPages)
}

// Parse builds the pages from a YAML document
func Parse(data []byte) (*Pages, error) {
	var p Pages
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse pages: %w", err)
	}
	return &p, nil
}

// ResolvePhase looks up each roadmap topic in the catalog. Ids without a
// topic come back unavailable and are shown as coming soon.
func ResolvePhase(phase Phase, topics logic.TopicSource) []RoadmapItem {
	items := make([]RoadmapItem, 0, len(phase.Topics))
	for _, id := range phase.Topics {
		item := RoadmapItem{TopicID: id, Title: id}
		if t, ok := topics.Get(id); ok {
			item.Title = t.Title
			item.Available = true
		}
		items = append(items, item)
	}
	return items
}
