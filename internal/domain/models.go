package domain

import (
	"maps"
	"slices"
)

// All is the selector value that disables a category or difficulty restriction
const All = "All"

// Difficulty is the difficulty rating of a topic or problem
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the difficulty ratings in display order
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether d is one of the known difficulty ratings
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Categories is the controlled vocabulary offered by the catalog category selector
var Categories = []string{
	"Linear Data Structures",
	"Trees",
	"Graphs",
	"Algorithms",
}

// Topic represents one DSA concept in the catalog
type Topic struct {
	ID              string      `yaml:"id" json:"id"`
	Title           string      `yaml:"title" json:"title"`
	Description     string      `yaml:"description" json:"description"`
	Category        string      `yaml:"category" json:"category"`
	Difficulty      Difficulty  `yaml:"difficulty" json:"difficulty"`
	Tags            []string    `yaml:"tags" json:"tags"`
	TimeComplexity  string      `yaml:"timeComplexity" json:"timeComplexity"`
	SpaceComplexity string      `yaml:"spaceComplexity" json:"spaceComplexity"`
	Definition      string      `yaml:"definition" json:"definition"`
	WhenToUse       string      `yaml:"whenToUse" json:"whenToUse"`
	Algorithms      []Algorithm `yaml:"algorithms" json:"algorithms"`
	SampleProblems  []Problem   `yaml:"sampleProblems" json:"sampleProblems"`
	InterviewTips   []string    `yaml:"interviewTips" json:"interviewTips"`
}

// Clone returns a copy of t that shares no slices or maps with it
func (t Topic) Clone() Topic {
	t.Tags = slices.Clone(t.Tags)
	t.InterviewTips = slices.Clone(t.InterviewTips)
	t.SampleProblems = slices.Clone(t.SampleProblems)
	if t.Algorithms != nil {
		algos := make([]Algorithm, len(t.Algorithms))
		for i, a := range t.Algorithms {
			a.Code = maps.Clone(a.Code)
			algos[i] = a
		}
		t.Algorithms = algos
	}
	return t
}

// Algorithm is a worked algorithm attached to a topic
type Algorithm struct {
	Name            string            `yaml:"name" json:"name"`
	Description     string            `yaml:"description" json:"description"`
	TimeComplexity  string            `yaml:"timeComplexity" json:"timeComplexity"`
	SpaceComplexity string            `yaml:"spaceComplexity" json:"spaceComplexity"`
	Approach        string            `yaml:"approach" json:"approach"`
	Code            map[string]string `yaml:"code" json:"code"` // language -> source
}

// Problem is a practice problem linked from a topic
type Problem struct {
	Title       string     `yaml:"title" json:"title"`
	Difficulty  Difficulty `yaml:"difficulty" json:"difficulty"`
	Platform    string     `yaml:"platform" json:"platform"`
	URL         string     `yaml:"url" json:"url"`
	Description string     `yaml:"description" json:"description"`
	Approach    string     `yaml:"approach" json:"approach"`
}

// Criteria is the (query, category, difficulty) tuple governing a filter pass.
// It is derived on demand and never stored.
type Criteria struct {
	Query      string
	Category   string // All or a category name
	Difficulty string // All or a Difficulty value
}

// QueryOnly returns criteria that restrict by query text alone
func QueryOnly(query string) Criteria {
	return Criteria{Query: query, Category: All, Difficulty: All}
}
