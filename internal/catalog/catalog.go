// Package catalog holds the immutable, ordered set of DSA topics shipped with
// the binary. The catalog is built once at start and never changes; every
// accessor hands out copies so callers cannot disturb the canonical order.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"dsaexplorer/internal/domain"
)

//go:embed topics.yaml
var embeddedTopics []byte

// ErrTopicNotFound is returned by Lookup for identifiers not in the catalog
var ErrTopicNotFound = errors.New("not found")

// Catalog is the ordered, read-only topic collection
type Catalog struct {
	topics []domain.Topic
	index  map[string]int // id -> position in topics
}

type catalogFile struct {
	Topics []domain.Topic `yaml:"topics"`
}

// Load parses the catalog embedded in the binary
func Load() (*Catalog, error) {
	return Parse(embeddedTopics)
}

// MustLoad is Load for callers that treat a broken embedded catalog as a build defect
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Parse builds a catalog from a YAML document of the form `topics: [...]`
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(file.Topics)
}

// New validates topics and wraps them in a catalog, keeping their order
func New(topics []domain.Topic) (*Catalog, error) {
	c := &Catalog{
		topics: make([]domain.Topic, len(topics)),
		index:  make(map[string]int, len(topics)),
	}
	for i, t := range topics {
		c.topics[i] = t.Clone()
	}

	for i, t := range c.topics {
		if err := validate(t); err != nil {
			return nil, fmt.Errorf("topic %d: %w", i, err)
		}
		if prev, dup := c.index[t.ID]; dup {
			return nil, fmt.Errorf("duplicate topic id %q at positions %d and %d", t.ID, prev, i)
		}
		c.index[t.ID] = i
	}
	return c, nil
}

func validate(t domain.Topic) error {
	if t.ID == "" {
		return errors.New("missing id")
	}
	if t.Title == "" {
		return fmt.Errorf("topic %q: missing title", t.ID)
	}
	if !t.Difficulty.Valid() {
		return fmt.Errorf("topic %q: unknown difficulty %q", t.ID, t.Difficulty)
	}
	return nil
}

// All returns the topics in canonical display order
func (c *Catalog) All() []domain.Topic {
	out := make([]domain.Topic, len(c.topics))
	for i, t := range c.topics {
		out[i] = t.Clone()
	}
	return out
}

// Len returns the number of topics
func (c *Catalog) Len() int {
	return len(c.topics)
}

// Get returns the topic with the given id
func (c *Catalog) Get(id string) (domain.Topic, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.Topic{}, false
	}
	return c.topics[i].Clone(), true
}

// Lookup is Get with an error for callers that propagate failures
func (c *Catalog) Lookup(id string) (domain.Topic, error) {
	t, ok := c.Get(id)
	if !ok {
		return domain.Topic{}, fmt.Errorf("topic %q %w", id, ErrTopicNotFound)
	}
	return t, nil
}

// AlgorithmCount returns the number of algorithms across all topics
func (c *Catalog) AlgorithmCount() int {
	n := 0
	for _, t := range c.topics {
		n += len(t.Algorithms)
	}
	return n
}

// ProblemCount returns the number of practice problems across all topics
func (c *Catalog) ProblemCount() int {
	n := 0
	for _, t := range c.topics {
		n += len(t.SampleProblems)
	}
	return n
}
