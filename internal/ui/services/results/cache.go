package results

import (
	"log"
	"sync"

	"dsaexplorer/internal/domain"
	"dsaexplorer/internal/logic"
)

// Cache memoizes the filtered topic list for one consumer. The list is only
// recomputed when the criteria differ from the last call.
type Cache struct {
	name   string
	source logic.TopicSource

	mu    sync.Mutex
	last  *Entry
	stats Stats
}

// NewCache creates a cache over the given topics. The name is used in logs.
func NewCache(name string, source logic.TopicSource) *Cache {
	return &Cache{name: name, source: source}
}

// Results returns the topics matching the criteria, in catalog order
func (c *Cache) Results(criteria domain.Criteria) []domain.Topic {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.last != nil && c.last.Criteria == criteria {
		c.stats.Hits++
		return c.last.Topics
	}

	topics := logic.FilterTopics(c.source.All(), criteria)
	c.last = &Entry{Criteria: criteria, Topics: topics}
	c.stats.Computations++

	log.Printf("Results %s: %d topics for query=%q category=%q difficulty=%q",
		c.name, len(topics), criteria.Query, criteria.Category, criteria.Difficulty)

	return topics
}

// Len returns the size of the last computed result, 0 before any call
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return 0
	}
	return len(c.last.Topics)
}

// At returns the topic at index i of the last result
func (c *Cache) At(i int) (domain.Topic, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil || i < 0 || i >= len(c.last.Topics) {
		return domain.Topic{}, false
	}
	return c.last.Topics[i], true
}

// MaxIndex returns the last selectable index of the last result
func (c *Cache) MaxIndex() int {
	if n := c.Len(); n > 0 {
		return n - 1
	}
	return 0
}

// Stats returns the recomputation counters
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
