package input

import (
	"dsaexplorer/internal/ui/services/routing"
)

// ModelContext is a snapshot of the model state the input modes consult
type ModelContext struct {
	Page         routing.Page
	Found        bool
	Index        int
	Count        int
	TopicID      string
	Query        string
	Category     string
	Difficulty   string
	HasHistory   bool
	OverlayCount int
}

func (c *ModelContext) CurrentPage() routing.Page { return c.Page }

// TopicFound reports whether the topic route resolved to a catalog entry
func (c *ModelContext) TopicFound() bool { return c.Found }

func (c *ModelContext) CurrentIndex() int { return c.Index }

func (c *ModelContext) ItemCount() int { return c.Count }

// CurrentTopicID returns the id of the topic under the cursor, "" when the
// cursor is not on an openable topic
func (c *ModelContext) CurrentTopicID() string { return c.TopicID }

func (c *ModelContext) SearchQuery() string { return c.Query }

func (c *ModelContext) CurrentCategory() string { return c.Category }

func (c *ModelContext) CurrentDifficulty() string { return c.Difficulty }

func (c *ModelContext) CanGoBack() bool { return c.HasHistory }

func (c *ModelContext) OverlayResultCount() int { return c.OverlayCount }
