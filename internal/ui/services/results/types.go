package results

import (
	"dsaexplorer/internal/domain"
)

// Stats describes how often a cache had to recompute
type Stats struct {
	Computations int
	Hits         int
}

// Entry is a result list together with the criteria that produced it
type Entry struct {
	Criteria domain.Criteria
	Topics   []domain.Topic
}
