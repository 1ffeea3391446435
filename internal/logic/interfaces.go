package logic

import "dsaexplorer/internal/domain"

// TopicSource provides read access to the ordered topic catalog
type TopicSource interface {
	All() []domain.Topic
	Get(id string) (domain.Topic, bool)
}
