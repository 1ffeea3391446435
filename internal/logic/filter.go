package logic

import (
	"strings"

	"dsaexplorer/internal/domain"
)

// FilterTopics returns the topics matching every criterion, in catalog order.
// The query matches title, description or any tag; category and difficulty
// must match exactly unless they are All or empty. topics is never modified.
func FilterTopics(topics []domain.Topic, criteria domain.Criteria) []domain.Topic {
	query := strings.ToLower(criteria.Query)

	result := make([]domain.Topic, 0, len(topics))
	for _, topic := range topics {
		if matchesLowerQuery(topic, query) &&
			MatchesCategory(topic, criteria.Category) &&
			MatchesDifficulty(topic, criteria.Difficulty) {
			result = append(result, topic)
		}
	}
	return result
}

// MatchesQuery checks if a topic matches the free-text query
func MatchesQuery(topic domain.Topic, query string) bool {
	return matchesLowerQuery(topic, strings.ToLower(query))
}

func matchesLowerQuery(topic domain.Topic, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(topic.Title), query) ||
		strings.Contains(strings.ToLower(topic.Description), query) {
		return true
	}
	for _, tag := range topic.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// MatchesCategory checks the category selector; categories are controlled
// vocabulary so the comparison is exact
func MatchesCategory(topic domain.Topic, category string) bool {
	return category == "" || category == domain.All || topic.Category == category
}

// MatchesDifficulty checks the difficulty selector
func MatchesDifficulty(topic domain.Topic, difficulty string) bool {
	return difficulty == "" || difficulty == domain.All || string(topic.Difficulty) == difficulty
}

// MatchingTags returns the tags of a topic that contain the query, for highlighting
func MatchingTags(topic domain.Topic, query string) []string {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	var tags []string
	for _, tag := range topic.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			tags = append(tags, tag)
		}
	}
	return tags
}
