package logic

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsaexplorer/internal/catalog"
	"dsaexplorer/internal/domain"
)

func fixtureTopics() []domain.Topic {
	return []domain.Topic{
		{
			ID:          "arrays",
			Title:       "Arrays",
			Description: "Linear data structure storing elements in contiguous memory locations",
			Category:    "Linear Data Structures",
			Difficulty:  domain.DifficultyEasy,
			Tags:        []string{"linear", "indexing", "traversal", "sorting"},
		},
		{
			ID:          "graphs",
			Title:       "Graphs",
			Description: "Non-linear data structure consisting of vertices connected by edges",
			Category:    "Graphs",
			Difficulty:  domain.DifficultyHard,
			Tags:        []string{"graph", "vertices", "edges"},
		},
		{
			ID:          "heap",
			Title:       "Heap",
			Description: "Complete binary tree with the heap property",
			Category:    "Trees",
			Difficulty:  domain.DifficultyMedium,
			Tags:        []string{"priority-queue"},
		},
	}
}

func ids(topics []domain.Topic) []string {
	out := make([]string, len(topics))
	for i, t := range topics {
		out[i] = t.ID
	}
	return out
}

func TestFilterTopicsScenarios(t *testing.T) {
	topics := fixtureTopics()

	tests := []struct {
		name     string
		criteria domain.Criteria
		want     []string
	}{
		{"defaults return everything", domain.Criteria{Query: "", Category: domain.All, Difficulty: domain.All}, []string{"arrays", "graphs", "heap"}},
		{"empty selectors behave as All", domain.Criteria{}, []string{"arrays", "graphs", "heap"}},
		{"tag substring", domain.QueryOnly("travers"), []string{"arrays"}},
		{"title match is case insensitive", domain.QueryOnly("GRAPHS"), []string{"graphs"}},
		{"description match", domain.QueryOnly("contiguous"), []string{"arrays"}},
		{"query matches across fields", domain.QueryOnly("linear"), []string{"arrays", "graphs"}},
		{"category only", domain.Criteria{Category: "Graphs", Difficulty: domain.All}, []string{"graphs"}},
		{"difficulty only", domain.Criteria{Category: domain.All, Difficulty: "Medium"}, []string{"heap"}},
		{"criteria combine with AND", domain.Criteria{Query: "linear", Category: "Graphs", Difficulty: "Hard"}, []string{"graphs"}},
		{"no match", domain.QueryOnly("zzz"), []string{}},
		{"category is case sensitive", domain.Criteria{Category: "graphs", Difficulty: domain.All}, []string{}},
		{"query is not trimmed", domain.QueryOnly(" arrays"), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTopics(topics, tt.criteria)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterTopicsAgainstEmbeddedCatalog(t *testing.T) {
	c := catalog.MustLoad()

	got := FilterTopics(c.All(), domain.QueryOnly("travers"))
	assert.Equal(t, []string{"arrays", "linked-list", "binary-tree", "graphs"}, ids(got))

	got = FilterTopics(c.All(), domain.Criteria{Category: "Graphs", Difficulty: domain.All})
	assert.Equal(t, []string{"graphs", "minimum-spanning-tree", "shortest-path"}, ids(got))

	graphOnly := FilterTopics(c.All(), domain.Criteria{Category: "Graphs", Difficulty: domain.All})
	got = FilterTopics(graphOnly, domain.Criteria{Category: "Trees", Difficulty: "Hard"})
	assert.Empty(t, got)
}

func TestFilterTopicsDoesNotMutateInput(t *testing.T) {
	topics := fixtureTopics()
	before := fixtureTopics()

	result := FilterTopics(topics, domain.QueryOnly("a"))
	require.NotEmpty(t, result)
	result[0].Title = "changed"

	assert.Equal(t, before, topics)
}

func TestFilterTopicsProperties(t *testing.T) {
	topics := catalog.MustLoad().All()
	rng := rand.New(rand.NewSource(42))

	queries := []string{"", "a", "tree", "TRAVERS", "graph", "linear", "node", "o", "zz", "edges", "range-query"}
	categories := append([]string{domain.All, ""}, domain.Categories...)
	difficulties := []string{domain.All, "", "Easy", "Medium", "Hard"}

	for i := 0; i < 200; i++ {
		criteria := domain.Criteria{
			Query:      queries[rng.Intn(len(queries))],
			Category:   categories[rng.Intn(len(categories))],
			Difficulty: difficulties[rng.Intn(len(difficulties))],
		}
		got := FilterTopics(topics, criteria)

		// Order preserving subsequence
		pos := 0
		for _, g := range got {
			for pos < len(topics) && topics[pos].ID != g.ID {
				pos++
			}
			require.Less(t, pos, len(topics), "result %v is not a subsequence for %+v", ids(got), criteria)
			pos++
		}

		// Inclusion is exactly the predicate
		included := make(map[string]bool, len(got))
		for _, g := range got {
			included[g.ID] = true
		}
		for _, topic := range topics {
			want := naiveMatch(topic, criteria)
			assert.Equal(t, want, included[topic.ID], "topic %s criteria %+v", topic.ID, criteria)
		}
	}
}

func naiveMatch(topic domain.Topic, c domain.Criteria) bool {
	q := strings.ToLower(c.Query)
	queryOK := q == "" ||
		strings.Contains(strings.ToLower(topic.Title), q) ||
		strings.Contains(strings.ToLower(topic.Description), q)
	for _, tag := range topic.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			queryOK = true
		}
	}
	catOK := c.Category == "" || c.Category == domain.All || c.Category == topic.Category
	diffOK := c.Difficulty == "" || c.Difficulty == domain.All || c.Difficulty == string(topic.Difficulty)
	return queryOK && catOK && diffOK
}

func TestMatchingTags(t *testing.T) {
	topic := fixtureTopics()[0]
	assert.Equal(t, []string{"traversal"}, MatchingTags(topic, "TRAV"))
	assert.Nil(t, MatchingTags(topic, ""))
	assert.Empty(t, MatchingTags(topic, "zzz"))
}

func TestMatchesQuery(t *testing.T) {
	topic := fixtureTopics()[1]
	assert.True(t, MatchesQuery(topic, ""))
	assert.True(t, MatchesQuery(topic, "Vertices"))
	assert.False(t, MatchesQuery(topic, "contiguous"))
}
