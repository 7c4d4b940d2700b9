package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qraxiss/smart-fridge-chef/internal/recipe"
)

func testEngine() *Engine {
	return NewEngine([]recipe.RankedIngredient{
		{Name: "chicken", Count: 100},
		{Name: "chicken breast", Count: 80},
		{Name: "garlic", Count: 70},
		{Name: "tomato", Count: 60},
		{Name: "onion", Count: 50},
		{Name: "olive oil", Count: 40},
		{Name: "cilantro", Count: 30},
		{Name: "fresh coriander", Count: 10},
	})
}

func boolPtr(v bool) *bool { return &v }

func TestSearch_ExactMatchFirst(t *testing.T) {
	result := testEngine().Search("chicken", Options{})

	assert.True(t, result.IsSearching)
	assert.NotEmpty(t, result.Suggestions)
	assert.Equal(t, "chicken", result.Suggestions[0].Name)
	assert.Equal(t, MatchExact, result.Suggestions[0].MatchType)
	assert.Equal(t, 1000, result.Suggestions[0].Score)
}

func TestSearch_PrefixBeatsContains(t *testing.T) {
	result := testEngine().Search("chicken b", Options{})

	assert.Equal(t, "chicken breast", result.Suggestions[0].Name)
	assert.Equal(t, MatchStarts, result.Suggestions[0].MatchType)
}

func TestSearch_EmptyQueryReturnsPopular(t *testing.T) {
	result := testEngine().Search("", Options{})

	assert.False(t, result.IsSearching)
	assert.Len(t, result.Suggestions, 5)
	assert.Equal(t, "chicken", result.Suggestions[0].Name)
	assert.Equal(t, 100, result.Suggestions[0].Count)
	assert.Equal(t, "onion", result.Suggestions[4].Name)
}

func TestSearch_ShortQuery(t *testing.T) {
	result := testEngine().Search("c", Options{MinQueryLength: 2})

	assert.False(t, result.IsSearching)
	assert.Empty(t, result.Suggestions)
	assert.Zero(t, result.TotalMatches)
}

func TestSearch_FuzzyTolerantOfTypos(t *testing.T) {
	result := testEngine().Search("chiken", Options{})

	assert.NotEmpty(t, result.Suggestions)
	assert.Equal(t, "chicken", result.Suggestions[0].Name)
	assert.Equal(t, MatchFuzzy, result.Suggestions[0].MatchType)
	// one edit away from the whole name
	assert.Equal(t, 550, result.Suggestions[0].Score)
}

func TestSearch_FuzzyDisabled(t *testing.T) {
	result := testEngine().Search("chiken", Options{EnableFuzzy: boolPtr(false)})

	assert.Empty(t, result.Suggestions)
	assert.True(t, result.IsSearching)
}

func TestSearch_FuzzySkipsShortQueries(t *testing.T) {
	// "oni" is a typo distance 2 from "onion" but too short for fuzzy.
	result := testEngine().Search("onx", Options{})
	assert.Empty(t, result.Suggestions)
}

func TestSearch_SynonymMatch(t *testing.T) {
	result := testEngine().Search("cilantro", Options{})

	names := make(map[string]string)
	for _, s := range result.Suggestions {
		names[s.Name] = s.MatchType
	}
	assert.Equal(t, MatchExact, names["cilantro"])
	assert.Equal(t, MatchSynonym, names["fresh coriander"])
}

func TestSearch_SynonymsDisabled(t *testing.T) {
	result := testEngine().Search("cilantro", Options{EnableSynonyms: boolPtr(false)})

	for _, s := range result.Suggestions {
		assert.NotEqual(t, "fresh coriander", s.Name)
	}
}

func TestSearch_MultiWordOrderIndependent(t *testing.T) {
	result := testEngine().Search("breast chicken", Options{})

	assert.NotEmpty(t, result.Suggestions)
	assert.Equal(t, "chicken breast", result.Suggestions[0].Name)
	assert.Equal(t, 750, result.Suggestions[0].Score)
}

func TestSearch_TotalMatchesBeforeTruncation(t *testing.T) {
	result := testEngine().Search("chicken", Options{MaxResults: 1})

	assert.Len(t, result.Suggestions, 1)
	assert.Equal(t, 2, result.TotalMatches)
}

func TestSearch_TieBreakByFrequency(t *testing.T) {
	engine := NewEngine([]recipe.RankedIngredient{
		{Name: "red pepper", Count: 20},
		{Name: "black pepper", Count: 90},
	})

	result := engine.Search("pepper", Options{})

	assert.Len(t, result.Suggestions, 2)
	assert.Equal(t, "black pepper", result.Suggestions[0].Name)
	assert.Equal(t, "red pepper", result.Suggestions[1].Name)
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("garlic", "garlic"))
	assert.Equal(t, 1, levenshtein("chiken", "chicken"))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
	assert.Equal(t, 5, levenshtein("", "onion"))
}
