// Package search implements scored ingredient lookup over the ranked
// ingredient dataset: exact, prefix, substring, multi-word, synonym
// and fuzzy matching, with results ordered by score then corpus
// frequency.
package search

import (
	"sort"
	"strings"

	"github.com/qraxiss/smart-fridge-chef/internal/recipe"
)

// Match type labels reported with each suggestion.
const (
	MatchExact    = "exact"
	MatchStarts   = "starts"
	MatchContains = "contains"
	MatchSynonym  = "synonym"
	MatchFuzzy    = "fuzzy"
)

// Match scores, in check order. The first check that succeeds wins.
const (
	scoreExact     = 1000
	scoreStarts    = 900
	scoreContains  = 800
	scoreMultiWord = 750
	scoreSynonym   = 700
	scoreFuzzyName = 600
	scoreFuzzyWord = 550
	fuzzyPenalty   = 50

	popularCount  = 5
	minFuzzyQuery = 4
)

// Options configures a search call. Zero values fall back to the
// defaults via apply.
type Options struct {
	MaxResults     int
	MinQueryLength int
	EnableFuzzy    *bool
	EnableSynonyms *bool
}

func (o Options) apply() (maxResults, minQueryLength int, fuzzy, synonyms bool) {
	maxResults = o.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}
	minQueryLength = o.MinQueryLength
	if minQueryLength <= 0 {
		minQueryLength = 1
	}
	fuzzy = o.EnableFuzzy == nil || *o.EnableFuzzy
	synonyms = o.EnableSynonyms == nil || *o.EnableSynonyms
	return
}

// Suggestion is one scored search hit.
type Suggestion struct {
	Name      string `json:"name"`
	Count     int    `json:"count"`
	Score     int    `json:"score"`
	MatchType string `json:"matchType"`
}

// Result is the outcome of a single search. TotalMatches counts hits
// before truncation to MaxResults. IsSearching is false for the empty
// and too-short query states.
type Result struct {
	Suggestions  []Suggestion `json:"suggestions"`
	TotalMatches int          `json:"totalMatches"`
	IsSearching  bool         `json:"isSearching"`
}

// Engine searches a ranked ingredient list. The list is expected to be
// pre-sorted by corpus frequency descending, as loaded from the
// ingredient dataset.
type Engine struct {
	ranked []recipe.RankedIngredient
}

// NewEngine creates a search engine over the given ranked ingredients.
func NewEngine(ranked []recipe.RankedIngredient) *Engine {
	return &Engine{ranked: ranked}
}

// Search scores every catalog ingredient against the query and returns
// the ranked suggestions. An empty query yields the top-5 popular
// ingredients; a query shorter than the minimum yields nothing.
func (e *Engine) Search(query string, opts Options) Result {
	maxResults, minQueryLength, fuzzy, synonyms := opts.apply()
	normalized := strings.ToLower(strings.TrimSpace(query))

	if normalized == "" {
		n := popularCount
		if n > len(e.ranked) {
			n = len(e.ranked)
		}
		suggestions := make([]Suggestion, 0, n)
		for _, ing := range e.ranked[:n] {
			suggestions = append(suggestions, Suggestion{Name: ing.Name, Count: ing.Count})
		}
		return Result{Suggestions: suggestions, TotalMatches: n}
	}

	if len(normalized) < minQueryLength {
		return Result{Suggestions: []Suggestion{}}
	}

	var matched []Suggestion
	for _, ing := range e.ranked {
		if score, matchType, ok := matchQuery(ing.Name, normalized, fuzzy, synonyms); ok {
			matched = append(matched, Suggestion{
				Name:      ing.Name,
				Count:     ing.Count,
				Score:     score,
				MatchType: matchType,
			})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Score != matched[j].Score {
			return matched[i].Score > matched[j].Score
		}
		return matched[i].Count > matched[j].Count
	})

	total := len(matched)
	if len(matched) > maxResults {
		matched = matched[:maxResults]
	}
	if matched == nil {
		matched = []Suggestion{}
	}

	return Result{Suggestions: matched, TotalMatches: total, IsSearching: true}
}

// matchQuery runs the match checks in precedence order and stops at the
// first success.
func matchQuery(name, query string, fuzzy, synonyms bool) (int, string, bool) {
	name = strings.ToLower(name)

	if name == query {
		return scoreExact, MatchExact, true
	}
	if strings.HasPrefix(name, query) {
		return scoreStarts, MatchStarts, true
	}
	if strings.Contains(name, query) {
		return scoreContains, MatchContains, true
	}

	// Multi-word: word-order independent, every query word has to
	// overlap some name word.
	queryWords := strings.Fields(query)
	nameWords := strings.Fields(name)
	if len(queryWords) > 1 && len(nameWords) > 1 {
		allMatch := true
		for _, qw := range queryWords {
			wordMatch := false
			for _, nw := range nameWords {
				if strings.Contains(nw, qw) || strings.Contains(qw, nw) {
					wordMatch = true
					break
				}
			}
			if !wordMatch {
				allMatch = false
				break
			}
		}
		if allMatch {
			return scoreMultiWord, MatchContains, true
		}
	}

	if synonyms {
		for _, synonym := range ingredientSynonyms[query] {
			if strings.Contains(name, synonym) {
				return scoreSynonym, MatchSynonym, true
			}
		}
	}

	if fuzzy && len(query) >= minFuzzyQuery {
		maxDistance := len(query) / 3 // one typo per three characters

		if d := levenshtein(query, name); d <= maxDistance {
			return scoreFuzzyName - d*fuzzyPenalty, MatchFuzzy, true
		}
		for _, word := range nameWords {
			if len(word) < minFuzzyQuery {
				continue
			}
			if d := levenshtein(query, word); d <= maxDistance {
				return scoreFuzzyWord - d*fuzzyPenalty, MatchFuzzy, true
			}
		}
	}

	return 0, "", false
}

// levenshtein computes the edit distance between two strings.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
