package catalog

import (
	"sort"
	"strings"
)

// Metadata describes how an ingredient is presented: its emoji, the
// category it belongs to and a human display label.
type Metadata struct {
	Emoji    string `json:"emoji"`
	Category string `json:"category"`
	Label    string `json:"label"`
}

// Lookup returns the metadata for an ingredient name. The lookup is
// case-insensitive; unknown names get a generic fallback entry in the
// Other category with a capitalized label. It never fails.
func Lookup(name string) Metadata {
	normalized := strings.ToLower(strings.TrimSpace(name))

	if meta, ok := ingredientMetadata[normalized]; ok {
		return meta
	}

	return Metadata{
		Emoji:    fallbackEmoji,
		Category: CategoryOther,
		Label:    capitalize(name),
	}
}

// GroupByCategory groups ingredient names by their catalog category,
// preserving first-seen order within each category.
func GroupByCategory(names []string) map[string][]string {
	grouped := make(map[string][]string)
	for _, name := range names {
		meta := Lookup(name)
		grouped[meta.Category] = append(grouped[meta.Category], name)
	}
	return grouped
}

// SortCategories sorts category names alphabetically (case-insensitive)
// with the Other category forced to the last position. Only the first
// category that matches Other (by identity or a loose "other"/"diğer"
// substring check, kept for locale-variant labels) is treated
// specially; any further loose matches sort normally.
func SortCategories(categories []string) []string {
	var other string
	var found bool
	for _, cat := range categories {
		if isOtherCategory(cat) {
			other = cat
			found = true
			break
		}
	}

	rest := make([]string, 0, len(categories))
	for _, cat := range categories {
		if found && cat == other {
			found = false // skip only the first occurrence
			continue
		}
		rest = append(rest, cat)
	}

	sort.SliceStable(rest, func(i, j int) bool {
		return strings.ToLower(rest[i]) < strings.ToLower(rest[j])
	})

	if other != "" {
		rest = append(rest, other)
	}
	return rest
}

func isOtherCategory(cat string) bool {
	if cat == CategoryOther {
		return true
	}
	lower := strings.ToLower(strings.TrimSpace(cat))
	return lower == "other" || lower == "diğer" ||
		strings.Contains(lower, "other") || strings.Contains(lower, "diğer")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
