// Package ingredient normalizes free-form recipe ingredient text into
// canonical forms used by the exclusion filter.
package ingredient

import (
	"regexp"
	"strings"
)

// Qualifier words stripped from the boundaries of an ingredient phrase.
var (
	leadingQualifier  = regexp.MustCompile(`(?i)^(fresh|dried|frozen|canned|raw|cooked|chopped|diced|sliced|minced|grated|ground)\s+`)
	trailingQualifier = regexp.MustCompile(`(?i)\s+(fresh|dried|frozen|canned|raw|cooked|chopped|diced|sliced|minced|grated|ground)$`)
	parenthetical     = regexp.MustCompile(`\s*\([^)]*\)`)
	quoteChars        = regexp.MustCompile(`['"]`)
)

// Normalize maps arbitrary recipe-ingredient text to its canonical
// lowercase form: boundary qualifier words, parenthetical asides and
// quote characters are removed.
func Normalize(raw string) string {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = leadingQualifier.ReplaceAllString(normalized, "")
	normalized = trailingQualifier.ReplaceAllString(normalized, "")
	normalized = parenthetical.ReplaceAllString(normalized, "")
	normalized = quoteChars.ReplaceAllString(normalized, "")
	return strings.TrimSpace(normalized)
}

// Variations returns the name itself plus its naive plural and
// singular forms.
func Variations(name string) []string {
	normalized := strings.ToLower(strings.TrimSpace(name))

	seen := map[string]bool{normalized: true}
	variations := []string{normalized}

	plural := normalized + "s"
	if !seen[plural] {
		seen[plural] = true
		variations = append(variations, plural)
	}
	if strings.HasSuffix(normalized, "s") {
		singular := strings.TrimSuffix(normalized, "s")
		if singular != "" && !seen[singular] {
			seen[singular] = true
			variations = append(variations, singular)
		}
	}

	return variations
}

// MatchesExcluded reports whether the recipe ingredient text matches
// any excluded term, either directly or through one of its variations.
// The check is containment in both directions: recall is preferred over
// precision, so a short excluded term can match inside a longer word
// (excluding "pea" also drops recipes with "peanut").
func MatchesExcluded(recipeIngredient string, excluded []string) bool {
	if len(excluded) == 0 {
		return false
	}

	recipeLower := strings.ToLower(recipeIngredient)

	for _, term := range excluded {
		termLower := strings.ToLower(term)

		if recipeLower == termLower {
			return true
		}
		if strings.Contains(recipeLower, termLower) || strings.Contains(termLower, recipeLower) {
			return true
		}

		for _, variation := range Variations(termLower) {
			if strings.Contains(recipeLower, variation) || strings.Contains(variation, recipeLower) {
				return true
			}
		}
	}

	return false
}
