package recipe

import (
	"sort"
	"strings"

	"github.com/qraxiss/smart-fridge-chef/internal/dietary"
	"github.com/qraxiss/smart-fridge-chef/internal/ingredient"
)

// Recommend runs the full matching and filtering pipeline: intersect
// the fridge ingredients with each recipe's ingredient text, rank by
// match count, then drop recipes containing excluded or
// dietary-forbidden ingredients. It is a pure function of its inputs
// and never fails; with an empty fridge no recipe is relevant.
func Recommend(recipes []Recipe, fridge []string, prefs dietary.Preferences, excluded []string) []ScoredRecipe {
	if len(fridge) == 0 {
		return []ScoredRecipe{}
	}

	scored := make([]ScoredRecipe, 0, len(recipes))
	for _, r := range recipes {
		matching := matchIngredients(r, fridge)
		if len(matching) == 0 {
			continue
		}
		scored = append(scored, ScoredRecipe{
			Recipe:              r,
			MatchingCount:       len(matching),
			MatchingIngredients: matching,
		})
	}

	// Stable: recipes with equal counts keep corpus order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchingCount > scored[j].MatchingCount
	})

	return filter(scored, prefs, excluded)
}

// matchIngredients returns the fridge ingredients whose lowercase form
// appears in the recipe's raw ingredient text, in fridge order.
func matchIngredients(r Recipe, fridge []string) []string {
	text := strings.ToLower(r.Ingredients)

	var matching []string
	for _, name := range fridge {
		if strings.Contains(text, strings.ToLower(name)) {
			matching = append(matching, name)
		}
	}
	return matching
}

// filter removes recipes containing a user-excluded or
// dietary-forbidden ingredient. The two checks gate removal
// independently; the user exclusions are evaluated first. With no
// active restriction the stage is a no-op.
func filter(scored []ScoredRecipe, prefs dietary.Preferences, excluded []string) []ScoredRecipe {
	if len(dietary.AllForbidden(prefs, excluded)) == 0 {
		return scored
	}

	dietaryForbidden := keys(dietary.Forbidden(prefs))

	kept := make([]ScoredRecipe, 0, len(scored))
	for _, s := range scored {
		text := s.CleanedIngredients
		if text == "" {
			text = s.Ingredients
		}

		if len(excluded) > 0 && ingredient.MatchesExcluded(text, excluded) {
			continue
		}
		if len(dietaryForbidden) > 0 && ingredient.MatchesExcluded(text, dietaryForbidden) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

func keys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
