package recipe

import (
	"encoding/json"
	"log"
	"strings"
)

// Recipe is one entry of the read-only recipe corpus. Ingredients and
// CleanedIngredients carry python-style stringified lists as shipped in
// the source dataset; the matching pipeline treats them as opaque text
// and only display paths parse them.
type Recipe struct {
	Title              string `json:"Title" db:"title"`
	Ingredients        string `json:"Ingredients" db:"ingredients"`
	Instructions       string `json:"Instructions" db:"instructions"`
	ImageName          string `json:"Image_Name" db:"image_name"`
	CleanedIngredients string `json:"Cleaned_Ingredients" db:"cleaned_ingredients"`
}

// ScoredRecipe is a recipe annotated with how well it matches the
// user's fridge. Computed per request, never persisted.
type ScoredRecipe struct {
	Recipe
	MatchingCount       int      `json:"matchingCount"`
	MatchingIngredients []string `json:"matchingIngredients"`
}

// RankedIngredient is an ingredient name with its frequency in the
// recipe corpus. The dataset is pre-sorted by count descending.
type RankedIngredient struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ParseIngredientList parses a python-style list string such as
// ['a', 'b'] into its elements. Malformed input degrades to an empty
// list with a logged warning; substring matching over the raw text is
// unaffected.
func ParseIngredientList(s string) []string {
	validJSON := strings.ReplaceAll(s, "'", `"`)

	var items []string
	if err := json.Unmarshal([]byte(validJSON), &items); err != nil {
		log.Printf("failed to parse ingredient list %q: %v", s, err)
		return []string{}
	}
	return items
}

// InstructionSteps splits the newline-delimited instruction text into
// steps, dropping blank lines.
func (r Recipe) InstructionSteps() []string {
	var steps []string
	for _, line := range strings.Split(r.Instructions, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			steps = append(steps, trimmed)
		}
	}
	return steps
}
