package recipe

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadCorpus reads the recipe corpus from a JSON file. Entries missing
// a title or ingredient text are skipped rather than failing the whole
// load.
func LoadCorpus(path string) ([]Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe corpus: %w", err)
	}

	var raw []Recipe
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe corpus: %w", err)
	}

	recipes := make([]Recipe, 0, len(raw))
	skipped := 0
	for _, r := range raw {
		if r.Title == "" || r.Ingredients == "" {
			skipped++
			continue
		}
		recipes = append(recipes, r)
	}

	log.Printf("Loaded %d recipes from %s", len(recipes), path)
	if skipped > 0 {
		log.Printf("Skipped %d invalid recipes", skipped)
	}
	return recipes, nil
}

// LoadRankedIngredients reads the frequency-ranked ingredient dataset
// from a JSON file. The file is expected to be pre-sorted by count
// descending.
func LoadRankedIngredients(path string) ([]RankedIngredient, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ingredient dataset: %w", err)
	}

	var ranked []RankedIngredient
	if err := json.Unmarshal(data, &ranked); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ingredient dataset: %w", err)
	}

	log.Printf("Loaded %d ranked ingredients from %s", len(ranked), path)
	return ranked, nil
}
