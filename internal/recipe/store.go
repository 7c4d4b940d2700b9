package recipe

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresStore holds the recipe corpus in PostgreSQL. The corpus is
// read-only at runtime: it is bulk-loaded once at startup and never
// written back.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore connects to the database and ensures the recipes
// table exists.
func NewPostgresStore(dataSourceName string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS recipes (
		title TEXT PRIMARY KEY,
		ingredients TEXT,
		instructions TEXT,
		image_name TEXT,
		cleaned_ingredients TEXT
	);
	`
	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create recipes table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// LoadAll reads the whole corpus. Rows without a title or ingredient
// text are skipped, mirroring the JSON loader.
func (s *PostgresStore) LoadAll(ctx context.Context) ([]Recipe, error) {
	var rows []Recipe
	err := s.db.SelectContext(ctx, &rows,
		"SELECT title, ingredients, instructions, image_name, cleaned_ingredients FROM recipes")
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}

	recipes := make([]Recipe, 0, len(rows))
	skipped := 0
	for _, r := range rows {
		if r.Title == "" || r.Ingredients == "" {
			skipped++
			continue
		}
		recipes = append(recipes, r)
	}

	log.Printf("Loaded %d recipes from database", len(recipes))
	if skipped > 0 {
		log.Printf("Skipped %d invalid recipe rows", skipped)
	}
	return recipes, nil
}

// Close releases the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
