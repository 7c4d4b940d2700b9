package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/qraxiss/smart-fridge-chef/internal/api"
	"github.com/qraxiss/smart-fridge-chef/internal/platform/recsvc"
	"github.com/qraxiss/smart-fridge-chef/internal/recipe"
	"github.com/qraxiss/smart-fridge-chef/internal/search"
	"github.com/qraxiss/smart-fridge-chef/internal/state"
	"github.com/qraxiss/smart-fridge-chef/internal/storage"
)

// Config represents the application configuration.
type Config struct {
	DatabaseURL         string   `json:"DATABASE_URL"`
	DataDir             string   `json:"data_dir"`
	RecipesPath         string   `json:"recipes_path"`
	IngredientsPath     string   `json:"ingredients_path"`
	ImageDir            string   `json:"image_dir"`
	RecommendServiceURL string   `json:"recommend_service_url"`
	AllowOrigins        []string `json:"allow_origins"`
	ListenAddr          string   `json:"listen_addr"`
}

func loadConfig() (Config, error) {
	config := Config{
		DataDir:         "data/db",
		RecipesPath:     "data/recipes.json",
		IngredientsPath: "data/ingredients.json",
		ImageDir:        "images",
		ListenAddr:      ":8080",
	}

	configData, err := os.ReadFile("config.json")
	if err != nil {
		if !os.IsNotExist(err) {
			return config, fmt.Errorf("failed to read config.json: %w", err)
		}
		log.Println("No config.json found, using defaults")
	} else if err := json.Unmarshal(configData, &config); err != nil {
		return config, fmt.Errorf("failed to unmarshal config.json: %w", err)
	}

	// Environment variables override the file.
	if url := os.Getenv("DATABASE_URL"); url != "" {
		config.DatabaseURL = url
	}
	if url := os.Getenv("RECOMMEND_SERVICE_URL"); url != "" {
		config.RecommendServiceURL = url
	}
	return config, nil
}

// loadCorpus prefers the PostgreSQL corpus when DATABASE_URL is set and
// falls back to the bundled JSON dataset otherwise.
func loadCorpus(ctx context.Context, config Config) ([]recipe.Recipe, error) {
	if config.DatabaseURL != "" {
		store, err := recipe.NewPostgresStore(config.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("error creating postgresstore: %w", err)
		}
		defer store.Close()
		return store.LoadAll(ctx)
	}
	return recipe.LoadCorpus(config.RecipesPath)
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config, err := loadConfig()
	if err != nil {
		panic(err)
	}

	recipes, err := loadCorpus(ctx, config)
	if err != nil {
		panic(fmt.Errorf("error loading recipe corpus: %w", err))
	}

	ranked, err := recipe.LoadRankedIngredients(config.IngredientsPath)
	if err != nil {
		panic(fmt.Errorf("error loading ingredient dataset: %w", err))
	}

	store, err := storage.New(config.DataDir)
	if err != nil {
		panic(fmt.Errorf("error opening storage: %w", err))
	}
	defer store.Close()
	store.StartGCRoutine(10 * time.Minute)

	var remote api.RemoteRecommender
	var upstream api.HealthChecker
	if config.RecommendServiceURL != "" {
		client := recsvc.NewClient(config.RecommendServiceURL)
		remote = recsvc.NewFetcher(client)
		upstream = client
	}

	handler := api.NewHandler(
		state.New(store),
		search.NewEngine(ranked),
		search.NewRecents(store),
		remote,
		upstream,
		recipes,
		config.ImageDir,
	)

	r := gin.Default()

	// Configure CORS middleware
	allowOrigins := config.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:8081"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler.RegisterRoutes(r)
	r.Static("/images", "./"+config.ImageDir)

	r.Run(config.ListenAddr)
}
