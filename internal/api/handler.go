package api

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nfnt/resize"

	"github.com/qraxiss/smart-fridge-chef/internal/catalog"
	"github.com/qraxiss/smart-fridge-chef/internal/dietary"
	"github.com/qraxiss/smart-fridge-chef/internal/ingredient"
	"github.com/qraxiss/smart-fridge-chef/internal/platform/recsvc"
	"github.com/qraxiss/smart-fridge-chef/internal/recipe"
	"github.com/qraxiss/smart-fridge-chef/internal/search"
)

// StateStore defines the interface for the fridge and preference state.
type StateStore interface {
	AddIngredient(name string)
	RemoveIngredient(name string)
	ClearFridge()
	Fridge() []string
	SetPreferences(prefs dietary.Preferences)
	Preferences() dietary.Preferences
	ToggleExcluded(name string) bool
	Excluded() []string
}

// Searcher defines the interface for ingredient search.
type Searcher interface {
	Search(query string, opts search.Options) search.Result
}

// RecentTracker defines the interface for recent-ingredient tracking.
type RecentTracker interface {
	Track(name string)
	List() []string
}

// RemoteRecommender defines the interface for the remote recommendation
// service.
type RemoteRecommender interface {
	Fetch(ctx context.Context, ingredients []string) ([]recipe.Recipe, error)
}

// HealthChecker defines the interface for upstream liveness probes.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Handler handles HTTP requests.
type Handler struct {
	State    StateStore
	Engine   Searcher
	Recents  RecentTracker
	Remote   RemoteRecommender
	Upstream HealthChecker
	Recipes  []recipe.Recipe
	ImageDir string
}

// NewHandler creates a new Handler.
func NewHandler(state StateStore, engine Searcher, recents RecentTracker, remote RemoteRecommender, upstream HealthChecker, recipes []recipe.Recipe, imageDir string) *Handler {
	return &Handler{
		State:    state,
		Engine:   engine,
		Recents:  recents,
		Remote:   remote,
		Upstream: upstream,
		Recipes:  recipes,
		ImageDir: imageDir,
	}
}

// RegisterRoutes wires the handler into the router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.Health)

	r.GET("/fridge", h.GetFridge)
	r.POST("/fridge/ingredients", h.AddFridgeIngredient)
	r.DELETE("/fridge/ingredients/:name", h.RemoveFridgeIngredient)
	r.DELETE("/fridge", h.ClearFridge)
	r.GET("/fridge/grouped", h.GetFridgeGrouped)

	r.GET("/preferences", h.GetPreferences)
	r.PUT("/preferences", h.PutPreferences)
	r.GET("/exclusions", h.GetExclusions)
	r.POST("/exclusions/:name", h.ToggleExclusion)

	r.GET("/ingredients/search", h.SearchIngredients)
	r.POST("/ingredients/track", h.TrackIngredient)
	r.GET("/ingredients/recent", h.RecentIngredients)

	r.GET("/recommendations", h.GetRecommendations)
	r.POST("/recommendations/remote", h.RemoteRecommendations)

	r.GET("/recipes/:title", h.GetRecipe)
	r.GET("/recipes/:title/image", h.RecipeThumbnail)
}

// Health reports service liveness and, when a recommendation service
// is configured, whether it is reachable.
func (h *Handler) Health(c *gin.Context) {
	resp := gin.H{"status": "ok"}

	if h.Upstream != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.Upstream.Health(ctx); err != nil {
			resp["recommendationService"] = "offline"
		} else {
			resp["recommendationService"] = "online"
		}
	}

	c.JSON(http.StatusOK, resp)
}

// fridgeItem is one ingredient enriched with its catalog metadata.
type fridgeItem struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Emoji    string `json:"emoji"`
	Category string `json:"category"`
}

func toFridgeItem(name string) fridgeItem {
	meta := catalog.Lookup(name)
	return fridgeItem{Name: name, Label: meta.Label, Emoji: meta.Emoji, Category: meta.Category}
}

// GetFridge returns the fridge contents with catalog metadata.
func (h *Handler) GetFridge(c *gin.Context) {
	names := h.State.Fridge()
	items := make([]fridgeItem, 0, len(names))
	for _, name := range names {
		items = append(items, toFridgeItem(name))
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": items})
}

type ingredientRequest struct {
	Name string `json:"name"`
}

// AddFridgeIngredient normalizes the submitted ingredient and puts it
// in the fridge. Duplicates are accepted and ignored.
func (h *Handler) AddFridgeIngredient(c *gin.Context) {
	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, fmt.Sprintf("invalid request body: %s", err.Error()))
		return
	}

	name := ingredient.Normalize(req.Name)
	if name == "" {
		c.String(http.StatusBadRequest, "ingredient name is empty")
		return
	}

	h.State.AddIngredient(name)
	h.Recents.Track(name)
	c.JSON(http.StatusOK, gin.H{"ingredients": h.State.Fridge()})
}

// RemoveFridgeIngredient takes an ingredient out of the fridge.
func (h *Handler) RemoveFridgeIngredient(c *gin.Context) {
	name := ingredient.Normalize(c.Param("name"))
	if name == "" {
		c.String(http.StatusBadRequest, "ingredient name is empty")
		return
	}

	h.State.RemoveIngredient(name)
	c.JSON(http.StatusOK, gin.H{"ingredients": h.State.Fridge()})
}

// ClearFridge removes every ingredient from the fridge.
func (h *Handler) ClearFridge(c *gin.Context) {
	h.State.ClearFridge()
	c.JSON(http.StatusOK, gin.H{"ingredients": []string{}})
}

// GetFridgeGrouped returns the fridge contents grouped by catalog
// category, categories sorted alphabetically with the catch-all group
// last.
func (h *Handler) GetFridgeGrouped(c *gin.Context) {
	names := h.State.Fridge()
	grouped := catalog.GroupByCategory(names)
	ordered := catalog.SortCategories(keysOf(grouped))

	type group struct {
		Category    string       `json:"category"`
		Emoji       string       `json:"emoji"`
		Ingredients []fridgeItem `json:"ingredients"`
	}

	groups := make([]group, 0, len(ordered))
	for _, category := range ordered {
		items := make([]fridgeItem, 0, len(grouped[category]))
		for _, name := range grouped[category] {
			items = append(items, toFridgeItem(name))
		}
		groups = append(groups, group{
			Category:    category,
			Emoji:       catalog.CategoryEmojis[category],
			Ingredients: items,
		})
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// GetPreferences returns the dietary preferences and their active
// labels.
func (h *Handler) GetPreferences(c *gin.Context) {
	prefs := h.State.Preferences()
	c.JSON(http.StatusOK, gin.H{
		"preferences":  prefs,
		"activeLabels": dietary.ActiveLabels(prefs),
	})
}

// PutPreferences replaces the dietary preferences.
func (h *Handler) PutPreferences(c *gin.Context) {
	var prefs dietary.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.String(http.StatusBadRequest, fmt.Sprintf("invalid request body: %s", err.Error()))
		return
	}

	h.State.SetPreferences(prefs)
	c.JSON(http.StatusOK, gin.H{
		"preferences":  prefs,
		"activeLabels": dietary.ActiveLabels(prefs),
	})
}

// GetExclusions returns the excluded ingredients.
func (h *Handler) GetExclusions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"excluded": h.State.Excluded()})
}

// ToggleExclusion flips an ingredient in or out of the exclusion set.
func (h *Handler) ToggleExclusion(c *gin.Context) {
	name := ingredient.Normalize(c.Param("name"))
	if name == "" {
		c.String(http.StatusBadRequest, "ingredient name is empty")
		return
	}

	excluded := h.State.ToggleExcluded(name)
	c.JSON(http.StatusOK, gin.H{"name": name, "excluded": excluded})
}

// SearchIngredients runs a scored ingredient search.
func (h *Handler) SearchIngredients(c *gin.Context) {
	opts := search.Options{}
	if max := c.Query("max"); max != "" {
		n, err := strconv.Atoi(max)
		if err != nil || n <= 0 {
			c.String(http.StatusBadRequest, "max must be a positive integer")
			return
		}
		opts.MaxResults = n
	}

	c.JSON(http.StatusOK, h.Engine.Search(c.Query("q"), opts))
}

// TrackIngredient records an ingredient selection in the recent list.
func (h *Handler) TrackIngredient(c *gin.Context) {
	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, fmt.Sprintf("invalid request body: %s", err.Error()))
		return
	}

	name := ingredient.Normalize(req.Name)
	if name == "" {
		c.String(http.StatusBadRequest, "ingredient name is empty")
		return
	}

	h.Recents.Track(name)
	c.JSON(http.StatusOK, gin.H{"recent": h.Recents.List()})
}

// RecentIngredients returns the recently selected ingredients, newest
// first.
func (h *Handler) RecentIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recent": h.Recents.List()})
}

// GetRecommendations runs the local matching pipeline over the corpus.
func (h *Handler) GetRecommendations(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.String(http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	results := recipe.Recommend(h.Recipes, h.State.Fridge(), h.State.Preferences(), h.State.Excluded())
	total := len(results)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	c.JSON(http.StatusOK, gin.H{"recipes": results, "total": total})
}

// RemoteRecommendations asks the remote service for candidates and
// applies the local ranking and dietary filter to the result. A request
// superseded by a newer one returns 409 so the stale response is never
// mistaken for current data.
func (h *Handler) RemoteRecommendations(c *gin.Context) {
	if h.Remote == nil {
		c.String(http.StatusServiceUnavailable, "remote recommendation service is not configured")
		return
	}

	fridge := h.State.Fridge()
	if len(fridge) == 0 {
		c.JSON(http.StatusOK, gin.H{"recipes": []recipe.ScoredRecipe{}, "total": 0})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	candidates, err := h.Remote.Fetch(ctx, fridge)
	if err != nil {
		if errors.Is(err, recsvc.ErrSuperseded) {
			c.String(http.StatusConflict, "superseded by a newer recommendation request")
			return
		}
		var apiErr *recsvc.APIError
		if errors.As(err, &apiErr) {
			c.String(http.StatusBadGateway, fmt.Sprintf("recommendation service error: %s", apiErr.Message))
			return
		}
		if errors.Is(err, context.DeadlineExceeded) {
			c.String(http.StatusRequestTimeout, "recommendation service call timed out after 30 seconds")
			return
		}
		c.String(http.StatusInternalServerError, fmt.Sprintf("recommendation err: %s", err.Error()))
		return
	}

	results := recipe.Recommend(candidates, fridge, h.State.Preferences(), h.State.Excluded())
	c.JSON(http.StatusOK, gin.H{"recipes": results, "total": len(results)})
}

// GetRecipe returns a single recipe by title with its ingredient list
// and instruction steps parsed out.
func (h *Handler) GetRecipe(c *gin.Context) {
	title := c.Param("title")

	for _, r := range h.Recipes {
		if !strings.EqualFold(r.Title, title) {
			continue
		}
		c.JSON(http.StatusOK, gin.H{
			"title":        r.Title,
			"ingredients":  recipe.ParseIngredientList(r.Ingredients),
			"instructions": r.InstructionSteps(),
			"imageName":    r.ImageName,
		})
		return
	}

	c.String(http.StatusNotFound, "Recipe not found")
}

// RecipeThumbnail serves a resized recipe image as JPEG. The width
// query parameter controls the output width, preserving aspect ratio.
func (h *Handler) RecipeThumbnail(c *gin.Context) {
	title := c.Param("title")

	var imageName string
	for _, r := range h.Recipes {
		if strings.EqualFold(r.Title, title) {
			imageName = r.ImageName
			break
		}
	}
	if imageName == "" {
		c.String(http.StatusNotFound, "Recipe not found")
		return
	}

	width := uint(400)
	if raw := c.Query("width"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 2000 {
			c.String(http.StatusBadRequest, "width must be between 1 and 2000")
			return
		}
		width = uint(n)
	}

	img, err := loadRecipeImage(h.ImageDir, imageName)
	if err != nil {
		log.Printf("failed to load image %s: %v", imageName, err)
		c.String(http.StatusNotFound, "Image not found")
		return
	}

	thumb := resize.Resize(width, 0, img, resize.Lanczos3)

	c.Header("Content-Type", "image/jpeg")
	if err := jpeg.Encode(c.Writer, thumb, nil); err != nil {
		log.Printf("failed to encode thumbnail for %s: %v", imageName, err)
	}
}

// loadRecipeImage finds and decodes the image file for a recipe. The
// dataset stores image names without extensions.
func loadRecipeImage(dir, imageName string) (image.Image, error) {
	for _, extension := range []string{".jpg", ".jpeg", ".png"} {
		path := filepath.Join(dir, imageName+extension)
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		defer f.Close()

		var img image.Image
		switch extension {
		case ".png":
			img, err = png.Decode(f)
		default:
			img, err = jpeg.Decode(f)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("no image file found for %s", imageName)
}

func keysOf(grouped map[string][]string) []string {
	out := make([]string, 0, len(grouped))
	for k := range grouped {
		out = append(out, k)
	}
	return out
}
