package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/qraxiss/smart-fridge-chef/internal/api"
	"github.com/qraxiss/smart-fridge-chef/internal/platform/recsvc"
	"github.com/qraxiss/smart-fridge-chef/internal/recipe"
	"github.com/qraxiss/smart-fridge-chef/internal/search"
	"github.com/qraxiss/smart-fridge-chef/internal/state"
)

// memStore is an in-memory stand-in for the BadgerDB store.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(key string, value interface{}) error {
	raw, ok := m.data[key]
	if !ok {
		return errors.New("key not found")
	}
	return json.Unmarshal(raw, value)
}

func (m *memStore) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

// mockRemote is a mock of the remote recommendation fetcher.
type mockRemote struct {
	recipes             []recipe.Recipe
	returnError         error
	receivedIngredients []string
}

func (m *mockRemote) Fetch(ctx context.Context, ingredients []string) ([]recipe.Recipe, error) {
	m.receivedIngredients = ingredients
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.recipes, nil
}

var testRecipes = []recipe.Recipe{
	{
		Title:              "Garlic Chicken",
		Ingredients:        "['2 chicken breasts', '3 cloves garlic', 'salt']",
		CleanedIngredients: "['chicken', 'garlic', 'salt']",
		Instructions:       "Season the chicken.\nRoast with garlic.",
		ImageName:          "garlic-chicken",
	},
	{
		Title:              "Tomato Soup",
		Ingredients:        "['4 tomatoes', '1 onion', 'salt']",
		CleanedIngredients: "['tomato', 'onion', 'salt']",
		Instructions:       "Simmer everything.",
		ImageName:          "tomato-soup",
	},
}

var testRanked = []recipe.RankedIngredient{
	{Name: "chicken", Count: 100},
	{Name: "garlic", Count: 70},
	{Name: "tomato", Count: 60},
	{Name: "onion", Count: 50},
	{Name: "salt", Count: 40},
}

func setupRouter(remote api.RemoteRecommender, imageDir string) *gin.Engine {
	return setupRouterWithUpstream(remote, nil, imageDir)
}

func setupRouterWithUpstream(remote api.RemoteRecommender, upstream api.HealthChecker, imageDir string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := newMemStore()
	handler := api.NewHandler(
		state.New(store),
		search.NewEngine(testRanked),
		search.NewRecents(store),
		remote,
		upstream,
		testRecipes,
		imageDir,
	)

	r := gin.New()
	handler.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// mockHealth is a mock of the upstream health checker.
type mockHealth struct {
	returnError error
}

func (m *mockHealth) Health(ctx context.Context) error {
	return m.returnError
}

func TestHealth(t *testing.T) {
	r := setupRouter(nil, "")

	w := doJSON(t, r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.NotContains(t, body, "recommendationService")
}

func TestHealthReportsUpstream(t *testing.T) {
	r := setupRouterWithUpstream(nil, &mockHealth{}, "")

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, "online", decodeBody(t, w)["recommendationService"])

	r = setupRouterWithUpstream(nil, &mockHealth{returnError: errors.New("unreachable")}, "")

	w = doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, "offline", decodeBody(t, w)["recommendationService"])
}

func TestFridgeLifecycle(t *testing.T) {
	r := setupRouter(nil, "")

	// Qualifiers are stripped on the way in.
	w := doJSON(t, r, http.MethodPost, "/fridge/ingredients", map[string]string{"name": "Fresh Garlic"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/fridge/ingredients", map[string]string{"name": "tomato"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Duplicate add is accepted and ignored.
	w = doJSON(t, r, http.MethodPost, "/fridge/ingredients", map[string]string{"name": "garlic"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/fridge", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	items := decodeBody(t, w)["ingredients"].([]interface{})
	assert.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "garlic", first["name"])
	assert.NotEmpty(t, first["emoji"])
	assert.NotEmpty(t, first["category"])

	w = doJSON(t, r, http.MethodDelete, "/fridge/ingredients/garlic", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/fridge", nil)
	assert.Len(t, decodeBody(t, w)["ingredients"].([]interface{}), 1)

	w = doJSON(t, r, http.MethodDelete, "/fridge", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/fridge", nil)
	assert.Empty(t, decodeBody(t, w)["ingredients"])
}

func TestAddFridgeIngredientRejectsEmpty(t *testing.T) {
	r := setupRouter(nil, "")

	w := doJSON(t, r, http.MethodPost, "/fridge/ingredients", map[string]string{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFridgeGrouped(t *testing.T) {
	r := setupRouter(nil, "")

	for _, name := range []string{"apples", "garlic", "chicken"} {
		doJSON(t, r, http.MethodPost, "/fridge/ingredients", map[string]string{"name": name})
	}

	w := doJSON(t, r, http.MethodGet, "/fridge/grouped", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	groups := decodeBody(t, w)["groups"].([]interface{})
	assert.GreaterOrEqual(t, len(groups), 2)

	// Categories come back alphabetical.
	var names []string
	for _, g := range groups {
		names = append(names, g.(map[string]interface{})["category"].(string))
	}
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	r := setupRouter(nil, "")

	w := doJSON(t, r, http.MethodPut, "/preferences", map[string]bool{"vegan": true, "nutAllergy": true})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	labels := body["activeLabels"].([]interface{})
	assert.Contains(t, labels, "Vegan")
	assert.Contains(t, labels, "Nut-Free")
	assert.NotContains(t, labels, "Vegetarian")

	w = doJSON(t, r, http.MethodGet, "/preferences", nil)
	prefs := decodeBody(t, w)["preferences"].(map[string]interface{})
	assert.Equal(t, true, prefs["vegan"])
	assert.Equal(t, false, prefs["vegetarian"])
}

func TestExclusionToggle(t *testing.T) {
	r := setupRouter(nil, "")

	w := doJSON(t, r, http.MethodPost, "/exclusions/cilantro", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["excluded"])

	w = doJSON(t, r, http.MethodGet, "/exclusions", nil)
	assert.Equal(t, []interface{}{"cilantro"}, decodeBody(t, w)["excluded"])

	w = doJSON(t, r, http.MethodPost, "/exclusions/cilantro", nil)
	assert.Equal(t, false, decodeBody(t, w)["excluded"])

	w = doJSON(t, r, http.MethodGet, "/exclusions", nil)
	assert.Empty(t, decodeBody(t, w)["excluded"])
}

func TestSearchEndpoint(t *testing.T) {
	r := setupRouter(nil, "")

	w := doJSON(t, r, http.MethodGet, "/ingredients/search?q=chicken", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	suggestions := body["suggestions"].([]interface{})
	assert.NotEmpty(t, suggestions)
	top := suggestions[0].(map[string]interface{})
	assert.Equal(t, "chicken", top["name"])
	assert.Equal(t, "exact", top["matchType"])

	// Empty query returns the popular ingredients.
	w = doJSON(t, r, http.MethodGet, "/ingredients/search", nil)
	assert.Len(t, decodeBody(t, w)["suggestions"].([]interface{}), 5)

	w = doJSON(t, r, http.MethodGet, "/ingredients/search?q=chicken&max=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrackAndRecent(t *testing.T) {
	r := setupRouter(nil, "")

	doJSON(t, r, http.MethodPost, "/ingredients/track", map[string]string{"name": "garlic"})
	doJSON(t, r, http.MethodPost, "/ingredients/track", map[string]string{"name": "onion"})
	doJSON(t, r, http.MethodPost, "/ingredients/track", map[string]string{"name": "garlic"})

	w := doJSON(t, r, http.MethodGet, "/ingredients/recent", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"garlic", "onion"}, decodeBody(t, w)["recent"])
}

func TestLocalRecommendations(t *testing.T) {
	r := setupRouter(nil, "")

	doJSON(t, r, http.MethodPost, "/fridge/ingredients", map[string]string{"name": "chicken"})
	doJSON(t, r, http.MethodPost, "/fridge/ingredients", map[string]string{"name": "garlic"})

	w := doJSON(t, r, http.MethodGet, "/recommendations", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	recipes := body["recipes"].([]interface{})
	assert.Len(t, recipes, 1)
	top := recipes[0].(map[string]interface{})
	assert.Equal(t, "Garlic Chicken", top["Title"])
	assert.Equal(t, float64(2), top["matchingCount"])
}

func TestLocalRecommendationsHonorDiet(t *testing.T) {
	r := setupRouter(nil, "")

	doJSON(t, r, http.MethodPost, "/fridge/ingredients", map[string]string{"name": "chicken"})
	doJSON(t, r, http.MethodPost, "/fridge/ingredients", map[string]string{"name": "tomato"})
	doJSON(t, r, http.MethodPut, "/preferences", map[string]bool{"vegan": true})

	w := doJSON(t, r, http.MethodGet, "/recommendations", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	for _, item := range decodeBody(t, w)["recipes"].([]interface{}) {
		assert.NotEqual(t, "Garlic Chicken", item.(map[string]interface{})["Title"])
	}
}

func TestLocalRecommendationsEmptyFridge(t *testing.T) {
	r := setupRouter(nil, "")

	w := doJSON(t, r, http.MethodGet, "/recommendations", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["recipes"])
}

func TestRemoteRecommendations(t *testing.T) {
	remote := &mockRemote{recipes: testRecipes}
	r := setupRouter(remote, "")

	doJSON(t, r, http.MethodPost, "/fridge/ingredients", map[string]string{"name": "tomato"})
	doJSON(t, r, http.MethodPut, "/preferences", map[string]bool{"vegan": true})

	w := doJSON(t, r, http.MethodPost, "/recommendations/remote", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []string{"tomato"}, remote.receivedIngredients)

	recipes := decodeBody(t, w)["recipes"].([]interface{})
	assert.Len(t, recipes, 1)
	assert.Equal(t, "Tomato Soup", recipes[0].(map[string]interface{})["Title"])
}

func TestRemoteRecommendationsSuperseded(t *testing.T) {
	remote := &mockRemote{returnError: recsvc.ErrSuperseded}
	r := setupRouter(remote, "")

	doJSON(t, r, http.MethodPost, "/fridge/ingredients", map[string]string{"name": "tomato"})

	w := doJSON(t, r, http.MethodPost, "/recommendations/remote", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRemoteRecommendationsServiceError(t *testing.T) {
	remote := &mockRemote{returnError: &recsvc.APIError{Message: "model not loaded", Status: 503}}
	r := setupRouter(remote, "")

	doJSON(t, r, http.MethodPost, "/fridge/ingredients", map[string]string{"name": "tomato"})

	w := doJSON(t, r, http.MethodPost, "/recommendations/remote", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestRemoteRecommendationsNotConfigured(t *testing.T) {
	r := setupRouter(nil, "")

	doJSON(t, r, http.MethodPost, "/fridge/ingredients", map[string]string{"name": "tomato"})

	w := doJSON(t, r, http.MethodPost, "/recommendations/remote", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetRecipe(t *testing.T) {
	r := setupRouter(nil, "")

	w := doJSON(t, r, http.MethodGet, "/recipes/Garlic%20Chicken", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Garlic Chicken", body["title"])
	assert.Equal(t, []interface{}{"2 chicken breasts", "3 cloves garlic", "salt"}, body["ingredients"])
	assert.Equal(t, []interface{}{"Season the chicken.", "Roast with garlic."}, body["instructions"])

	w = doJSON(t, r, http.MethodGet, "/recipes/Unknown%20Dish", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecipeThumbnail(t *testing.T) {
	imageDir := t.TempDir()
	writeTestJPEG(t, filepath.Join(imageDir, "garlic-chicken.jpg"), 64, 48)

	r := setupRouter(nil, imageDir)

	w := doJSON(t, r, http.MethodGet, "/recipes/Garlic%20Chicken/image?width=32", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))

	img, err := jpeg.Decode(bytes.NewReader(w.Body.Bytes()))
	assert.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())

	w = doJSON(t, r, http.MethodGet, "/recipes/Garlic%20Chicken/image?width=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/recipes/Tomato%20Soup/image", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func writeTestJPEG(t *testing.T, path string, width, height int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	f, err := os.Create(path)
	assert.NoError(t, err)
	defer f.Close()
	assert.NoError(t, jpeg.Encode(f, img, nil))
}
