// Package recsvc talks to the remote recommendation service. The
// service suggests candidate recipes for a set of ingredients; the
// local dietary filter is still applied to whatever comes back.
package recsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/qraxiss/smart-fridge-chef/internal/recipe"
)

// ErrSuperseded reports that a newer fetch started while this one was
// in flight and its result was discarded.
var ErrSuperseded = errors.New("recommendation request superseded")

// APIError is a non-2xx response from the recommendation service.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("recommendation service error (status %d): %s", e.Status, e.Message)
}

// Client is an HTTP client for the recommendation service.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
	}
}

type recommendRequest struct {
	Ingredients []string `json:"ingredients"`
}

type recommendResponse struct {
	Recipes []recipe.Recipe `json:"recipes"`
}

// Recommend asks the service for candidate recipes for the given
// ingredients.
func (c *Client) Recommend(ctx context.Context, ingredients []string) ([]recipe.Recipe, error) {
	reqBytes, err := json.Marshal(recommendRequest{Ingredients: ingredients})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recommend", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var body struct {
			Message string `json:"message"`
			Detail  string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			if body.Message != "" {
				apiErr.Message = body.Message
			} else if body.Detail != "" {
				apiErr.Message = body.Detail
			}
		}
		return nil, apiErr
	}

	var recResp recommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&recResp); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	return recResp.Recipes, nil
}

// Health checks whether the service is reachable.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return nil
}

// Recommender is the remote call the fetcher serializes.
type Recommender interface {
	Recommend(ctx context.Context, ingredients []string) ([]recipe.Recipe, error)
}

// Fetcher serializes recommendation fetches with last-request-wins
// semantics: starting a new fetch cancels the in-flight one, and a
// fetch that finishes after being superseded reports ErrSuperseded
// instead of returning stale recipes.
type Fetcher struct {
	mu         sync.Mutex
	client     Recommender
	cancel     context.CancelFunc
	generation uint64
}

// NewFetcher wraps a recommendation client.
func NewFetcher(client Recommender) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch requests recommendations, superseding any fetch still running.
func (f *Fetcher) Fetch(ctx context.Context, ingredients []string) ([]recipe.Recipe, error) {
	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.generation++
	generation := f.generation
	f.mu.Unlock()

	defer cancel()

	recipes, err := f.client.Recommend(ctx, ingredients)

	f.mu.Lock()
	stale := generation != f.generation
	f.mu.Unlock()

	if stale {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	return recipes, nil
}
