package search

import (
	"log"
	"sync"
)

const (
	recentKey = "recentIngredients"
	maxRecent = 10
)

// RecentStore is the slice of the key-value store the recency tracker
// needs.
type RecentStore interface {
	Get(key string, value interface{}) error
	Set(key string, value interface{}) error
}

// Recents tracks the most recently selected ingredients, newest first,
// deduplicated and capped at ten entries. Storage failures degrade to
// in-memory-only behavior for the session.
type Recents struct {
	mu    sync.Mutex
	store RecentStore
	items []string
}

// NewRecents loads the persisted recent list; a missing or corrupt
// value starts empty.
func NewRecents(store RecentStore) *Recents {
	r := &Recents{store: store}
	if store != nil {
		var items []string
		if err := store.Get(recentKey, &items); err == nil {
			if len(items) > maxRecent {
				items = items[:maxRecent]
			}
			r.items = items
		}
	}
	return r
}

// Track records a selected ingredient as the most recent one.
func (r *Recents) Track(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]string, 0, len(r.items)+1)
	updated = append(updated, name)
	for _, item := range r.items {
		if item != name {
			updated = append(updated, item)
		}
	}
	if len(updated) > maxRecent {
		updated = updated[:maxRecent]
	}
	r.items = updated

	if r.store != nil {
		if err := r.store.Set(recentKey, r.items); err != nil {
			log.Printf("failed to persist recent ingredients: %v", err)
		}
	}
}

// List returns the recent ingredients, most recent first.
func (r *Recents) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.items))
	copy(out, r.items)
	return out
}
