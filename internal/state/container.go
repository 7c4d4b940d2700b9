// Package state holds the user's fridge, dietary preferences and
// excluded ingredients in a single-writer container. All persistence
// happens at this boundary; the matching pipeline only ever sees
// immutable snapshots.
package state

import (
	"log"
	"sync"

	"github.com/qraxiss/smart-fridge-chef/internal/dietary"
)

// Persisted value keys in the key-value store.
const (
	keyFridge      = "fridgeIngredients"
	keyPreferences = "dietaryPreferences"
	keyExclusions  = "excludedIngredients"
)

// KV is the slice of the key-value store the container needs.
type KV interface {
	Get(key string, value interface{}) error
	Set(key string, value interface{}) error
}

// Container is the mutable application state. Mutations are applied
// one at a time under the lock and each one is written through to the
// store; a storage failure logs and keeps the in-memory value, so the
// session degrades to memory-only rather than surfacing an error.
type Container struct {
	mu          sync.Mutex
	store       KV
	fridge      []string
	preferences dietary.Preferences
	excluded    []string
}

// New creates a container, loading any persisted values. Missing or
// corrupt values default to an empty fridge, all-false preferences and
// no exclusions.
func New(store KV) *Container {
	c := &Container{store: store}
	if store == nil {
		return c
	}

	if err := store.Get(keyFridge, &c.fridge); err != nil {
		c.fridge = nil
	}
	if err := store.Get(keyPreferences, &c.preferences); err != nil {
		c.preferences = dietary.Preferences{}
	}
	if err := store.Get(keyExclusions, &c.excluded); err != nil {
		c.excluded = nil
	}
	return c
}

// AddIngredient puts an ingredient into the fridge. Adding an
// ingredient that is already present is a no-op.
func (c *Container) AddIngredient(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.fridge {
		if existing == name {
			return
		}
	}
	c.fridge = append(c.fridge, name)
	c.persist(keyFridge, c.fridge)
}

// RemoveIngredient takes an ingredient out of the fridge. Removing an
// absent ingredient is a no-op.
func (c *Container) RemoveIngredient(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.fridge[:0]
	removed := false
	for _, existing := range c.fridge {
		if existing == name {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		return
	}
	c.fridge = kept
	c.persist(keyFridge, c.fridge)
}

// ClearFridge removes every ingredient.
func (c *Container) ClearFridge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fridge = nil
	c.persist(keyFridge, []string{})
}

// Fridge returns a snapshot of the fridge contents.
func (c *Container) Fridge() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshot(c.fridge)
}

// SetPreferences replaces the dietary preference record.
func (c *Container) SetPreferences(prefs dietary.Preferences) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.preferences = prefs
	c.persist(keyPreferences, prefs)
}

// Preferences returns the current dietary preference record.
func (c *Container) Preferences() dietary.Preferences {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.preferences
}

// ToggleExcluded adds the ingredient to the exclusion set if absent,
// removes it otherwise, and reports whether it is now excluded.
func (c *Container) ToggleExcluded(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.excluded[:0]
	removed := false
	for _, existing := range c.excluded {
		if existing == name {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	c.excluded = kept
	if !removed {
		c.excluded = append(c.excluded, name)
	}
	c.persist(keyExclusions, c.excluded)
	return !removed
}

// Excluded returns a snapshot of the excluded ingredients.
func (c *Container) Excluded() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshot(c.excluded)
}

func (c *Container) persist(key string, value interface{}) {
	if c.store == nil {
		return
	}
	if err := c.store.Set(key, value); err != nil {
		log.Printf("failed to persist %s: %v", key, err)
	}
}

func snapshot(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}
