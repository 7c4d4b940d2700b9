package state

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qraxiss/smart-fridge-chef/internal/dietary"
)

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

type failingStore struct{}

func (failingStore) Get(string, interface{}) error { return errors.New("store down") }
func (failingStore) Set(string, interface{}) error { return errors.New("store down") }

func TestContainer_AddIngredientIdempotent(t *testing.T) {
	c := New(newMemStore())

	c.AddIngredient("garlic")
	c.AddIngredient("onion")
	c.AddIngredient("garlic")

	assert.Equal(t, []string{"garlic", "onion"}, c.Fridge())
}

func TestContainer_RemoveIngredient(t *testing.T) {
	c := New(newMemStore())

	c.AddIngredient("garlic")
	c.AddIngredient("onion")
	c.RemoveIngredient("garlic")
	c.RemoveIngredient("never-added")

	assert.Equal(t, []string{"onion"}, c.Fridge())
}

func TestContainer_ClearFridge(t *testing.T) {
	c := New(newMemStore())

	c.AddIngredient("garlic")
	c.ClearFridge()

	assert.Empty(t, c.Fridge())
}

func TestContainer_PreferencesRoundTrip(t *testing.T) {
	store := newMemStore()
	c := New(store)

	prefs := dietary.Preferences{Vegan: true, NutAllergy: true}
	c.SetPreferences(prefs)
	assert.Equal(t, prefs, c.Preferences())

	// A fresh container sees the persisted values.
	reloaded := New(store)
	assert.Equal(t, prefs, reloaded.Preferences())
}

func TestContainer_ToggleExcluded(t *testing.T) {
	c := New(newMemStore())

	assert.True(t, c.ToggleExcluded("cilantro"))
	assert.Equal(t, []string{"cilantro"}, c.Excluded())

	assert.False(t, c.ToggleExcluded("cilantro"))
	assert.Empty(t, c.Excluded())
}

func TestContainer_PersistsFridgeAcrossInstances(t *testing.T) {
	store := newMemStore()

	first := New(store)
	first.AddIngredient("garlic")
	first.AddIngredient("tomato")
	first.RemoveIngredient("garlic")

	second := New(store)
	assert.Equal(t, []string{"tomato"}, second.Fridge())
}

func TestContainer_StorageFailureDegradesToMemory(t *testing.T) {
	c := New(failingStore{})

	c.AddIngredient("garlic")
	c.SetPreferences(dietary.Preferences{Vegetarian: true})
	c.ToggleExcluded("peanut")

	assert.Equal(t, []string{"garlic"}, c.Fridge())
	assert.True(t, c.Preferences().Vegetarian)
	assert.Equal(t, []string{"peanut"}, c.Excluded())
}

func TestContainer_SnapshotsAreCopies(t *testing.T) {
	c := New(nil)
	c.AddIngredient("garlic")

	snap := c.Fridge()
	snap[0] = "mutated"

	assert.Equal(t, []string{"garlic"}, c.Fridge())
}
