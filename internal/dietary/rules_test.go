package dietary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForbidden_Empty(t *testing.T) {
	assert.Empty(t, Forbidden(Preferences{}))
}

func TestForbidden_VeganSupersetOfVegetarian(t *testing.T) {
	vegan := Forbidden(Preferences{Vegan: true})
	vegetarian := Forbidden(Preferences{Vegetarian: true})

	for term := range vegetarian {
		assert.True(t, vegan[term], "vegan should forbid %q", term)
	}

	// Vegan additionally forbids dairy, eggs and honey.
	assert.True(t, vegan["milk"])
	assert.True(t, vegan["egg"])
	assert.True(t, vegan["honey"])
	assert.False(t, vegetarian["milk"])
	assert.False(t, vegetarian["egg"])
}

func TestForbidden_VeganWithoutVegetarianFlag(t *testing.T) {
	// Selecting vegan alone must still rule out all meat and seafood.
	vegan := Forbidden(Preferences{Vegan: true, Vegetarian: false})
	assert.True(t, vegan["chicken"])
	assert.True(t, vegan["salmon"])
}

func TestForbidden_GroupsAreAdditive(t *testing.T) {
	forbidden := Forbidden(Preferences{GlutenFree: true, NutAllergy: true})

	assert.True(t, forbidden["flour"])
	assert.True(t, forbidden["soy sauce"])
	assert.True(t, forbidden["peanuts"])
	assert.True(t, forbidden["almond milk"])
	assert.False(t, forbidden["chicken"])
}

func TestForbidden_DairyFree(t *testing.T) {
	forbidden := Forbidden(Preferences{DairyFree: true})
	for _, term := range []string{"milk", "cream", "butter", "cheese", "yogurt", "sour cream", "buttermilk", "whey", "casein", "lactose"} {
		assert.True(t, forbidden[term], "dairy-free should forbid %q", term)
	}
}

func TestAllForbidden(t *testing.T) {
	forbidden := AllForbidden(Preferences{Vegetarian: true}, []string{"mushroom", "cilantro"})
	assert.True(t, forbidden["beef"])
	assert.True(t, forbidden["mushroom"])
	assert.True(t, forbidden["cilantro"])

	// Exclusions alone work with no flags set.
	forbidden = AllForbidden(Preferences{}, []string{"olives"})
	assert.Equal(t, map[string]bool{"olives": true}, forbidden)
}

func TestActiveLabels(t *testing.T) {
	assert.Empty(t, ActiveLabels(Preferences{}))

	labels := ActiveLabels(Preferences{Vegan: true, Vegetarian: true, GlutenFree: true, DairyFree: true, NutAllergy: true})
	assert.Equal(t, []string{"Vegan", "Gluten-Free", "Dairy-Free", "Nut-Free"}, labels)

	labels = ActiveLabels(Preferences{Vegetarian: true})
	assert.Equal(t, []string{"Vegetarian"}, labels)
}
