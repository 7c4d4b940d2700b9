// Package dietary maps a user's dietary preference flags to the set of
// ingredient terms their meals must not contain. The per-flag lists are
// static, hand-curated configuration; the matching algorithms never
// need to change when a list grows.
package dietary

// Preferences is the fixed record of dietary flags a user can toggle.
type Preferences struct {
	GlutenFree bool `json:"glutenFree"`
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	DairyFree  bool `json:"dairyFree"`
	NutAllergy bool `json:"nutAllergy"`
}

// meatAndSeafood is shared between the vegan and vegetarian rule
// groups: vegan forbids everything vegetarian does, plus dairy, eggs
// and the remaining animal products.
var meatAndSeafood = []string{
	// Meat & poultry.
	"beef", "chicken", "turkey", "pork", "lamb", "veal", "duck",
	"goose", "rabbit", "bacon", "ham", "sausage", "salami",
	"chorizo", "prosciutto", "pancetta",
	// Seafood.
	"fish", "salmon", "tuna", "shrimp", "crab", "lobster", "mussels",
	"oysters", "clams", "scallops", "squid", "octopus", "anchovies",
	"sardines",
}

var veganOnly = []string{
	// Dairy & eggs.
	"milk", "cream", "butter", "cheese", "yogurt",
	"egg", "eggs", "egg yolk", "egg white", "mayonnaise",
	// Other animal products.
	"honey", "gelatin", "whey", "casein",
}

var glutenSources = []string{
	"flour", "wheat", "barley", "rye", "bread", "pasta", "spaghetti",
	"macaroni", "noodles", "couscous", "bulgur", "semolina",
	"breadcrumbs", "panko",
	"soy sauce", // usually brewed with wheat
}

var dairySources = []string{
	"milk", "cream", "butter", "cheese", "yogurt", "sour cream",
	"buttermilk", "whey", "casein", "lactose",
}

var nutSources = []string{
	"almonds", "walnuts", "cashews", "pistachios", "hazelnuts",
	"pecans", "pine nuts", "peanuts",
	"peanut butter", "almond butter", "walnut oil", "almond milk",
}

// Forbidden returns the set of canonical ingredient terms the given
// preferences rule out. Rule groups are additive; vegan is evaluated
// inclusively, so its result always covers the vegetarian terms even
// when the vegetarian flag is off.
func Forbidden(prefs Preferences) map[string]bool {
	forbidden := make(map[string]bool)

	add := func(terms []string) {
		for _, t := range terms {
			forbidden[t] = true
		}
	}

	if prefs.Vegan {
		add(meatAndSeafood)
		add(veganOnly)
	}
	if prefs.Vegetarian {
		add(meatAndSeafood)
	}
	if prefs.GlutenFree {
		add(glutenSources)
	}
	if prefs.DairyFree {
		add(dairySources)
	}
	if prefs.NutAllergy {
		add(nutSources)
	}

	return forbidden
}

// AllForbidden unions the rule-derived forbidden set with the user's
// explicit exclusion list.
func AllForbidden(prefs Preferences, excluded []string) map[string]bool {
	forbidden := Forbidden(prefs)
	for _, name := range excluded {
		forbidden[name] = true
	}
	return forbidden
}

// ActiveLabels returns the human labels of the active flags in display
// order. Vegan supersedes the Vegetarian label.
func ActiveLabels(prefs Preferences) []string {
	var labels []string
	if prefs.Vegan {
		labels = append(labels, "Vegan")
	}
	if prefs.Vegetarian && !prefs.Vegan {
		labels = append(labels, "Vegetarian")
	}
	if prefs.GlutenFree {
		labels = append(labels, "Gluten-Free")
	}
	if prefs.DairyFree {
		labels = append(labels, "Dairy-Free")
	}
	if prefs.NutAllergy {
		labels = append(labels, "Nut-Free")
	}
	return labels
}
