package search

// ingredientSynonyms is the static bidirectional synonym table used
// for query expansion. Extending it requires no changes to the
// matching code.
var ingredientSynonyms = map[string][]string{
	"cilantro":      {"coriander", "chinese parsley"},
	"coriander":     {"cilantro", "chinese parsley"},
	"green onion":   {"scallion", "spring onion"},
	"scallion":      {"green onion", "spring onion"},
	"spring onion":  {"green onion", "scallion"},
	"sweet pepper":  {"bell pepper", "capsicum"},
	"bell pepper":   {"sweet pepper", "capsicum"},
	"capsicum":      {"bell pepper", "sweet pepper"},
	"zucchini":      {"courgette"},
	"courgette":     {"zucchini"},
	"eggplant":      {"aubergine"},
	"aubergine":     {"eggplant"},
	"chickpea":      {"garbanzo bean"},
	"garbanzo bean": {"chickpea"},
}
