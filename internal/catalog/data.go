package catalog

// Ingredient categories. CategoryOther is the canonical identity used
// by SortCategories; the remaining values match the display labels the
// frontend groups by.
const (
	CategoryFruits      = "Fruits"
	CategoryVegetables  = "Vegetables"
	CategoryMeatPoultry = "Meat & Poultry"
	CategorySeafood     = "Seafood"
	CategoryDairyEggs   = "Dairy & Eggs"
	CategoryGrainsPasta = "Grains & Pasta"
	CategorySpicesHerbs = "Spices & Herbs"
	CategoryBakery      = "Bakery"
	CategoryNutsSeeds   = "Nuts & Seeds"
	CategoryLegumes     = "Legumes"
	CategoryBeverages   = "Beverages"
	CategoryCondiments  = "Condiments & Sauces"
	CategoryOilsFats    = "Oils & Fats"
	CategoryDesserts    = "Desserts & Sweets"
	CategoryCanned      = "Canned & Preserved"
	CategoryOther       = "Other"
)

const fallbackEmoji = "🥘"

// CategoryEmojis maps each category to its representative emoji.
var CategoryEmojis = map[string]string{
	CategoryFruits:      "🍎",
	CategoryVegetables:  "🥦",
	CategoryMeatPoultry: "🥩",
	CategorySeafood:     "🐟",
	CategoryDairyEggs:   "🥛",
	CategoryGrainsPasta: "🌾",
	CategorySpicesHerbs: "🧂",
	CategoryBakery:      "🍞",
	CategoryNutsSeeds:   "🥜",
	CategoryLegumes:     "🫘",
	CategoryBeverages:   "🍷",
	CategoryCondiments:  "🍯",
	CategoryOilsFats:    "🧈",
	CategoryDesserts:    "🍰",
	CategoryCanned:      "🥫",
	CategoryOther:       "🥘",
}

// ingredientMetadata is the static, hand-curated catalog. Keys are
// canonical lowercase ingredient names.
var ingredientMetadata = map[string]Metadata{
	// Core ingredients from the cleaned dataset.
	"salt":            {Emoji: "🧂", Category: CategorySpicesHerbs, Label: "Salt"},
	"olive oil":       {Emoji: "🫒", Category: CategoryOilsFats, Label: "Olive Oil"},
	"sugar":           {Emoji: "🧂", Category: CategoryCondiments, Label: "Sugar"},
	"garlic":          {Emoji: "🧄", Category: CategoryVegetables, Label: "Garlic"},
	"pepper":          {Emoji: "🧂", Category: CategorySpicesHerbs, Label: "Pepper"},
	"butter":          {Emoji: "🧈", Category: CategoryDairyEggs, Label: "Butter"},
	"egg":             {Emoji: "🥚", Category: CategoryDairyEggs, Label: "Egg"},
	"flour":           {Emoji: "🌾", Category: CategoryGrainsPasta, Label: "Flour"},
	"lemon juice":     {Emoji: "🍋", Category: CategoryFruits, Label: "Lemon Juice"},
	"water":           {Emoji: "💧", Category: CategoryBeverages, Label: "Water"},
	"onion":           {Emoji: "🧅", Category: CategoryVegetables, Label: "Onion"},
	"vegetable oil":   {Emoji: "🧈", Category: CategoryOilsFats, Label: "Vegetable Oil"},
	"cream":           {Emoji: "🥛", Category: CategoryDairyEggs, Label: "Cream"},
	"milk":            {Emoji: "🥛", Category: CategoryDairyEggs, Label: "Milk"},
	"coriander":       {Emoji: "🌿", Category: CategorySpicesHerbs, Label: "Coriander"},
	"thyme":           {Emoji: "🌿", Category: CategorySpicesHerbs, Label: "Thyme"},
	"vanilla extract": {Emoji: "🍦", Category: CategorySpicesHerbs, Label: "Vanilla Extract"},
	"ginger":          {Emoji: "🫚", Category: CategorySpicesHerbs, Label: "Ginger"},
	"shallot":         {Emoji: "🧅", Category: CategoryVegetables, Label: "Shallot"},
	"green onion":     {Emoji: "🧅", Category: CategoryVegetables, Label: "Green Onion"},
	"baking powder":   {Emoji: "🧂", Category: CategoryBakery, Label: "Baking Powder"},
	"lime juice":      {Emoji: "🍋", Category: CategoryFruits, Label: "Lime Juice"},
	"cinnamon":        {Emoji: "🧂", Category: CategorySpicesHerbs, Label: "Cinnamon"},
	"egg yolk":        {Emoji: "🥚", Category: CategoryDairyEggs, Label: "Egg Yolk"},
	"honey":           {Emoji: "🍯", Category: CategoryCondiments, Label: "Honey"},
	"mint":            {Emoji: "🌿", Category: CategorySpicesHerbs, Label: "Mint"},
	"baking soda":     {Emoji: "🧂", Category: CategoryBakery, Label: "Baking Soda"},
	"tomato":          {Emoji: "🍅", Category: CategoryVegetables, Label: "Tomato"},
	"basil":           {Emoji: "🌿", Category: CategorySpicesHerbs, Label: "Basil"},
	"cumin":           {Emoji: "🧂", Category: CategorySpicesHerbs, Label: "Cumin"},
	"dry white wine":  {Emoji: "🍷", Category: CategoryBeverages, Label: "Dry White Wine"},
	"parsley":         {Emoji: "🌿", Category: CategorySpicesHerbs, Label: "Parsley"},
	"lemon zest":      {Emoji: "🍋", Category: CategoryFruits, Label: "Lemon Zest"},
	"rosemary":        {Emoji: "🌿", Category: CategorySpicesHerbs, Label: "Rosemary"},
	"bay":             {Emoji: "🌿", Category: CategorySpicesHerbs, Label: "Bay Leaf"},
	"chive":           {Emoji: "🌿", Category: CategorySpicesHerbs, Label: "Chives"},
	"oregano":         {Emoji: "🌿", Category: CategorySpicesHerbs, Label: "Oregano"},
	"soy sauce":       {Emoji: "🍶", Category: CategoryCondiments, Label: "Soy Sauce"},
	"dijon mustard":   {Emoji: "🫙", Category: CategoryCondiments, Label: "Dijon Mustard"},
	"cornstarch":      {Emoji: "🌾", Category: CategoryGrainsPasta, Label: "Cornstarch"},
	"mayonnaise":      {Emoji: "🥫", Category: CategoryCondiments, Label: "Mayonnaise"},
	"nutmeg":          {Emoji: "🧂", Category: CategorySpicesHerbs, Label: "Nutmeg"},

	// Fruits.
	"apples":        {Emoji: "🍎", Category: CategoryFruits, Label: "Apples"},
	"apricot":       {Emoji: "🍑", Category: CategoryFruits, Label: "Apricot"},
	"avocado":       {Emoji: "🥑", Category: CategoryFruits, Label: "Avocado"},
	"bananas":       {Emoji: "🍌", Category: CategoryFruits, Label: "Bananas"},
	"berries":       {Emoji: "🫐", Category: CategoryFruits, Label: "Berries"},
	"blackberries":  {Emoji: "🫐", Category: CategoryFruits, Label: "Blackberries"},
	"blueberries":   {Emoji: "🫐", Category: CategoryFruits, Label: "Blueberries"},
	"cantaloupe":    {Emoji: "🍈", Category: CategoryFruits, Label: "Cantaloupe"},
	"cherries":      {Emoji: "🍒", Category: CategoryFruits, Label: "Cherries"},
	"cranberries":   {Emoji: "🫐", Category: CategoryFruits, Label: "Cranberries"},
	"dates":         {Emoji: "🫘", Category: CategoryFruits, Label: "Dates"},
	"figs":          {Emoji: "🌰", Category: CategoryFruits, Label: "Figs"},
	"grapefruit":    {Emoji: "🍊", Category: CategoryFruits, Label: "Grapefruit"},
	"grapes":        {Emoji: "🍇", Category: CategoryFruits, Label: "Grapes"},
	"kiwi":          {Emoji: "🥝", Category: CategoryFruits, Label: "Kiwi"},
	"lemon":         {Emoji: "🍋", Category: CategoryFruits, Label: "Lemon"},
	"lime":          {Emoji: "🍋", Category: CategoryFruits, Label: "Lime"},
	"mango":         {Emoji: "🥭", Category: CategoryFruits, Label: "Mango"},
	"melon":         {Emoji: "🍈", Category: CategoryFruits, Label: "Melon"},
	"nectarine":     {Emoji: "🍑", Category: CategoryFruits, Label: "Nectarine"},
	"orange":        {Emoji: "🍊", Category: CategoryFruits, Label: "Orange"},
	"papaya":        {Emoji: "🧡", Category: CategoryFruits, Label: "Papaya"},
	"passion fruit": {Emoji: "💜", Category: CategoryFruits, Label: "Passion Fruit"},
	"peach":         {Emoji: "🍑", Category: CategoryFruits, Label: "Peach"},
	"pear":          {Emoji: "🍐", Category: CategoryFruits, Label: "Pear"},
	"pineapple":     {Emoji: "🍍", Category: CategoryFruits, Label: "Pineapple"},
	"plum":          {Emoji: "💜", Category: CategoryFruits, Label: "Plum"},
	"pomegranate":   {Emoji: "🍎", Category: CategoryFruits, Label: "Pomegranate"},
	"raisins":       {Emoji: "🍇", Category: CategoryFruits, Label: "Raisins"},
	"raspberries":   {Emoji: "🫐", Category: CategoryFruits, Label: "Raspberries"},
	"strawberries":  {Emoji: "🍓", Category: CategoryFruits, Label: "Strawberries"},
	"tangerine":     {Emoji: "🍊", Category: CategoryFruits, Label: "Tangerine"},
	"watermelon":    {Emoji: "🍉", Category: CategoryFruits, Label: "Watermelon"},

	// Vegetables.
	"artichoke":      {Emoji: "🥬", Category: CategoryVegetables, Label: "Artichoke"},
	"arugula":        {Emoji: "🥬", Category: CategoryVegetables, Label: "Arugula"},
	"asparagus":      {Emoji: "🥒", Category: CategoryVegetables, Label: "Asparagus"},
	"bell pepper":    {Emoji: "🫑", Category: CategoryVegetables, Label: "Bell Pepper"},
	"bok choy":       {Emoji: "🥬", Category: CategoryVegetables, Label: "Bok Choy"},
	"broccoli":       {Emoji: "🥦", Category: CategoryVegetables, Label: "Broccoli"},
	"cabbage":        {Emoji: "🥬", Category: CategoryVegetables, Label: "Cabbage"},
	"carrot":         {Emoji: "🥕", Category: CategoryVegetables, Label: "Carrot"},
	"cauliflower":    {Emoji: "🥦", Category: CategoryVegetables, Label: "Cauliflower"},
	"celery":         {Emoji: "🥬", Category: CategoryVegetables, Label: "Celery"},
	"chard":          {Emoji: "🥬", Category: CategoryVegetables, Label: "Chard"},
	"chives":         {Emoji: "🌿", Category: CategorySpicesHerbs, Label: "Chives"},
	"collard greens": {Emoji: "🥬", Category: CategoryVegetables, Label: "Collard Greens"},
	"corn":           {Emoji: "🌽", Category: CategoryVegetables, Label: "Corn"},
	"cucumber":       {Emoji: "🥒", Category: CategoryVegetables, Label: "Cucumber"},
	"eggplant":       {Emoji: "🍆", Category: CategoryVegetables, Label: "Eggplant"},
	"fennel":         {Emoji: "🥬", Category: CategoryVegetables, Label: "Fennel"},
	"green beans":    {Emoji: "🫛", Category: CategoryVegetables, Label: "Green Beans"},
	"kale":           {Emoji: "🥬", Category: CategoryVegetables, Label: "Kale"},
	"leek":           {Emoji: "🥬", Category: CategoryVegetables, Label: "Leek"},
	"lettuce":        {Emoji: "🥬", Category: CategoryVegetables, Label: "Lettuce"},
	"mushroom":       {Emoji: "🍄", Category: CategoryVegetables, Label: "Mushroom"},
	"parsnip":        {Emoji: "🥕", Category: CategoryVegetables, Label: "Parsnip"},
	"peas":           {Emoji: "🫛", Category: CategoryLegumes, Label: "Peas"},
	"potato":         {Emoji: "🥔", Category: CategoryVegetables, Label: "Potato"},
	"pumpkin":        {Emoji: "🎃", Category: CategoryVegetables, Label: "Pumpkin"},
	"radish":         {Emoji: "🌰", Category: CategoryVegetables, Label: "Radish"},
	"scallion":       {Emoji: "🧅", Category: CategoryVegetables, Label: "Scallion"},
	"spinach":        {Emoji: "🥬", Category: CategoryVegetables, Label: "Spinach"},
	"squash":         {Emoji: "🎃", Category: CategoryVegetables, Label: "Squash"},
	"sweet potato":   {Emoji: "🍠", Category: CategoryVegetables, Label: "Sweet Potato"},
	"turnip":         {Emoji: "🥕", Category: CategoryVegetables, Label: "Turnip"},
	"zucchini":       {Emoji: "🥒", Category: CategoryVegetables, Label: "Zucchini"},

	// Meat & poultry.
	"bacon":      {Emoji: "🥓", Category: CategoryMeatPoultry, Label: "Bacon"},
	"beef":       {Emoji: "🥩", Category: CategoryMeatPoultry, Label: "Beef"},
	"chicken":    {Emoji: "🍗", Category: CategoryMeatPoultry, Label: "Chicken"},
	"chorizo":    {Emoji: "🌭", Category: CategoryMeatPoultry, Label: "Chorizo"},
	"duck":       {Emoji: "🦆", Category: CategoryMeatPoultry, Label: "Duck"},
	"goose":      {Emoji: "🦆", Category: CategoryMeatPoultry, Label: "Goose"},
	"ham":        {Emoji: "🥓", Category: CategoryMeatPoultry, Label: "Ham"},
	"lamb":       {Emoji: "🐑", Category: CategoryMeatPoultry, Label: "Lamb"},
	"pancetta":   {Emoji: "🥓", Category: CategoryMeatPoultry, Label: "Pancetta"},
	"pork":       {Emoji: "🥩", Category: CategoryMeatPoultry, Label: "Pork"},
	"prosciutto": {Emoji: "🥓", Category: CategoryMeatPoultry, Label: "Prosciutto"},
	"rabbit":     {Emoji: "🐰", Category: CategoryMeatPoultry, Label: "Rabbit"},
	"salami":     {Emoji: "🌭", Category: CategoryMeatPoultry, Label: "Salami"},
	"sausage":    {Emoji: "🌭", Category: CategoryMeatPoultry, Label: "Sausage"},
	"turkey":     {Emoji: "🦃", Category: CategoryMeatPoultry, Label: "Turkey"},
	"veal":       {Emoji: "🥩", Category: CategoryMeatPoultry, Label: "Veal"},

	// Seafood.
	"anchovies": {Emoji: "🐟", Category: CategorySeafood, Label: "Anchovies"},
	"clams":     {Emoji: "🦪", Category: CategorySeafood, Label: "Clams"},
	"cod":       {Emoji: "🐟", Category: CategorySeafood, Label: "Cod"},
	"crab":      {Emoji: "🦀", Category: CategorySeafood, Label: "Crab"},
	"fish":      {Emoji: "🐟", Category: CategorySeafood, Label: "Fish"},
	"halibut":   {Emoji: "🐟", Category: CategorySeafood, Label: "Halibut"},
	"lobster":   {Emoji: "🦞", Category: CategorySeafood, Label: "Lobster"},
	"mussels":   {Emoji: "🦪", Category: CategorySeafood, Label: "Mussels"},
	"octopus":   {Emoji: "🐙", Category: CategorySeafood, Label: "Octopus"},
	"oysters":   {Emoji: "🦪", Category: CategorySeafood, Label: "Oysters"},
	"salmon":    {Emoji: "🐟", Category: CategorySeafood, Label: "Salmon"},
	"sardines":  {Emoji: "🐟", Category: CategorySeafood, Label: "Sardines"},
	"scallops":  {Emoji: "🦪", Category: CategorySeafood, Label: "Scallops"},
	"shrimp":    {Emoji: "🦐", Category: CategorySeafood, Label: "Shrimp"},
	"squid":     {Emoji: "🦑", Category: CategorySeafood, Label: "Squid"},
	"tilapia":   {Emoji: "🐟", Category: CategorySeafood, Label: "Tilapia"},
	"trout":     {Emoji: "🐟", Category: CategorySeafood, Label: "Trout"},
	"tuna":      {Emoji: "🐟", Category: CategorySeafood, Label: "Tuna"},

	// Dairy & eggs.
	"brie":           {Emoji: "🧀", Category: CategoryDairyEggs, Label: "Brie"},
	"buttermilk":     {Emoji: "🥛", Category: CategoryDairyEggs, Label: "Buttermilk"},
	"cheddar":        {Emoji: "🧀", Category: CategoryDairyEggs, Label: "Cheddar"},
	"cheese":         {Emoji: "🧀", Category: CategoryDairyEggs, Label: "Cheese"},
	"cottage cheese": {Emoji: "🧀", Category: CategoryDairyEggs, Label: "Cottage Cheese"},
	"cream cheese":   {Emoji: "🧀", Category: CategoryDairyEggs, Label: "Cream Cheese"},
	"eggs":           {Emoji: "🥚", Category: CategoryDairyEggs, Label: "Eggs"},
	"feta":           {Emoji: "🧀", Category: CategoryDairyEggs, Label: "Feta"},
	"goat cheese":    {Emoji: "🧀", Category: CategoryDairyEggs, Label: "Goat Cheese"},
	"gouda":          {Emoji: "🧀", Category: CategoryDairyEggs, Label: "Gouda"},
	"ice cream":      {Emoji: "🍦", Category: CategoryDesserts, Label: "Ice Cream"},
	"mascarpone":     {Emoji: "🧀", Category: CategoryDairyEggs, Label: "Mascarpone"},
	"mozzarella":     {Emoji: "🧀", Category: CategoryDairyEggs, Label: "Mozzarella"},
	"parmesan":       {Emoji: "🧀", Category: CategoryDairyEggs, Label: "Parmesan"},
	"ricotta":        {Emoji: "🧀", Category: CategoryDairyEggs, Label: "Ricotta"},
	"sour cream":     {Emoji: "🥛", Category: CategoryDairyEggs, Label: "Sour Cream"},
	"yogurt":         {Emoji: "🥛", Category: CategoryDairyEggs, Label: "Yogurt"},

	// Grains & pasta.
	"barley":    {Emoji: "🌾", Category: CategoryGrainsPasta, Label: "Barley"},
	"bulgur":    {Emoji: "🌾", Category: CategoryGrainsPasta, Label: "Bulgur"},
	"couscous":  {Emoji: "🌾", Category: CategoryGrainsPasta, Label: "Couscous"},
	"farro":     {Emoji: "🌾", Category: CategoryGrainsPasta, Label: "Farro"},
	"linguine":  {Emoji: "🍝", Category: CategoryGrainsPasta, Label: "Linguine"},
	"macaroni":  {Emoji: "🍝", Category: CategoryGrainsPasta, Label: "Macaroni"},
	"noodles":   {Emoji: "🍜", Category: CategoryGrainsPasta, Label: "Noodles"},
	"oats":      {Emoji: "🌾", Category: CategoryGrainsPasta, Label: "Oats"},
	"orzo":      {Emoji: "🍝", Category: CategoryGrainsPasta, Label: "Orzo"},
	"pasta":     {Emoji: "🍝", Category: CategoryGrainsPasta, Label: "Pasta"},
	"penne":     {Emoji: "🍝", Category: CategoryGrainsPasta, Label: "Penne"},
	"quinoa":    {Emoji: "🌾", Category: CategoryGrainsPasta, Label: "Quinoa"},
	"rice":      {Emoji: "🍚", Category: CategoryGrainsPasta, Label: "Rice"},
	"spaghetti": {Emoji: "🍝", Category: CategoryGrainsPasta, Label: "Spaghetti"},
	"wheat":     {Emoji: "🌾", Category: CategoryGrainsPasta, Label: "Wheat"},

	// Spices & herbs.
	"allspice":     {Emoji: "🧂", Category: CategorySpicesHerbs, Label: "Allspice"},
	"bay leaf":     {Emoji: "🌿", Category: CategorySpicesHerbs, Label: "Bay Leaf"},
	"black pepper": {Emoji: "🧂", Category: CategorySpicesHerbs, Label: "Black Pepper"},
	"cardamom":     {Emoji: "🧂", Category: CategorySpicesHerbs, Label: "Cardamom"},
	"cayenne":      {Emoji: "🌶️", Category: CategorySpicesHerbs, Label: "Cayenne"},
	"chili":        {Emoji: "🌶️", Category: CategorySpicesHerbs, Label: "Chili"},
	"cilantro":     {Emoji: "🌿", Category: CategorySpicesHerbs, Label: "Cilantro"},
	"cloves":       {Emoji: "🧂", Category: CategorySpicesHerbs, Label: "Cloves"},
	"curry":        {Emoji: "🍛", Category: CategorySpicesHerbs, Label: "Curry"},
	"dill":         {Emoji: "🌿", Category: CategorySpicesHerbs, Label: "Dill"},
	"paprika":      {Emoji: "🌶️", Category: CategorySpicesHerbs, Label: "Paprika"},
	"saffron":      {Emoji: "🧂", Category: CategorySpicesHerbs, Label: "Saffron"},
	"sage":         {Emoji: "🌿", Category: CategorySpicesHerbs, Label: "Sage"},
	"tarragon":     {Emoji: "🌿", Category: CategorySpicesHerbs, Label: "Tarragon"},
	"turmeric":     {Emoji: "🧂", Category: CategorySpicesHerbs, Label: "Turmeric"},
	"vanilla":      {Emoji: "🍦", Category: CategorySpicesHerbs, Label: "Vanilla"},

	// Bakery.
	"baguette":  {Emoji: "🥖", Category: CategoryBakery, Label: "Baguette"},
	"bread":     {Emoji: "🍞", Category: CategoryBakery, Label: "Bread"},
	"brioche":   {Emoji: "🍞", Category: CategoryBakery, Label: "Brioche"},
	"croissant": {Emoji: "🥐", Category: CategoryBakery, Label: "Croissant"},
	"pita":      {Emoji: "🫓", Category: CategoryBakery, Label: "Pita"},
	"tortilla":  {Emoji: "🫓", Category: CategoryBakery, Label: "Tortilla"},

	// Nuts & seeds.
	"almonds":         {Emoji: "🥜", Category: CategoryNutsSeeds, Label: "Almonds"},
	"cashews":         {Emoji: "🥜", Category: CategoryNutsSeeds, Label: "Cashews"},
	"chia seeds":      {Emoji: "🌰", Category: CategoryNutsSeeds, Label: "Chia Seeds"},
	"coconut":         {Emoji: "🥥", Category: CategoryNutsSeeds, Label: "Coconut"},
	"hazelnuts":       {Emoji: "🌰", Category: CategoryNutsSeeds, Label: "Hazelnuts"},
	"peanuts":         {Emoji: "🥜", Category: CategoryNutsSeeds, Label: "Peanuts"},
	"pecans":          {Emoji: "🌰", Category: CategoryNutsSeeds, Label: "Pecans"},
	"pine nuts":       {Emoji: "🌰", Category: CategoryNutsSeeds, Label: "Pine Nuts"},
	"pistachios":      {Emoji: "🥜", Category: CategoryNutsSeeds, Label: "Pistachios"},
	"sesame":          {Emoji: "🌰", Category: CategoryNutsSeeds, Label: "Sesame"},
	"sunflower seeds": {Emoji: "🌻", Category: CategoryNutsSeeds, Label: "Sunflower Seeds"},
	"walnuts":         {Emoji: "🌰", Category: CategoryNutsSeeds, Label: "Walnuts"},

	// Legumes.
	"beans":        {Emoji: "🫘", Category: CategoryLegumes, Label: "Beans"},
	"black beans":  {Emoji: "🫘", Category: CategoryLegumes, Label: "Black Beans"},
	"chickpeas":    {Emoji: "🫘", Category: CategoryLegumes, Label: "Chickpeas"},
	"kidney beans": {Emoji: "🫘", Category: CategoryLegumes, Label: "Kidney Beans"},
	"lentils":      {Emoji: "🫘", Category: CategoryLegumes, Label: "Lentils"},
	"soybeans":     {Emoji: "🫘", Category: CategoryLegumes, Label: "Soybeans"},
	"tofu":         {Emoji: "🧆", Category: CategoryLegumes, Label: "Tofu"},

	// Beverages.
	"beer":      {Emoji: "🍺", Category: CategoryBeverages, Label: "Beer"},
	"bourbon":   {Emoji: "🥃", Category: CategoryBeverages, Label: "Bourbon"},
	"brandy":    {Emoji: "🥃", Category: CategoryBeverages, Label: "Brandy"},
	"champagne": {Emoji: "🍾", Category: CategoryBeverages, Label: "Champagne"},
	"coffee":    {Emoji: "☕", Category: CategoryBeverages, Label: "Coffee"},
	"gin":       {Emoji: "🍸", Category: CategoryBeverages, Label: "Gin"},
	"rum":       {Emoji: "🍹", Category: CategoryBeverages, Label: "Rum"},
	"tea":       {Emoji: "🍵", Category: CategoryBeverages, Label: "Tea"},
	"tequila":   {Emoji: "🍹", Category: CategoryBeverages, Label: "Tequila"},
	"vodka":     {Emoji: "🍸", Category: CategoryBeverages, Label: "Vodka"},
	"whiskey":   {Emoji: "🥃", Category: CategoryBeverages, Label: "Whiskey"},
	"wine":      {Emoji: "🍷", Category: CategoryBeverages, Label: "Wine"},

	// Condiments & sauces.
	"apple cider vinegar": {Emoji: "🍶", Category: CategoryCondiments, Label: "Apple Cider Vinegar"},
	"balsamic vinegar":    {Emoji: "🍶", Category: CategoryCondiments, Label: "Balsamic Vinegar"},
	"broth":               {Emoji: "🍲", Category: CategoryCondiments, Label: "Broth"},
	"brown sugar":         {Emoji: "🧂", Category: CategoryCondiments, Label: "Brown Sugar"},
	"hot sauce":           {Emoji: "🌶️", Category: CategoryCondiments, Label: "Hot Sauce"},
	"jam":                 {Emoji: "🍓", Category: CategoryCondiments, Label: "Jam"},
	"ketchup":             {Emoji: "🍅", Category: CategoryCondiments, Label: "Ketchup"},
	"maple syrup":         {Emoji: "🍁", Category: CategoryCondiments, Label: "Maple Syrup"},
	"mustard":             {Emoji: "🫙", Category: CategoryCondiments, Label: "Mustard"},
	"pesto":               {Emoji: "🫙", Category: CategoryCondiments, Label: "Pesto"},
	"salsa":               {Emoji: "🫙", Category: CategoryCondiments, Label: "Salsa"},
	"sriracha":            {Emoji: "🌶️", Category: CategoryCondiments, Label: "Sriracha"},
	"tahini":              {Emoji: "🫙", Category: CategoryCondiments, Label: "Tahini"},
	"vinegar":             {Emoji: "🍶", Category: CategoryCondiments, Label: "Vinegar"},
	"worcestershire":      {Emoji: "🍶", Category: CategoryCondiments, Label: "Worcestershire"},

	// Oils & fats.
	"canola oil":  {Emoji: "🧈", Category: CategoryOilsFats, Label: "Canola Oil"},
	"coconut oil": {Emoji: "🧈", Category: CategoryOilsFats, Label: "Coconut Oil"},
	"lard":        {Emoji: "🧈", Category: CategoryOilsFats, Label: "Lard"},
	"oil":         {Emoji: "🧈", Category: CategoryOilsFats, Label: "Oil"},
	"sesame oil":  {Emoji: "🧈", Category: CategoryOilsFats, Label: "Sesame Oil"},

	// Desserts & sweets.
	"cake":      {Emoji: "🍰", Category: CategoryDesserts, Label: "Cake"},
	"caramel":   {Emoji: "🍮", Category: CategoryDesserts, Label: "Caramel"},
	"chocolate": {Emoji: "🍫", Category: CategoryDesserts, Label: "Chocolate"},
	"cookies":   {Emoji: "🍪", Category: CategoryDesserts, Label: "Cookies"},
	"custard":   {Emoji: "🍮", Category: CategoryDesserts, Label: "Custard"},
	"pudding":   {Emoji: "🍮", Category: CategoryDesserts, Label: "Pudding"},

	// Canned & preserved.
	"olives":  {Emoji: "🫒", Category: CategoryCanned, Label: "Olives"},
	"pickles": {Emoji: "🥒", Category: CategoryCanned, Label: "Pickles"},

	// Other / misc.
	"borscht":    {Emoji: "🍲", Category: CategoryOther, Label: "Borscht"},
	"bruschetta": {Emoji: "🍞", Category: CategoryOther, Label: "Bruschetta"},
}
