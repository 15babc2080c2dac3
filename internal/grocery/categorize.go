// Package grocery infers a category for free-text item names.
package grocery

import (
	"strings"

	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

// Other is returned when nothing matches.
const Other = "Other"

// Categorize returns the category for an item name. The name is normalized
// first; an exact keyword match wins over a substring match, and substring
// keywords are tried in table order.
func Categorize(itemName string) string {
	name := domain.NormalizeText(itemName)
	if name == "" {
		return Other
	}
	if cat, ok := exact[name]; ok {
		return cat
	}
	for _, kw := range contains {
		if strings.Contains(name, kw.keyword) {
			return kw.category
		}
	}
	return Other
}

// Categories lists every category Categorize can return, Other last.
func Categories() []string {
	out := make([]string, 0, len(table)+1)
	for _, c := range table {
		out = append(out, c.name)
	}
	return append(out, Other)
}

type keyword struct {
	keyword  string
	category string
}

type category struct {
	name string
	// words match the whole name.
	words []string
	// parts match anywhere in the name; longer phrases go first.
	parts []string
}

var table = []category{
	{
		name: "Meat & Seafood",
		words: []string{"chicken", "beef", "pork", "turkey", "bacon", "sausage", "ham", "steak",
			"salmon", "shrimp", "tuna", "fish", "lamb", "crab", "tilapia"},
		parts: []string{"chicken breast", "chicken thigh", "ground beef", "ground turkey",
			"deli meat", "pork chop", "hot dog"},
	},
	{
		name:  "Dairy",
		words: []string{"milk", "eggs", "butter", "cheese", "yogurt", "sour cream", "heavy cream"},
		parts: []string{"cream cheese", "cottage cheese", "greek yogurt", "oat milk",
			"almond milk", "yogurt", "cheese", "milk", "butter", "cream", "egg"},
	},
	{
		name: "Produce",
		words: []string{"apple", "apples", "banana", "bananas", "lemon", "lime", "avocado",
			"tomatoes", "potatoes", "onions", "garlic", "lettuce", "spinach", "broccoli",
			"carrots", "celery", "cucumber", "mushrooms", "grapes", "ginger", "zucchini"},
		parts: []string{"sweet potato", "bell pepper", "baby spinach", "green onion",
			"salad", "berries", "berry", "fruit", "herb", "cabbage", "tomato", "potato",
			"onion", "carrot", "lettuce", "apple"},
	},
	{
		name:  "Bakery",
		words: []string{"bread", "bagels", "tortillas", "rolls", "buns", "muffins", "pita"},
		parts: []string{"sourdough", "bread", "bagel", "tortilla", "croissant", "muffin", "bun"},
	},
	{
		name: "Pantry",
		words: []string{"rice", "pasta", "flour", "sugar", "salt", "oil", "vinegar", "honey",
			"cereal", "oatmeal", "beans", "lentils", "nuts", "noodles", "ketchup", "mustard"},
		parts: []string{"peanut butter", "olive oil", "maple syrup", "soy sauce", "hot sauce",
			"canned", "cereal", "rice", "pasta", "noodle", "flour", "spice", "sauce",
			"broth", "stock", "soup", "bean", "lentil"},
	},
	{
		name:  "Frozen",
		words: []string{"ice cream", "popsicles"},
		parts: []string{"frozen", "ice cream", "popsicle"},
	},
	{
		name:  "Beverages",
		words: []string{"water", "juice", "coffee", "tea", "soda", "beer", "wine"},
		parts: []string{"sparkling water", "orange juice", "coffee", "juice", "soda",
			"water", "beer", "wine", "drink"},
	},
	{
		name:  "Snacks",
		words: []string{"chips", "crackers", "cookies", "popcorn", "pretzels", "candy", "chocolate"},
		parts: []string{"granola bar", "trail mix", "chip", "cracker", "cookie", "pretzel", "snack"},
	},
	{
		name:  "Household",
		words: []string{"paper towels", "toilet paper", "trash bags", "dish soap", "sponges", "bleach"},
		parts: []string{"paper towel", "toilet paper", "trash bag", "dish soap", "laundry",
			"detergent", "cleaner", "sponge", "foil", "battery"},
	},
	{
		name:  "Personal Care",
		words: []string{"shampoo", "conditioner", "soap", "toothpaste", "deodorant", "lotion"},
		parts: []string{"body wash", "shampoo", "toothpaste", "toothbrush", "deodorant", "razor", "tissue"},
	},
}

var (
	exact    = map[string]string{}
	contains []keyword
)

func init() {
	for _, c := range table {
		for _, w := range c.words {
			exact[w] = c.name
		}
	}
	// Longest keyword first across categories so "peanut butter" beats "butter".
	for _, c := range table {
		for _, p := range c.parts {
			contains = append(contains, keyword{keyword: p, category: c.name})
		}
	}
	sortByLength(contains)
}

func sortByLength(kws []keyword) {
	for i := 1; i < len(kws); i++ {
		for j := i; j > 0 && len(kws[j].keyword) > len(kws[j-1].keyword); j-- {
			kws[j], kws[j-1] = kws[j-1], kws[j]
		}
	}
}
