package usecase

import "strings"

// nonFoodKeywords are substrings that mark a product name as non-food:
// cleaning products, paper goods, personal-care items and similar. Substring
// matching over lower-cased names keeps this a cheap heuristic; false
// positives and negatives are accepted.
var nonFoodKeywords = []string{
	"cat litter",
	"eye drops",
	"dryer sheets",
	"detergent",
	"bandages",
	"batteries",
	"trash bags",
	"foil",
	"wrap",
	"paper towel",
	"toilet paper",
	"tissue",
	"stamp",
	"air freshener",
	"wipe",
	"sunscreen",
	"hand sanitizer",
	"dish soap",
	"laundry",
}

// Classifier decides whether a product name is eligible for calorie lookup.
type Classifier struct{}

// NewClassifier creates a new food classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// IsFood reports whether the product name looks like a food item. It returns
// false when any denylisted substring appears anywhere in the lower-cased
// name. Pure function; never fails.
func (c *Classifier) IsFood(name string) bool {
	lowered := strings.ToLower(name)
	for _, kw := range nonFoodKeywords {
		if strings.Contains(lowered, kw) {
			return false
		}
	}
	return true
}
