package recipe

import (
	"EcoPanier/domain"
	"EcoPanier/pkg/ingredient"
	"math"
	"strings"
)

const (
	// GoodCompatibilityThreshold is exclusive: 50% is not yet "good".
	GoodCompatibilityThreshold = 50

	// DetailFetchLimit caps detail lookups per selection.
	DetailFetchLimit = 3
)

// Compatibility is the share of a recipe's ingredients the household has,
// as a whole percentage. Unknown totals score zero.
func Compatibility(r domain.Recipe) int {
	if r.TotalIngredients <= 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(r.AvailableIngredients) / float64(r.TotalIngredients)))
	return min(max(pct, 0), 100)
}

func IsGoodCompatibility(pct int) bool {
	return pct > GoodCompatibilityThreshold
}

// Suggested keeps recipes flagged as suggested, in their original order.
func Suggested(recipes []domain.Recipe) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r.IsSuggested {
			out = append(out, r)
		}
	}
	return out
}

func NewRecipeResponse(r domain.Recipe) domain.RecipeResponse {
	pct := Compatibility(r)
	return domain.RecipeResponse{
		Recipe:            r,
		Compatibility:     pct,
		GoodCompatibility: IsGoodCompatibility(pct),
	}
}

func NewRecipeResponses(recipes []domain.Recipe) []domain.RecipeResponse {
	out := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, NewRecipeResponse(r))
	}
	return out
}

// Matcher counts recipe ingredients that the inventory covers. Inventory
// names are compared both as written and translated to English, so French
// stock matches English recipe lines.
type Matcher struct {
	normalizer *ingredient.Normalizer
}

func NewMatcher(normalizer *ingredient.Normalizer) *Matcher {
	return &Matcher{normalizer: normalizer}
}

// normalizeIngredient drops a trailing "(...)" quantity and lower-cases.
func normalizeIngredient(name string) string {
	if idx := strings.Index(name, "("); idx > 0 {
		name = name[:idx]
	}
	return strings.ToLower(strings.TrimSpace(name))
}

func (m *Matcher) inventoryKeys(names []string) []string {
	keys := make([]string, 0, 2*len(names))
	for _, name := range names {
		if k := normalizeIngredient(name); k != "" {
			keys = append(keys, k)
		}
		if m.normalizer != nil {
			if en := normalizeIngredient(m.normalizer.Translate(name)); en != "" {
				keys = append(keys, en)
			}
		}
	}
	return keys
}

// MatchIngredients reports how many of ingredients appear in the inventory,
// by case-insensitive substring in either direction.
func (m *Matcher) MatchIngredients(ingredients, inventoryNames []string) (available, total int) {
	keys := m.inventoryKeys(inventoryNames)
	for _, ing := range ingredients {
		needed := normalizeIngredient(ing)
		if needed == "" {
			continue
		}
		total++
		for _, have := range keys {
			if strings.Contains(have, needed) || strings.Contains(needed, have) {
				available++
				break
			}
		}
	}
	return available, total
}

// Annotate fills the availability counts of a recipe that has none.
func (m *Matcher) Annotate(r domain.Recipe, inventoryNames []string) domain.Recipe {
	if r.TotalIngredients > 0 || len(r.Ingredients) == 0 {
		return r
	}
	r.AvailableIngredients, r.TotalIngredients = m.MatchIngredients(r.Ingredients, inventoryNames)
	return r
}
