package recipe

import (
	"EcoPanier/domain"
	"EcoPanier/internal/utils"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// Generator proposes one recipe from the household inventory.
type Generator interface {
	GenerateRecipe(ctx context.Context, items []domain.InventoryItem) (domain.GeneratedRecipe, error)
}

// NewGeneratorFromConfig picks the provider named by AI_PROVIDER, Gemini by default.
func NewGeneratorFromConfig() Generator {
	switch strings.ToLower(utils.GetConfig("AI_PROVIDER")) {
	case ProviderOpenAI:
		return NewOpenAIGenerator(
			utils.GetConfig("OPENAI_API_KEY"),
			utils.GetConfig("OPENAI_API_BASE"),
			utils.GetConfigOr("OPENAI_MODEL", DefaultOpenAIModel),
		)
	default:
		return NewGeminiGenerator(
			"",
			utils.GetConfig("GEMINI_API_KEY"),
			utils.GetConfigOr("GEMINI_MODEL", DefaultGeminiModel),
			nil,
		)
	}
}

// buildPrompt lists items as "name (quantity unit)" in the order given, so
// callers pass them most urgent first.
func buildPrompt(items []domain.InventoryItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		qty := strconv.FormatFloat(item.Quantity, 'f', -1, 64)
		parts = append(parts, fmt.Sprintf("%s (%s %s)", item.Name, qty, item.Unit))
	}

	return fmt.Sprintf(`Based on the following available ingredients: %s.
Suggest a creative recipe that uses as many of these ingredients as possible, prioritizing those expiring soon.
Return the response in JSON format in French with this structure:
{
  "name": "recipe name",
  "description": "short description",
  "prepTime": number,
  "difficulty": "Facile" | "Moyen" | "Difficile",
  "steps": ["step1", "step2"],
  "ingredientsUsed": ["ingredient1", "ingredient2"]
}
Only return the JSON, no other text.`, strings.Join(parts, ", "))
}

// parseGeneratedRecipe pulls the first JSON object out of free text,
// tolerating markdown fences around it.
func parseGeneratedRecipe(text string) (domain.GeneratedRecipe, error) {
	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return domain.GeneratedRecipe{}, domain.ErrAIResponseInvalid
	}

	var recipe domain.GeneratedRecipe
	if err := json.Unmarshal([]byte(match), &recipe); err != nil {
		return domain.GeneratedRecipe{}, fmt.Errorf("%w: %v", domain.ErrAIResponseInvalid, err)
	}
	if strings.TrimSpace(recipe.Name) == "" {
		return domain.GeneratedRecipe{}, fmt.Errorf("%w: missing name", domain.ErrAIResponseInvalid)
	}
	return recipe, nil
}
