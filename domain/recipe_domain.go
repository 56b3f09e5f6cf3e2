package domain

import (
	"errors"
	"strings"
)

var (
	MessageSuccessGetRecipes       = "success get recipes"
	MessageSuccessGetRecipeDetail  = "success get recipe detail"
	MessageSuccessGenerateRecipes  = "recipes generated successfully"
	MessageSuccessGenerateAIRecipe = "recipe generated successfully"
	MessageNoRecipesFound          = "no recipe found with these ingredients"
	MessageAIDemoMode              = "AI generation requires a configured API key, demo mode active"

	MessageFailedGetRecipes       = "failed to get recipes"
	MessageFailedGetRecipeDetail  = "failed to get recipe detail"
	MessageFailedGenerateRecipes  = "unable to generate recipes, check your connection and try again"
	MessageFailedGenerateAIRecipe = "failed to generate recipe"

	ErrRecipeNotFound        = errors.New("recipe not found")
	ErrNoIngredientsSelected = errors.New("select at least one ingredient")
	ErrEmptyInventory        = errors.New("inventory is empty, add ingredients to generate a recipe")
	ErrAIKeyMissing          = errors.New("AI API key not configured")
	ErrAIResponseInvalid     = errors.New("could not parse AI response as JSON")
)

const (
	RecipeSourceCatalog     = "catalog"
	RecipeSourceSpoonacular = "spoonacular"
	RecipeSourceAI          = "ai"
	RecipeSourceDemo        = "demo"

	RecipeTabSuggested = "suggested"
	RecipeTabAll       = "all"

	DefaultPrepTimeMinutes = 30
)

// Difficulty is the closed set of recipe difficulty tiers.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Facile"
	DifficultyMedium Difficulty = "Moyen"
	DifficultyHard   Difficulty = "Difficile"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty accepts the French tiers and their English equivalents.
// Anything else maps to Moyen.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "facile", "easy":
		return DifficultyEasy
	case "difficile", "hard", "difficult":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

type (
	Recipe struct {
		ID                   string     `json:"id"`
		Name                 string     `json:"name"`
		Description          string     `json:"description"`
		Image                string     `json:"image,omitempty"`
		PrepTime             int        `json:"prep_time"`
		Servings             int        `json:"servings,omitempty"`
		Difficulty           Difficulty `json:"difficulty"`
		Ingredients          []string   `json:"ingredients"`
		Steps                []string   `json:"steps,omitempty"`
		AvailableIngredients int        `json:"available_ingredients,omitempty"`
		TotalIngredients     int        `json:"total_ingredients,omitempty"`
		IsSuggested          bool       `json:"is_suggested"`
		Source               string     `json:"source"`
	}

	// RecipeCandidate is one hit from the ingredient search collaborator.
	RecipeCandidate struct {
		ID                int
		Title             string
		Image             string
		UsedIngredients   []string
		MissedIngredients []string
	}

	RecipeDetails struct {
		ID             int
		Title          string
		Image          string
		ReadyInMinutes int
		Servings       int
		Instructions   string
		Ingredients    []string
		Summary        string
		SourceURL      string
	}

	// GeneratedRecipe is the payload produced by the AI collaborator.
	GeneratedRecipe struct {
		Name            string   `json:"name"`
		Description     string   `json:"description"`
		PrepTime        int      `json:"prepTime"`
		Difficulty      string   `json:"difficulty"`
		Steps           []string `json:"steps"`
		IngredientsUsed []string `json:"ingredientsUsed"`
	}

	GenerateRecipesRequest struct {
		ItemIDs []string `json:"item_ids" validate:"required,min=1,dive,required"`
	}

	RecipeResponse struct {
		Recipe
		Compatibility     int  `json:"compatibility"`
		GoodCompatibility bool `json:"good_compatibility"`
	}

	RecipeListResponse struct {
		Recipes []RecipeResponse `json:"recipes"`
		Total   int              `json:"total"`
	}

	GenerateAIRecipeResponse struct {
		Recipe   RecipeResponse `json:"recipe"`
		Fallback bool           `json:"fallback"`
		Message  string         `json:"message,omitempty"`
	}
)
