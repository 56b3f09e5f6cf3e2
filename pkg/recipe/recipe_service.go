package recipe

import (
	"EcoPanier/domain"
	"EcoPanier/entities"
	"EcoPanier/internal/metrics"
	"EcoPanier/pkg/ingredient"
	"EcoPanier/pkg/inventory"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const aiRecipeImage = "https://picsum.photos/600/400?grayscale"

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, sessionID, tab string) (domain.RecipeListResponse, error)
		GetRecipeDetail(ctx context.Context, sessionID, id string) (domain.RecipeResponse, error)
		GenerateFromSelection(ctx context.Context, sessionID string, req domain.GenerateRecipesRequest) (domain.RecipeListResponse, error)
		GenerateWithAI(ctx context.Context, sessionID string) (domain.GenerateAIRecipeResponse, error)
	}

	// InventorySource supplies the household items recipes are matched against.
	InventorySource interface {
		Snapshot(ctx context.Context, sessionID string) ([]domain.InventoryItem, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		inventory        InventorySource
		searcher         Searcher
		generator        Generator
		normalizer       *ingredient.Normalizer
		matcher          *Matcher
	}
)

func NewRecipeService(recipeRepository RecipeRepository, inventory InventorySource, searcher Searcher, generator Generator, normalizer *ingredient.Normalizer) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		inventory:        inventory,
		searcher:         searcher,
		generator:        generator,
		normalizer:       normalizer,
		matcher:          NewMatcher(normalizer),
	}
}

func inventoryNames(items []domain.InventoryItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

func (s *recipeService) annotate(recipes []domain.Recipe, items []domain.InventoryItem) []domain.Recipe {
	names := inventoryNames(items)
	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, s.matcher.Annotate(r, names))
	}
	return out
}

// GetRecipes lists the catalog and the session's generated recipes. The
// suggested tab is the default.
func (s *recipeService) GetRecipes(ctx context.Context, sessionID, tab string) (domain.RecipeListResponse, error) {
	rows, err := s.recipeRepository.GetRecipes(ctx, sessionID)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	items, err := s.inventory.Snapshot(ctx, sessionID)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	recipes := make([]domain.Recipe, 0, len(rows))
	for _, row := range rows {
		recipes = append(recipes, toDomain(row))
	}
	if tab != domain.RecipeTabAll {
		recipes = Suggested(recipes)
	}
	recipes = s.annotate(recipes, items)

	return domain.RecipeListResponse{
		Recipes: NewRecipeResponses(recipes),
		Total:   len(recipes),
	}, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, sessionID, id string) (domain.RecipeResponse, error) {
	row, err := s.recipeRepository.GetRecipeByID(ctx, sessionID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	items, err := s.inventory.Snapshot(ctx, sessionID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	recipe := s.matcher.Annotate(toDomain(row), inventoryNames(items))
	return NewRecipeResponse(recipe), nil
}

// GenerateFromSelection searches recipes for the selected items and fetches
// details for the first few hits, one at a time. A failed detail fetch drops
// that recipe and the rest carry on.
func (s *recipeService) GenerateFromSelection(ctx context.Context, sessionID string, req domain.GenerateRecipesRequest) (domain.RecipeListResponse, error) {
	if len(req.ItemIDs) == 0 {
		return domain.RecipeListResponse{}, domain.ErrNoIngredientsSelected
	}
	items, err := s.inventory.Snapshot(ctx, sessionID)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	var selected []string
	for _, item := range items {
		if slices.Contains(req.ItemIDs, item.ID) {
			selected = append(selected, item.Name)
		}
	}
	if len(selected) == 0 {
		return domain.RecipeListResponse{}, domain.ErrNoIngredientsSelected
	}

	candidates, err := s.searcher.SearchByIngredients(ctx, s.normalizer.TranslateAll(selected))
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	if len(candidates) > DetailFetchLimit {
		candidates = candidates[:DetailFetchLimit]
	}

	recipes := make([]domain.Recipe, 0, len(candidates))
	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return domain.RecipeListResponse{}, err
		}
		details, err := s.searcher.GetRecipeByID(ctx, candidate.ID)
		if err != nil {
			log.Warnf("skipping recipe %d: %v", candidate.ID, err)
			continue
		}
		recipe := fromSpoonacular(candidate, details)
		s.persist(ctx, sessionID, recipe, len(recipes))
		recipes = append(recipes, recipe)
	}

	return domain.RecipeListResponse{
		Recipes: NewRecipeResponses(recipes),
		Total:   len(recipes),
	}, nil
}

// GenerateWithAI asks the generator for a recipe built around the most
// urgent items. Any generator failure yields the demo recipe instead, built
// from the first item in insertion order.
func (s *recipeService) GenerateWithAI(ctx context.Context, sessionID string) (domain.GenerateAIRecipeResponse, error) {
	items, err := s.inventory.Snapshot(ctx, sessionID)
	if err != nil {
		return domain.GenerateAIRecipeResponse{}, err
	}
	if len(items) == 0 {
		return domain.GenerateAIRecipeResponse{}, domain.ErrEmptyInventory
	}
	byUrgency := inventory.SortedByUrgency(items)

	generated, err := s.generator.GenerateRecipe(ctx, byUrgency)
	if err != nil {
		log.Warnf("AI recipe generation failed, serving demo recipe: %v", err)
		metrics.RecipeFallbacks.Inc()
		demo := s.matcher.Annotate(DemoRecipe(items), inventoryNames(items))
		return domain.GenerateAIRecipeResponse{
			Recipe:   NewRecipeResponse(demo),
			Fallback: true,
			Message:  domain.MessageAIDemoMode,
		}, nil
	}

	recipe := fromGenerated(generated)
	s.persist(ctx, sessionID, recipe, 0)
	recipe = s.matcher.Annotate(recipe, inventoryNames(items))

	return domain.GenerateAIRecipeResponse{
		Recipe: NewRecipeResponse(recipe),
	}, nil
}

// persist keeps generated recipes for the session. A storage failure does
// not fail the generation.
func (s *recipeService) persist(ctx context.Context, sessionID string, recipe domain.Recipe, position int) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return
	}
	row := toEntity(recipe, position)
	row.SessionID = sessionID
	if err := s.recipeRepository.SaveRecipe(ctx, row); err != nil {
		log.Errorf("failed to save recipe %s: %v", recipe.ID, err)
	}
}

func fromSpoonacular(candidate domain.RecipeCandidate, details domain.RecipeDetails) domain.Recipe {
	prepTime := details.ReadyInMinutes
	if prepTime <= 0 {
		prepTime = domain.DefaultPrepTimeMinutes
	}
	name := details.Title
	if name == "" {
		name = candidate.Title
	}
	image := details.Image
	if image == "" {
		image = candidate.Image
	}

	return domain.Recipe{
		ID:                   fmt.Sprintf("spoon-%d", candidate.ID),
		Name:                 name,
		Description:          details.Summary,
		Image:                image,
		PrepTime:             prepTime,
		Servings:             details.Servings,
		Difficulty:           domain.DifficultyMedium,
		Ingredients:          details.Ingredients,
		Steps:                SplitInstructions(details.Instructions),
		AvailableIngredients: len(candidate.UsedIngredients),
		TotalIngredients:     len(candidate.UsedIngredients) + len(candidate.MissedIngredients),
		IsSuggested:          true,
		Source:               domain.RecipeSourceSpoonacular,
	}
}

func fromGenerated(g domain.GeneratedRecipe) domain.Recipe {
	prepTime := g.PrepTime
	if prepTime <= 0 {
		prepTime = domain.DefaultPrepTimeMinutes
	}
	return domain.Recipe{
		ID:          "ai-" + uuid.New().String(),
		Name:        strings.TrimSpace(g.Name),
		Description: g.Description,
		Image:       aiRecipeImage,
		PrepTime:    prepTime,
		Difficulty:  domain.ParseDifficulty(g.Difficulty),
		Ingredients: g.IngredientsUsed,
		Steps:       g.Steps,
		IsSuggested: true,
		Source:      domain.RecipeSourceAI,
	}
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func toDomain(row *entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:                   row.ID,
		Name:                 row.Title,
		Description:          row.Description,
		Image:                row.ImageURL,
		PrepTime:             row.PrepTimeMinutes,
		Servings:             row.Servings,
		Difficulty:           domain.ParseDifficulty(row.DifficultyLevel),
		Ingredients:          splitLines(row.Ingredients),
		Steps:                splitLines(row.Instructions),
		AvailableIngredients: row.AvailableIngredients,
		TotalIngredients:     row.TotalIngredients,
		IsSuggested:          row.IsSuggested,
		Source:               row.Source,
	}
}

func toEntity(recipe domain.Recipe, position int) *entities.Recipe {
	return &entities.Recipe{
		ID:                   recipe.ID,
		Title:                recipe.Name,
		Description:          recipe.Description,
		ImageURL:             recipe.Image,
		PrepTimeMinutes:      recipe.PrepTime,
		Servings:             recipe.Servings,
		DifficultyLevel:      string(recipe.Difficulty),
		Ingredients:          strings.Join(recipe.Ingredients, "\n"),
		Instructions:         strings.Join(recipe.Steps, "\n"),
		AvailableIngredients: recipe.AvailableIngredients,
		TotalIngredients:     recipe.TotalIngredients,
		IsSuggested:          recipe.IsSuggested,
		Source:               recipe.Source,
		Position:             position,
	}
}

// CatalogEntities converts the built-in catalog to rows for seeding.
func CatalogEntities() []*entities.Recipe {
	catalog := Catalog()
	rows := make([]*entities.Recipe, 0, len(catalog))
	for i, r := range catalog {
		rows = append(rows, toEntity(r, i+1))
	}
	return rows
}
