package recipe

import (
	"EcoPanier/domain"
	"EcoPanier/entities"
	"EcoPanier/internal/testutil"
	"EcoPanier/pkg/ingredient"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInventory struct {
	items []domain.InventoryItem
}

func (f *fakeInventory) Snapshot(ctx context.Context, sessionID string) ([]domain.InventoryItem, error) {
	return f.items, nil
}

type fakeSearcher struct {
	candidates  []domain.RecipeCandidate
	searchErr   error
	failIDs     map[int]bool
	searched    []string
	detailCalls []int
}

func (f *fakeSearcher) SearchByIngredients(ctx context.Context, ingredients []string) ([]domain.RecipeCandidate, error) {
	f.searched = ingredients
	return f.candidates, f.searchErr
}

func (f *fakeSearcher) GetRecipeByID(ctx context.Context, id int) (domain.RecipeDetails, error) {
	f.detailCalls = append(f.detailCalls, id)
	if f.failIDs[id] {
		return domain.RecipeDetails{}, domain.ExternalError("spoonacular", errors.New("timeout"))
	}
	return domain.RecipeDetails{
		ID:             id,
		Title:          "Recipe " + string(rune('A'+id-1)),
		ReadyInMinutes: 0,
		Servings:       2,
		Instructions:   "<ol><li>Mix.</li><li>Bake.</li></ol>",
		Ingredients:    []string{"1 cup milk", "2 eggs"},
		Summary:        "Tasty.",
	}, nil
}

type fakeGenerator struct {
	recipe domain.GeneratedRecipe
	err    error
	got    []domain.InventoryItem
}

func (f *fakeGenerator) GenerateRecipe(ctx context.Context, items []domain.InventoryItem) (domain.GeneratedRecipe, error) {
	f.got = items
	return f.recipe, f.err
}

type recipeFixture struct {
	service   RecipeService
	repo      RecipeRepository
	inventory *fakeInventory
	searcher  *fakeSearcher
	generator *fakeGenerator
	sessionID string
}

func newRecipeFixture(t *testing.T) recipeFixture {
	t.Helper()
	db := testutil.NewDB(t)
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	f := recipeFixture{
		repo: NewRecipeRepository(db),
		inventory: &fakeInventory{items: []domain.InventoryItem{
			{ID: "i1", Name: "Poulet", ExpiryDate: now.AddDate(0, 0, 6), DaysUntilExpiry: 6, Status: domain.StatusSoon},
			{ID: "i2", Name: "Carottes", ExpiryDate: now.AddDate(0, 0, 1), DaysUntilExpiry: 1, Status: domain.StatusUrgent},
			{ID: "i3", Name: "Lait", ExpiryDate: now.AddDate(0, 0, 20), DaysUntilExpiry: 20, Status: domain.StatusSafe},
		}},
		searcher:  &fakeSearcher{},
		generator: &fakeGenerator{},
		sessionID: testutil.NewSession(t, db),
	}
	require.NoError(t, f.repo.SeedCatalog(context.Background(), CatalogEntities()))
	f.service = NewRecipeService(f.repo, f.inventory, f.searcher, f.generator, ingredient.MustNewNormalizer())
	return f
}

func candidates(n int) []domain.RecipeCandidate {
	out := make([]domain.RecipeCandidate, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.RecipeCandidate{
			ID:                i,
			Title:             "Candidate",
			UsedIngredients:   []string{"milk", "chicken"},
			MissedIngredients: []string{"eggs"},
		})
	}
	return out
}

func TestRecipeService_GetRecipesAnnotatesCatalog(t *testing.T) {
	f := newRecipeFixture(t)

	res, err := f.service.GetRecipes(context.Background(), f.sessionID, "")
	require.NoError(t, err)
	require.Equal(t, 3, res.Total)

	assert.Equal(t, "r1", res.Recipes[0].ID)
	assert.Equal(t, 2, res.Recipes[0].AvailableIngredients)
	assert.Equal(t, 6, res.Recipes[0].TotalIngredients)
	assert.Equal(t, 33, res.Recipes[0].Compatibility)
	assert.False(t, res.Recipes[0].GoodCompatibility)

	assert.Equal(t, 1, res.Recipes[2].AvailableIngredients)
	assert.Equal(t, 20, res.Recipes[2].Compatibility)
}

func TestRecipeService_GetRecipesTabs(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	hidden := toEntity(domain.Recipe{ID: "x1", Name: "Archived", Ingredients: []string{"Sel"}, Source: domain.RecipeSourceAI}, 0)
	hidden.SessionID = f.sessionID
	require.NoError(t, f.repo.SaveRecipe(ctx, hidden))

	suggested, err := f.service.GetRecipes(ctx, f.sessionID, domain.RecipeTabSuggested)
	require.NoError(t, err)
	assert.Equal(t, 3, suggested.Total)

	all, err := f.service.GetRecipes(ctx, f.sessionID, domain.RecipeTabAll)
	require.NoError(t, err)
	assert.Equal(t, 4, all.Total)
	assert.Equal(t, "x1", all.Recipes[3].ID)
}

func TestRecipeService_GetRecipeDetail(t *testing.T) {
	f := newRecipeFixture(t)

	res, err := f.service.GetRecipeDetail(context.Background(), f.sessionID, "r3")
	require.NoError(t, err)
	assert.Equal(t, "Smoothie aux pommes et yogourt", res.Name)
	assert.Equal(t, domain.DifficultyEasy, res.Difficulty)

	_, err = f.service.GetRecipeDetail(context.Background(), f.sessionID, "nope")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRecipeService_GenerateSkipsFailedDetailFetch(t *testing.T) {
	f := newRecipeFixture(t)
	f.searcher.candidates = candidates(3)
	f.searcher.failIDs = map[int]bool{2: true}

	res, err := f.service.GenerateFromSelection(context.Background(), f.sessionID, domain.GenerateRecipesRequest{ItemIDs: []string{"i1", "i3"}})
	require.NoError(t, err)
	require.Equal(t, 2, res.Total)

	assert.Equal(t, []string{"chicken", "milk"}, f.searcher.searched)
	assert.Equal(t, "spoon-1", res.Recipes[0].ID)
	assert.Equal(t, "spoon-3", res.Recipes[1].ID)

	first := res.Recipes[0]
	assert.Equal(t, domain.DefaultPrepTimeMinutes, first.PrepTime)
	assert.Equal(t, domain.DifficultyMedium, first.Difficulty)
	assert.Equal(t, []string{"Mix.", "Bake."}, first.Steps)
	assert.Equal(t, 67, first.Compatibility)
	assert.True(t, first.GoodCompatibility)
}

func TestRecipeService_GenerateFetchesAtMostThreeDetails(t *testing.T) {
	f := newRecipeFixture(t)
	f.searcher.candidates = candidates(5)

	res, err := f.service.GenerateFromSelection(context.Background(), f.sessionID, domain.GenerateRecipesRequest{ItemIDs: []string{"i1"}})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, []int{1, 2, 3}, f.searcher.detailCalls)

	all, err := f.service.GetRecipes(context.Background(), f.sessionID, domain.RecipeTabAll)
	require.NoError(t, err)
	assert.Equal(t, 6, all.Total)
}

func TestRecipeService_GenerateWithNoCandidates(t *testing.T) {
	f := newRecipeFixture(t)

	res, err := f.service.GenerateFromSelection(context.Background(), f.sessionID, domain.GenerateRecipesRequest{ItemIDs: []string{"i1"}})
	require.NoError(t, err)
	assert.Zero(t, res.Total)
	assert.Empty(t, res.Recipes)
}

func TestRecipeService_GenerateErrors(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	_, err := f.service.GenerateFromSelection(ctx, f.sessionID, domain.GenerateRecipesRequest{})
	assert.ErrorIs(t, err, domain.ErrNoIngredientsSelected)

	_, err = f.service.GenerateFromSelection(ctx, f.sessionID, domain.GenerateRecipesRequest{ItemIDs: []string{"unknown"}})
	assert.ErrorIs(t, err, domain.ErrNoIngredientsSelected)

	f.searcher.searchErr = domain.ExternalError("spoonacular", errors.New("quota exceeded"))
	_, err = f.service.GenerateFromSelection(ctx, f.sessionID, domain.GenerateRecipesRequest{ItemIDs: []string{"i1"}})
	assert.ErrorIs(t, err, domain.ErrExternalService)
}

func TestRecipeService_GenerateWithAI(t *testing.T) {
	f := newRecipeFixture(t)
	f.generator.recipe = domain.GeneratedRecipe{
		Name:            "Poulet aux carottes",
		Description:     "Simple.",
		Difficulty:      "easy",
		Steps:           []string{"Couper", "Cuire"},
		IngredientsUsed: []string{"Poulet", "Carottes", "Crème"},
	}

	res, err := f.service.GenerateWithAI(context.Background(), f.sessionID)
	require.NoError(t, err)
	assert.False(t, res.Fallback)
	assert.True(t, strings.HasPrefix(res.Recipe.ID, "ai-"))
	assert.Equal(t, domain.DifficultyEasy, res.Recipe.Difficulty)
	assert.Equal(t, domain.DefaultPrepTimeMinutes, res.Recipe.PrepTime)
	assert.Equal(t, 2, res.Recipe.AvailableIngredients)
	assert.Equal(t, 3, res.Recipe.TotalIngredients)

	require.Len(t, f.generator.got, 3)
	assert.Equal(t, "Carottes", f.generator.got[0].Name)

	detail, err := f.service.GetRecipeDetail(context.Background(), f.sessionID, res.Recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Poulet aux carottes", detail.Name)
}

func TestRecipeService_GenerateWithAIFallsBackToDemo(t *testing.T) {
	f := newRecipeFixture(t)
	f.generator.err = domain.ErrAIKeyMissing

	res, err := f.service.GenerateWithAI(context.Background(), f.sessionID)
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, domain.MessageAIDemoMode, res.Message)
	assert.Equal(t, "demo-1", res.Recipe.ID)
	assert.Equal(t, "Poulet", res.Recipe.Ingredients[0])
	assert.Equal(t, "Une recette générée pour utiliser vos restes de Poulet", res.Recipe.Description)
}

func TestRecipeService_GenerateWithAIEmptyInventory(t *testing.T) {
	f := newRecipeFixture(t)
	f.inventory.items = nil

	_, err := f.service.GenerateWithAI(context.Background(), f.sessionID)
	assert.ErrorIs(t, err, domain.ErrEmptyInventory)
}

func TestCatalogEntities(t *testing.T) {
	rows := CatalogEntities()
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Position)
		assert.Empty(t, row.SessionID)
		assert.Zero(t, row.TotalIngredients)
	}
	assert.IsType(t, &entities.Recipe{}, rows[0])
}
