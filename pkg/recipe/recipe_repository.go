package recipe

import (
	"EcoPanier/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		SaveRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, sessionID, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, sessionID string) ([]*entities.Recipe, error)
		SeedCatalog(ctx context.Context, recipes []*entities.Recipe) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// SaveRecipe inserts the recipe or overwrites the stored one with the same
// (id, session_id). The first created_at is kept.
func (r *recipeRepository) SaveRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(recipe).Error
}

// GetRecipeByID finds a catalog recipe or one generated for the session.
func (r *recipeRepository) GetRecipeByID(ctx context.Context, sessionID, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("id = ? AND session_id IN ?", id, []string{"", sessionID}).
		Order("session_id desc").
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipes returns the catalog followed by the session's generated recipes.
func (r *recipeRepository) GetRecipes(ctx context.Context, sessionID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("session_id IN ?", []string{"", sessionID}).
		Order("session_id asc, position asc, created_at asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// SeedCatalog inserts catalog rows that are not there yet.
func (r *recipeRepository) SeedCatalog(ctx context.Context, recipes []*entities.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(recipes).Error
}
