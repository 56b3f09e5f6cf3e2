package recipe

import "EcoPanier/domain"

// Catalog is the built-in recipe set shipped with every installation.
// Availability counts are left at zero so they are computed against the
// household inventory on each read.
func Catalog() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:          "r1",
			Name:        "Poulet rôti aux carottes",
			Description: "Un classique savoureux et réconfortant avec des légumes rôtis.",
			Image:       "https://picsum.photos/id/292/600/400",
			PrepTime:    60,
			Servings:    4,
			Difficulty:  domain.DifficultyMedium,
			Ingredients: []string{"Poulet", "Carottes", "Oignon", "Huile", "Thym", "Sel"},
			IsSuggested: true,
			Source:      domain.RecipeSourceCatalog,
		},
		{
			ID:          "r2",
			Name:        "Tartine au poulet et pommes",
			Description: "Combinaison savoureuse de sucré-salé sur pain grillé.",
			Image:       "https://picsum.photos/id/1080/600/400",
			PrepTime:    15,
			Servings:    2,
			Difficulty:  domain.DifficultyEasy,
			Ingredients: []string{"Pain", "Poulet", "Pommes", "Fromage", "Miel"},
			IsSuggested: true,
			Source:      domain.RecipeSourceCatalog,
		},
		{
			ID:          "r3",
			Name:        "Smoothie aux pommes et yogourt",
			Description: "Boisson rafraîchissante et nutritive pour bien commencer la journée.",
			Image:       "https://picsum.photos/id/425/600/400",
			PrepTime:    5,
			Servings:    2,
			Difficulty:  domain.DifficultyEasy,
			Ingredients: []string{"Pommes", "Yogourt", "Lait", "Miel", "Cannelle"},
			IsSuggested: true,
			Source:      domain.RecipeSourceCatalog,
		},
	}
}

// DemoRecipe stands in for an AI recipe when generation is unavailable.
func DemoRecipe(inventory []domain.InventoryItem) domain.Recipe {
	first := "Légumes"
	description := "Une recette générée pour utiliser vos restes"
	if len(inventory) > 0 {
		first = inventory[0].Name
		description += " de " + first
	}
	return domain.Recipe{
		ID:          "demo-1",
		Name:        "Poêlée 'Vide-Frigo'",
		Description: description,
		Image:       "https://picsum.photos/seed/demo/600/400",
		PrepTime:    20,
		Difficulty:  domain.DifficultyEasy,
		Ingredients: []string{first, "Huile", "Sel", "Poivre"},
		Steps:       []string{"Couper tout", "Cuire 20 min", "Servir chaud"},
		IsSuggested: true,
		Source:      domain.RecipeSourceDemo,
	}
}
