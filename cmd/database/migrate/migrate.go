package migration

import (
	"EcoPanier/entities"
	"EcoPanier/pkg/recipe"
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	}

	if err := db.AutoMigrate(&entities.Session{}); err != nil {
		log.Printf("Error migrating session database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.InventoryItem{}); err != nil {
		log.Printf("Error migrating inventory item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingListItem{}); err != nil {
		log.Printf("Error migrating shopping list database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Printf("Error migrating recipe database: %v", err)
		return err
	}

	if err := recipe.NewRecipeRepository(db).SeedCatalog(context.Background(), recipe.CatalogEntities()); err != nil {
		log.Printf("Error seeding recipe catalog: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
