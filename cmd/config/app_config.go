package config

import (
	"EcoPanier/internal/api/handlers"
	"EcoPanier/internal/api/routes"
	"EcoPanier/internal/middleware"
	"EcoPanier/internal/utils"
	"EcoPanier/internal/utils/mailing"
	"EcoPanier/internal/utils/storage"
	"EcoPanier/pkg/expiry"
	"EcoPanier/pkg/ingredient"
	"EcoPanier/pkg/inventory"
	"EcoPanier/pkg/jwt"
	"EcoPanier/pkg/product"
	"EcoPanier/pkg/recipe"
	"EcoPanier/pkg/session"
	"EcoPanier/pkg/shopping"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate
	clock := expiry.NewClockFromConfig()

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   clock.Location().String(),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer(mailing.LoadMailConfig())
	normalizer, err := ingredient.NewNormalizer()
	if err != nil {
		return nil, err
	}

	// external collaborators
	productLookup := product.NewOpenFoodFactsClientFromConfig()
	recipeSearcher := recipe.NewSpoonacularClientFromConfig()
	recipeGenerator := recipe.NewGeneratorFromConfig()

	// Repository
	sessionRepository := session.NewSessionRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	sessionService := session.NewSessionService(sessionRepository, jwtService)
	inventoryService := inventory.NewInventoryService(inventoryRepository, clock, productLookup, s3)
	shoppingService := shopping.NewShoppingService(shoppingRepository, inventoryService, mailer, clock)
	recipeService := recipe.NewRecipeService(recipeRepository, inventoryService, recipeSearcher, recipeGenerator, normalizer)

	// Handler
	sessionHandler := handlers.NewSessionHandler(sessionService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		SessionHandler:   sessionHandler,
		InventoryHandler: inventoryHandler,
		ShoppingHandler:  shoppingHandler,
		RecipeHandler:    recipeHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
