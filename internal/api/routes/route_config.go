package routes

import (
	"EcoPanier/internal/api/handlers"
	"EcoPanier/internal/middleware"
	"EcoPanier/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App              *fiber.App
	SessionHandler   handlers.SessionHandler
	InventoryHandler handlers.InventoryHandler
	ShoppingHandler  handlers.ShoppingHandler
	RecipeHandler    handlers.RecipeHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Session()
	c.Inventory()
	c.ShoppingList()
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) Session() {
	session := c.App.Group("/api/v1/sessions")
	{
		session.Post("", c.SessionHandler.CreateSession)
		session.Get("/settings", c.Middleware.SessionMiddleware(c.JWTService), c.SessionHandler.GetSettings)
		session.Patch("/settings", c.Middleware.SessionMiddleware(c.JWTService), c.SessionHandler.UpdateSettings)
	}
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.SessionMiddleware(c.JWTService))
	inventory.Get("/dashboard", c.InventoryHandler.GetDashboardStats)
	inventory.Post("/scan", c.InventoryHandler.ScanBarcode)

	inventory.Post("", c.InventoryHandler.AddItem)
	inventory.Get("", c.InventoryHandler.GetItems)
	inventory.Get("/:id", c.InventoryHandler.GetItemDetails)
	inventory.Put("/:id", c.InventoryHandler.UpdateItem)
	inventory.Delete("/:id", c.InventoryHandler.DeleteItem)
	inventory.Post("/:id/image", c.InventoryHandler.UploadItemImage)
}

func (c *Config) ShoppingList() {
	list := c.App.Group("/api/v1/shopping-list", c.Middleware.SessionMiddleware(c.JWTService))
	list.Get("", c.ShoppingHandler.GetList)
	list.Post("", c.ShoppingHandler.AddItem)
	list.Post("/email", c.ShoppingHandler.EmailList)
	list.Delete("", c.ShoppingHandler.ClearList)
	list.Delete("/:id", c.ShoppingHandler.RemoveItem)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.SessionMiddleware(c.JWTService))
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("/generate", c.RecipeHandler.GenerateRecipes)
	recipes.Post("/ai", c.RecipeHandler.GenerateAIRecipe)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
