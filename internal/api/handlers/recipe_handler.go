package handlers

import (
	"EcoPanier/domain"
	"EcoPanier/internal/api/presenters"
	"EcoPanier/internal/utils"
	"EcoPanier/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		GenerateRecipes(c *fiber.Ctx) error
		GenerateAIRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	tab := c.Query("tab", domain.RecipeTabSuggested)

	res, err := h.recipeService.GetRecipes(c.Context(), sessionID, tab)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	recipeID := c.Params("id")

	if recipeID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, domain.ErrRecipeNotFound)
	}

	res, err := h.recipeService.GetRecipeDetail(c.Context(), sessionID, recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) GenerateRecipes(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	req := new(domain.GenerateRecipesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrNoIngredientsSelected.Error(), utils.ValidationErr(err))
	}

	res, err := h.recipeService.GenerateFromSelection(c.Context(), sessionID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGenerateRecipes, err)
	}

	if res.Total == 0 {
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageNoRecipesFound)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateRecipes)
}

func (h *recipeHandler) GenerateAIRecipe(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	res, err := h.recipeService.GenerateWithAI(c.Context(), sessionID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGenerateAIRecipe, err)
	}

	if res.Fallback {
		return presenters.SuccessResponse(c, res, fiber.StatusOK, res.Message)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateAIRecipe)
}
