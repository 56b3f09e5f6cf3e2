package handlers

import (
	"EcoPanier/domain"
	"EcoPanier/internal/api/presenters"
	"EcoPanier/internal/utils"
	"EcoPanier/pkg/shopping"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		GetList(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		RemoveItem(c *fiber.Ctx) error
		ClearList(c *fiber.Ctx) error
		EmailList(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) GetList(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	res, err := h.shoppingService.GetList(c.Context(), sessionID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingHandler) AddItem(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	req := new(domain.AddShoppingItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, utils.ValidationErr(err))
	}

	res, err := h.shoppingService.AddItem(c.Context(), sessionID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedAddShoppingItem, err)
	}

	status := fiber.StatusCreated
	if !res.Added {
		status = fiber.StatusOK
	}
	return presenters.SuccessResponse(c, res, status, domain.MessageSuccessAddShoppingItem)
}

func (h *shoppingHandler) RemoveItem(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	itemID := c.Params("id")

	if err := h.shoppingService.RemoveItem(c.Context(), sessionID, itemID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedRemoveShoppingItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveShoppingItem)
}

func (h *shoppingHandler) ClearList(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	if err := h.shoppingService.ClearList(c.Context(), sessionID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedClearShoppingList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearShoppingList)
}

func (h *shoppingHandler) EmailList(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	req := new(domain.EmailShoppingListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEmailShoppingList, utils.ValidationErr(err))
	}

	if err := h.shoppingService.EmailList(c.Context(), sessionID, *req); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedEmailShoppingList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessEmailShoppingList)
}
