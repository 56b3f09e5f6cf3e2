package handlers

import (
	"EcoPanier/domain"
	"EcoPanier/internal/api/presenters"
	"EcoPanier/internal/utils"
	"EcoPanier/pkg/inventory"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InventoryHandler interface {
		AddItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		GetItemDetails(c *fiber.Ctx) error
		UploadItemImage(c *fiber.Ctx) error
		ScanBarcode(c *fiber.Ctx) error
		GetDashboardStats(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *inventoryHandler) AddItem(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	req := new(domain.AddInventoryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddInventoryItem, utils.ValidationErr(err))
	}

	res, err := h.inventoryService.AddItem(c.Context(), sessionID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedAddInventoryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddInventoryItem)
}

func (h *inventoryHandler) UpdateItem(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	itemID := c.Params("id")
	req := new(domain.UpdateInventoryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateInventoryItem, utils.ValidationErr(err))
	}

	res, err := h.inventoryService.UpdateItem(c.Context(), sessionID, itemID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedUpdateInventoryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateInventoryItem)
}

func (h *inventoryHandler) DeleteItem(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	itemID := c.Params("id")

	if err := h.inventoryService.DeleteItem(c.Context(), sessionID, itemID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedDeleteInventoryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteInventoryItem)
}

func (h *inventoryHandler) GetItems(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	filter := domain.InventoryFilter{
		Category: c.Query("category", domain.AllCategories),
		Search:   c.Query("search"),
		Sort:     c.Query("sort", inventory.SortUrgency),
	}

	items, err := h.inventoryService.ListItems(c.Context(), sessionID, filter)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetInventoryItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"total": len(items),
	}, fiber.StatusOK, domain.MessageSuccessGetInventoryItems)
}

func (h *inventoryHandler) GetItemDetails(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	itemID := c.Params("id")

	res, err := h.inventoryService.GetItem(c.Context(), sessionID, itemID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetInventoryItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInventoryItems)
}

func (h *inventoryHandler) UploadItemImage(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadItemImage, domain.NewValidationError("image", "required"))
	}

	req := domain.UploadItemImageRequest{
		ItemID: c.Params("id"),
		Image:  file,
	}
	res, err := h.inventoryService.UploadItemImage(c.Context(), sessionID, req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedUploadItemImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadItemImage)
}

func (h *inventoryHandler) ScanBarcode(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	req := new(domain.ScanBarcodeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanBarcode, utils.ValidationErr(err))
	}

	res, err := h.inventoryService.ScanBarcode(c.Context(), sessionID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedScanBarcode, err)
	}

	if res.Status == domain.ScanStatusManualEntryRequired {
		return presenters.SuccessResponse(c, res, fiber.StatusOK, res.Message)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessScanBarcode)
}

func (h *inventoryHandler) GetDashboardStats(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	res, err := h.inventoryService.GetDashboardStats(c.Context(), sessionID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetDashboardStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboardStats)
}
