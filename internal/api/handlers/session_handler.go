package handlers

import (
	"EcoPanier/domain"
	"EcoPanier/internal/api/presenters"
	"EcoPanier/internal/utils"
	"EcoPanier/pkg/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SessionHandler interface {
		CreateSession(c *fiber.Ctx) error
		GetSettings(c *fiber.Ctx) error
		UpdateSettings(c *fiber.Ctx) error
	}

	sessionHandler struct {
		sessionService session.SessionService
		validator      *validator.Validate
	}
)

func NewSessionHandler(sessionService session.SessionService, validator *validator.Validate) SessionHandler {
	return &sessionHandler{
		sessionService: sessionService,
		validator:      validator,
	}
}

func (h *sessionHandler) CreateSession(c *fiber.Ctx) error {
	res, err := h.sessionService.CreateSession(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedCreateSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateSession)
}

func (h *sessionHandler) GetSettings(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	res, err := h.sessionService.GetSettings(c.Context(), sessionID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetSettings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSettings)
}

func (h *sessionHandler) UpdateSettings(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	req := new(domain.UpdateSettingsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSettings, utils.ValidationErr(err))
	}

	res, err := h.sessionService.UpdateSettings(c.Context(), sessionID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedUpdateSettings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateSettings)
}
