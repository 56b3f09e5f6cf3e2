package presenters

import (
	"EcoPanier/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		res.Data = verr
	}
	return c.Status(statusCode).JSON(res)
}

// StatusFor maps a service error to the HTTP status it is reported with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrNoIngredientsSelected),
		errors.Is(err, domain.ErrEmptyInventory):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrInventoryItemNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateItemID):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrExternalService):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
