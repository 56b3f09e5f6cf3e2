package domain

import (
	"errors"
	"fmt"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseUUID       = errors.New("failed to parse UUID")
	ErrTokenNotFound   = errors.New("failed to token not found")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenInvalid    = errors.New("token invalid")
	ErrSessionNotFound = errors.New("session not found")

	ErrValidation      = errors.New("validation failed")
	ErrExternalService = errors.New("external service failed")
)

// ValidationError reports user input rejected before it reaches a store.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ExternalError wraps a collaborator failure so callers can match ErrExternalService.
func ExternalError(service string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrExternalService, service, err)
}
