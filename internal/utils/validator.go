package utils

import (
	"EcoPanier/domain"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	if Validate != nil {
		return
	}
	Validate = validator.New()
}

// ValidationErr converts the first validator failure into a domain.ValidationError.
func ValidationErr(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	reason := fe.Tag()
	if fe.Param() != "" {
		reason = fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
	}
	return domain.NewValidationError(strings.ToLower(fe.Field()), reason)
}
