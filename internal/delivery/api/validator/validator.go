// Package validator adapts the domain validator to echo.
package validator

import (
	"farmlease/internal/domain/validation"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct{}

// New returns a validator sharing the domain's tag configuration.
func New() *CustomValidator {
	return &CustomValidator{}
}

// Validate reports failures as ErrValidationFailed with field details.
func (cv *CustomValidator) Validate(i any) error {
	return validation.Struct(i)
}
