// Package validator plugs struct tag validation into echo's Context.Validate.
package validator

import "lending/internal/validation"

// Validator implements echo.Validator on top of go-playground/validator.
type Validator struct{}

// New creates a Validator.
func New() *Validator {
	return &Validator{}
}

// Validate checks i against its `validate` tags and returns a domain ValidationError on failure.
func (v *Validator) Validate(i any) error {
	return validation.Struct(i)
}
