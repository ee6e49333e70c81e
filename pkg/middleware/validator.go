package middleware

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator satisfies echo.Validator so handlers can c.Validate()
// bound request structs.
type RequestValidator struct {
	validate *validator.Validate
}

func NewValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
