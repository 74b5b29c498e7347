package handlers

import (
	"fleet-dashboard/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator adapts the shared validation rules to echo's c.Validate.
type CustomValidator struct {
	validate *validator.Validate
}

func NewValidator() echo.Validator {
	return &CustomValidator{validate: validation.GetValidator().GetValidate()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validate.Struct(i)
}
