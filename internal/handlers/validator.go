package handlers

import (
	"net/http"

	"fxledger/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator on top of the shared ledger validator
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a new custom validator
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
