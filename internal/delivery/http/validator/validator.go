// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator wraps a validator instance for struct tag validation.
type requestValidator struct {
	validate *validator.Validate
}

// New builds the Echo validator used by every handler.
func New() echo.Validator {
	return &requestValidator{validate: validator.New()}
}

// Validate checks the struct tags and surfaces failures as 400s with the
// validator's message so clients can see which field was rejected.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
