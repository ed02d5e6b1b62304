package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/pavelnovac/rcahub/internal/pkg/constants"
)

type structValidator struct {
	validate *validator.Validate
}

func NewValidator() echo.Validator {
	return &structValidator{validate: validator.New()}
}

func (v *structValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}
	return nil
}
