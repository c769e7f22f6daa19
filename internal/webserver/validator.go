package webserver

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type webValidator struct {
	validate *validator.Validate
}

func newWebValidator() *webValidator {
	return &webValidator{validate: validator.New()}
}

func (v *webValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}
