package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/pavelnovac/rcahub/internal/pkg/constants"
	"github.com/pavelnovac/rcahub/internal/pkg/utils"
)

type adminLoginRequest struct {
	Secret string `json:"secret" validate:"required"`
}

// LoginAdmin exchanges the configured admin secret for a signed token
// cookie that the admin middleware checks on mutating endpoints.
func (c *Controller) LoginAdmin(ctx echo.Context) error {
	var req adminLoginRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	if req.Secret != viper.GetString(constants.ViperSecretKey) {
		return constants.ErrUnauthorized
	}

	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{Secret: req.Secret})
	if err != nil {
		return err
	}

	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeySecretToken,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	return ctx.NoContent(http.StatusOK)
}
