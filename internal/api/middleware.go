package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/random"
	"github.com/spf13/viper"

	"github.com/pavelnovac/rcahub/internal/pkg/constants"
	"github.com/pavelnovac/rcahub/internal/pkg/logger"
	"github.com/pavelnovac/rcahub/internal/pkg/utils"
)

// RequestIDMiddleware propagates an inbound request id, minting one when
// absent, and hangs it on the request context for log correlation.
func (svc *APIService) RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id := ctx.Request().Header.Get(constants.HeaderRequestID)
		if id == "" {
			id = random.String(16)
		}
		ctx.Response().Header().Set(constants.HeaderRequestID, id)

		req := ctx.Request()
		ctx.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), id)))

		return next(ctx)
	}
}

// AdminMiddleware guards the mutating endpoints. The cookie carries a
// signed token whose secret claim must match the configured admin secret.
func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeySecretToken)
		if err != nil {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		if token.Secret != viper.GetString(constants.ViperSecretKey) {
			return constants.ErrUnauthorized
		}

		return next(ctx)
	}
}
