package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pavelnovac/rcahub/internal/pkg/constants"
)

const defaultTopOffers = 5

// GetMinPrice returns the cheapest offer for a cell, or a null body when
// no company quotes it. The reference company joins the competition only
// when include_reference is set.
func (c *Controller) GetMinPrice(ctx echo.Context) error {
	year, err := yearParam(ctx, "year")
	if err != nil {
		return err
	}

	cellID := ctx.QueryParams().Get("cell_id")
	if cellID == "" {
		return constants.ErrInvalidCell
	}

	includeReference, _ := strconv.ParseBool(ctx.QueryParams().Get("include_reference"))

	quote, err := c.pricing.MinPrice(ctx.Request().Context(), year, cellID, includeReference)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, quote)
}

func (c *Controller) GetTopOffers(ctx echo.Context) error {
	year, err := yearParam(ctx, "year")
	if err != nil {
		return err
	}

	cellID := ctx.QueryParams().Get("cell_id")
	if cellID == "" {
		return constants.ErrInvalidCell
	}

	n, err := strconv.Atoi(ctx.QueryParams().Get("n"))
	if err != nil || n <= 0 {
		n = defaultTopOffers
	}

	quotes, err := c.pricing.TopOffers(ctx.Request().Context(), year, cellID, n)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, quotes)
}
