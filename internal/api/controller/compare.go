package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pavelnovac/rcahub/internal/pkg/constants"
)

// CompareYears diffs two years: the cheapest-offer series by default, or a
// single insurer's own premiums when company is given.
func (c *Controller) CompareYears(ctx echo.Context) error {
	yearA, err := yearParam(ctx, "year_a")
	if err != nil {
		return err
	}
	yearB, err := yearParam(ctx, "year_b")
	if err != nil {
		return err
	}

	companyName := ctx.QueryParams().Get("company")

	comparison, err := c.compare.CompareYears(ctx.Request().Context(), yearA, yearB, companyName)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, comparison)
}

func (c *Controller) CompareCompanies(ctx echo.Context) error {
	year, err := yearParam(ctx, "year")
	if err != nil {
		return err
	}

	nameA := ctx.QueryParams().Get("company_a")
	nameB := ctx.QueryParams().Get("company_b")
	if nameA == "" || nameB == "" {
		return constants.NewCodedError(http.StatusBadRequest, "company_a and company_b are required")
	}

	comparison, err := c.compare.CompareCompanies(ctx.Request().Context(), year, nameA, nameB)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, comparison)
}
