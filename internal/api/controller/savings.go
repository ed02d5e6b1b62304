package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pavelnovac/rcahub/internal/domain/dto"
)

// BuildSavingsReport prices the posted purchase records against the rates
// stored for the given year.
func (c *Controller) BuildSavingsReport(ctx echo.Context) error {
	year, err := yearParam(ctx, "year")
	if err != nil {
		return err
	}

	var req dto.SavingsReportRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	report, err := c.savings.Report(ctx.Request().Context(), year, req.Purchases)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, report)
}

// BuildGreenCardReport prices the posted Green Card purchase records
// against the current zone and category price table.
func (c *Controller) BuildGreenCardReport(ctx echo.Context) error {
	var req dto.GreenCardReportRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	report := c.savings.GreenCardReport(ctx.Request().Context(), req.Purchases)

	return ctx.JSON(http.StatusOK, report)
}
