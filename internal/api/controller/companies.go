package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pavelnovac/rcahub/internal/domain/dto"
	"github.com/pavelnovac/rcahub/internal/pkg/constants"
)

func (c *Controller) ImportCompanies(ctx echo.Context) error {
	year, err := yearParam(ctx, "year")
	if err != nil {
		return err
	}

	var req dto.ImportRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	imported, err := c.companies.Import(ctx.Request().Context(), year, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, imported)
}

func (c *Controller) ListCompanies(ctx echo.Context) error {
	year, err := yearParam(ctx, "year")
	if err != nil {
		return err
	}

	companies, err := c.companies.List(ctx.Request().Context(), year)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, companies)
}

func (c *Controller) GetCompany(ctx echo.Context) error {
	year, err := yearParam(ctx, "year")
	if err != nil {
		return err
	}

	name := ctx.QueryParams().Get("name")
	if name == "" {
		return constants.NewCodedError(http.StatusBadRequest, "name is required")
	}

	company, err := c.companies.Get(ctx.Request().Context(), year, name)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, company)
}

func (c *Controller) DeleteCompany(ctx echo.Context) error {
	year, err := yearParam(ctx, "year")
	if err != nil {
		return err
	}

	if err := c.companies.Delete(ctx.Request().Context(), year, ctx.Param("id")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) ListYears(ctx echo.Context) error {
	years, err := c.companies.Years(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, years)
}
