package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pavelnovac/rcahub/internal/domain"
	"github.com/pavelnovac/rcahub/internal/pkg/constants"
	"github.com/pavelnovac/rcahub/internal/service/companies"
	"github.com/pavelnovac/rcahub/internal/service/compare"
	"github.com/pavelnovac/rcahub/internal/service/pricing"
	"github.com/pavelnovac/rcahub/internal/service/savings"
)

type Controller struct {
	companies *companies.Service
	pricing   *pricing.Service
	compare   *compare.Service
	savings   *savings.Service
}

func NewController(
	companiesService *companies.Service,
	pricingService *pricing.Service,
	compareService *compare.Service,
	savingsService *savings.Service,
) *Controller {
	return &Controller{
		companies: companiesService,
		pricing:   pricingService,
		compare:   compareService,
		savings:   savingsService,
	}
}

func yearParam(ctx echo.Context, name string) (domain.Year, error) {
	raw := ctx.Param(name)
	if raw == "" {
		raw = ctx.QueryParams().Get(name)
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return 0, constants.NewCodedError(http.StatusBadRequest,
			fmt.Sprintf("invalid year %q", raw))
	}
	return year, nil
}
