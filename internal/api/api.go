package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pavelnovac/rcahub/internal/api/controller"
	"github.com/pavelnovac/rcahub/internal/pkg/logger"
	"github.com/pavelnovac/rcahub/internal/pkg/store"
	"github.com/pavelnovac/rcahub/internal/pkg/taxonomy"
	"github.com/pavelnovac/rcahub/internal/service/classifier"
	"github.com/pavelnovac/rcahub/internal/service/companies"
	"github.com/pavelnovac/rcahub/internal/service/compare"
	"github.com/pavelnovac/rcahub/internal/service/pricing"
	"github.com/pavelnovac/rcahub/internal/service/savings"
)

type APIService struct {
	router *echo.Echo

	companiesService *companies.Service
	pricingService   *pricing.Service
	compareService   *compare.Service
	savingsService   *savings.Service
}

// Serve blocks until the listener stops. Start returns
// http.ErrServerClosed after Shutdown; that is the orderly path and must
// not take the process down.
func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store, tax *taxonomy.Taxonomy) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(svc.RequestIDMiddleware)
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:5173"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	resolver := pricing.NewResolver(nil)

	svc.companiesService = companies.NewCompaniesService(st, tax)
	svc.pricingService = pricing.NewService(st, tax, resolver)
	svc.compareService = compare.NewService(st, tax, resolver)
	svc.savingsService = savings.NewService(st, savings.NewCalculator(classifier.NewService(), resolver))

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.companiesService, svc.pricingService, svc.compareService, svc.savingsService)

	companiesGroup := api.Group("/companies")
	companiesGroup.GET("/years", cntrl.ListYears)
	companiesGroup.GET("/:year", cntrl.ListCompanies)
	companiesGroup.GET("/:year/company", cntrl.GetCompany)
	companiesGroup.POST("/:year/import", cntrl.ImportCompanies, svc.AdminMiddleware)
	companiesGroup.DELETE("/:year/:id", cntrl.DeleteCompany, svc.AdminMiddleware)

	quotes := api.Group("/quotes")
	quotes.GET("/:year/min", cntrl.GetMinPrice)
	quotes.GET("/:year/top", cntrl.GetTopOffers)

	compareGroup := api.Group("/compare")
	compareGroup.GET("/years", cntrl.CompareYears)
	compareGroup.GET("/companies", cntrl.CompareCompanies)

	admin := api.Group("/admin")
	admin.POST("/login", cntrl.LoginAdmin)

	savingsGroup := api.Group("/savings")
	savingsGroup.POST("/:year/report", cntrl.BuildSavingsReport)
	savingsGroup.POST("/green-card/report", cntrl.BuildGreenCardReport)

	return svc, nil
}
