package savings

import (
	"context"
	"fmt"

	"github.com/pavelnovac/rcahub/internal/domain"
	"github.com/pavelnovac/rcahub/internal/pkg/constants"
	"github.com/pavelnovac/rcahub/internal/pkg/logger"
	"github.com/pavelnovac/rcahub/internal/pkg/store"
)

type Service struct {
	store         store.Store
	calc          *Calculator
	greenCardCalc *GreenCardCalculator
}

func NewService(s store.Store, calc *Calculator) *Service {
	return &Service{store: s, calc: calc, greenCardCalc: NewGreenCardCalculator()}
}

// Report prices purchases against the rates stored for year.
func (s *Service) Report(ctx context.Context, year domain.Year, purchases []*domain.Purchase) (*Report, error) {
	companies, err := s.store.ListCompaniesByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("store.ListCompaniesByYear, year-%d: %w", year, err)
	}
	if len(companies) == 0 {
		return nil, constants.ErrUnknownYear
	}

	report := s.calc.ComputeBatch(purchases, companies)
	logger.Infof(ctx, "savings report: year-%d, computed-%d, failed-%d",
		year, report.Summary.Computed, report.Summary.Failed)

	return report, nil
}

// GreenCardReport prices Green Card purchases against the current zone and
// category price table. No stored year is involved; the table is fixed.
func (s *Service) GreenCardReport(ctx context.Context, purchases []*domain.GreenCardPurchase) *GreenCardReport {
	report := s.greenCardCalc.ComputeBatch(purchases)
	logger.Infof(ctx, "green card savings report: computed-%d, failed-%d",
		report.Summary.Computed, report.Summary.Failed)

	return report
}
