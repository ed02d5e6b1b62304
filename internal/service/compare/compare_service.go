package compare

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pavelnovac/rcahub/internal/domain"
	"github.com/pavelnovac/rcahub/internal/pkg/constants"
	"github.com/pavelnovac/rcahub/internal/pkg/store"
	"github.com/pavelnovac/rcahub/internal/pkg/taxonomy"
	"github.com/pavelnovac/rcahub/internal/service/pricing"
)

type Service struct {
	store    store.Store
	tax      *taxonomy.Taxonomy
	resolver *pricing.Resolver
}

func NewService(s store.Store, tax *taxonomy.Taxonomy, resolver *pricing.Resolver) *Service {
	return &Service{store: s, tax: tax, resolver: resolver}
}

// Comparison is a full diff between two price series: every taxonomy cell
// plus ranked aggregations over each grouping dimension.
type Comparison struct {
	Cells  []CellDiff               `json:"cells"`
	Groups map[GroupKey][]GroupStat `json:"groups"`
}

// CompareYears diffs yearA against yearB. With companyName empty, both
// sides are the cheapest-offer series; otherwise both sides are that
// insurer's own premiums, matched by name since ids differ across years.
func (s *Service) CompareYears(ctx context.Context, yearA, yearB domain.Year, companyName string) (*Comparison, error) {
	var companiesA, companiesB []*domain.Company

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		companiesA, err = s.companiesForYear(egCtx, yearA)
		return err
	})
	eg.Go(func() (err error) {
		companiesB, err = s.companiesForYear(egCtx, yearB)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var seriesA, seriesB Series
	if companyName != "" {
		ca := pricing.MatchByName(companiesA, companyName)
		cb := pricing.MatchByName(companiesB, companyName)
		if ca == nil || cb == nil {
			return nil, constants.ErrCompanyNotFound
		}
		seriesA, seriesB = CompanySeries(ca), CompanySeries(cb)
	} else {
		seriesA, seriesB = s.minSeries(companiesA), s.minSeries(companiesB)
	}

	return s.comparison(seriesA, seriesB), nil
}

// CompareCompanies diffs two insurers within one year.
func (s *Service) CompareCompanies(ctx context.Context, year domain.Year, nameA, nameB string) (*Comparison, error) {
	companies, err := s.companiesForYear(ctx, year)
	if err != nil {
		return nil, err
	}

	ca := pricing.MatchByName(companies, nameA)
	cb := pricing.MatchByName(companies, nameB)
	if ca == nil || cb == nil {
		return nil, constants.ErrCompanyNotFound
	}

	return s.comparison(CompanySeries(ca), CompanySeries(cb)), nil
}

func (s *Service) companiesForYear(ctx context.Context, year domain.Year) ([]*domain.Company, error) {
	companies, err := s.store.ListCompaniesByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("store.ListCompaniesByYear, year-%d: %w", year, err)
	}
	if len(companies) == 0 {
		return nil, constants.ErrUnknownYear
	}
	return companies, nil
}

// minSeries collapses a company set into its cheapest competitive offer
// per cell, reference excluded.
func (s *Service) minSeries(companies []*domain.Company) Series {
	series := make(Series)
	for _, cellID := range s.tax.Cells() {
		if q := s.resolver.MinPrice(cellID, companies, false); q != nil {
			series[cellID] = q.Value
		}
	}
	return series
}

func (s *Service) comparison(a, b Series) *Comparison {
	cells := DiffSeries(s.tax.Cells(), a, b)

	groups := make(map[GroupKey][]GroupStat, len(GroupKeys()))
	for _, key := range GroupKeys() {
		groups[key] = Aggregate(cells, key)
	}

	return &Comparison{Cells: cells, Groups: groups}
}
