package pricing

import (
	"context"
	"fmt"

	"github.com/pavelnovac/rcahub/internal/domain"
	"github.com/pavelnovac/rcahub/internal/pkg/constants"
	"github.com/pavelnovac/rcahub/internal/pkg/store"
	"github.com/pavelnovac/rcahub/internal/pkg/taxonomy"
)

type Service struct {
	store    store.Store
	tax      *taxonomy.Taxonomy
	resolver *Resolver
}

func NewService(s store.Store, tax *taxonomy.Taxonomy, resolver *Resolver) *Service {
	return &Service{store: s, tax: tax, resolver: resolver}
}

func (s *Service) companiesForYear(ctx context.Context, year domain.Year) ([]*domain.Company, error) {
	companies, err := s.store.ListCompaniesByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("store.ListCompaniesByYear: %w", err)
	}
	if len(companies) == 0 {
		return nil, constants.ErrUnknownYear
	}
	return companies, nil
}

// MinPrice resolves the cheapest offer for cellID in year. A nil quote
// with a nil error means no company quotes the cell.
func (s *Service) MinPrice(ctx context.Context, year domain.Year, cellID string, includeReference bool) (*Quote, error) {
	if !s.tax.Valid(cellID) {
		return nil, constants.ErrInvalidCell
	}

	companies, err := s.companiesForYear(ctx, year)
	if err != nil {
		return nil, err
	}

	return s.resolver.MinPrice(cellID, companies, includeReference), nil
}

// TopOffers ranks the n cheapest offers for cellID in year.
func (s *Service) TopOffers(ctx context.Context, year domain.Year, cellID string, n int) ([]Quote, error) {
	if !s.tax.Valid(cellID) {
		return nil, constants.ErrInvalidCell
	}

	companies, err := s.companiesForYear(ctx, year)
	if err != nil {
		return nil, err
	}

	return s.resolver.TopN(cellID, companies, n), nil
}
