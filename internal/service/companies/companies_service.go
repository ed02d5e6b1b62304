// Package companies manages the per-year premium collections: bulk import,
// listing, deletion and year discovery.
package companies

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pavelnovac/rcahub/internal/domain"
	"github.com/pavelnovac/rcahub/internal/domain/dto"
	"github.com/pavelnovac/rcahub/internal/pkg/constants"
	"github.com/pavelnovac/rcahub/internal/pkg/logger"
	"github.com/pavelnovac/rcahub/internal/pkg/store"
	"github.com/pavelnovac/rcahub/internal/pkg/taxonomy"
)

type Service struct {
	store store.Store
	tax   *taxonomy.Taxonomy
}

func NewCompaniesService(s store.Store, tax *taxonomy.Taxonomy) *Service {
	return &Service{store: s, tax: tax}
}

// Import replaces the full premium collection for year. Every premium cell
// must name a taxonomy cell and company names must be unique; the payload
// carries the complete list per company, there is no partial update.
func (s *Service) Import(ctx context.Context, year domain.Year, req *dto.ImportRequest) ([]*domain.Company, error) {
	seen := make(map[string]struct{}, len(req.Companies))
	companies := make([]*domain.Company, 0, len(req.Companies))

	for _, ic := range req.Companies {
		ic = ic.Normalize()

		if _, ok := seen[ic.Name]; ok {
			return nil, constants.NewCodedError(http.StatusBadRequest,
				fmt.Sprintf("duplicate company name %q", ic.Name))
		}
		seen[ic.Name] = struct{}{}

		for _, p := range ic.Premiums {
			if !s.tax.Valid(p.CellID) {
				return nil, constants.NewCodedError(http.StatusBadRequest,
					fmt.Sprintf("unknown cell %q, company_name-%s", p.CellID, ic.Name))
			}
		}

		companies = append(companies, ic.Domain(year))
	}

	imported, err := s.store.ReplaceCompaniesForYear(ctx, year, companies)
	if err != nil {
		return nil, fmt.Errorf("store.ReplaceCompaniesForYear, year-%d: %w", year, err)
	}

	logger.Infof(ctx, "imported companies: year-%d, count-%d", year, len(imported))
	return imported, nil
}

func (s *Service) List(ctx context.Context, year domain.Year) ([]*domain.Company, error) {
	companies, err := s.store.ListCompaniesByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("store.ListCompaniesByYear, year-%d: %w", year, err)
	}
	if len(companies) == 0 {
		return nil, constants.ErrUnknownYear
	}
	return companies, nil
}

// Get returns one company by exact name within year. Lookups go by name
// because ids are reassigned on every import.
func (s *Service) Get(ctx context.Context, year domain.Year, name string) (*domain.Company, error) {
	c, err := s.store.GetCompanyByName(ctx, year, name)
	if err != nil {
		return nil, fmt.Errorf("store.GetCompanyByName, year-%d, name-%s: %w", year, name, err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, year domain.Year, id string) error {
	if err := s.store.DeleteCompany(ctx, year, id); err != nil {
		return fmt.Errorf("store.DeleteCompany, year-%d, id-%s: %w", year, id, err)
	}

	logger.Infof(ctx, "deleted company: year-%d, id-%s", year, id)
	return nil
}

func (s *Service) Years(ctx context.Context) ([]domain.Year, error) {
	years, err := s.store.ListYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListYears: %w", err)
	}
	return years, nil
}
