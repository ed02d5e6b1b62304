package store

import (
	"context"

	"github.com/pavelnovac/rcahub/internal/domain"
	"github.com/pavelnovac/rcahub/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	// ReplaceCompaniesForYear drops everything stored for year and inserts
	// companies in its place. Import is always a full-year replace.
	ReplaceCompaniesForYear(ctx context.Context, year domain.Year, companies []*domain.Company) ([]*domain.Company, error)
	ListCompaniesByYear(ctx context.Context, year domain.Year) ([]*domain.Company, error)
	GetCompanyByName(ctx context.Context, year domain.Year, name string) (*domain.Company, error)
	DeleteCompany(ctx context.Context, year domain.Year, id string) error
	ListYears(ctx context.Context) ([]domain.Year, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
