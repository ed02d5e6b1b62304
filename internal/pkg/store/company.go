package store

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/pavelnovac/rcahub/internal/domain"
	"github.com/pavelnovac/rcahub/internal/pkg/constants"
	"github.com/pavelnovac/rcahub/internal/pkg/logger"
	"github.com/pavelnovac/rcahub/internal/pkg/store/xpgx"
)

var companiesColumns = []string{"id", "year", "name", "is_reference", "premiums", "created_at", "updated_at"}

// companyRow mirrors the companies table. The sparse premium list lives in
// a jsonb column; a missing cell means "no quote", never zero.
type companyRow struct {
	ID           string    `db:"id"`
	Year         int       `db:"year"`
	Name         string    `db:"name"`
	IsReference  bool      `db:"is_reference"`
	PremiumsJSON []byte    `db:"premiums"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type yearRow struct {
	Year int `db:"year"`
}

func (r *companyRow) domain() (*domain.Company, error) {
	var premiums []domain.Premium
	if len(r.PremiumsJSON) > 0 {
		if err := sonic.Unmarshal(r.PremiumsJSON, &premiums); err != nil {
			return nil, fmt.Errorf("failed to unmarshal premiums for company %s: %w", r.ID, err)
		}
	}
	return &domain.Company{
		ID:          r.ID,
		Year:        r.Year,
		Name:        r.Name,
		IsReference: r.IsReference,
		Premiums:    premiums,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

func (s *store) ReplaceCompaniesForYear(
	ctx context.Context,
	year domain.Year,
	companies []*domain.Company,
) ([]*domain.Company, error) {
	references := 0
	for _, c := range companies {
		if c.IsReference {
			references++
		}
	}
	if references != 1 {
		return nil, constants.NewCodedError(http.StatusBadRequest,
			fmt.Sprintf("import must mark exactly one reference company, got %d", references))
	}

	query := builder().Insert(tableCompanies).
		Columns("id", "year", "name", "is_reference", "premiums")

	for _, c := range companies {
		c.ID = uuid.NewString()
		c.Year = year

		premiumsJSON, err := sonic.Marshal(c.Premiums)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal premiums, company_name-%s: %w", c.Name, err)
		}

		query = query.Values(c.ID, year, c.Name, c.IsReference, premiumsJSON)
	}

	// delete and insert commit together so a failed import never leaves
	// the year half-replaced
	err := s.pool.WithinTx(ctx, func(tx xpgx.Tx) error {
		deleteQuery := builder().Delete(tableCompanies).
			Where(sq.Eq{"year": year})

		if _, err := tx.Execx(ctx, deleteQuery); err != nil {
			return fmt.Errorf("deleteCompaniesForYear: %w", err)
		}
		if _, err := tx.Execx(ctx, query); err != nil {
			return fmt.Errorf("insertCompanies: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Errorf(ctx, "replaceCompaniesForYear: %s", err.Error())
		return nil, err
	}

	return s.ListCompaniesByYear(ctx, year)
}

func (s *store) ListCompaniesByYear(ctx context.Context, year domain.Year) ([]*domain.Company, error) {
	query := builder().Select(companiesColumns...).
		From(tableCompanies).
		Where(sq.Eq{"year": year}).
		OrderBy("name")

	rows, err := xpgx.Selectx[companyRow](ctx, s.pool, query)
	if err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	companies := make([]*domain.Company, 0, len(rows))
	for _, r := range rows {
		c, err := r.domain()
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	return companies, nil
}

func (s *store) GetCompanyByName(ctx context.Context, year domain.Year, name string) (*domain.Company, error) {
	query := builder().Select(companiesColumns...).
		From(tableCompanies).
		Where(sq.And{
			sq.Eq{"year": year},
			sq.Eq{"name": name},
		})

	row, err := xpgx.Getx[companyRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return row.domain()
}

func (s *store) DeleteCompany(ctx context.Context, year domain.Year, id string) error {
	query := builder().Delete(tableCompanies).
		Where(sq.And{
			sq.Eq{"year": year},
			sq.Eq{"id": id},
		})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		logger.Errorf(ctx, "deleteCompany: %s", err.Error())
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrCompanyNotFound
	}

	return nil
}

func (s *store) ListYears(ctx context.Context) ([]domain.Year, error) {
	query := builder().Select("distinct year").
		From(tableCompanies).
		OrderBy("year")

	rows, err := xpgx.Selectx[yearRow](ctx, s.pool, query)
	if err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	years := make([]domain.Year, 0, len(rows))
	for _, r := range rows {
		years = append(years, r.Year)
	}

	return years, nil
}
