package dto

import (
	"strings"

	"github.com/pavelnovac/rcahub/internal/domain"
)

// ImportCompany is one company document in a yearly import payload.
// Import always replaces the complete premium list; there are no partial
// premium updates.
type ImportCompany struct {
	Name        string          `json:"company_name" validate:"required"`
	IsReference bool            `json:"is_reference"`
	Premiums    []ImportPremium `json:"premiums" validate:"required,dive"`
}

type ImportPremium struct {
	CellID string  `json:"cell_id" validate:"required"`
	Value  float64 `json:"value" validate:"gt=0"`
}

// ImportRequest is the body of a per-year bulk import. The year comes from
// the route; the payload carries every company for that year.
type ImportRequest struct {
	Companies []ImportCompany `json:"companies" validate:"required,min=1,dive"`
}

// Normalize trims names and strips any extra per-premium fields collectors
// attach, keeping only (cell_id, value) pairs. Later duplicates of a cell
// win, matching replace semantics.
func (c ImportCompany) Normalize() ImportCompany {
	seen := make(map[string]int, len(c.Premiums))
	premiums := make([]ImportPremium, 0, len(c.Premiums))
	for _, p := range c.Premiums {
		p.CellID = strings.TrimSpace(p.CellID)
		if i, ok := seen[p.CellID]; ok {
			premiums[i] = p
			continue
		}
		seen[p.CellID] = len(premiums)
		premiums = append(premiums, p)
	}
	c.Name = strings.TrimSpace(c.Name)
	c.Premiums = premiums
	return c
}

// Domain converts the normalized payload into a domain company for the
// given year. The id is assigned by the store layer.
func (c ImportCompany) Domain(year domain.Year) *domain.Company {
	premiums := make([]domain.Premium, 0, len(c.Premiums))
	for _, p := range c.Premiums {
		premiums = append(premiums, domain.Premium{CellID: p.CellID, Value: p.Value})
	}
	return &domain.Company{
		Year:        year,
		Name:        c.Name,
		IsReference: c.IsReference,
		Premiums:    premiums,
	}
}
