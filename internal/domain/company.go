package domain

import "time"

// Year identifies one independent premium collection. Collections do not
// carry over between years.
type Year = int

// Premium is one sparse (cell, price) entry. Absence of a cell means "no
// quote", never zero.
type Premium struct {
	CellID string  `json:"cell_id"`
	Value  float64 `json:"value"`
}

// Company holds one insurer's premium table for a single year. Exactly one
// company per year is the regulator reference (the baseline rate); it is
// excluded from cheapest-offer competition by default.
//
// Company ids are minted at import from names and are stable only within a
// year; cross-year matching goes by name.
type Company struct {
	ID          string    `db:"id" json:"company_id"`
	Year        Year      `db:"year" json:"year"`
	Name        string    `db:"name" json:"company_name"`
	IsReference bool      `db:"is_reference" json:"is_reference"`
	Premiums    []Premium `db:"-" json:"premiums"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
	UpdatedAt   time.Time `db:"updated_at" json:"-"`
}

// PremiumValue returns the quote for cellID, or ok=false when the company
// holds no quote for that cell.
func (c *Company) PremiumValue(cellID string) (float64, bool) {
	for i := range c.Premiums {
		if c.Premiums[i].CellID == cellID {
			return c.Premiums[i].Value, true
		}
	}
	return 0, false
}
