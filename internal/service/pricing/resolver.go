// Package pricing finds the cheapest offer for a rate cell and ranks the
// top offers. The resolver is pure over a company slice; the service wraps
// it with store access for the API.
package pricing

import (
	"sort"

	"github.com/pavelnovac/rcahub/internal/domain"
)

// PriorityTable ranks insurers by exact name for tie-breaking. It is
// configuration, not logic: renamed insurers must be updated here or they
// rank as unlisted.
type PriorityTable map[string]int

// rankUnlisted sorts below every configured insurer. Ties among unlisted
// insurers keep the first company encountered in input order, which keeps
// resolution deterministic for a fixed company list.
const rankUnlisted = 999

func DefaultPriority() PriorityTable {
	return PriorityTable{
		"MOLDASIG S.A.":                       1,
		"ACORD GRUP S.A.":                     2,
		"GRAWE CARAT ASIGURARI S.A.":          3,
		"DONARIS VIENNA INSURANCE GROUP S.A.": 4,
		"INTACT ASIGURARI GENERALE S.A.":      5,
	}
}

func (t PriorityTable) Rank(name string) int {
	if r, ok := t[name]; ok {
		return r
	}
	return rankUnlisted
}

// Quote pairs an offered price with the company offering it.
type Quote struct {
	Value   float64         `json:"value"`
	Company *domain.Company `json:"company"`
}

type Resolver struct {
	priority PriorityTable
}

func NewResolver(priority PriorityTable) *Resolver {
	if priority == nil {
		priority = DefaultPriority()
	}
	return &Resolver{priority: priority}
}

// MinPrice scans companies holding a quote for cellID and returns the
// cheapest one, preferring the higher-priority insurer on exact ties.
// Reference companies are skipped unless includeReference is set; they are
// the regulatory floor, not a competitive offer. Returns nil when no
// company quotes the cell.
func (r *Resolver) MinPrice(cellID string, companies []*domain.Company, includeReference bool) *Quote {
	var best *Quote
	for _, c := range companies {
		if c.IsReference && !includeReference {
			continue
		}
		v, ok := c.PremiumValue(cellID)
		if !ok {
			continue
		}
		switch {
		case best == nil || v < best.Value:
			best = &Quote{Value: v, Company: c}
		case v == best.Value && r.priority.Rank(c.Name) < r.priority.Rank(best.Company.Name):
			best.Company = c
		}
	}
	return best
}

// TopN returns up to n quotes for cellID sorted ascending by price.
// Reference companies never compete for leaderboard spots. The sort is
// stable so equal prices keep input order.
func (r *Resolver) TopN(cellID string, companies []*domain.Company, n int) []Quote {
	quotes := make([]Quote, 0, len(companies))
	for _, c := range companies {
		if c.IsReference {
			continue
		}
		if v, ok := c.PremiumValue(cellID); ok {
			quotes = append(quotes, Quote{Value: v, Company: c})
		}
	}

	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].Value < quotes[j].Value })

	if n > 0 && len(quotes) > n {
		quotes = quotes[:n]
	}
	return quotes
}

// MatchByName finds a company by exact case-sensitive name, or nil. Import
// regenerates ids per year, so cross-year lookups must go by name. A nil
// result means "no counterpart", which callers must keep distinct from a
// company that exists but holds no quote.
func MatchByName(companies []*domain.Company, name string) *domain.Company {
	for _, c := range companies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
