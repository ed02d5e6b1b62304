// Package savings prices historical purchases against current rates. For
// every purchase it classifies the record, resolves today's cheapest base
// price for the cell, applies the bonus-malus coefficient and reports the
// difference against the price actually paid.
package savings

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pavelnovac/rcahub/internal/domain"
	"github.com/pavelnovac/rcahub/internal/pkg/bonusmalus"
	"github.com/pavelnovac/rcahub/internal/service/classifier"
	"github.com/pavelnovac/rcahub/internal/service/pricing"
)

type Calculator struct {
	classifier *classifier.Service
	resolver   *pricing.Resolver
}

func NewCalculator(cls *classifier.Service, resolver *pricing.Resolver) *Calculator {
	return &Calculator{classifier: cls, resolver: resolver}
}

// Result is one successfully priced purchase. Savings is old minus new:
// positive means the customer would pay less today, negative means rates
// rose and the early purchase was advantageous.
type Result struct {
	ContractNumber  string                `json:"contract_number"`
	PersonName      string                `json:"person_name,omitempty"`
	CellID          string                `json:"cell_id"`
	Classification  domain.Classification `json:"classification"`
	BonusMalusClass int                   `json:"bonus_malus_class"`
	Coefficient     float64               `json:"coefficient"`
	OldPrice        float64               `json:"old_price"`
	MinBasePrice    float64               `json:"min_base_price"`
	MinCompanyName  string                `json:"min_company_name"`
	NewPrice        float64               `json:"new_price"`
	Savings         float64               `json:"savings"`
}

// RecordError captures one failed record. The batch always continues past
// failures; errors travel in a parallel list next to the results.
type RecordError struct {
	ContractNumber string `json:"contract_number"`
	CellID         string `json:"cell_id,omitempty"`
	Reason         string `json:"reason"`
}

// Compute prices one purchase against current rates. Exactly one of the
// returned values is non-nil.
func (c *Calculator) Compute(p *domain.Purchase, companies []*domain.Company) (*Result, *RecordError) {
	if p.PaidPrice == 0 {
		return nil, &RecordError{
			ContractNumber: p.ContractNumber,
			Reason:         "missing paid price",
		}
	}
	if p.BonusMalusClass == nil {
		return nil, &RecordError{
			ContractNumber: p.ContractNumber,
			Reason:         "missing bonus-malus class",
		}
	}

	classification := c.classifier.Classify(p)
	cellID := classification.CellID()

	quote := c.resolver.MinPrice(cellID, companies, false)
	if quote == nil {
		return nil, &RecordError{
			ContractNumber: p.ContractNumber,
			CellID:         cellID,
			Reason:         fmt.Sprintf("no quote for cell %s", cellID),
		}
	}

	coefficient, ok := bonusmalus.Coefficient(*p.BonusMalusClass)
	if !ok {
		return nil, &RecordError{
			ContractNumber: p.ContractNumber,
			CellID:         cellID,
			Reason:         fmt.Sprintf("unknown bonus-malus class %d", *p.BonusMalusClass),
		}
	}

	newPrice := quote.Value * coefficient

	return &Result{
		ContractNumber:  p.ContractNumber,
		PersonName:      p.PersonName,
		CellID:          cellID,
		Classification:  classification,
		BonusMalusClass: *p.BonusMalusClass,
		Coefficient:     coefficient,
		OldPrice:        p.PaidPrice,
		MinBasePrice:    quote.Value,
		MinCompanyName:  quote.Company.Name,
		NewPrice:        newPrice,
		Savings:         p.PaidPrice - newPrice,
	}, nil
}

// Summary totals a batch. TotalSavings sums what early buyers saved on
// cells whose price rose; TotalLoss sums what customers would save today
// on cells whose price dropped. The two are labeled separately, never
// netted silently; NetSavings carries the signed net.
type Summary struct {
	TotalPurchases int     `json:"total_purchases"`
	Computed       int     `json:"computed"`
	Failed         int     `json:"failed"`
	Defaulted      int     `json:"defaulted"`
	Increased      int     `json:"increased"`
	Decreased      int     `json:"decreased"`
	Unchanged      int     `json:"unchanged"`
	TotalOldPrice  float64 `json:"total_old_price"`
	TotalNewPrice  float64 `json:"total_new_price"`
	TotalSavings   float64 `json:"total_savings"`
	TotalLoss      float64 `json:"total_loss"`
	NetSavings     float64 `json:"net_savings"`
	AverageSavings float64 `json:"average_savings"`
}

type Report struct {
	Summary   Summary       `json:"summary"`
	Increased []*Result     `json:"price_increased"`
	Decreased []*Result     `json:"price_decreased"`
	Errors    []RecordError `json:"errors"`
}

// ComputeBatch prices every purchase and assembles the report. Failures
// never abort the batch.
func (c *Calculator) ComputeBatch(purchases []*domain.Purchase, companies []*domain.Company) *Report {
	report := &Report{
		Increased: make([]*Result, 0),
		Decreased: make([]*Result, 0),
		Errors:    make([]RecordError, 0),
	}

	var oldTotal, newTotal, savedTotal, lossTotal, netTotal decimal.Decimal

	for _, p := range purchases {
		result, recErr := c.Compute(p, companies)
		if recErr != nil {
			report.Errors = append(report.Errors, *recErr)
			continue
		}

		report.Summary.Computed++
		if result.Classification.VehicleDefaulted || result.Classification.PersonDefaulted {
			report.Summary.Defaulted++
		}

		oldTotal = oldTotal.Add(decimal.NewFromFloat(result.OldPrice))
		newTotal = newTotal.Add(decimal.NewFromFloat(result.NewPrice))
		netTotal = netTotal.Add(decimal.NewFromFloat(result.Savings))

		switch {
		case result.NewPrice > result.OldPrice:
			report.Increased = append(report.Increased, result)
			savedTotal = savedTotal.Add(decimal.NewFromFloat(result.NewPrice - result.OldPrice))
		case result.NewPrice < result.OldPrice:
			report.Decreased = append(report.Decreased, result)
			lossTotal = lossTotal.Add(decimal.NewFromFloat(result.OldPrice - result.NewPrice))
		default:
			report.Summary.Unchanged++
		}
	}

	// biggest movements first on both sides
	sort.SliceStable(report.Increased, func(i, j int) bool {
		return report.Increased[i].Savings < report.Increased[j].Savings
	})
	sort.SliceStable(report.Decreased, func(i, j int) bool {
		return report.Decreased[i].Savings > report.Decreased[j].Savings
	})

	report.Summary.TotalPurchases = len(purchases)
	report.Summary.Failed = len(report.Errors)
	report.Summary.Increased = len(report.Increased)
	report.Summary.Decreased = len(report.Decreased)
	report.Summary.TotalOldPrice = oldTotal.Round(2).InexactFloat64()
	report.Summary.TotalNewPrice = newTotal.Round(2).InexactFloat64()
	report.Summary.TotalSavings = savedTotal.Round(2).InexactFloat64()
	report.Summary.TotalLoss = lossTotal.Round(2).InexactFloat64()
	report.Summary.NetSavings = netTotal.Round(2).InexactFloat64()
	if report.Summary.Computed > 0 {
		report.Summary.AverageSavings = netTotal.
			Div(decimal.NewFromInt(int64(report.Summary.Computed))).
			Round(2).InexactFloat64()
	}

	return report
}
