package savings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pavelnovac/rcahub/internal/domain"
)

// Green Card minimal prices by zone and category, MDL, for a 15-day
// policy. Category F (trailers) is priced at 10% of the towing vehicle
// and has no standalone entry, so F records always fail.
var greenCardBasePrices = map[int]map[string]float64{
	1: {
		"A":  34.47,
		"B":  40.81,
		"C1": 42.79,
		"C2": 81.02,
		"E1": 230.38,
		"E2": 378.15,
	},
	3: {
		"A":  692.12,
		"B":  658.84,
		"C1": 2116.58,
		"C2": 1071.66,
		"E1": 1324.42,
		"E2": 2163.13,
	},
}

// term coefficients relative to a full year; the 15-day value 0.1 is the
// base the price table is quoted at
const greenCardBaseTermCoefficient = 0.1

var greenCardTermCoefficients = map[string]float64{
	"15 zile": 0.1,
	"1 lună":  0.2,
	"1 luna":  0.2,
	"2 luni":  0.3,
	"3 luni":  0.4,
	"4 luni":  0.5,
	"5 luni":  0.6,
	"6 luni":  0.7,
	"7 luni":  0.8,
	"8 luni":  0.85,
	"9 luni":  0.9,
	"10 luni": 1,
	"11 luni": 1,
	"12 luni": 1,
}

var greenCardMonthCoefficients = []float64{0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.85, 0.9}

// greenCardZone normalizes the coverage area to a zone number. Name
// variants are matched because older records carry no area id.
func greenCardZone(area domain.GreenCardArea) int {
	name := strings.ToLower(area.Name)
	switch {
	case area.ID == 1, strings.Contains(name, "zona 1"),
		strings.Contains(name, "ucraina"), strings.Contains(name, "belarus"):
		return 1
	case area.ID == 3, strings.Contains(name, "zona 3"), strings.Contains(name, "toate tarile"):
		return 3
	}
	return area.ID
}

// greenCardTermCoefficient resolves the duration coefficient, first by the
// period label, then by the numeric day/month count. Unresolvable terms
// fall back to the 15-day base.
func greenCardTermCoefficient(term domain.GreenCardTerm) float64 {
	if c, ok := greenCardTermCoefficients[strings.ToLower(strings.TrimSpace(term.Period))]; ok {
		return c
	}
	if term.IsDays || term.DaysMonthsNumber == 0 {
		return greenCardBaseTermCoefficient
	}
	if term.DaysMonthsNumber >= 10 {
		return 1
	}
	return greenCardMonthCoefficients[term.DaysMonthsNumber-1]
}

// paidMDL is the premium actually paid, converted from EUR when the MDL
// amount is not recorded.
func paidMDL(p *domain.GreenCardPurchase) float64 {
	if p.PaidPriceMDL > 0 {
		return p.PaidPriceMDL
	}
	if p.PaidPriceEUR > 0 && p.ExchangeRate > 0 {
		return p.PaidPriceEUR * p.ExchangeRate
	}
	return 0
}

// GreenCardCalculator prices historical Green Card purchases against the
// current zone and category minimal price table.
type GreenCardCalculator struct{}

func NewGreenCardCalculator() *GreenCardCalculator {
	return &GreenCardCalculator{}
}

type GreenCardResult struct {
	ContractNumber  string  `json:"contract_number"`
	PersonName      string  `json:"person_name,omitempty"`
	Zone            int     `json:"zone"`
	Category        string  `json:"category"`
	TermPeriod      string  `json:"term_period,omitempty"`
	TermCoefficient float64 `json:"term_coefficient"`
	BasePrice       float64 `json:"base_price"`
	OldPrice        float64 `json:"old_price"`
	NewPrice        float64 `json:"new_price"`
	Savings         float64 `json:"savings"`
}

// Compute prices one Green Card purchase. Exactly one of the returned
// values is non-nil.
func (c *GreenCardCalculator) Compute(p *domain.GreenCardPurchase) (*GreenCardResult, *RecordError) {
	oldPrice := paidMDL(p)
	if oldPrice == 0 {
		return nil, &RecordError{
			ContractNumber: p.ContractNumber,
			Reason:         "missing paid price",
		}
	}

	zone := greenCardZone(p.Area)
	if zone == 0 {
		return nil, &RecordError{
			ContractNumber: p.ContractNumber,
			Reason:         "missing green card zone",
		}
	}

	category := p.VehicleType.Code
	if category == "" {
		return nil, &RecordError{
			ContractNumber: p.ContractNumber,
			Reason:         "missing green card category",
		}
	}

	basePrice, ok := greenCardBasePrices[zone][category]
	if !ok {
		return nil, &RecordError{
			ContractNumber: p.ContractNumber,
			Reason:         fmt.Sprintf("no minimal price for zone %d category %s", zone, category),
		}
	}

	coefficient := greenCardTermCoefficient(p.Term)
	newPrice := basePrice * (coefficient / greenCardBaseTermCoefficient)

	return &GreenCardResult{
		ContractNumber:  p.ContractNumber,
		PersonName:      p.PersonName,
		Zone:            zone,
		Category:        category,
		TermPeriod:      p.Term.Period,
		TermCoefficient: coefficient,
		BasePrice:       basePrice,
		OldPrice:        oldPrice,
		NewPrice:        newPrice,
		Savings:         oldPrice - newPrice,
	}, nil
}

type GreenCardReport struct {
	Summary   Summary            `json:"summary"`
	Increased []*GreenCardResult `json:"price_increased"`
	Decreased []*GreenCardResult `json:"price_decreased"`
	Errors    []RecordError      `json:"errors"`
}

// ComputeBatch prices every purchase and assembles the report. Failures
// never abort the batch.
func (c *GreenCardCalculator) ComputeBatch(purchases []*domain.GreenCardPurchase) *GreenCardReport {
	report := &GreenCardReport{
		Increased: make([]*GreenCardResult, 0),
		Decreased: make([]*GreenCardResult, 0),
		Errors:    make([]RecordError, 0),
	}

	var oldTotal, newTotal, savedTotal, lossTotal, netTotal decimal.Decimal

	for _, p := range purchases {
		result, recErr := c.Compute(p)
		if recErr != nil {
			report.Errors = append(report.Errors, *recErr)
			continue
		}

		report.Summary.Computed++

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
