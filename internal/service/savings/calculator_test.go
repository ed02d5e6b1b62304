package savings

import (
	"math"
	"testing"

	"github.com/pavelnovac/rcahub/internal/domain"
	"github.com/pavelnovac/rcahub/internal/service/classifier"
	"github.com/pavelnovac/rcahub/internal/service/pricing"
)

const midCarCell = "A2_CH_PF_AGE_GE23_EXP_GE2"

func newCalculator() *Calculator {
	return NewCalculator(classifier.NewService(), pricing.NewResolver(nil))
}

func midCarPurchase(paid float64, bmClass int) *domain.Purchase {
	return &domain.Purchase{
		ContractNumber:  "RCA-1",
		PaidPrice:       paid,
		BonusMalusClass: &bmClass,
		Vehicle: domain.PurchaseVehicle{
			Subtype: domain.VehicleSubtype{Name: "Autoturisme 1201-1600 cm3"},
		},
		Person:    domain.PurchasePerson{Age: 30, DrivingExperience: 5},
		Territory: domain.PurchaseTerritory{RectificationCoefficient: 1.4},
	}
}

func ratesWithMin(min float64) []*domain.Company {
	return []*domain.Company{
		{Name: "BNM", IsReference: true, Premiums: []domain.Premium{{CellID: midCarCell, Value: min / 2}}},
		{Name: "X", Premiums: []domain.Premium{{CellID: midCarCell, Value: min}}},
		{Name: "Y", Premiums: []domain.Premium{{CellID: midCarCell, Value: min + 500}}},
	}
}

func TestCompute(t *testing.T) {
	calc := newCalculator()

	t.Run("price increase means early purchase saved", func(t *testing.T) {
		// min 4000 at class 3 (coefficient 1.6) prices at 6400 today
		result, recErr := calc.Compute(midCarPurchase(5000, 3), ratesWithMin(4000))
		if recErr != nil {
			t.Fatalf("Compute() error: %+v", recErr)
		}

		if result.CellID != midCarCell {
			t.Errorf("CellID = %s, want %s", result.CellID, midCarCell)
		}
		if result.NewPrice != 6400 {
			t.Errorf("NewPrice = %v, want 6400", result.NewPrice)
		}
		if result.Savings != -1400 {
			t.Errorf("Savings = %v, want -1400", result.Savings)
		}
		if result.MinCompanyName != "X" {
			t.Errorf("MinCompanyName = %s, want X", result.MinCompanyName)
		}
	})

	t.Run("neutral class at the minimum is exactly zero", func(t *testing.T) {
		result, recErr := calc.Compute(midCarPurchase(4000, 7), ratesWithMin(4000))
		if recErr != nil {
			t.Fatalf("Compute() error: %+v", recErr)
		}
		if result.Coefficient != 1.0 {
			t.Errorf("Coefficient = %v, want 1.0", result.Coefficient)
		}
		if result.Savings != 0 {
			t.Errorf("Savings = %v, want 0", result.Savings)
		}
	})

	t.Run("reference price never sets the minimum", func(t *testing.T) {
		result, recErr := calc.Compute(midCarPurchase(5000, 7), ratesWithMin(4000))
		if recErr != nil {
			t.Fatalf("Compute() error: %+v", recErr)
		}
		if result.MinBasePrice != 4000 {
			t.Errorf("MinBasePrice = %v, want 4000 (not the 2000 reference)", result.MinBasePrice)
		}
	})

	t.Run("missing paid price fails the record", func(t *testing.T) {
		_, recErr := calc.Compute(midCarPurchase(0, 7), ratesWithMin(4000))
		if recErr == nil {
			t.Fatal("Compute() error = nil, want record error")
		}
	})

	t.Run("cell without quotes fails the record", func(t *testing.T) {
		noRates := []*domain.Company{{Name: "X", Premiums: []domain.Premium{{CellID: "E1_AL_PJ", Value: 100}}}}
		_, recErr := calc.Compute(midCarPurchase(5000, 7), noRates)
		if recErr == nil {
			t.Fatal("Compute() error = nil, want record error")
		}
		if recErr.CellID != midCarCell {
			t.Errorf("record error cell = %s, want %s", recErr.CellID, midCarCell)
		}
	})

	t.Run("unknown bonus-malus class fails the record", func(t *testing.T) {
		_, recErr := calc.Compute(midCarPurchase(5000, 42), ratesWithMin(4000))
		if recErr == nil {
			t.Fatal("Compute() error = nil, want record error")
		}
	})

	t.Run("absent bonus-malus class fails the record", func(t *testing.T) {
		// class 0 is a real (worst-malus) class; only a missing field fails
		p := midCarPurchase(5000, 7)
		p.BonusMalusClass = nil
		_, recErr := calc.Compute(p, ratesWithMin(4000))
		if recErr == nil {
			t.Fatal("Compute() error = nil, want record error")
		}
		if recErr.Reason != "missing bonus-malus class" {
			t.Errorf("Reason = %q, want %q", recErr.Reason, "missing bonus-malus class")
		}

		result, recErr := calc.Compute(midCarPurchase(5000, 0), ratesWithMin(4000))
		if recErr != nil {
			t.Fatalf("Compute() error for class 0: %+v", recErr)
		}
		if result.Coefficient != 2.5 {
			t.Errorf("class 0 Coefficient = %v, want 2.5", result.Coefficient)
		}
	})
}

func TestComputeBatch(t *testing.T) {
	calc := newCalculator()
	rates := ratesWithMin(4000)

	purchases := []*domain.Purchase{
		midCarPurchase(5000, 3),  // new 6400, increased
		midCarPurchase(5000, 7),  // new 4000, decreased
		midCarPurchase(4000, 7),  // unchanged
		midCarPurchase(0, 7),     // record error
		midCarPurchase(5000, 42), // record error
	}

	report := calc.ComputeBatch(purchases, rates)

	if report.Summary.TotalPurchases != 5 {
		t.Errorf("TotalPurchases = %d, want 5", report.Summary.TotalPurchases)
	}
	if report.Summary.Computed != 3 {
		t.Errorf("Computed = %d, want 3", report.Summary.Computed)
	}
	if report.Summary.Failed != 2 || len(report.Errors) != 2 {
		t.Errorf("Failed = %d, len(Errors) = %d, want 2 and 2", report.Summary.Failed, len(report.Errors))
	}
	if len(report.Increased) != 1 || len(report.Decreased) != 1 || report.Summary.Unchanged != 1 {
		t.Errorf("partitions = %d/%d/%d, want 1/1/1",
			len(report.Increased), len(report.Decreased), report.Summary.Unchanged)
	}

	// increases and drops are labeled separately, never netted silently
	if report.Summary.TotalSavings != 1400 {
		t.Errorf("TotalSavings = %v, want 1400", report.Summary.TotalSavings)
	}
	if report.Summary.TotalLoss != 1000 {
		t.Errorf("TotalLoss = %v, want 1000", report.Summary.TotalLoss)
	}
	if report.Summary.NetSavings != -400 {
		t.Errorf("NetSavings = %v, want -400", report.Summary.NetSavings)
	}
	if want := math.Round(-400.0/3*100) / 100; report.Summary.AverageSavings != want {
		t.Errorf("AverageSavings = %v, want %v", report.Summary.AverageSavings, want)
	}
}

func TestComputeBatchSortsBiggestMovementsFirst(t *testing.T) {
	calc := newCalculator()
	rates := ratesWithMin(4000)

	purchases := []*domain.Purchase{
		midCarPurchase(4100, 7), // decreased by 100
		midCarPurchase(5000, 7), // decreased by 1000
		midCarPurchase(4500, 7), // decreased by 500
	}

	report := calc.ComputeBatch(purchases, rates)
	if len(report.Decreased) != 3 {
		t.Fatalf("len(Decreased) = %d, want 3", len(report.Decreased))
	}
	if report.Decreased[0].Savings != 1000 || report.Decreased[2].Savings != 100 {
		t.Errorf("Decreased order = [%v, %v, %v], want descending",
			report.Decreased[0].Savings, report.Decreased[1].Savings, report.Decreased[2].Savings)
	}
}
