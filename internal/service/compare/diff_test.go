package compare

import (
	"testing"

	"github.com/pavelnovac/rcahub/internal/domain"
)

func fp(v float64) *float64 { return &v }

func TestDiffValues(t *testing.T) {
	tests := []struct {
		name    string
		a, b    *float64
		wantAbs *float64
		wantPct *float64
	}{
		{name: "increase", a: fp(100), b: fp(150), wantAbs: fp(50), wantPct: fp(50)},
		{name: "decrease", a: fp(200), b: fp(150), wantAbs: fp(-50), wantPct: fp(-25)},
		{name: "self diff is zero", a: fp(123.45), b: fp(123.45), wantAbs: fp(0), wantPct: fp(0)},
		{name: "zero base has no percentage", a: fp(0), b: fp(50), wantAbs: fp(50), wantPct: nil},
		{name: "missing left side", a: nil, b: fp(50), wantAbs: nil, wantPct: nil},
		{name: "missing right side", a: fp(50), b: nil, wantAbs: nil, wantPct: nil},
		{name: "both missing", a: nil, b: nil, wantAbs: nil, wantPct: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffValues(tt.a, tt.b)
			checkFloat(t, "Absolute", got.Absolute, tt.wantAbs)
			checkFloat(t, "Percentage", got.Percentage, tt.wantPct)
		})
	}
}

func checkFloat(t *testing.T, field string, got, want *float64) {
	t.Helper()
	if (got == nil) != (want == nil) {
		t.Fatalf("%s = %v, want %v", field, got, want)
	}
	if got != nil && *got != *want {
		t.Errorf("%s = %v, want %v", field, *got, *want)
	}
}

func TestDiffSeries(t *testing.T) {
	cells := []string{"A1_CH_PJ", "A2_CH_PJ", "A3_CH_PJ"}
	a := Series{"A1_CH_PJ": 100, "A2_CH_PJ": 200}
	b := Series{"A1_CH_PJ": 110, "A3_CH_PJ": 300}

	diffs := DiffSeries(cells, a, b)
	if len(diffs) != 3 {
		t.Fatalf("len(DiffSeries()) = %d, want 3", len(diffs))
	}

	if diffs[0].Absolute == nil || *diffs[0].Absolute != 10 {
		t.Errorf("A1 absolute = %v, want 10", diffs[0].Absolute)
	}
	// A2 present only in A, A3 present only in B
	if diffs[1].Absolute != nil || diffs[2].Absolute != nil {
		t.Error("one-sided cells must not produce a diff")
	}
	if diffs[2].ValueB == nil || *diffs[2].ValueB != 300 {
		t.Errorf("A3 value_b = %v, want 300", diffs[2].ValueB)
	}
}

func TestCompanySeries(t *testing.T) {
	c := &domain.Company{
		Name: "X",
		Premiums: []domain.Premium{
			{CellID: "A1_CH_PJ", Value: 100},
			{CellID: "A2_AL_PJ", Value: 200},
		},
	}

	s := CompanySeries(c)
	if len(s) != 2 || s["A1_CH_PJ"] != 100 || s["A2_AL_PJ"] != 200 {
		t.Errorf("CompanySeries() = %v", s)
	}
}

func TestAggregate(t *testing.T) {
	cells := []string{
		"A1_CH_PF_AGE_GE23_EXP_GE2",
		"A2_CH_PF_AGE_GE23_EXP_GE2",
		"B1_AL_PJ",
		"C1_AL_PJ",
	}
	a := Series{
		"A1_CH_PF_AGE_GE23_EXP_GE2": 100,
		"A2_CH_PF_AGE_GE23_EXP_GE2": 100,
		"B1_AL_PJ":                  100,
		"C1_AL_PJ":                  100,
	}
	b := Series{
		"A1_CH_PF_AGE_GE23_EXP_GE2": 110,
		"A2_CH_PF_AGE_GE23_EXP_GE2": 130,
		"B1_AL_PJ":                  80,
		"C1_AL_PJ":                  100,
	}
	diffs := DiffSeries(cells, a, b)

	t.Run("by vehicle group", func(t *testing.T) {
		stats := Aggregate(diffs, GroupVehicleGroup)
		if len(stats) != 3 {
			t.Fatalf("len(stats) = %d, want 3", len(stats))
		}

		// group A moved +40 in total, B moved -20, C stayed flat
		if stats[0].Key != "A" || stats[0].Count != 2 || stats[0].Total != 40 || stats[0].Average != 20 {
			t.Errorf("stats[0] = %+v, want {A 2 40 20}", stats[0])
		}
		if stats[1].Key != "B" || stats[1].Total != -20 {
			t.Errorf("stats[1] = %+v, want key B total -20", stats[1])
		}
		if stats[2].Key != "C" || stats[2].Total != 0 {
			t.Errorf("stats[2] = %+v, want key C total 0", stats[2])
		}
	})

	t.Run("by territory", func(t *testing.T) {
		stats := Aggregate(diffs, GroupTerritory)
		if len(stats) != 2 {
			t.Fatalf("len(stats) = %d, want 2", len(stats))
		}
		if stats[0].Key != "CH" || stats[0].Total != 40 {
			t.Errorf("stats[0] = %+v, want CH 40", stats[0])
		}
	})

	t.Run("by person category keeps underscored labels whole", func(t *testing.T) {
		stats := Aggregate(diffs, GroupPersonCategory)
		for _, s := range stats {
			if s.Key != "PF_AGE_GE23_EXP_GE2" && s.Key != "PJ" {
				t.Errorf("unexpected group label %q", s.Key)
			}
		}
	})

	t.Run("compound key", func(t *testing.T) {
		stats := Aggregate(diffs, GroupVehicleByTerritory)
		if stats[0].Key != "A_CH" {
			t.Errorf("stats[0].Key = %q, want A_CH", stats[0].Key)
		}
	})

	t.Run("skips cells without a diff", func(t *testing.T) {
		partial := DiffSeries([]string{"A1_CH_PJ", "A2_CH_PJ"}, Series{"A1_CH_PJ": 100}, Series{"A1_CH_PJ": 110})
		stats := Aggregate(partial, GroupVehicleGroup)
		if len(stats) != 1 || stats[0].Count != 1 {
			t.Errorf("stats = %+v, want one group with count 1", stats)
		}
	})
}
