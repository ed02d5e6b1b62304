package pricing

import (
	"testing"

	"github.com/pavelnovac/rcahub/internal/domain"
)

const testCell = "A1_CH_PF_AGE_LT23_EXP_LT2"

func company(name string, isReference bool, premiums ...domain.Premium) *domain.Company {
	return &domain.Company{Name: name, IsReference: isReference, Premiums: premiums}
}

func quote(cellID string, value float64) domain.Premium {
	return domain.Premium{CellID: cellID, Value: value}
}

func TestMinPrice(t *testing.T) {
	resolver := NewResolver(nil)

	t.Run("picks cheapest offer", func(t *testing.T) {
		companies := []*domain.Company{
			company("X", false, quote(testCell, 4641.40)),
			company("Y", false, quote(testCell, 5800.41)),
		}

		got := resolver.MinPrice(testCell, companies, false)
		if got == nil {
			t.Fatal("MinPrice() = nil, want quote")
		}
		if got.Value != 4641.40 || got.Company.Name != "X" {
			t.Errorf("MinPrice() = {%v, %s}, want {4641.40, X}", got.Value, got.Company.Name)
		}
	})

	t.Run("result independent of company order", func(t *testing.T) {
		companies := []*domain.Company{
			company("Y", false, quote(testCell, 5800.41)),
			company("X", false, quote(testCell, 4641.40)),
		}

		got := resolver.MinPrice(testCell, companies, false)
		if got == nil || got.Company.Name != "X" {
			t.Fatalf("MinPrice() = %+v, want company X", got)
		}
	})

	t.Run("tie goes to higher priority insurer", func(t *testing.T) {
		companies := []*domain.Company{
			company("GRAWE CARAT ASIGURARI S.A.", false, quote(testCell, 1000)),
			company("MOLDASIG S.A.", false, quote(testCell, 1000)),
		}

		got := resolver.MinPrice(testCell, companies, false)
		if got == nil || got.Company.Name != "MOLDASIG S.A." {
			t.Fatalf("MinPrice() = %+v, want MOLDASIG S.A.", got)
		}
	})

	t.Run("tie among unlisted insurers keeps first encountered", func(t *testing.T) {
		companies := []*domain.Company{
			company("FIRST UNLISTED", false, quote(testCell, 1000)),
			company("SECOND UNLISTED", false, quote(testCell, 1000)),
		}

		got := resolver.MinPrice(testCell, companies, false)
		if got == nil || got.Company.Name != "FIRST UNLISTED" {
			t.Fatalf("MinPrice() = %+v, want FIRST UNLISTED", got)
		}
	})

	t.Run("listed insurer beats unlisted on tie", func(t *testing.T) {
		companies := []*domain.Company{
			company("UNLISTED", false, quote(testCell, 1000)),
			company("INTACT ASIGURARI GENERALE S.A.", false, quote(testCell, 1000)),
		}

		got := resolver.MinPrice(testCell, companies, false)
		if got == nil || got.Company.Name != "INTACT ASIGURARI GENERALE S.A." {
			t.Fatalf("MinPrice() = %+v, want INTACT ASIGURARI GENERALE S.A.", got)
		}
	})

	t.Run("reference excluded by default", func(t *testing.T) {
		companies := []*domain.Company{
			company("BNM", true, quote(testCell, 100)),
			company("X", false, quote(testCell, 4641.40)),
		}

		got := resolver.MinPrice(testCell, companies, false)
		if got == nil || got.Company.Name != "X" {
			t.Fatalf("MinPrice() = %+v, want X", got)
		}
	})

	t.Run("reference included on request", func(t *testing.T) {
		companies := []*domain.Company{
			company("BNM", true, quote(testCell, 100)),
			company("X", false, quote(testCell, 4641.40)),
		}

		got := resolver.MinPrice(testCell, companies, true)
		if got == nil || got.Company.Name != "BNM" {
			t.Fatalf("MinPrice() = %+v, want BNM", got)
		}
	})

	t.Run("no quotes yields nil", func(t *testing.T) {
		companies := []*domain.Company{
			company("X", false, quote("A2_AL_PJ", 500)),
		}

		if got := resolver.MinPrice(testCell, companies, false); got != nil {
			t.Errorf("MinPrice() = %+v, want nil", got)
		}
	})
}

func TestTopN(t *testing.T) {
	resolver := NewResolver(nil)

	companies := []*domain.Company{
		company("C", false, quote(testCell, 3000)),
		company("BNM", true, quote(testCell, 10)),
		company("A", false, quote(testCell, 1000)),
		company("B", false, quote(testCell, 2000)),
		company("NOQUOTE", false),
	}

	t.Run("sorted ascending and capped", func(t *testing.T) {
		got := resolver.TopN(testCell, companies, 2)
		if len(got) != 2 {
			t.Fatalf("len(TopN()) = %d, want 2", len(got))
		}
		if got[0].Company.Name != "A" || got[1].Company.Name != "B" {
			t.Errorf("TopN() order = [%s, %s], want [A, B]", got[0].Company.Name, got[1].Company.Name)
		}
	})

	t.Run("reference never competes", func(t *testing.T) {
		for _, q := range resolver.TopN(testCell, companies, 10) {
			if q.Company.IsReference {
				t.Errorf("reference company %s in top offers", q.Company.Name)
			}
		}
	})

	t.Run("stable on equal prices", func(t *testing.T) {
		equal := []*domain.Company{
			company("ONE", false, quote(testCell, 500)),
			company("TWO", false, quote(testCell, 500)),
		}
		got := resolver.TopN(testCell, equal, 2)
		if got[0].Company.Name != "ONE" || got[1].Company.Name != "TWO" {
			t.Errorf("TopN() reordered equal prices: [%s, %s]", got[0].Company.Name, got[1].Company.Name)
		}
	})
}

func TestMatchByName(t *testing.T) {
	companies := []*domain.Company{
		company("MOLDASIG S.A.", false),
		company("ACORD GRUP S.A.", false),
	}

	tests := []struct {
		name   string
		lookup string
		want   string
	}{
		{name: "exact match", lookup: "ACORD GRUP S.A.", want: "ACORD GRUP S.A."},
		{name: "case sensitive", lookup: "acord grup s.a.", want: ""},
		{name: "no counterpart", lookup: "GONE S.A.", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchByName(companies, tt.lookup)
			if tt.want == "" {
				if got != nil {
					t.Errorf("MatchByName(%q) = %s, want nil", tt.lookup, got.Name)
				}
				return
			}
			if got == nil || got.Name != tt.want {
				t.Errorf("MatchByName(%q) = %v, want %s", tt.lookup, got, tt.want)
			}
		})
	}
}
