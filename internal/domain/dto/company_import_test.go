package dto

import (
	"testing"

	"github.com/pavelnovac/rcahub/internal/domain"
)

func TestImportCompanyNormalize(t *testing.T) {
	c := ImportCompany{
		Name: "  MOLDASIG S.A. ",
		Premiums: []ImportPremium{
			{CellID: " A1_CH_PJ ", Value: 100},
			{CellID: "A2_CH_PJ", Value: 200},
			{CellID: "A1_CH_PJ", Value: 150},
		},
	}

	got := c.Normalize()

	if got.Name != "MOLDASIG S.A." {
		t.Errorf("Name = %q, want trimmed", got.Name)
	}
	if len(got.Premiums) != 2 {
		t.Fatalf("len(Premiums) = %d, want 2", len(got.Premiums))
	}
	// later duplicate wins, original position kept
	if got.Premiums[0].CellID != "A1_CH_PJ" || got.Premiums[0].Value != 150 {
		t.Errorf("Premiums[0] = %+v, want A1_CH_PJ at 150", got.Premiums[0])
	}
	if got.Premiums[1].CellID != "A2_CH_PJ" {
		t.Errorf("Premiums[1] = %+v, want A2_CH_PJ", got.Premiums[1])
	}
}

func TestImportCompanyDomain(t *testing.T) {
	c := ImportCompany{
		Name:        "BNM",
		IsReference: true,
		Premiums:    []ImportPremium{{CellID: "A1_CH_PJ", Value: 100}},
	}

	got := c.Domain(domain.Year(2026))

	if got.Year != 2026 || got.Name != "BNM" || !got.IsReference {
		t.Errorf("Domain() = %+v", got)
	}
	if got.ID != "" {
		t.Errorf("ID = %q, want empty until the store assigns one", got.ID)
	}
	if len(got.Premiums) != 1 || got.Premiums[0].Value != 100 {
		t.Errorf("Premiums = %+v", got.Premiums)
	}
}
