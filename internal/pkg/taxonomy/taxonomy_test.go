package taxonomy

import (
	"strings"
	"testing"

	"github.com/pavelnovac/rcahub/internal/domain"
)

func TestDefaultCellEnumeration(t *testing.T) {
	tax := Default()

	// 18 unrestricted vehicles x 2 territories x 5 person categories,
	// plus A7 and B4 paired with PJ only.
	if got, want := len(tax.Cells()), 184; got != want {
		t.Fatalf("len(Cells()) = %d, want %d", got, want)
	}

	for _, cell := range tax.Cells() {
		if !tax.Valid(cell) {
			t.Errorf("enumerated cell %q does not validate", cell)
		}
	}

	// both directions: every combination is valid exactly when the
	// corporate-only restriction allows it
	for _, v := range tax.Vehicles() {
		for _, terr := range tax.Territories() {
			for _, pc := range tax.PersonCategories() {
				cell := domain.CellID(v.ID, terr.ID, pc.ID)
				want := !v.CorporateOnly || pc.PersonType == "juridica"
				if got := tax.Valid(cell); got != want {
					t.Errorf("Valid(%q) = %v, want %v", cell, got, want)
				}
			}
		}
	}
}

func TestCorporateOnlyPairsOnlyWithPJ(t *testing.T) {
	tax := Default()

	for _, cell := range tax.Cells() {
		if strings.HasPrefix(cell, "A7_") || strings.HasPrefix(cell, "B4_") {
			if !strings.HasSuffix(cell, "_"+string(domain.PersonPJ)) {
				t.Errorf("restricted cell %q paired with a non-corporate category", cell)
			}
		}
	}

	if !tax.CorporateOnly(domain.VehicleA7) {
		t.Error("CorporateOnly(A7) = false, want true")
	}
	if !tax.CorporateOnly(domain.VehicleB4) {
		t.Error("CorporateOnly(B4) = false, want true")
	}
	if tax.CorporateOnly(domain.VehicleA1) {
		t.Error("CorporateOnly(A1) = true, want false")
	}
}

func TestLoad(t *testing.T) {
	doc := `{
		"vehicles": [
			{"vehicle_id": "A1", "group": "A", "group_label": "Autoturisme", "description": "pina la 1200"},
			{"vehicle_id": "A7", "group": "A", "group_label": "Autoturisme", "description": "taxi", "corporate_only": true}
		],
		"territories": [
			{"territory_id": "CH", "label": "Chisinau"},
			{"territory_id": "AL", "label": "Alte localitati"}
		],
		"person_categories": [
			{"person_category_id": "PF_AGE_GE23_EXP_GE2", "person_type": "fizica", "description": "pf"},
			{"person_category_id": "PJ", "person_type": "juridica", "description": "pj"}
		]
	}`

	tax, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// A1 pairs with everything, A7 only with PJ
	if got, want := len(tax.Cells()), 6; got != want {
		t.Fatalf("len(Cells()) = %d, want %d", got, want)
	}
	if !tax.Valid("A1_CH_PF_AGE_GE23_EXP_GE2") {
		t.Error("expected A1_CH_PF_AGE_GE23_EXP_GE2 to be valid")
	}
	if tax.Valid("A7_CH_PF_AGE_GE23_EXP_GE2") {
		t.Error("expected A7_CH_PF_AGE_GE23_EXP_GE2 to be invalid")
	}
	if !tax.Valid("A7_AL_PJ") {
		t.Error("expected A7_AL_PJ to be valid")
	}
}

func TestBuildRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  document
	}{
		{
			name: "empty document",
			doc:  document{},
		},
		{
			name: "missing territories",
			doc: document{
				Vehicles:         []Vehicle{{ID: domain.VehicleA1}},
				PersonCategories: []PersonCategoryInfo{{ID: domain.PersonPJ, PersonType: "juridica"}},
			},
		},
		{
			name: "duplicate vehicle code",
			doc: document{
				Vehicles:         []Vehicle{{ID: domain.VehicleA1}, {ID: domain.VehicleA1}},
				Territories:      []Territory{{ID: domain.TerritoryCH}},
				PersonCategories: []PersonCategoryInfo{{ID: domain.PersonPJ, PersonType: "juridica"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := build(tt.doc); err == nil {
				t.Error("build() error = nil, want error")
			}
		})
	}
}
