// Package taxonomy holds the canonical RCA cell taxonomy: vehicle classes,
// territories and person categories, plus the rule restricting taxi and
// trolleybus classes to corporate policyholders. The taxonomy is an
// immutable value constructed once at startup and passed to the classifier
// and resolver explicitly.
package taxonomy

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/pavelnovac/rcahub/internal/domain"
)

type Vehicle struct {
	ID            domain.VehicleCode `json:"vehicle_id"`
	Group         string             `json:"group"`
	GroupLabel    string             `json:"group_label"`
	Description   string             `json:"description"`
	CorporateOnly bool               `json:"corporate_only,omitempty"`
	EngineCCMin   *int               `json:"engine_cc_min,omitempty"`
	EngineCCMax   *int               `json:"engine_cc_max,omitempty"`
	SeatsMin      *int               `json:"seats_min,omitempty"`
	SeatsMax      *int               `json:"seats_max,omitempty"`
	PowerCPMin    *int               `json:"power_cp_min,omitempty"`
	PowerCPMax    *int               `json:"power_cp_max,omitempty"`
	MassKgMin     *int               `json:"mass_kg_min,omitempty"`
	MassKgMax     *int               `json:"mass_kg_max,omitempty"`
}

type Territory struct {
	ID    domain.TerritoryCode `json:"territory_id"`
	Label string               `json:"label"`
}

type PersonCategoryInfo struct {
	ID          domain.PersonCategory `json:"person_category_id"`
	PersonType  string                `json:"person_type"` // "fizica" or "juridica"
	Description string                `json:"description"`
}

type document struct {
	Vehicles         []Vehicle            `json:"vehicles"`
	Territories      []Territory          `json:"territories"`
	PersonCategories []PersonCategoryInfo `json:"person_categories"`
}

type Taxonomy struct {
	vehicles         []Vehicle
	territories      []Territory
	personCategories []PersonCategoryInfo
	vehicleByID      map[domain.VehicleCode]*Vehicle
	validCells       map[string]struct{}
	cells            []string
}

// Load reads a taxonomy document. An unreadable or empty document is a
// fatal configuration error; there is no partial taxonomy.
func Load(r io.Reader) (*Taxonomy, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy document: %w", err)
	}

	var doc document
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode taxonomy document: %w", err)
	}

	return build(doc)
}

func LoadFile(path string) (*Taxonomy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open taxonomy document: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func build(doc document) (*Taxonomy, error) {
	if len(doc.Vehicles) == 0 || len(doc.Territories) == 0 || len(doc.PersonCategories) == 0 {
		return nil, fmt.Errorf("incomplete taxonomy: %d vehicles, %d territories, %d person categories",
			len(doc.Vehicles), len(doc.Territories), len(doc.PersonCategories))
	}

	t := &Taxonomy{
		vehicles:         doc.Vehicles,
		territories:      doc.Territories,
		personCategories: doc.PersonCategories,
		vehicleByID:      make(map[domain.VehicleCode]*Vehicle, len(doc.Vehicles)),
		validCells:       make(map[string]struct{}),
	}

	for i := range t.vehicles {
		v := &t.vehicles[i]
		if _, ok := t.vehicleByID[v.ID]; ok {
			return nil, fmt.Errorf("duplicate vehicle code %s", v.ID)
		}
		t.vehicleByID[v.ID] = v

		for _, terr := range t.territories {
			for _, pc := range t.personCategories {
				if v.CorporateOnly && pc.PersonType != "juridica" {
					continue
				}
				cell := domain.CellID(v.ID, terr.ID, pc.ID)
				t.validCells[cell] = struct{}{}
				t.cells = append(t.cells, cell)
			}
		}
	}

	return t, nil
}

func (t *Taxonomy) Vehicles() []Vehicle { return t.vehicles }

func (t *Taxonomy) Territories() []Territory { return t.territories }

func (t *Taxonomy) PersonCategories() []PersonCategoryInfo { return t.personCategories }

// Cells enumerates every valid cell id in taxonomy order.
func (t *Taxonomy) Cells() []string {
	return t.cells
}

// Valid reports whether cellID names an enumerated (vehicle, territory,
// person-category) combination.
func (t *Taxonomy) Valid(cellID string) bool {
	_, ok := t.validCells[cellID]
	return ok
}

// Vehicle returns the vehicle entry for code, or nil when unknown.
func (t *Taxonomy) Vehicle(code domain.VehicleCode) *Vehicle {
	return t.vehicleByID[code]
}

// CorporateOnly reports whether the vehicle class pairs only with legal
// entities (taxi A7 and trolleybus B4 in the regulated set).
func (t *Taxonomy) CorporateOnly(code domain.VehicleCode) bool {
	v := t.vehicleByID[code]
	return v != nil && v.CorporateOnly
}
