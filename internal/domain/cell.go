package domain

import "fmt"

type VehicleCode string

const (
	VehicleA1 VehicleCode = "A1"
	VehicleA2 VehicleCode = "A2"
	VehicleA3 VehicleCode = "A3"
	VehicleA4 VehicleCode = "A4"
	VehicleA5 VehicleCode = "A5"
	VehicleA6 VehicleCode = "A6"
	VehicleA7 VehicleCode = "A7" // taxi, corporate policyholders only
	VehicleA8 VehicleCode = "A8" // electric
	VehicleB1 VehicleCode = "B1"
	VehicleB2 VehicleCode = "B2"
	VehicleB3 VehicleCode = "B3"
	VehicleB4 VehicleCode = "B4" // trolleybus, corporate policyholders only
	VehicleC1 VehicleCode = "C1"
	VehicleC2 VehicleCode = "C2"
	VehicleC3 VehicleCode = "C3"
	VehicleD1 VehicleCode = "D1"
	VehicleD2 VehicleCode = "D2"
	VehicleD3 VehicleCode = "D3"
	VehicleE1 VehicleCode = "E1"
	VehicleE2 VehicleCode = "E2"
)

type TerritoryCode string

const (
	TerritoryCH TerritoryCode = "CH" // capital region
	TerritoryAL TerritoryCode = "AL" // rest of the country
)

type PersonCategory string

const (
	PersonPFYoungNovice PersonCategory = "PF_AGE_LT23_EXP_LT2"
	PersonPFYoung       PersonCategory = "PF_AGE_LT23_EXP_GE2"
	PersonPFNovice      PersonCategory = "PF_AGE_GE23_EXP_LT2"
	PersonPF            PersonCategory = "PF_AGE_GE23_EXP_GE2"
	PersonPJ            PersonCategory = "PJ" // legal entity
)

// CellID builds the composite cell key, e.g. "A1_CH_PF_AGE_LT23_EXP_LT2".
func CellID(v VehicleCode, t TerritoryCode, p PersonCategory) string {
	return fmt.Sprintf("%s_%s_%s", v, t, p)
}

// Classification is the canonical slot a raw purchase maps onto. The
// Defaulted flags mark soft fallbacks (unclassifiable vehicle, missing
// age/experience) so data-quality issues stay visible to operators.
type Classification struct {
	Vehicle          VehicleCode    `json:"vehicle_code"`
	Territory        TerritoryCode  `json:"territory_code"`
	Person           PersonCategory `json:"person_category"`
	VehicleDefaulted bool           `json:"vehicle_defaulted,omitempty"`
	PersonDefaulted  bool           `json:"person_defaulted,omitempty"`
}

func (c Classification) CellID() string {
	return CellID(c.Vehicle, c.Territory, c.Person)
}
