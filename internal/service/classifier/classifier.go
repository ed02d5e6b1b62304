// Package classifier maps raw purchase records onto canonical rate cells.
// Vehicle classification is a prioritized rule list evaluated in a fixed
// order; it never fails, it degrades to the most common class instead so a
// single malformed record cannot abort a batch.
package classifier

import (
	"strings"

	"github.com/pavelnovac/rcahub/internal/domain"
)

// vehicleAttrs is the normalized view of a purchase vehicle the rules
// match against. Subtype names arrive in both ASCII and diacritic
// spellings, so every name rule lists both variants.
type vehicleAttrs struct {
	typeID    int
	subtypeID int
	name      string
}

type vehicleRule struct {
	code  domain.VehicleCode
	match func(v vehicleAttrs) bool
}

func nameHas(substrings ...string) func(v vehicleAttrs) bool {
	return func(v vehicleAttrs) bool {
		for _, s := range substrings {
			if strings.Contains(v.name, s) {
				return true
			}
		}
		return false
	}
}

func nameHasAll(substrings ...string) func(v vehicleAttrs) bool {
	return func(v vehicleAttrs) bool {
		for _, s := range substrings {
			if !strings.Contains(v.name, s) {
				return false
			}
		}
		return true
	}
}

func subtypeIs(id int) func(v vehicleAttrs) bool {
	return func(v vehicleAttrs) bool { return v.subtypeID == id }
}

func typeIn(ids ...int) func(v vehicleAttrs) bool {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return func(v vehicleAttrs) bool {
		_, ok := set[v.typeID]
		return ok
	}
}

func and(preds ...func(v vehicleAttrs) bool) func(v vehicleAttrs) bool {
	return func(v vehicleAttrs) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Known numeric type ids disambiguate trucks, tractors and buses before
// any free-text matching, because their subtype names overlap with the
// passenger-car bands.
var (
	truckType   = typeIn(1048, 1, 15, 967, 962)
	tractorType = typeIn(997, 994, 998, 17)
	busType     = typeIn(1046)
)

// defaultVehicleRules returns the classification rule list in evaluation
// order: type-guarded weight/power bands, passenger-car engine bands, bus
// subtypes, motorcycle bands, then the plain subtype-id table.
func defaultVehicleRules() []vehicleRule {
	return []vehicleRule{
		// trucks by weight
		{domain.VehicleD1, and(truckType, nameHas("pina la 3500 kg", "până la 3500"))},
		{domain.VehicleD2, and(truckType, nameHas("3501-12000", "3501 - 12000"))},
		{domain.VehicleD3, and(truckType, nameHas("peste 12000", "over 12000"))},
		{domain.VehicleD1, and(truckType, subtypeIs(24))},
		{domain.VehicleD2, and(truckType, subtypeIs(25))},
		{domain.VehicleD3, and(truckType, subtypeIs(30))},

		// tractors by horsepower
		{domain.VehicleC1, and(tractorType, nameHas("pina la 45 cp", "până la 45"))},
		{domain.VehicleC2, and(tractorType, nameHasAll("46 cp", "100 cp"))},
		{domain.VehicleC3, and(tractorType, nameHas("peste 100 cp", "over 100"))},
		{domain.VehicleC1, and(tractorType, subtypeIs(13))},
		{domain.VehicleC2, and(tractorType, subtypeIs(14))},
		{domain.VehicleC3, and(tractorType, subtypeIs(15))},

		// passenger cars by engine capacity
		{domain.VehicleA1, nameHas("pina la 1200", "până la 1200")},
		{domain.VehicleA2, nameHas("1201-1600", "1201 - 1600")},
		{domain.VehicleA3, nameHas("1601-2000", "1601 - 2000")},
		{domain.VehicleA4, nameHas("2001-2400", "2001 - 2400")},
		{domain.VehicleA5, nameHas("2401-3000", "2401 - 3000")},
		{domain.VehicleA6, nameHas("peste 3000", "over 3000")},
		{domain.VehicleA8, nameHas("cu motor electric", "electric")},

		// buses by subtype, name as a last resort
		{domain.VehicleB1, and(busType, subtypeIs(9))},
		{domain.VehicleB2, and(busType, subtypeIs(10))},
		{domain.VehicleB3, and(busType, subtypeIs(11))},
		{domain.VehicleB4, and(busType, subtypeIs(22))},
		{domain.VehicleB2, and(busType, nameHas("18-30 persoane", "18 - 30"))},
		{domain.VehicleB4, and(busType, nameHas("troleibuz", "trolley"))},

		// motorcycles by engine capacity
		{domain.VehicleE1, nameHas("pina la 300 cm3", "până la 300")},
		{domain.VehicleE2, nameHas("peste 300 cm3", "over 300")},

		// subtype-id table, used when nothing above matched
		{domain.VehicleA1, subtypeIs(1)},
		{domain.VehicleA2, subtypeIs(2)},
		{domain.VehicleA3, subtypeIs(3)},
		{domain.VehicleA4, subtypeIs(4)},
		{domain.VehicleA5, subtypeIs(5)},
		{domain.VehicleA6, subtypeIs(6)},
		{domain.VehicleB1, subtypeIs(9)},
		{domain.VehicleB2, subtypeIs(10)},
		{domain.VehicleB3, subtypeIs(11)},
		{domain.VehicleC1, subtypeIs(13)},
		{domain.VehicleC2, subtypeIs(14)},
		{domain.VehicleC3, subtypeIs(15)},
		{domain.VehicleE1, subtypeIs(20)},
		{domain.VehicleE2, subtypeIs(21)},
		{domain.VehicleB4, subtypeIs(22)},
		{domain.VehicleA8, subtypeIs(23)},
		{domain.VehicleD1, subtypeIs(24)},
		{domain.VehicleD2, subtypeIs(25)},
		{domain.VehicleD3, subtypeIs(30)},
	}
}

// DefaultVehicleCode is what an unclassifiable vehicle falls back to. A2
// is by far the most common class in collected purchase data.
const DefaultVehicleCode = domain.VehicleA2

type Service struct {
	rules []vehicleRule
}

func NewService() *Service {
	return &Service{rules: defaultVehicleRules()}
}

// Classify maps a raw purchase onto a rate cell. It is pure and never
// fails; unclassifiable vehicles and missing person attributes fall back
// to defaults flagged on the returned classification.
func (s *Service) Classify(p *domain.Purchase) domain.Classification {
	vehicle, vehicleDefaulted := s.classifyVehicle(p.Vehicle)
	person, personDefaulted := classifyPerson(p.Person)

	return domain.Classification{
		Vehicle:          vehicle,
		Territory:        classifyTerritory(p.Territory),
		Person:           person,
		VehicleDefaulted: vehicleDefaulted,
		PersonDefaulted:  personDefaulted,
	}
}

func (s *Service) classifyVehicle(v domain.PurchaseVehicle) (domain.VehicleCode, bool) {
	attrs := vehicleAttrs{
		typeID:    v.TypeID,
		subtypeID: v.Subtype.ID,
		name:      strings.ToLower(v.Subtype.Name),
	}

	for _, r := range s.rules {
		if r.match(attrs) {
			return r.code, false
		}
	}

	return DefaultVehicleCode, true
}

func classifyTerritory(t domain.PurchaseTerritory) domain.TerritoryCode {
	if t.RectificationCoefficient > 1 {
		return domain.TerritoryCH
	}
	return domain.TerritoryAL
}

// classifyPerson buckets individuals by age and driving experience.
// Missing attributes read as zero, which lands in the youngest and least
// experienced bucket; the defaulted flag keeps that visible.
func classifyPerson(p domain.PurchasePerson) (domain.PersonCategory, bool) {
	if p.IsJuridical {
		return domain.PersonPJ, false
	}

	defaulted := p.Age == 0

	young := p.Age < 23
	novice := p.DrivingExperience < 2
	switch {
	case young && novice:
		return domain.PersonPFYoungNovice, defaulted
	case young:
		return domain.PersonPFYoung, defaulted
	case novice:
		return domain.PersonPFNovice, defaulted
	default:
		return domain.PersonPF, defaulted
	}
}
