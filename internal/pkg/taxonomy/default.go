package taxonomy

import "github.com/pavelnovac/rcahub/internal/domain"

func intp(v int) *int { return &v }

// Default returns the regulated RCA taxonomy. Deployments normally load
// the same data from a taxonomy document; the built-in copy keeps the
// engine usable without one.
func Default() *Taxonomy {
	t, err := build(document{
		Vehicles: []Vehicle{
			{ID: domain.VehicleA1, Group: "A", GroupLabel: "Autoturisme", Description: "Autoturisme cu capacitatea motorului pina la 1200 cm3", EngineCCMin: intp(0), EngineCCMax: intp(1200)},
			{ID: domain.VehicleA2, Group: "A", GroupLabel: "Autoturisme", Description: "Autoturisme cu capacitatea motorului intre 1201-1600 cm3", EngineCCMin: intp(1201), EngineCCMax: intp(1600)},
			{ID: domain.VehicleA3, Group: "A", GroupLabel: "Autoturisme", Description: "Autoturisme cu capacitatea motorului intre 1601-2000 cm3", EngineCCMin: intp(1601), EngineCCMax: intp(2000)},
			{ID: domain.VehicleA4, Group: "A", GroupLabel: "Autoturisme", Description: "Autoturisme cu capacitatea motorului intre 2001-2400 cm3", EngineCCMin: intp(2001), EngineCCMax: intp(2400)},
			{ID: domain.VehicleA5, Group: "A", GroupLabel: "Autoturisme", Description: "Autoturisme cu capacitatea motorului intre 2401-3000 cm3", EngineCCMin: intp(2401), EngineCCMax: intp(3000)},
			{ID: domain.VehicleA6, Group: "A", GroupLabel: "Autoturisme", Description: "Autoturisme cu capacitatea motorului peste 3000 cm3", EngineCCMin: intp(3001)},
			{ID: domain.VehicleA7, Group: "A", GroupLabel: "Autoturisme", Description: "Autoturisme utilizate in regim de taxi", CorporateOnly: true},
			{ID: domain.VehicleA8, Group: "A", GroupLabel: "Autoturisme", Description: "Autoturisme cu motor electric"},
			{ID: domain.VehicleB1, Group: "B", GroupLabel: "Transport de pasageri", Description: "Microbuze cu 10-17 locuri", SeatsMin: intp(10), SeatsMax: intp(17)},
			{ID: domain.VehicleB2, Group: "B", GroupLabel: "Transport de pasageri", Description: "Autobuze cu 18-30 locuri", SeatsMin: intp(18), SeatsMax: intp(30)},
			{ID: domain.VehicleB3, Group: "B", GroupLabel: "Transport de pasageri", Description: "Autobuze cu peste 30 locuri", SeatsMin: intp(31)},
			{ID: domain.VehicleB4, Group: "B", GroupLabel: "Transport de pasageri", Description: "Troleibuze", CorporateOnly: true},
			{ID: domain.VehicleC1, Group: "C", GroupLabel: "Tractoare", Description: "Tractoare cu puterea motorului pina la 45 CP", PowerCPMin: intp(0), PowerCPMax: intp(45)},
			{ID: domain.VehicleC2, Group: "C", GroupLabel: "Tractoare", Description: "Tractoare cu puterea motorului intre 46-100 CP", PowerCPMin: intp(46), PowerCPMax: intp(100)},
			{ID: domain.VehicleC3, Group: "C", GroupLabel: "Tractoare", Description: "Tractoare cu puterea motorului peste 100 CP", PowerCPMin: intp(101)},
			{ID: domain.VehicleD1, Group: "D", GroupLabel: "Transport de marfuri", Description: "Autovehicule pentru transportul marfurilor cu masa pina la 3500 kg", MassKgMin: intp(0), MassKgMax: intp(3500)},
			{ID: domain.VehicleD2, Group: "D", GroupLabel: "Transport de marfuri", Description: "Autovehicule pentru transportul marfurilor cu masa intre 3501-12000 kg", MassKgMin: intp(3501), MassKgMax: intp(12000)},
			{ID: domain.VehicleD3, Group: "D", GroupLabel: "Transport de marfuri", Description: "Autovehicule pentru transportul marfurilor cu masa peste 12000 kg", MassKgMin: intp(12001)},
			{ID: domain.VehicleE1, Group: "E", GroupLabel: "Motociclete", Description: "Motociclete cu capacitatea motorului pina la 300 cm3", EngineCCMin: intp(0), EngineCCMax: intp(300)},
			{ID: domain.VehicleE2, Group: "E", GroupLabel: "Motociclete", Description: "Motociclete cu capacitatea motorului peste 300 cm3", EngineCCMin: intp(301)},
		},
		Territories: []Territory{
			{ID: domain.TerritoryCH, Label: "Chisinau, Balti si alte municipii"},
			{ID: domain.TerritoryAL, Label: "Alte localitati ale tarii"},
		},
		PersonCategories: []PersonCategoryInfo{
			{ID: domain.PersonPFYoungNovice, PersonType: "fizica", Description: "Persoana fizica, virsta sub 23 ani, experienta sub 2 ani"},
			{ID: domain.PersonPFYoung, PersonType: "fizica", Description: "Persoana fizica, virsta sub 23 ani, experienta peste 2 ani"},
			{ID: domain.PersonPFNovice, PersonType: "fizica", Description: "Persoana fizica, virsta peste 23 ani, experienta sub 2 ani"},
			{ID: domain.PersonPF, PersonType: "fizica", Description: "Persoana fizica, virsta peste 23 ani, experienta peste 2 ani"},
			{ID: domain.PersonPJ, PersonType: "juridica", Description: "Persoana juridica"},
		},
	})
	if err != nil {
		// the built-in table is static; a build failure is a programming error
		panic(err)
	}
	return t
}
