package domain

// GreenCardPurchase is one raw Green Card insurance purchase as supplied
// by the collection pipeline. The premium is either already in MDL or in
// EUR plus the exchange rate of the purchase day.
type GreenCardPurchase struct {
	ContractNumber string               `json:"contractNumber"`
	PersonName     string               `json:"personName,omitempty"`
	PaidPriceMDL   float64              `json:"totalPrimeSumLei"`
	PaidPriceEUR   float64              `json:"totalPrimeSum,omitempty"`
	ExchangeRate   float64              `json:"exchangeRate,omitempty"`
	Area           GreenCardArea        `json:"greenCardArea"`
	VehicleType    GreenCardVehicleType `json:"greenCardVehiclesType"`
	Term           GreenCardTerm        `json:"termInsuranceCoefficient"`
	Vehicle        PurchaseVehicle      `json:"vehicle"`
}

// GreenCardArea names the coverage zone: 1 (Ucraina si Belarus) or
// 3 (all Green Card system countries).
type GreenCardArea struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// GreenCardVehicleType carries the Green Card category code directly:
// A, B, C1, C2, E1, E2 or F.
type GreenCardVehicleType struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

type GreenCardTerm struct {
	Period           string `json:"termInsurancePeriod,omitempty"`
	DaysMonthsNumber int    `json:"daysMonthsNumber,omitempty"`
	IsDays           bool   `json:"isDays,omitempty"`
}
