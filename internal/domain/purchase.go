package domain

// Purchase is one raw insurance-purchase record as supplied by the
// collection pipeline. Field names mirror the insurer API payloads; only
// the attributes the classifier and savings calculator consult are kept.
// BonusMalusClass is a pointer so an absent field stays distinguishable
// from the legitimate class 0, the worst malus.
type Purchase struct {
	ContractNumber  string            `json:"contractNumber"`
	PersonName      string            `json:"personName,omitempty"`
	PaidPrice       float64           `json:"totalPrimeSum"`
	BonusMalusClass *int              `json:"bonusMalusClass"`
	Vehicle         PurchaseVehicle   `json:"vehicle"`
	Person          PurchasePerson    `json:"person"`
	Territory       PurchaseTerritory `json:"territory"`
}

type PurchaseVehicle struct {
	TypeID      int            `json:"vehicleTypeId"`
	Subtype     VehicleSubtype `json:"vehicleSubtype"`
	MarkName    string         `json:"markName,omitempty"`
	Model       string         `json:"model,omitempty"`
	Registration string        `json:"registrationNumber,omitempty"`
}

type VehicleSubtype struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type PurchasePerson struct {
	IsJuridical       bool `json:"isJuridical"`
	Age               int  `json:"personAge"`
	DrivingExperience int  `json:"drivingExperience"`
}

type PurchaseTerritory struct {
	Name                     string  `json:"name,omitempty"`
	RectificationCoefficient float64 `json:"territoryRectificationCoefficient"`
}
