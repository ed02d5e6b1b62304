package dto

import "github.com/pavelnovac/rcahub/internal/domain"

// SavingsReportRequest carries the raw purchase records to price against a
// stored year. Records are passed through as collected; the calculator
// handles malformed ones per record.
type SavingsReportRequest struct {
	Purchases []*domain.Purchase `json:"purchases" validate:"required,min=1"`
}

type GreenCardReportRequest struct {
	Purchases []*domain.GreenCardPurchase `json:"purchases" validate:"required,min=1"`
}
