package entities

import "vehicle_quotation/internal/domain/money"

// Adjustment is one labeled pricing event. Negative amounts are discounts.
type Adjustment struct {
	Label  string      `json:"label"`
	Amount money.Money `json:"amount"`
}
