package entities

import (
	"time"

	"vehicle_quotation/internal/domain/money"
)

// Quotation is the hydrated quotation aggregate: every reference is resolved.
//
// FinalPrice is derived by the pricing pipeline and never set from caller input.
// WelcomeApplied marks the quotation that consumed its customer's welcome discount,
// so recomputations after the customer flag was cleared keep the same price.
type Quotation struct {
	ID             string
	FinalPrice     money.Money
	Vehicle        *Vehicle
	Variation      *VehicleVariation
	Options        []Option
	Customer       *Customer
	WelcomeApplied bool
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// WelcomeEligible reports whether the welcome discount applies to this quotation.
func (q Quotation) WelcomeEligible() bool {
	if q.WelcomeApplied {
		return true
	}
	return q.Customer != nil && q.Customer.FirstQuotation
}

// QuotationRecord is the persisted shape of a quotation: references are stored by ID.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_email-index): customer_email
//
// Version increases by one on every successful update.
type QuotationRecord struct {
	ID             string
	FinalPrice     money.Money
	VehicleID      string
	VariationID    string
	OptionIDs      []string
	CustomerID     string
	CustomerEmail  string
	WelcomeApplied bool
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Record flattens the aggregate into its persisted shape.
func (q Quotation) Record() QuotationRecord {
	r := QuotationRecord{
		ID:             q.ID,
		FinalPrice:     q.FinalPrice,
		WelcomeApplied: q.WelcomeApplied,
		Version:        q.Version,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
	if q.Vehicle != nil {
		r.VehicleID = q.Vehicle.ID
	}
	if q.Variation != nil {
		r.VariationID = q.Variation.ID
	}
	if q.Customer != nil {
		r.CustomerID = q.Customer.ID
		r.CustomerEmail = q.Customer.Email
	}
	if len(q.Options) > 0 {
		r.OptionIDs = make([]string, 0, len(q.Options))
		for _, o := range q.Options {
			r.OptionIDs = append(r.OptionIDs, o.ID)
		}
	}
	return r
}

// PricedQuotation pairs a quotation with the adjustments of its latest computation.
// The adjustment log is never persisted; it is rebuilt on every read.
type PricedQuotation struct {
	Quotation   Quotation
	Adjustments []Adjustment
}
