package response

import (
	"time"

	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/domain/money"
)

type AdjustmentResponse struct {
	Label  string      `json:"label"`
	Amount money.Money `json:"amount" swaggertype:"number"`
}

type CustomerResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	FirstQuotation bool   `json:"first_quotation"`
}

// QuotationResponse is the transfer view of a priced quotation. Adjustments belong to
// the computation that produced the response and are not stored.
type QuotationResponse struct {
	ID             string               `json:"id"`
	FinalPrice     money.Money          `json:"final_price" swaggertype:"number"`
	Vehicle        *VehicleResponse     `json:"vehicle,omitempty"`
	Variation      *VariationResponse   `json:"variation,omitempty"`
	Options        []OptionResponse     `json:"options"`
	Customer       *CustomerResponse    `json:"customer,omitempty"`
	UserName       string               `json:"user_name,omitempty"`
	Adjustments    []AdjustmentResponse `json:"adjustments"`
	WelcomeApplied bool                 `json:"welcome_applied"`
	Version        int64                `json:"version"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func FromPricedQuotation(p entities.PricedQuotation) QuotationResponse {
	q := p.Quotation
	out := QuotationResponse{
		ID:             q.ID,
		FinalPrice:     q.FinalPrice,
		Options:        FromOptions(q.Options),
		Adjustments:    make([]AdjustmentResponse, 0, len(p.Adjustments)),
		WelcomeApplied: q.WelcomeApplied,
		Version:        q.Version,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
	if q.Vehicle != nil {
		v := FromVehicle(*q.Vehicle)
		out.Vehicle = &v
	}
	if q.Variation != nil {
		v := FromVariation(*q.Variation)
		out.Variation = &v
	}
	if c := q.Customer; c != nil {
		out.Customer = &CustomerResponse{
			ID:             c.ID,
			Name:           c.Name,
			Surname:        c.Surname,
			Email:          c.Email,
			Phone:          c.Phone,
			FirstQuotation: c.FirstQuotation,
		}
		out.UserName = c.FullName()
	}
	for _, a := range p.Adjustments {
		out.Adjustments = append(out.Adjustments, AdjustmentResponse{Label: a.Label, Amount: a.Amount})
	}
	return out
}

func FromPricedQuotations(ps []entities.PricedQuotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPricedQuotation(p))
	}
	return out
}

// ToQuotation rebuilds the aggregate from a transfer view. Adjustments are dropped;
// they are derived again whenever the quotation is priced.
func (r QuotationResponse) ToQuotation() entities.Quotation {
	q := entities.Quotation{
		ID:             r.ID,
		FinalPrice:     r.FinalPrice,
		WelcomeApplied: r.WelcomeApplied,
		Version:        r.Version,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.Vehicle != nil {
		v := r.Vehicle.toEntity()
		q.Vehicle = &v
	}
	if r.Variation != nil {
		v := r.Variation.toEntity()
		q.Variation = &v
	}
	if len(r.Options) > 0 {
		q.Options = make([]entities.Option, 0, len(r.Options))
		for _, o := range r.Options {
			q.Options = append(q.Options, o.toEntity())
		}
	}
	if c := r.Customer; c != nil {
		q.Customer = &entities.Customer{
			ID:             c.ID,
			Name:           c.Name,
			Surname:        c.Surname,
			Email:          c.Email,
			Phone:          c.Phone,
			FirstQuotation: c.FirstQuotation,
		}
	}
	return q
}
