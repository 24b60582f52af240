package request

import (
	"strings"

	"vehicle_quotation/internal/usecase"
)

// QuotationRequest is the body accepted by create and update.
//
// Every field is optional. On update an omitted field keeps the stored reference and
// option_ids, when present, replaces the whole option set.
type QuotationRequest struct {
	VehicleID       *string   `json:"vehicle_id" example:"v-1"`
	VariationID     *string   `json:"variation_id" example:"var-1"`
	OptionIDs       *[]string `json:"option_ids"`
	CustomerID      *string   `json:"customer_id"`
	CustomerEmail   *string   `json:"customer_email" binding:"omitempty,email,max=254" example:"mario.rossi@example.com"`
	CustomerName    *string   `json:"customer_name" binding:"omitempty,max=100" example:"Mario"`
	CustomerSurname *string   `json:"customer_surname" binding:"omitempty,max=100" example:"Rossi"`
	CustomerPhone   *string   `json:"customer_phone" binding:"omitempty,max=32"`
}

// ToInput converts the body into the use case input. Customer fields are grouped;
// the customer is absent when none of them carries a value.
func (r QuotationRequest) ToInput() usecase.QuotationInput {
	in := usecase.QuotationInput{
		VehicleID:   r.VehicleID,
		VariationID: r.VariationID,
		OptionIDs:   r.OptionIDs,
	}

	c := usecase.CustomerInput{
		ID:      trimmed(r.CustomerID),
		Email:   trimmed(r.CustomerEmail),
		Name:    trimmed(r.CustomerName),
		Surname: trimmed(r.CustomerSurname),
		Phone:   trimmed(r.CustomerPhone),
	}
	if c != (usecase.CustomerInput{}) {
		in.Customer = &c
	}
	return in
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
