package entities

import "vehicle_quotation/internal/domain/money"

// Option is an add-on (optional) that can be attached to a quotation.
// A nil Price means the option is listed but not priced.
type Option struct {
	ID            string       `json:"id"`
	NameIt        string       `json:"name_it"`
	NameEn        string       `json:"name_en"`
	VehicleTypeIt string       `json:"vehicle_type_it"`
	VehicleTypeEn string       `json:"vehicle_type_en"`
	Price         *money.Money `json:"price"`
}
