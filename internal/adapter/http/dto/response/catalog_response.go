package response

import (
	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/domain/money"
)

type VehicleResponse struct {
	ID        string      `json:"id"`
	Brand     string      `json:"brand"`
	Model     string      `json:"model"`
	BasePrice money.Money `json:"base_price" swaggertype:"number"`
}

type VariationResponse struct {
	ID                   string `json:"id"`
	VehicleID            string `json:"vehicle_id"`
	EngineDisplacementCC int    `json:"engine_displacement_cc"`
	RegistrationMonth    int    `json:"registration_month"`
	RegistrationYear     int    `json:"registration_year"`
	FuelSystemIt         string `json:"fuel_system_it"`
	FuelSystemEn         string `json:"fuel_system_en"`
}

// OptionResponse carries a null price for options listed without one.
type OptionResponse struct {
	ID            string       `json:"id"`
	NameIt        string       `json:"name_it"`
	NameEn        string       `json:"name_en"`
	VehicleTypeIt string       `json:"vehicle_type_it"`
	VehicleTypeEn string       `json:"vehicle_type_en"`
	Price         *money.Money `json:"price" swaggertype:"number"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{ID: v.ID, Brand: v.Brand, Model: v.Model, BasePrice: v.BasePrice}
}

func FromVehicles(vs []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVehicle(v))
	}
	return out
}

func FromVariation(v entities.VehicleVariation) VariationResponse {
	return VariationResponse{
		ID:                   v.ID,
		VehicleID:            v.VehicleID,
		EngineDisplacementCC: v.EngineDisplacementCC,
		RegistrationMonth:    v.RegistrationMonth,
		RegistrationYear:     v.RegistrationYear,
		FuelSystemIt:         v.FuelSystemIt,
		FuelSystemEn:         v.FuelSystemEn,
	}
}

func FromVariations(vs []entities.VehicleVariation) []VariationResponse {
	out := make([]VariationResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVariation(v))
	}
	return out
}

func FromOption(o entities.Option) OptionResponse {
	return OptionResponse{
		ID:            o.ID,
		NameIt:        o.NameIt,
		NameEn:        o.NameEn,
		VehicleTypeIt: o.VehicleTypeIt,
		VehicleTypeEn: o.VehicleTypeEn,
		Price:         o.Price,
	}
}

func FromOptions(opts []entities.Option) []OptionResponse {
	out := make([]OptionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, FromOption(o))
	}
	return out
}

func (r VehicleResponse) toEntity() entities.Vehicle {
	return entities.Vehicle{ID: r.ID, Brand: r.Brand, Model: r.Model, BasePrice: r.BasePrice}
}

func (r VariationResponse) toEntity() entities.VehicleVariation {
	return entities.VehicleVariation(r)
}

func (r OptionResponse) toEntity() entities.Option {
	return entities.Option(r)
}
