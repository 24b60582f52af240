package entities

import "vehicle_quotation/internal/domain/money"

// Vehicle is a catalog model. Quotations reference it, they never own it.
//
// Storage model (DynamoDB):
//   - PK: id
type Vehicle struct {
	ID        string      `json:"id"`
	Brand     string      `json:"brand"`
	Model     string      `json:"model"`
	BasePrice money.Money `json:"base_price"`
}

// VehicleVariation is a trim of a vehicle (engine size, registration date, fuel system).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (vehicle_id-index): vehicle_id
type VehicleVariation struct {
	ID                   string `json:"id"`
	VehicleID            string `json:"vehicle_id"`
	EngineDisplacementCC int    `json:"engine_displacement_cc"`
	RegistrationMonth    int    `json:"registration_month"`
	RegistrationYear     int    `json:"registration_year"`
	FuelSystemIt         string `json:"fuel_system_it"`
	FuelSystemEn         string `json:"fuel_system_en"`
}
