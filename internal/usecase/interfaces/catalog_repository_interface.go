package interfaces

import (
	"context"
	"vehicle_quotation/internal/domain/entities"
)

// ICatalogRepository abstracts the vehicle catalog: vehicles, their variations and the
// add-on options. Single-item lookups return a zero value (ID == "") when absent.
//
// Put* operations are used by the seeding tool; the API only reads the catalog.

type ICatalogRepository interface {
	GetVehicle(ctx context.Context, id string) (entities.Vehicle, error)
	GetVariation(ctx context.Context, id string) (entities.VehicleVariation, error)
	GetOption(ctx context.Context, id string) (entities.Option, error)
	ListVehicles(ctx context.Context) ([]entities.Vehicle, error)
	ListVariationsByVehicle(ctx context.Context, vehicleID string) ([]entities.VehicleVariation, error)
	ListOptions(ctx context.Context) ([]entities.Option, error)
	PutVehicle(ctx context.Context, v entities.Vehicle) error
	PutVariation(ctx context.Context, v entities.VehicleVariation) error
	PutOption(ctx context.Context, o entities.Option) error
}
