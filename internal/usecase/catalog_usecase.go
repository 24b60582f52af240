package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"vehicle_quotation/internal/domain"
	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/infrastructure/logging"
	"vehicle_quotation/internal/usecase/interfaces"
)

// Catalog is a batch of catalog entries, as loaded by quotectl seed.
type Catalog struct {
	Vehicles   []entities.Vehicle          `json:"vehicles"`
	Variations []entities.VehicleVariation `json:"variations"`
	Options    []entities.Option           `json:"optionals"`
}

// SeedResult counts the entries written by Seed.
type SeedResult struct {
	Vehicles   int
	Variations int
	Options    int
}

// ICatalogUseCase exposes the read side of the catalog and the seeding operation.

type ICatalogUseCase interface {
	ListOptions(ctx context.Context) ([]entities.Option, error)
	ListVehicles(ctx context.Context) ([]entities.Vehicle, error)
	ListVariations(ctx context.Context, vehicleID string) ([]entities.VehicleVariation, error)
	Seed(ctx context.Context, c Catalog) (SeedResult, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
	log  *zap.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, log *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, log: logging.OrNop(log).With(zap.String("component", "catalog.usecase"))}
}

func (u *CatalogUseCase) ListOptions(ctx context.Context) ([]entities.Option, error) {
	return u.repo.ListOptions(ctx)
}

func (u *CatalogUseCase) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.ListVehicles(ctx)
}

func (u *CatalogUseCase) ListVariations(ctx context.Context, vehicleID string) ([]entities.VehicleVariation, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return nil, domain.NewValidationError("vehicle_id", "must not be blank")
	}

	v, err := u.repo.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if v.ID == "" {
		return nil, domain.NewNotFoundError("vehicle", vehicleID)
	}
	return u.repo.ListVariationsByVehicle(ctx, vehicleID)
}

// Seed validates the whole batch before writing any entry. Writes are upserts, so
// seeding twice is harmless.
func (u *CatalogUseCase) Seed(ctx context.Context, c Catalog) (SeedResult, error) {
	if err := validateCatalog(c); err != nil {
		return SeedResult{}, err
	}

	var res SeedResult
	for _, v := range c.Vehicles {
		if err := u.repo.PutVehicle(ctx, v); err != nil {
			return res, err
		}
		res.Vehicles++
	}
	for _, v := range c.Variations {
		if err := u.repo.PutVariation(ctx, v); err != nil {
			return res, err
		}
		res.Variations++
	}
	for _, o := range c.Options {
		if err := u.repo.PutOption(ctx, o); err != nil {
			return res, err
		}
		res.Options++
	}

	u.log.Info("catalog seeded",
		zap.Int("vehicles", res.Vehicles),
		zap.Int("variations", res.Variations),
		zap.Int("options", res.Options))
	return res, nil
}

func validateCatalog(c Catalog) error {
	for _, v := range c.Vehicles {
		if strings.TrimSpace(v.ID) == "" {
			return domain.NewValidationError("vehicles.id", "must not be blank")
		}
		if v.BasePrice.IsNegative() {
			return domain.NewValidationError("vehicles.base_price", "must not be negative")
		}
	}
	for _, v := range c.Variations {
		if strings.TrimSpace(v.ID) == "" {
			return domain.NewValidationError("variations.id", "must not be blank")
		}
		if strings.TrimSpace(v.VehicleID) == "" {
			return domain.NewValidationError("variations.vehicle_id", "must not be blank")
		}
		if v.RegistrationMonth < 0 || v.RegistrationMonth > 12 {
			return domain.NewValidationError("variations.registration_month", "must be between 1 and 12")
		}
	}
	for _, o := range c.Options {
		if strings.TrimSpace(o.ID) == "" {
			return domain.NewValidationError("optionals.id", "must not be blank")
		}
		if o.Price != nil && o.Price.IsNegative() {
			return domain.NewValidationError("optionals.price", "must not be negative")
		}
	}
	return nil
}
