package usecase

import (
	"context"
	"strings"

	"vehicle_quotation/internal/domain"
	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/usecase/interfaces"
)

// refLoader resolves quotation references for the duration of one call. Lookups are
// memoised so listing many quotations reads each catalog entry once.
type refLoader struct {
	catalog   interfaces.ICatalogRepository
	customers interfaces.ICustomerRepository

	vehicles   map[string]entities.Vehicle
	variations map[string]entities.VehicleVariation
	options    map[string]entities.Option
	customerBy map[string]entities.Customer
}

func newRefLoader(catalog interfaces.ICatalogRepository, customers interfaces.ICustomerRepository) *refLoader {
	return &refLoader{
		catalog:    catalog,
		customers:  customers,
		vehicles:   map[string]entities.Vehicle{},
		variations: map[string]entities.VehicleVariation{},
		options:    map[string]entities.Option{},
		customerBy: map[string]entities.Customer{},
	}
}

// applyCatalogRefs resolves the vehicle, variation and option ids named by in onto q.
// Blank ids are treated as absent; a blank entry inside the option list is rejected.
func (l *refLoader) applyCatalogRefs(ctx context.Context, q *entities.Quotation, in QuotationInput) error {
	if in.VehicleID != nil {
		if id := strings.TrimSpace(*in.VehicleID); id != "" {
			v, err := l.vehicle(ctx, id)
			if err != nil {
				return err
			}
			q.Vehicle = &v
		}
	}

	if in.VariationID != nil {
		if id := strings.TrimSpace(*in.VariationID); id != "" {
			v, err := l.variation(ctx, id)
			if err != nil {
				return err
			}
			q.Variation = &v
		}
	}

	if in.OptionIDs != nil {
		opts := make([]entities.Option, 0, len(*in.OptionIDs))
		for _, raw := range *in.OptionIDs {
			id := strings.TrimSpace(raw)
			if id == "" {
				return domain.NewValidationError("option_ids", "must not contain blank ids")
			}
			o, err := l.option(ctx, id)
			if err != nil {
				return err
			}
			opts = append(opts, o)
		}
		q.Options = opts
	}
	return nil
}

// hydrate turns a stored record back into a quotation. A dangling reference is NotFound.
func (l *refLoader) hydrate(ctx context.Context, rec entities.QuotationRecord) (entities.Quotation, error) {
	q := entities.Quotation{
		ID:             rec.ID,
		FinalPrice:     rec.FinalPrice,
		WelcomeApplied: rec.WelcomeApplied,
		Version:        rec.Version,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}

	if rec.VehicleID != "" {
		v, err := l.vehicle(ctx, rec.VehicleID)
		if err != nil {
			return entities.Quotation{}, err
		}
		q.Vehicle = &v
	}
	if rec.VariationID != "" {
		v, err := l.variation(ctx, rec.VariationID)
		if err != nil {
			return entities.Quotation{}, err
		}
		q.Variation = &v
	}
	for _, id := range rec.OptionIDs {
		o, err := l.option(ctx, id)
		if err != nil {
			return entities.Quotation{}, err
		}
		q.Options = append(q.Options, o)
	}
	if rec.CustomerID != "" {
		c, err := l.customer(ctx, rec.CustomerID)
		if err != nil {
			return entities.Quotation{}, err
		}
		q.Customer = &c
	}
	return q, nil
}

func (l *refLoader) vehicle(ctx context.Context, id string) (entities.Vehicle, error) {
	if v, ok := l.vehicles[id]; ok {
		return v, nil
	}
	v, err := l.catalog.GetVehicle(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, domain.NewNotFoundError("vehicle", id)
	}
	l.vehicles[id] = v
	return v, nil
}

func (l *refLoader) variation(ctx context.Context, id string) (entities.VehicleVariation, error) {
	if v, ok := l.variations[id]; ok {
		return v, nil
	}
	v, err := l.catalog.GetVariation(ctx, id)
	if err != nil {
		return entities.VehicleVariation{}, err
	}
	if v.ID == "" {
		return entities.VehicleVariation{}, domain.NewNotFoundError("variation", id)
	}
	l.variations[id] = v
	return v, nil
}

func (l *refLoader) option(ctx context.Context, id string) (entities.Option, error) {
	if o, ok := l.options[id]; ok {
		return o, nil
	}
	o, err := l.catalog.GetOption(ctx, id)
	if err != nil {
		return entities.Option{}, err
	}
	if o.ID == "" {
		return entities.Option{}, domain.NewNotFoundError("option", id)
	}
	l.options[id] = o
	return o, nil
}

func (l *refLoader) customer(ctx context.Context, id string) (entities.Customer, error) {
	if c, ok := l.customerBy[id]; ok {
		return c, nil
	}
	c, err := l.customers.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, domain.NewNotFoundError("customer", id)
	}
	l.customerBy[id] = c
	return c, nil
}
