package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/domain/money"
)

const (
	LabelDisplacementMid  = "Supplemento Cilindrata 1601-2000cc"
	LabelDisplacementHigh = "Supplemento Cilindrata oltre 2000cc"
	labelAgeDepreciation  = "Deprezzamento Anzianità Immatricolazione (%d anni)"
)

const (
	displacementMidCC  = 1600
	displacementHighCC = 2000
	maxDepreciationAge = 10
)

var (
	displacementMidRate  = money.Rate("0.04")
	displacementHighRate = money.Rate("0.08")
	depreciationPerYear  = money.Rate("0.03")
)

const (
	ResolverList    = "list"
	ResolverCatalog = "catalog"
)

// NewResolver returns the base price resolver registered under name. An empty name
// selects the list price resolver.
func NewResolver(name string, now func() time.Time) (BasePriceResolver, error) {
	switch name {
	case "", ResolverList:
		return ListPriceResolver{}, nil
	case ResolverCatalog:
		return NewCatalogResolver(now), nil
	default:
		return nil, fmt.Errorf("unknown price resolver %q", name)
	}
}

// ListPriceResolver prices a vehicle at its catalog list price and ignores the variation.
type ListPriceResolver struct{}

var _ BasePriceResolver = ListPriceResolver{}

func (ListPriceResolver) ResolveBasePrice(vehicle entities.Vehicle, _ *entities.VehicleVariation) (money.Money, []entities.Adjustment) {
	return vehicle.BasePrice, nil
}

// CatalogResolver derives the base price from the vehicle list price and the variation:
// a surcharge for large engines and a yearly depreciation since registration.
type CatalogResolver struct {
	now func() time.Time
}

func NewCatalogResolver(now func() time.Time) *CatalogResolver {
	if now == nil {
		now = time.Now
	}
	return &CatalogResolver{now: now}
}

var _ BasePriceResolver = (*CatalogResolver)(nil)

func (r *CatalogResolver) ResolveBasePrice(vehicle entities.Vehicle, variation *entities.VehicleVariation) (money.Money, []entities.Adjustment) {
	total := vehicle.BasePrice
	if variation == nil {
		return total, nil
	}

	var adjustments []entities.Adjustment
	apply := func(label string, next money.Money) {
		adjustments = append(adjustments, entities.Adjustment{Label: label, Amount: next.Sub(total)})
		total = next
	}

	switch cc := variation.EngineDisplacementCC; {
	case cc > displacementHighCC:
		apply(LabelDisplacementHigh, total.Mul(decimal.NewFromInt(1).Add(displacementHighRate)))
	case cc > displacementMidCC:
		apply(LabelDisplacementMid, total.Mul(decimal.NewFromInt(1).Add(displacementMidRate)))
	}

	if years := registrationAgeYears(variation, r.now()); years > 0 {
		rate := depreciationPerYear.Mul(decimal.NewFromInt(int64(years)))
		apply(fmt.Sprintf(labelAgeDepreciation, years), total.Mul(decimal.NewFromInt(1).Sub(rate)))
	}

	return total, adjustments
}

// registrationAgeYears counts full years since registration, capped. An unknown or
// future registration date yields 0.
func registrationAgeYears(v *entities.VehicleVariation, now time.Time) int {
	if v.RegistrationYear <= 0 {
		return 0
	}
	month := v.RegistrationMonth
	if month < 1 || month > 12 {
		month = 1
	}
	months := (now.Year()-v.RegistrationYear)*12 + int(now.Month()) - month
	if months < 12 {
		return 0
	}
	return min(months/12, maxDepreciationAge)
}
