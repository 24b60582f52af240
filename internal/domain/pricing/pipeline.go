// Package pricing computes the final price of a quotation.
//
// The pipeline is a fixed, ordered chain of rules over a running total. Each rule reads
// the total left by the previous one, and every rule that fires records one adjustment.
// Reordering the rules changes the result.
package pricing

import (
	"time"

	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/domain/money"
)

// BasePriceResolver turns a vehicle and its optional variation into the starting total.
// It returns its own adjustments, which are placed first in the quotation log.
type BasePriceResolver interface {
	ResolveBasePrice(vehicle entities.Vehicle, variation *entities.VehicleVariation) (money.Money, []entities.Adjustment)
}

// Result is the outcome of one pipeline run.
type Result struct {
	FinalPrice  money.Money
	Adjustments []entities.Adjustment
}

// Pipeline applies the quotation rules. It holds no mutable state and is safe for
// concurrent use.
type Pipeline struct {
	resolver BasePriceResolver
	now      func() time.Time
	rules    []rule
}

// Option customises a Pipeline.
type Option func(*Pipeline)

// WithClock overrides the clock used for the current-year promotion.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

func NewPipeline(resolver BasePriceResolver, opts ...Option) *Pipeline {
	p := &Pipeline{
		resolver: resolver,
		now:      time.Now,
		rules:    defaultRules(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ComputeFinalPrice prices a hydrated quotation. It reads the vehicle, variation,
// options and customer and writes nothing back.
func (p *Pipeline) ComputeFinalPrice(q entities.Quotation) Result {
	var (
		total       = money.Zero
		adjustments []entities.Adjustment
	)

	if q.Vehicle != nil && p.resolver != nil {
		base, resolved := p.resolver.ResolveBasePrice(*q.Vehicle, q.Variation)
		total = base
		adjustments = append(adjustments, resolved...)
	}

	for _, o := range q.Options {
		if o.Price != nil {
			total = total.Add(*o.Price)
		}
	}

	in := ruleInput{quotation: q, currentYear: p.now().Year()}
	for _, r := range p.rules {
		next, fired := r.apply(in, total)
		if !fired {
			continue
		}
		adjustments = append(adjustments, entities.Adjustment{
			Label:  r.label,
			Amount: next.Sub(total),
		})
		total = next
	}

	return Result{FinalPrice: total, Adjustments: adjustments}
}
