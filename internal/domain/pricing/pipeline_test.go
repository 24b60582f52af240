package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/domain/money"
)

// surchargeResolver adds a fixed amount and logs it, to check log ordering.
type surchargeResolver struct{ amount money.Money }

func (s surchargeResolver) ResolveBasePrice(v entities.Vehicle, _ *entities.VehicleVariation) (money.Money, []entities.Adjustment) {
	return v.BasePrice.Add(s.amount), []entities.Adjustment{{Label: "resolver surcharge", Amount: s.amount}}
}

var fixedNow = time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)

func newTestPipeline(resolver BasePriceResolver) *Pipeline {
	return NewPipeline(resolver, WithClock(func() time.Time { return fixedNow }))
}

func priced(amount string) *money.Money {
	m := money.MustParse(amount)
	return &m
}

func option(id, nameIt, nameEn, price string) entities.Option {
	return entities.Option{ID: id, NameIt: nameIt, NameEn: nameEn, Price: priced(price)}
}

func labels(adjustments []entities.Adjustment) []string {
	out := make([]string, 0, len(adjustments))
	for _, a := range adjustments {
		out = append(out, a.Label)
	}
	return out
}

func assertMoney(t *testing.T, want string, got money.Money) {
	t.Helper()
	assert.True(t, money.MustParse(want).Equal(got), "expected %s, got %s", want, got)
}

func TestPipeline_EmptyQuotation(t *testing.T) {
	res := newTestPipeline(ListPriceResolver{}).ComputeFinalPrice(entities.Quotation{})

	assert.True(t, res.FinalPrice.IsZero())
	assert.Empty(t, res.Adjustments)
}

func TestPipeline_NoVehicleSkipsResolver(t *testing.T) {
	p := newTestPipeline(surchargeResolver{amount: money.FromInt(999)})
	res := p.ComputeFinalPrice(entities.Quotation{
		Options: []entities.Option{option("o-1", "Cerchi", "Rims", "250")},
	})

	assertMoney(t, "250", res.FinalPrice)
	assert.Empty(t, res.Adjustments)
}

func TestPipeline_FullRuleOrder(t *testing.T) {
	q := entities.Quotation{
		Vehicle:   &entities.Vehicle{ID: "v-1", BasePrice: money.FromInt(25000)},
		Variation: &entities.VehicleVariation{ID: "var-1", RegistrationYear: fixedNow.Year()},
		Options: []entities.Option{
			option("o-1", "Climatizzatore", "Air conditioning", "200"),
			option("o-2", "Navigatore", "Navigator", "200"),
			option("o-3", "Sensori di parcheggio", "Parking sensors", "200"),
		},
		Customer: &entities.Customer{ID: "c-1", FirstQuotation: true},
	}

	res := newTestPipeline(ListPriceResolver{}).ComputeFinalPrice(q)

	require.Equal(t, []string{
		LabelOptionsBundle,
		LabelCurrentYearPromo,
		LabelLuxuryExcess,
		LabelComfortBundle,
		LabelWelcome,
	}, labels(res.Adjustments))

	// 25600 -> x0.97 -> x0.98 -> excess above 20000 at 5% -> -100 -> x0.98
	assertMoney(t, "-768", res.Adjustments[0].Amount)
	assertMoney(t, "-496.64", res.Adjustments[1].Amount)
	assertMoney(t, "-216.768", res.Adjustments[2].Amount)
	assertMoney(t, "-100", res.Adjustments[3].Amount)
	assertMoney(t, "-480.37184", res.Adjustments[4].Amount)
	assertMoney(t, "23538.22016", res.FinalPrice)

	// Adjustments reconcile exactly with the gross total.
	sum := money.FromInt(25600)
	for _, a := range res.Adjustments {
		sum = sum.Add(a.Amount)
	}
	assertMoney(t, res.FinalPrice.String(), sum)
}

func TestPipeline_OrderIsSignificant(t *testing.T) {
	// Applying the welcome discount before the luxury rule yields a different total,
	// so a reordering would be caught by TestPipeline_FullRuleOrder.
	total := money.FromInt(25600).Mul(money.Rate("0.97")).Mul(money.Rate("0.98"))
	total = total.Mul(money.Rate("0.98"))
	excess := total.Sub(money.FromInt(20000))
	total = total.Sub(excess.Mul(money.Rate("0.05"))).Sub(money.FromInt(100))

	assert.False(t, total.Equal(money.MustParse("23538.22016")), "reordered total must differ, got %s", total)
}

func TestPipeline_ResolverEntriesComeFirst(t *testing.T) {
	p := newTestPipeline(surchargeResolver{amount: money.FromInt(1000)})
	res := p.ComputeFinalPrice(entities.Quotation{
		Vehicle: &entities.Vehicle{BasePrice: money.FromInt(19500)},
	})

	require.Equal(t, []string{"resolver surcharge", LabelLuxuryExcess}, labels(res.Adjustments))
	assertMoney(t, "1000", res.Adjustments[0].Amount)
	assertMoney(t, "-25", res.Adjustments[1].Amount)
	assertMoney(t, "20475", res.FinalPrice)
}

func TestPipeline_OptionsBundleBoundary(t *testing.T) {
	p := newTestPipeline(ListPriceResolver{})
	two := []entities.Option{option("o-1", "A", "A", "100"), option("o-2", "B", "B", "100")}

	res := p.ComputeFinalPrice(entities.Quotation{Options: two})
	assert.Empty(t, res.Adjustments)
	assertMoney(t, "200", res.FinalPrice)

	three := append(two, option("o-3", "C", "C", "100"))
	res = p.ComputeFinalPrice(entities.Quotation{Options: three})
	require.Equal(t, []string{LabelOptionsBundle}, labels(res.Adjustments))
	assertMoney(t, "-9", res.Adjustments[0].Amount)
	assertMoney(t, "291", res.FinalPrice)
}

func TestPipeline_UnpricedOptionsCountButAddNothing(t *testing.T) {
	p := newTestPipeline(ListPriceResolver{})
	res := p.ComputeFinalPrice(entities.Quotation{Options: []entities.Option{
		option("o-1", "A", "A", "100"),
		{ID: "o-2", NameIt: "B", NameEn: "B"},
		{ID: "o-3", NameIt: "C", NameEn: "C"},
	}})

	require.Equal(t, []string{LabelOptionsBundle}, labels(res.Adjustments))
	assertMoney(t, "97", res.FinalPrice)
}

func TestPipeline_LuxuryExcessBoundary(t *testing.T) {
	p := newTestPipeline(ListPriceResolver{})

	t.Run("exactly 20000", func(t *testing.T) {
		res := p.ComputeFinalPrice(entities.Quotation{Vehicle: &entities.Vehicle{BasePrice: money.FromInt(20000)}})
		assert.Empty(t, res.Adjustments)
		assertMoney(t, "20000", res.FinalPrice)
	})

	t.Run("below threshold", func(t *testing.T) {
		res := p.ComputeFinalPrice(entities.Quotation{Vehicle: &entities.Vehicle{BasePrice: money.MustParse("15000.50")}})
		assert.Empty(t, res.Adjustments)
	})

	t.Run("one cent above", func(t *testing.T) {
		res := p.ComputeFinalPrice(entities.Quotation{Vehicle: &entities.Vehicle{BasePrice: money.MustParse("20000.01")}})
		require.Equal(t, []string{LabelLuxuryExcess}, labels(res.Adjustments))
		assertMoney(t, "-0.0005", res.Adjustments[0].Amount)
		assertMoney(t, "20000.0095", res.FinalPrice)
	})

	t.Run("only the excess is discounted", func(t *testing.T) {
		res := p.ComputeFinalPrice(entities.Quotation{Vehicle: &entities.Vehicle{BasePrice: money.FromInt(30000)}})
		assertMoney(t, "-500", res.Adjustments[0].Amount)
		assertMoney(t, "29500", res.FinalPrice)
	})
}

func TestPipeline_CurrentYearPromo(t *testing.T) {
	p := newTestPipeline(ListPriceResolver{})
	vehicle := &entities.Vehicle{BasePrice: money.FromInt(10000)}

	res := p.ComputeFinalPrice(entities.Quotation{
		Vehicle:   vehicle,
		Variation: &entities.VehicleVariation{RegistrationYear: fixedNow.Year()},
	})
	require.Equal(t, []string{LabelCurrentYearPromo}, labels(res.Adjustments))
	assertMoney(t, "9800", res.FinalPrice)

	res = p.ComputeFinalPrice(entities.Quotation{
		Vehicle:   vehicle,
		Variation: &entities.VehicleVariation{RegistrationYear: fixedNow.Year() - 1},
	})
	assert.Empty(t, res.Adjustments)

	res = p.ComputeFinalPrice(entities.Quotation{Vehicle: vehicle})
	assert.Empty(t, res.Adjustments)
}

func TestPipeline_ComfortBundle(t *testing.T) {
	p := newTestPipeline(ListPriceResolver{})

	cases := []struct {
		name    string
		options []entities.Option
		fires   bool
	}{
		{
			name:    "italian names",
			options: []entities.Option{option("o-1", "climatizzatore", "", "10"), option("o-2", "NAVIGATORE", "", "10")},
			fires:   true,
		},
		{
			name:    "english names mixed case",
			options: []entities.Option{option("o-1", "", "Air Conditioning", "10"), option("o-2", "", "navigator", "10")},
			fires:   true,
		},
		{
			name:    "mixed localisations",
			options: []entities.Option{option("o-1", "Climatizzatore", "", "10"), option("o-2", "", "Navigator", "10")},
			fires:   true,
		},
		{
			name:    "only climate",
			options: []entities.Option{option("o-1", "Climatizzatore", "Air conditioning", "10")},
			fires:   false,
		},
		{
			name:    "only navigator",
			options: []entities.Option{option("o-2", "Navigatore", "Navigator", "10")},
			fires:   false,
		},
		{
			name:    "partial names do not match",
			options: []entities.Option{option("o-1", "Climatizzatore bizona", "", "10"), option("o-2", "Navigatore", "", "10")},
			fires:   false,
		},
		{
			name:    "padded names do not match",
			options: []entities.Option{option("o-1", "Climatizzatore", "", "10"), option("o-2", " Navigatore ", " Navigator ", "10")},
			fires:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := p.ComputeFinalPrice(entities.Quotation{Options: tc.options})
			if tc.fires {
				require.Equal(t, []string{LabelComfortBundle}, labels(res.Adjustments))
				assertMoney(t, "-100", res.Adjustments[0].Amount)
				assertMoney(t, "-80", res.FinalPrice)
				return
			}
			assert.Empty(t, res.Adjustments)
		})
	}
}

func TestPipeline_WelcomeDiscount(t *testing.T) {
	p := newTestPipeline(ListPriceResolver{})
	vehicle := &entities.Vehicle{BasePrice: money.FromInt(10000)}

	res := p.ComputeFinalPrice(entities.Quotation{Vehicle: vehicle, Customer: &entities.Customer{FirstQuotation: true}})
	require.Equal(t, []string{LabelWelcome}, labels(res.Adjustments))
	assertMoney(t, "-200", res.Adjustments[0].Amount)
	assertMoney(t, "9800", res.FinalPrice)

	res = p.ComputeFinalPrice(entities.Quotation{Vehicle: vehicle, Customer: &entities.Customer{FirstQuotation: false}})
	assert.Empty(t, res.Adjustments)

	res = p.ComputeFinalPrice(entities.Quotation{
		Vehicle:        vehicle,
		Customer:       &entities.Customer{FirstQuotation: false},
		WelcomeApplied: true,
	})
	require.Equal(t, []string{LabelWelcome}, labels(res.Adjustments))
}

func TestPipeline_DoesNotMutateInput(t *testing.T) {
	customer := &entities.Customer{ID: "c-1", FirstQuotation: true}
	q := entities.Quotation{
		Vehicle:  &entities.Vehicle{BasePrice: money.FromInt(30000)},
		Customer: customer,
	}

	_ = newTestPipeline(ListPriceResolver{}).ComputeFinalPrice(q)

	assert.True(t, customer.FirstQuotation)
	assert.True(t, q.FinalPrice.IsZero())
}
