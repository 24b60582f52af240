package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/domain/money"
)

func TestNewResolver(t *testing.T) {
	vehicle := entities.Vehicle{ID: "v-1", BasePrice: money.FromInt(20000)}
	old := &entities.VehicleVariation{EngineDisplacementCC: 2400, RegistrationYear: 2020, RegistrationMonth: 1}
	clock := func() time.Time { return fixedNow }

	t.Run("defaults to list price", func(t *testing.T) {
		for _, name := range []string{"", ResolverList} {
			r, err := NewResolver(name, clock)
			require.NoError(t, err)
			total, adjustments := r.ResolveBasePrice(vehicle, old)
			assertMoney(t, "20000", total)
			assert.Empty(t, adjustments)
		}
	})

	t.Run("catalog applies variation adjustments", func(t *testing.T) {
		r, err := NewResolver(ResolverCatalog, clock)
		require.NoError(t, err)
		_, adjustments := r.ResolveBasePrice(vehicle, old)
		assert.Len(t, adjustments, 2)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := NewResolver("dealer", clock)
		assert.ErrorContains(t, err, "unknown price resolver")
	})
}

func TestCatalogResolver(t *testing.T) {
	r := NewCatalogResolver(func() time.Time { return fixedNow })
	vehicle := entities.Vehicle{ID: "v-1", BasePrice: money.FromInt(20000)}

	t.Run("no variation keeps list price", func(t *testing.T) {
		total, adjustments := r.ResolveBasePrice(vehicle, nil)
		assertMoney(t, "20000", total)
		assert.Empty(t, adjustments)
	})

	t.Run("small engine new registration", func(t *testing.T) {
		total, adjustments := r.ResolveBasePrice(vehicle, &entities.VehicleVariation{
			EngineDisplacementCC: 1200,
			RegistrationYear:     fixedNow.Year(),
			RegistrationMonth:    3,
		})
		assertMoney(t, "20000", total)
		assert.Empty(t, adjustments)
	})

	t.Run("mid displacement surcharge", func(t *testing.T) {
		total, adjustments := r.ResolveBasePrice(vehicle, &entities.VehicleVariation{EngineDisplacementCC: 1800})
		require.Len(t, adjustments, 1)
		assert.Equal(t, LabelDisplacementMid, adjustments[0].Label)
		assertMoney(t, "800", adjustments[0].Amount)
		assertMoney(t, "20800", total)
	})

	t.Run("boundary 2000cc is mid tier", func(t *testing.T) {
		_, adjustments := r.ResolveBasePrice(vehicle, &entities.VehicleVariation{EngineDisplacementCC: 2000})
		require.Len(t, adjustments, 1)
		assert.Equal(t, LabelDisplacementMid, adjustments[0].Label)
	})

	t.Run("high displacement and depreciation compound", func(t *testing.T) {
		total, adjustments := r.ResolveBasePrice(vehicle, &entities.VehicleVariation{
			EngineDisplacementCC: 2500,
			RegistrationYear:     2023,
			RegistrationMonth:    10,
		})
		require.Len(t, adjustments, 2)
		assert.Equal(t, LabelDisplacementHigh, adjustments[0].Label)
		assertMoney(t, "1600", adjustments[0].Amount)
		assert.Equal(t, "Deprezzamento Anzianità Immatricolazione (3 anni)", adjustments[1].Label)
		// 21600 x (1 - 0.09)
		assertMoney(t, "-1944", adjustments[1].Amount)
		assertMoney(t, "19656", total)
	})
}

func TestRegistrationAgeYears(t *testing.T) {
	cases := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{name: "unknown year", year: 0, want: 0},
		{name: "eleven months", year: 2025, month: 11, want: 0},
		{name: "exactly one year", year: 2025, month: 10, want: 1},
		{name: "missing month counts from january", year: 2024, month: 0, want: 2},
		{name: "future registration", year: 2027, month: 1, want: 0},
		{name: "capped", year: 1990, month: 5, want: maxDepreciationAge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := registrationAgeYears(&entities.VehicleVariation{RegistrationYear: tc.year, RegistrationMonth: tc.month}, fixedNow)
			assert.Equal(t, tc.want, got)
		})
	}
}
