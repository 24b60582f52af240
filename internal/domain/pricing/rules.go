package pricing

import (
	"strings"

	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/domain/money"
)

const (
	LabelOptionsBundle    = "Sconto Pacchetto Optionals (3+)"
	LabelCurrentYearPromo = "Promo Immatricolazione Anno Corrente"
	LabelLuxuryExcess     = "Sconto su importo eccedente €20.000"
	LabelComfortBundle    = "Promo Pacchetto Comfort (Clima + Nav)"
	LabelWelcome          = "Sconto Benvenuto (Primo Preventivo)"
)

const bundleMinOptions = 3

var (
	bundleFactor      = money.Rate("0.97")
	currentYearFactor = money.Rate("0.98")
	welcomeFactor     = money.Rate("0.98")
	luxuryRate        = money.Rate("0.05")
	luxuryThreshold   = money.FromInt(20000)
	comfortDiscount   = money.FromInt(100)

	climateNames   = []string{"climatizzatore", "air conditioning"}
	navigatorNames = []string{"navigatore", "navigator"}
)

type ruleInput struct {
	quotation   entities.Quotation
	currentYear int
}

// rule returns the new running total and whether it fired.
// The logged adjustment is always next - total.
type rule struct {
	label string
	apply func(in ruleInput, total money.Money) (money.Money, bool)
}

// defaultRules is the firing order. Do not reorder.
func defaultRules() []rule {
	return []rule{
		{label: LabelOptionsBundle, apply: optionsBundle},
		{label: LabelCurrentYearPromo, apply: currentYearRegistration},
		{label: LabelLuxuryExcess, apply: luxuryExcess},
		{label: LabelComfortBundle, apply: comfortBundle},
		{label: LabelWelcome, apply: welcome},
	}
}

func optionsBundle(in ruleInput, total money.Money) (money.Money, bool) {
	if len(in.quotation.Options) < bundleMinOptions {
		return total, false
	}
	return total.Mul(bundleFactor), true
}

func currentYearRegistration(in ruleInput, total money.Money) (money.Money, bool) {
	v := in.quotation.Variation
	if v == nil || v.RegistrationYear == 0 || v.RegistrationYear != in.currentYear {
		return total, false
	}
	return total.Mul(currentYearFactor), true
}

// luxuryExcess discounts only the portion above the threshold.
func luxuryExcess(_ ruleInput, total money.Money) (money.Money, bool) {
	if !total.GreaterThan(luxuryThreshold) {
		return total, false
	}
	excess := total.Sub(luxuryThreshold)
	return total.Add(excess.Mul(luxuryRate).Neg()), true
}

func comfortBundle(in ruleInput, total money.Money) (money.Money, bool) {
	if !hasOptionNamed(in.quotation.Options, climateNames) || !hasOptionNamed(in.quotation.Options, navigatorNames) {
		return total, false
	}
	return total.Sub(comfortDiscount), true
}

func welcome(in ruleInput, total money.Money) (money.Money, bool) {
	if !in.quotation.WelcomeEligible() {
		return total, false
	}
	return total.Mul(welcomeFactor), true
}

// hasOptionNamed matches either localized name, case-insensitively.
func hasOptionNamed(options []entities.Option, names []string) bool {
	for _, o := range options {
		for _, name := range names {
			if strings.EqualFold(o.NameIt, name) || strings.EqualFold(o.NameEn, name) {
				return true
			}
		}
	}
	return false
}
