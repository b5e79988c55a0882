package domain

import "github.com/shopspring/decimal"

// AmountPlaces is the number of decimals converted amounts are rounded to.
const AmountPlaces = 2

// RateTable holds multipliers relative to Base for the supported currencies.
// Rates only contains allow-listed codes and strictly positive values.
type RateTable struct {
	Base       string             `json:"base"`
	Rates      map[string]float64 `json:"rates"`
	LastUpdate string             `json:"lastUpdate"`
}

// Rate returns the multiplier for code, if present.
func (t *RateTable) Rate(code string) (float64, bool) {
	if t == nil {
		return 0, false
	}
	r, ok := t.Rates[code]
	return r, ok && r > 0
}

// Convert converts amount between two codes through the table.
// ok is false when the table is nil or has no path between the codes.
// Results are rounded half away from zero to AmountPlaces decimals.
func (t *RateTable) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, bool) {
	if t == nil {
		return decimal.Zero, false
	}
	if from == to {
		return amount, true
	}

	toRate, hasTo := t.Rate(to)
	if from == t.Base && hasTo {
		return amount.Mul(decimal.NewFromFloat(toRate)).Round(AmountPlaces), true
	}

	fromRate, hasFrom := t.Rate(from)
	if hasFrom && hasTo {
		// Cross rate through the base: amount / rate[from] * rate[to].
		inBase := amount.Div(decimal.NewFromFloat(fromRate))
		return inBase.Mul(decimal.NewFromFloat(toRate)).Round(AmountPlaces), true
	}

	return decimal.Zero, false
}
