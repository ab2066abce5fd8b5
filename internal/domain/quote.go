package domain

import "math"

// roundEpsilon compensates for binary float noise before rounding:
// 19.99*0.5 is 9.994999...9 in float64, not 9.995, and a half-cent
// must round up, not down
const roundEpsilon = 1e-9

// PriceQuote is a non-binding, client-facing price estimate
// It is display-only and is never submitted to the booking backend,
// which remains the pricing authority
type PriceQuote struct {
	HourlyRate      float64
	Currency        string
	DurationMinutes int
	TotalPrice      float64
}

// Round2 rounds a monetary amount to 2 decimal places (half-up,
// on the decimal value)
func Round2(v float64) float64 {
	return math.Round(v*100+math.Copysign(roundEpsilon, v)) / 100
}
