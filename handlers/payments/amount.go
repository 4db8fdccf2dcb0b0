package payments

import "math"

// ToMinorUnits converts a decimal amount to Stripe's integer minor
// units, rounding to the nearest cent. Truncation would drop sub-cent
// fractions like 19.999 -> 1999.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromMinorUnits converts Stripe's minor units back to a decimal amount
// for the ledger.
func FromMinorUnits(minor int64) float64 {
	return float64(minor) / 100
}
