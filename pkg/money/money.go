// Package money holds the rounding rules shared by billing and balance
// adjustment computations. Billing amounts round to 2 decimal places;
// adjustments round to whole Ariary units.
package money

import (
	"math"
	"strconv"
)

// Round rounds v half-away-from-zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

// Round2 rounds to 2 decimal places (billing precision).
func Round2(v float64) float64 {
	return Round(v, 2)
}

// RoundUnit rounds to the nearest whole currency unit (adjustment precision).
func RoundUnit(v float64) float64 {
	return Round(v, 0)
}

// Format renders an amount with the given number of decimal places,
// used in validation error messages.
func Format(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', places, 64)
}
