package euler

import "math"

// Round rounds v to precision decimal digits, half away from zero.
// Precision 0 rounds to the nearest integer. Idempotent.
func Round(v float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}
