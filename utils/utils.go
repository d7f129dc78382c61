package utils

import "math"

// FormatFloat rounds f to the given number of decimal places, leaving
// NaN and Inf untouched.
func FormatFloat(f float64, decimals int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	pow := math.Pow(10, float64(decimals))
	return math.Round(f*pow) / pow
}
