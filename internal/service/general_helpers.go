package service

import "math"

// RoundingPrecision is the factor used when rounding monetary values and
// percentages for API responses (100 = two decimal places).
const RoundingPrecision = 100.0

// round rounds a float64 value to two decimal places using the package RoundingPrecision constant.
// This function is used throughout the service layer to ensure consistent rounding of monetary
// values and percentages in API responses.
//
// The rounding uses the standard "round half up" approach via math.Round.
//
// Example:
//
//	round(123.456789)  // returns 123.46
//	round(66.666666)   // returns 66.67
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

// roundPtr rounds through a nil-able value, preserving nil.
// Nil means "no figure available" and must survive response assembly.
func roundPtr(value *float64) *float64 {
	if value == nil {
		return nil
	}
	rounded := round(*value)
	return &rounded
}
