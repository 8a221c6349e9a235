package usecase

import "math"

// Boundary rounding: currency and percentages carry 2 decimal places,
// quantities carry 3. Intermediate values stay unrounded so error cannot
// compound between steps.

func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundQuantity(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// ComputeVariance is the single source of truth for derived actual-cost
// figures. Given the parent item's estimated quantity and unit price plus the
// recorded actual unit price (and optional actual quantity), it returns the
// rounded (total_actual, variance_amount, variance_percentage) triple.
//
//	effective_quantity  = actual_quantity if present else estimated_quantity
//	total_actual        = effective_quantity × actual_unit_price
//	variance_amount     = total_actual − estimated_total
//	variance_percentage = 0 when estimated_total == 0, else amount/total × 100
func ComputeVariance(estimatedQuantity, estimatedUnitPrice, actualUnitPrice float64, actualQuantity *float64) (totalActual, varianceAmount, variancePercentage float64) {
	effectiveQuantity := estimatedQuantity
	if actualQuantity != nil {
		effectiveQuantity = *actualQuantity
	}

	estimatedTotal := estimatedQuantity * estimatedUnitPrice
	rawTotal := effectiveQuantity * actualUnitPrice
	rawAmount := rawTotal - estimatedTotal

	rawPercentage := 0.0
	if estimatedTotal != 0 {
		rawPercentage = rawAmount / estimatedTotal * 100
	}

	return roundCurrency(rawTotal), roundCurrency(rawAmount), roundPercent(rawPercentage)
}
