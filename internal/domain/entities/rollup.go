package entities

import "time"

// VarianceRollup is an aggregated variance row for one group (a category or
// a site). VariancePercentage is computed from the summed totals, never from
// averaging per-item percentages.
type VarianceRollup struct {
	Key                string  `json:"key"`
	Name               string  `json:"name"`
	TotalEstimated     float64 `json:"total_estimated"`
	TotalActual        float64 `json:"total_actual"`
	VarianceAmount     float64 `json:"variance_amount"`
	VariancePercentage float64 `json:"variance_percentage"`
	ItemCount          int     `json:"item_count"`
	ItemsWithActuals   int     `json:"items_with_actuals"`
}

// ItemVariance is the per-item variance view used for ranking and alerts.
// Items with multiple actual-cost records are summed before comparison.
type ItemVariance struct {
	ItemID             string         `json:"item_id"`
	EstimateID         string         `json:"estimate_id"`
	SiteID             string         `json:"site_id"`
	CategoryID         string         `json:"category_id"`
	Description        string         `json:"description"`
	TotalEstimated     float64        `json:"total_estimated"`
	TotalActual        float64        `json:"total_actual"`
	VarianceAmount     float64        `json:"variance_amount"`
	VariancePercentage float64        `json:"variance_percentage"`
	Status             VarianceStatus `json:"variance_status"`
}

// TrendPoint is one calendar day of recorded cost activity. Deltas are the
// day's contribution, not running totals.
type TrendPoint struct {
	Date                time.Time `json:"date"`
	TotalEstimatedDelta float64   `json:"total_estimated_delta"`
	TotalActualDelta    float64   `json:"total_actual_delta"`
}

// CumulativePoint is the running sum of the daily series in chronological
// order. The series is re-derived from stored records on every call, never
// persisted.
type CumulativePoint struct {
	Date           time.Time `json:"date"`
	TotalEstimated float64   `json:"total_estimated"`
	TotalActual    float64   `json:"total_actual"`
}

// BudgetAlert flags a site whose aggregated actual cost exceeds its budget
// limit. Only produced for sites carrying a non-nil limit.
type BudgetAlert struct {
	SiteID      string  `json:"site_id"`
	SiteName    string  `json:"site_name"`
	BudgetLimit float64 `json:"budget_limit"`
	TotalActual float64 `json:"total_actual"`
	Overrun     float64 `json:"overrun"`
}

// AlertSet is the stateless alert snapshot produced per call.
type AlertSet struct {
	VarianceAlerts []ItemVariance `json:"variance_alerts"`
	BudgetAlerts   []BudgetAlert  `json:"budget_alerts"`
}
