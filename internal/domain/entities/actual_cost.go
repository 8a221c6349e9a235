package entities

import "time"

// VarianceStatus classifies an item's budget position.

type VarianceStatus string

const (
	VarianceStatusNoActual    VarianceStatus = "no_actual"
	VarianceStatusOverBudget  VarianceStatus = "over_budget"
	VarianceStatusUnderBudget VarianceStatus = "under_budget"
	VarianceStatusOnBudget    VarianceStatus = "on_budget"
)

// VarianceStatusFor derives the status exposed to callers: no_actual when no
// actual cost exists, otherwise the sign of the variance percentage.
func VarianceStatusFor(hasActual bool, variancePercentage float64) VarianceStatus {
	switch {
	case !hasActual:
		return VarianceStatusNoActual
	case variancePercentage > 0:
		return VarianceStatusOverBudget
	case variancePercentage < 0:
		return VarianceStatusUnderBudget
	default:
		return VarianceStatusOnBudget
	}
}

// ActualCost is a recorded real-world cost against one estimate item.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (item_id-index): item_id
//
// ActualQuantity is optional; when absent the parent item's estimated
// quantity is the effective quantity.
//
// TotalActual, VarianceAmount and VariancePercentage are derived and never
// independently settable: they are recomputed atomically with every
// create/update so a reader never observes a partially derived record.
type ActualCost struct {
	ID                 string    `json:"id"`
	ItemID             string    `json:"item_id"`
	ActualUnitPrice    float64   `json:"actual_unit_price"`
	ActualQuantity     *float64  `json:"actual_quantity,omitempty"`
	TotalActual        float64   `json:"total_actual"`
	VarianceAmount     float64   `json:"variance_amount"`
	VariancePercentage float64   `json:"variance_percentage"`
	RecordedAt         time.Time `json:"recorded_at"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
