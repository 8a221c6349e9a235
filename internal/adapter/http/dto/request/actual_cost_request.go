package request

import "time"

// RecordActualCostRequest records a field cost against one estimate item.
// ActualQuantity omitted means "the item's estimated quantity"; RecordedAt
// omitted means "now".
type RecordActualCostRequest struct {
	ActualUnitPrice *float64   `json:"actual_unit_price" binding:"required"`
	ActualQuantity  *float64   `json:"actual_quantity"`
	RecordedAt      *time.Time `json:"recorded_at"`
}

// CorrectActualCostRequest is a partial correction. ClearActualQuantity
// resets the record back to the item's estimated quantity.
type CorrectActualCostRequest struct {
	ActualUnitPrice     *float64 `json:"actual_unit_price"`
	ActualQuantity      *float64 `json:"actual_quantity"`
	ClearActualQuantity bool     `json:"clear_actual_quantity"`
}
