package response

import (
	"time"

	"costwatch/internal/domain/entities"
)

type ActualCostResponse struct {
	ID                 string    `json:"id"`
	ItemID             string    `json:"item_id"`
	ActualUnitPrice    float64   `json:"actual_unit_price"`
	ActualQuantity     *float64  `json:"actual_quantity,omitempty"`
	TotalActual        float64   `json:"total_actual"`
	VarianceAmount     float64   `json:"variance_amount"`
	VariancePercentage float64   `json:"variance_percentage"`
	VarianceStatus     string    `json:"variance_status"`
	RecordedAt         time.Time `json:"recorded_at"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromActualCost(ac entities.ActualCost) ActualCostResponse {
	return ActualCostResponse{
		ID:                 ac.ID,
		ItemID:             ac.ItemID,
		ActualUnitPrice:    ac.ActualUnitPrice,
		ActualQuantity:     ac.ActualQuantity,
		TotalActual:        ac.TotalActual,
		VarianceAmount:     ac.VarianceAmount,
		VariancePercentage: ac.VariancePercentage,
		VarianceStatus:     string(entities.VarianceStatusFor(true, ac.VariancePercentage)),
		RecordedAt:         ac.RecordedAt,
		CreatedAt:          ac.CreatedAt,
		UpdatedAt:          ac.UpdatedAt,
	}
}

func FromActualCosts(costs []entities.ActualCost) []ActualCostResponse {
	out := make([]ActualCostResponse, 0, len(costs))
	for _, ac := range costs {
		out = append(out, FromActualCost(ac))
	}
	return out
}
