package response

import (
	"time"

	"costwatch/internal/domain/entities"
)

type EstimateResponse struct {
	ID             string    `json:"id"`
	SiteID         string    `json:"site_id"`
	Title          string    `json:"title"`
	Version        int       `json:"version"`
	Status         string    `json:"status"`
	TotalEstimated float64   `json:"total_estimated"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EstimateDetailResponse is the estimate together with its line items, as
// returned by the detail endpoint.
type EstimateDetailResponse struct {
	EstimateResponse
	Items []EstimateItemResponse `json:"items"`
}

type EstimateItemResponse struct {
	ID             string    `json:"id"`
	EstimateID     string    `json:"estimate_id"`
	CategoryID     string    `json:"category_id"`
	Description    string    `json:"description"`
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit"`
	UnitPrice      float64   `json:"unit_price"`
	TotalEstimated float64   `json:"total_estimated"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:             e.ID,
		SiteID:         e.SiteID,
		Title:          e.Title,
		Version:        e.Version,
		Status:         string(e.Status),
		TotalEstimated: e.TotalEstimated,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func FromEstimateDetail(e entities.Estimate, items []entities.EstimateItem) EstimateDetailResponse {
	out := EstimateDetailResponse{
		EstimateResponse: FromEstimate(e),
		Items:            make([]EstimateItemResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, FromEstimateItem(it))
	}
	return out
}

func FromEstimates(estimates []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, FromEstimate(e))
	}
	return out
}

func FromEstimateItem(it entities.EstimateItem) EstimateItemResponse {
	return EstimateItemResponse{
		ID:             it.ID,
		EstimateID:     it.EstimateID,
		CategoryID:     it.CategoryID,
		Description:    it.Description,
		Quantity:       it.Quantity,
		Unit:           it.Unit,
		UnitPrice:      it.UnitPrice,
		TotalEstimated: it.TotalEstimated,
		CreatedAt:      it.CreatedAt,
		UpdatedAt:      it.UpdatedAt,
	}
}
