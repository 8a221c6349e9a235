package response

import (
	"time"

	"costwatch/internal/domain/entities"
)

type SiteResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	BudgetLimit *float64  `json:"budget_limit,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromSite(s entities.Site) SiteResponse {
	return SiteResponse{
		ID:          s.ID,
		Name:        s.Name,
		Status:      string(s.Status),
		BudgetLimit: s.BudgetLimit,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromSites(sites []entities.Site) []SiteResponse {
	out := make([]SiteResponse, 0, len(sites))
	for _, s := range sites {
		out = append(out, FromSite(s))
	}
	return out
}
