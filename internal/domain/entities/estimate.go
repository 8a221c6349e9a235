package entities

import "time"

// EstimateStatus represents the lifecycle of a cost estimate.
//
// Domain notes:
//   - An estimate with actual-cost records attached is archived, never
//     hard-deleted.
//   - Version is monotonically incremented by the duplication service;
//     duplicates always restart as draft.

type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "draft"
	EstimateStatusSubmitted EstimateStatus = "submitted"
	EstimateStatusApproved  EstimateStatus = "approved"
	EstimateStatusRejected  EstimateStatus = "rejected"
	EstimateStatusArchived  EstimateStatus = "archived"
)

// Estimate is a versioned cost estimate belonging to exactly one site.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (site_id-index): site_id
//
// Monetary representation:
//   - TotalEstimated is denormalized for convenience but is never trusted
//     from storage: every read path recomputes it as the sum of the items'
//     TotalEstimated so the figure cannot drift.
type Estimate struct {
	ID             string         `json:"id"`
	SiteID         string         `json:"site_id"`
	Title          string         `json:"title"`
	Version        int            `json:"version"`
	Status         EstimateStatus `json:"status"`
	TotalEstimated float64        `json:"total_estimated"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// EstimateItem is one priced line (quantity × unit price) within an estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
//
// TotalEstimated is derived (quantity × unit_price) and recomputed on every
// write; readers must treat it the same way they treat Estimate.TotalEstimated.
type EstimateItem struct {
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
