package entities

import "time"

// SiteStatus represents the lifecycle of a construction site.
//
// Domain notes:
//   - Status transitions are free-form: the field is informational and no
//     state machine is enforced on updates.
//   - A site is deleted only when no estimates reference it; that referential
//     constraint lives in the storage layer, not in-process.

type SiteStatus string

const (
	SiteStatusPlanning  SiteStatus = "planning"
	SiteStatusActive    SiteStatus = "active"
	SiteStatusOnHold    SiteStatus = "on_hold"
	SiteStatusCompleted SiteStatus = "completed"
	SiteStatusCancelled SiteStatus = "cancelled"
)

// Site is a construction site that owns cost estimates.
//
// Storage model (DynamoDB):
//   - PK: id
//
// BudgetLimit is optional; budget alerts are only evaluated for sites that
// carry a non-nil limit.
type Site struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Status      SiteStatus `json:"status"`
	BudgetLimit *float64   `json:"budget_limit,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
