package request

// CreateSiteRequest registers a construction site. BudgetLimit is optional;
// omitting it disables budget alerting for the site.
type CreateSiteRequest struct {
	Name        string   `json:"name" binding:"required"`
	BudgetLimit *float64 `json:"budget_limit"`
}

type UpdateSiteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateSiteBudgetRequest sets or clears the budget limit; a null value
// clears it.
type UpdateSiteBudgetRequest struct {
	BudgetLimit *float64 `json:"budget_limit"`
}
