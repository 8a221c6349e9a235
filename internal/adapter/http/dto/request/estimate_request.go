package request

type CreateEstimateRequest struct {
	SiteID string `json:"site_id" binding:"required"`
	Title  string `json:"title" binding:"required"`
}

type DuplicateEstimateRequest struct {
	Title string `json:"title" binding:"required"`
}

type UpdateEstimateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// EstimateItemRequest is one priced line. Quantity and UnitPrice are pointers
// so a zero value binds without tripping `required`.
type EstimateItemRequest struct {
	CategoryID  string   `json:"category_id" binding:"required"`
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity" binding:"required"`
	Unit        string   `json:"unit"`
	UnitPrice   *float64 `json:"unit_price" binding:"required"`
}

// UpdateEstimateItemRequest is a partial edit; absent fields stay unchanged.
type UpdateEstimateItemRequest struct {
	CategoryID  *string  `json:"category_id"`
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`
	Unit        *string  `json:"unit"`
	UnitPrice   *float64 `json:"unit_price"`
}
