package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"costwatch/internal/usecase"
	"costwatch/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAnalyticsQuery = pkg.NewDomainErrorSimple("INVALID_ANALYTICS_QUERY", "Invalid analytics query parameters", http.StatusBadRequest)

	// Accepted layouts for date_from / date_to. A bare date means midnight UTC.
	dateLayouts = []string{time.RFC3339, "2006-01-02"}
)

// AnalyticsHandler exposes the aggregation and ranking queries. All results
// are derived on the fly from stored records; repeated calls with the same
// data return identical output.

type AnalyticsHandler struct {
	aggregation usecase.IAggregationUseCase
	alerts      usecase.IAlertUseCase
}

func NewAnalyticsHandler(aggregation usecase.IAggregationUseCase, alerts usecase.IAlertUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{aggregation: aggregation, alerts: alerts}
}

func (h *AnalyticsHandler) VarianceByCategory(c *gin.Context) {
	filter, ok := parseAggregationFilter(c)
	if !ok {
		return
	}

	rollups, err := h.aggregation.ByCategory(c.Request.Context(), filter)
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, rollups)
}

func (h *AnalyticsHandler) VarianceBySite(c *gin.Context) {
	filter, ok := parseAggregationFilter(c)
	if !ok {
		return
	}

	rollups, err := h.aggregation.BySite(c.Request.Context(), filter)
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, rollups)
}

func (h *AnalyticsHandler) Trends(c *gin.Context) {
	filter, ok := parseAggregationFilter(c)
	if !ok {
		return
	}

	daily, cumulative, err := h.aggregation.Trends(c.Request.Context(), filter)
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"daily": daily, "cumulative": cumulative})
}

func (h *AnalyticsHandler) ItemVariances(c *gin.Context) {
	filter, ok := parseAggregationFilter(c)
	if !ok {
		return
	}

	items, err := h.aggregation.ItemVariances(c.Request.Context(), filter)
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, items)
}

// TopVariances ranks items by variance. Query params: limit (default set by
// the use case), direction (over, under, both).
func (h *AnalyticsHandler) TopVariances(c *gin.Context) {
	filter, ok := parseAggregationFilter(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(errInvalidAnalyticsQuery.HTTPStatus, errInvalidAnalyticsQuery.ToHTTPError())
			return
		}
		limit = parsed
	}

	items, err := h.alerts.TopVariances(c.Request.Context(), filter, limit, usecase.Direction(c.Query("direction")))
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, items)
}

// Alerts returns the variance and budget alerts for the given threshold
// percentage (default 10).
func (h *AnalyticsHandler) Alerts(c *gin.Context) {
	threshold := 10.0
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(errInvalidAnalyticsQuery.HTTPStatus, errInvalidAnalyticsQuery.ToHTTPError())
			return
		}
		threshold = parsed
	}

	alerts, err := h.alerts.Alerts(c.Request.Context(), threshold)
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, alerts)
}

// parseAggregationFilter reads the shared filter query params. On a bad date
// it writes the error response itself and reports ok=false.
func parseAggregationFilter(c *gin.Context) (usecase.AggregationFilter, bool) {
	filter := usecase.AggregationFilter{
		SiteID:     c.Query("site_id"),
		EstimateID: c.Query("estimate_id"),
		CategoryID: c.Query("category_id"),
	}

	from, ok := parseDateParam(c, "date_from")
	if !ok {
		return usecase.AggregationFilter{}, false
	}
	to, ok := parseDateParam(c, "date_to")
	if !ok {
		return usecase.AggregationFilter{}, false
	}
	filter.DateFrom = from
	filter.DateTo = to
	return filter, true
}

func parseDateParam(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}
	c.JSON(errInvalidAnalyticsQuery.HTTPStatus, errInvalidAnalyticsQuery.ToHTTPError())
	return nil, false
}

func mapAnalyticsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidDirection),
		errors.Is(err, usecase.ErrInvalidThreshold):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSiteNotFound):
		return pkg.NewDomainErrorSimple("SITE_NOT_FOUND", "Site not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
