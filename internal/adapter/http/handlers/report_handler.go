package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"costwatch/internal/domain/entities"
	"costwatch/internal/usecase"
	"costwatch/pkg"

	"github.com/gin-gonic/gin"
)

var errUnsupportedReportFormat = pkg.NewDomainErrorSimple("UNSUPPORTED_REPORT_FORMAT", "Unsupported report format", http.StatusBadRequest)

// ReportHandler assembles report payloads and optionally renders them as a
// downloadable CSV artifact (?format=csv).

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) EstimateReport(c *gin.Context) {
	h.serveReport(c, func(ctx context.Context) (entities.ReportPayload, error) {
		return h.usecase.BuildEstimateReport(ctx, c.Param("estimate_id"))
	})
}

func (h *ReportHandler) VarianceReport(c *gin.Context) {
	h.serveReport(c, func(ctx context.Context) (entities.ReportPayload, error) {
		return h.usecase.BuildVarianceReport(ctx, c.Param("site_id"))
	})
}

func (h *ReportHandler) SiteReport(c *gin.Context) {
	h.serveReport(c, func(ctx context.Context) (entities.ReportPayload, error) {
		return h.usecase.BuildSiteReport(ctx, c.Param("site_id"))
	})
}

func (h *ReportHandler) serveReport(c *gin.Context, build func(ctx context.Context) (entities.ReportPayload, error)) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		c.JSON(errUnsupportedReportFormat.HTTPStatus, errUnsupportedReportFormat.ToHTTPError())
		return
	}

	payload, err := build(c.Request.Context())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if format == "json" {
		c.JSON(http.StatusOK, payload)
		return
	}

	artifact, filename, err := h.usecase.Render(c.Request.Context(), payload)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", artifact)
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidSiteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSiteNotFound):
		return pkg.NewDomainErrorSimple("SITE_NOT_FOUND", "Site not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRendererNotConfigured):
		return pkg.NewDomainErrorSimple("RENDERER_NOT_CONFIGURED", "Report renderer not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
