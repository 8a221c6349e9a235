package handlers

import (
	"errors"
	"net/http"

	request "costwatch/internal/adapter/http/dto/request"
	response "costwatch/internal/adapter/http/dto/response"
	"costwatch/internal/domain/entities"
	"costwatch/internal/usecase"
	"costwatch/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler handles HTTP requests for estimates and their line items,
// including version duplication.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Create(c.Request.Context(), payload.SiteID, payload.Title)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// GetEstimate returns the estimate with its line items.
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, items, err := h.usecase.GetByID(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateDetail(estimate, items))
}

func (h *EstimateHandler) ListEstimatesBySite(c *gin.Context) {
	estimates, err := h.usecase.ListBySiteID(c.Request.Context(), c.Param("site_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

func (h *EstimateHandler) UpdateEstimateStatus(c *gin.Context) {
	var payload request.UpdateEstimateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("estimate_id"), entities.EstimateStatus(payload.Status))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// DuplicateEstimate creates a new draft version of an existing estimate,
// copying every line item.
func (h *EstimateHandler) DuplicateEstimate(c *gin.Context) {
	var payload request.DuplicateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Duplicate(c.Request.Context(), c.Param("estimate_id"), payload.Title)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) AddEstimateItem(c *gin.Context) {
	var payload request.EstimateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	item, err := h.usecase.AddItem(c.Request.Context(), c.Param("estimate_id"), usecase.EstimateItemInput{
		CategoryID:  payload.CategoryID,
		Description: payload.Description,
		Quantity:    *payload.Quantity,
		Unit:        payload.Unit,
		UnitPrice:   *payload.UnitPrice,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimateItem(item))
}

func (h *EstimateHandler) GetEstimateItem(c *gin.Context) {
	item, err := h.usecase.GetItem(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateItem(item))
}

// UpdateEstimateItem applies a partial edit and recomputes the variance of
// every actual-cost record attached to the item.
func (h *EstimateHandler) UpdateEstimateItem(c *gin.Context) {
	var payload request.UpdateEstimateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	item, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("item_id"), usecase.UpdateEstimateItemInput{
		CategoryID:  payload.CategoryID,
		Description: payload.Description,
		Quantity:    payload.Quantity,
		Unit:        payload.Unit,
		UnitPrice:   payload.UnitPrice,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateItem(item))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidEstimateTitle),
		errors.Is(err, usecase.ErrInvalidEstimateStatus),
		errors.Is(err, usecase.ErrInvalidSiteID),
		errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrInvalidCategoryID),
		errors.Is(err, usecase.ErrNegativeQuantity),
		errors.Is(err, usecase.ErrNegativeUnitPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateTitleConflict):
		return pkg.NewDomainErrorSimple("ESTIMATE_TITLE_CONFLICT", "Estimate title already in use for this site", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_ITEM_NOT_FOUND", "Estimate item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSiteNotFound):
		return pkg.NewDomainErrorSimple("SITE_NOT_FOUND", "Site not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
