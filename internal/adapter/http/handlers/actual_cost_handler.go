package handlers

import (
	"errors"
	"net/http"

	request "costwatch/internal/adapter/http/dto/request"
	response "costwatch/internal/adapter/http/dto/response"
	"costwatch/internal/usecase"
	"costwatch/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidActualCostPayload = pkg.NewDomainErrorSimple("INVALID_ACTUAL_COST_INPUT", "Invalid actual cost payload", http.StatusBadRequest)

// ActualCostHandler handles HTTP requests for actual-cost records. Variance
// fields are derived by the use case, never accepted from the client.

type ActualCostHandler struct {
	usecase usecase.IActualCostUseCase
}

func NewActualCostHandler(uc usecase.IActualCostUseCase) *ActualCostHandler {
	return &ActualCostHandler{usecase: uc}
}

func (h *ActualCostHandler) RecordActualCost(c *gin.Context) {
	var payload request.RecordActualCostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActualCostPayload.HTTPStatus, errInvalidActualCostPayload.ToHTTPError())
		return
	}

	ac, err := h.usecase.Record(c.Request.Context(), usecase.RecordActualCostInput{
		ItemID:          c.Param("item_id"),
		ActualUnitPrice: *payload.ActualUnitPrice,
		ActualQuantity:  payload.ActualQuantity,
		RecordedAt:      payload.RecordedAt,
	})
	if err != nil {
		appErr := mapActualCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromActualCost(ac))
}

func (h *ActualCostHandler) CorrectActualCost(c *gin.Context) {
	var payload request.CorrectActualCostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActualCostPayload.HTTPStatus, errInvalidActualCostPayload.ToHTTPError())
		return
	}

	ac, err := h.usecase.Correct(c.Request.Context(), c.Param("actual_cost_id"), usecase.CorrectActualCostInput{
		ActualUnitPrice:     payload.ActualUnitPrice,
		ActualQuantity:      payload.ActualQuantity,
		ClearActualQuantity: payload.ClearActualQuantity,
	})
	if err != nil {
		appErr := mapActualCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActualCost(ac))
}

func (h *ActualCostHandler) GetActualCost(c *gin.Context) {
	ac, err := h.usecase.GetByID(c.Request.Context(), c.Param("actual_cost_id"))
	if err != nil {
		appErr := mapActualCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActualCost(ac))
}

func (h *ActualCostHandler) ListActualCostsByItem(c *gin.Context) {
	costs, err := h.usecase.ListByItemID(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		appErr := mapActualCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActualCosts(costs))
}

func mapActualCostError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidActualCostID),
		errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrNegativeActualPrice),
		errors.Is(err, usecase.ErrNegativeActualQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrActualCostNotFound):
		return pkg.NewDomainErrorSimple("ACTUAL_COST_NOT_FOUND", "Actual cost not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemReferenceMissing):
		return pkg.NewDomainErrorSimple("ESTIMATE_ITEM_NOT_FOUND", "Estimate item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
