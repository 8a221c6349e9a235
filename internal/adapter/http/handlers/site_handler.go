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

var errInvalidSitePayload = pkg.NewDomainErrorSimple("INVALID_SITE_INPUT", "Invalid site payload", http.StatusBadRequest)

// SiteHandler handles HTTP requests for construction sites.

type SiteHandler struct {
	usecase usecase.ISiteUseCase
}

func NewSiteHandler(uc usecase.ISiteUseCase) *SiteHandler {
	return &SiteHandler{usecase: uc}
}

func (h *SiteHandler) CreateSite(c *gin.Context) {
	var payload request.CreateSiteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSitePayload.HTTPStatus, errInvalidSitePayload.ToHTTPError())
		return
	}

	site, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.BudgetLimit)
	if err != nil {
		appErr := mapSiteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSite(site))
}

func (h *SiteHandler) GetSite(c *gin.Context) {
	site, err := h.usecase.GetByID(c.Request.Context(), c.Param("site_id"))
	if err != nil {
		appErr := mapSiteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSite(site))
}

func (h *SiteHandler) ListSites(c *gin.Context) {
	sites, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSiteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSites(sites))
}

func (h *SiteHandler) UpdateSiteStatus(c *gin.Context) {
	var payload request.UpdateSiteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSitePayload.HTTPStatus, errInvalidSitePayload.ToHTTPError())
		return
	}

	site, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("site_id"), entities.SiteStatus(payload.Status))
	if err != nil {
		appErr := mapSiteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSite(site))
}

func (h *SiteHandler) SetSiteBudget(c *gin.Context) {
	var payload request.UpdateSiteBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSitePayload.HTTPStatus, errInvalidSitePayload.ToHTTPError())
		return
	}

	site, err := h.usecase.SetBudgetLimit(c.Request.Context(), c.Param("site_id"), payload.BudgetLimit)
	if err != nil {
		appErr := mapSiteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSite(site))
}

func mapSiteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSiteID),
		errors.Is(err, usecase.ErrInvalidSiteName),
		errors.Is(err, usecase.ErrInvalidSiteStatus),
		errors.Is(err, usecase.ErrNegativeBudgetLimit):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSiteNotFound):
		return pkg.NewDomainErrorSimple("SITE_NOT_FOUND", "Site not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
