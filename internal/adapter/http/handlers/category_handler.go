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

var errInvalidCategoryPayload = pkg.NewDomainErrorSimple("INVALID_CATEGORY_INPUT", "Invalid category payload", http.StatusBadRequest)

type CategoryHandler struct {
	usecase usecase.ICategoryUseCase
}

func NewCategoryHandler(uc usecase.ICategoryUseCase) *CategoryHandler {
	return &CategoryHandler{usecase: uc}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var payload request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCategoryPayload.HTTPStatus, errInvalidCategoryPayload.ToHTTPError())
		return
	}

	cat, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.SortOrder)
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCategory(cat))
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	cats, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCategories(cats))
}

func mapCategoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCategoryName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
