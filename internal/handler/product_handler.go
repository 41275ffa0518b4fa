package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azharul-dev/islamichub-api/internal/models"
	"github.com/azharul-dev/islamichub-api/internal/service"
	appErrors "github.com/azharul-dev/islamichub-api/pkg/errors"
	"github.com/azharul-dev/islamichub-api/pkg/response"
)

// ProductHandler exposes catalog endpoints.
type ProductHandler struct {
	products *service.ProductService
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List godoc
// @Summary List catalog products
// @Tags Products
// @Produce json
// @Param category query string false "Filter by category"
// @Param featured query bool false "Filter featured products"
// @Param active query bool false "Filter active products"
// @Param search query string false "Search name, description and SKU"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	filter := h.filterFromQuery(c)
	products, pagination, err := h.products.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, products, pagination)
}

// Get godoc
// @Summary Get one product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Envelope
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, product, nil)
}

// Export godoc
// @Summary Export the catalog as CSV
// @Tags Products
// @Produce text/csv
// @Param category query string false "Filter by category"
// @Param active query bool false "Filter active products"
// @Success 200 {string} string "CSV payload"
// @Security BearerAuth
// @Router /products/export [get]
func (h *ProductHandler) Export(c *gin.Context) {
	filter := h.filterFromQuery(c)
	payload, filename, err := h.products.ExportCSV(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", payload)
}

// Create godoc
// @Summary Create a product
// @Tags Products
// @Accept json
// @Produce json
// @Param payload body service.ProductRequest true "Product payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	product, demo, err := h.products.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if demo {
		response.Created(c, product, demoMeta("created"))
		return
	}
	response.Created(c, product)
}

// Update godoc
// @Summary Update a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param payload body service.ProductRequest true "Product payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	product, demo, err := h.products.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if demo {
		response.JSON(c, http.StatusOK, product, nil, demoMeta("updated"))
		return
	}
	response.JSON(c, http.StatusOK, product, nil)
}

// Delete godoc
// @Summary Delete a product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 204
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (h *ProductHandler) filterFromQuery(c *gin.Context) models.ProductFilter {
	var filter models.ProductFilter
	filter.Category = c.Query("category")
	filter.Featured = boolQuery(c, "featured")
	filter.Active = boolQuery(c, "active")
	filter.Search = searchQuery(c)
	filter.Page, filter.Limit = pageParams(c)
	return filter
}
