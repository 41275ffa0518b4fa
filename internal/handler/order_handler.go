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

// OrderHandler exposes storefront order endpoints. Customers see only
// their own orders; admins see everything.
type OrderHandler struct {
	orders *service.OrderService
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List godoc
// @Summary List orders
// @Tags Orders
// @Produce json
// @Param status query string false "Filter by status"
// @Param search query string false "Search order number and customer"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var filter models.OrderFilter
	filter.Status = c.Query("status")
	filter.Search = searchQuery(c)
	filter.Page, filter.Limit = pageParams(c)
	if !isAdmin(c) {
		filter.UserID = userInfoFromContext(c).ID
	}

	orders, pagination, err := h.orders.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, orders, pagination)
}

// Get godoc
// @Summary Get one order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !isAdmin(c) && order.UserID.Hex() != userInfoFromContext(c).ID {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "order belongs to another customer"))
		return
	}
	response.JSON(c, http.StatusOK, order, nil)
}

// Create godoc
// @Summary Place an order
// @Tags Orders
// @Accept json
// @Produce json
// @Param payload body service.OrderRequest true "Order payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req service.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	order, err := h.orders.Create(c.Request.Context(), req, userInfoFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, order)
}

// UpdateStatus godoc
// @Summary Update an order's status
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param payload body service.UpdateOrderStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	order, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, order, nil)
}

// Invoice godoc
// @Summary Download an order invoice as PDF
// @Tags Orders
// @Produce application/pdf
// @Param id path string true "Order ID"
// @Success 200 {string} string "PDF payload"
// @Security BearerAuth
// @Router /orders/{id}/invoice [get]
func (h *OrderHandler) Invoice(c *gin.Context) {
	payload, filename, err := h.orders.Invoice(c.Request.Context(), c.Param("id"), userInfoFromContext(c), isAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", payload)
}

// Delete godoc
// @Summary Delete an order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 204
// @Security BearerAuth
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
