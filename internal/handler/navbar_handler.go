package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azharul-dev/islamichub-api/internal/models"
	"github.com/azharul-dev/islamichub-api/internal/service"
	appErrors "github.com/azharul-dev/islamichub-api/pkg/errors"
	"github.com/azharul-dev/islamichub-api/pkg/response"
)

// NavbarHandler exposes site navigation endpoints.
type NavbarHandler struct {
	navbar *service.NavbarService
}

// NewNavbarHandler constructs NavbarHandler.
func NewNavbarHandler(navbar *service.NavbarService) *NavbarHandler {
	return &NavbarHandler{navbar: navbar}
}

// List godoc
// @Summary List navigation links
// @Tags Navbar
// @Produce json
// @Param search query string false "Search labels"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /navbar [get]
func (h *NavbarHandler) List(c *gin.Context) {
	var filter models.NavbarFilter
	filter.Search = searchQuery(c)
	filter.Page, filter.Limit = pageParams(c)

	links, pagination, err := h.navbar.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, links, pagination)
}

// Get godoc
// @Summary Get one navigation link
// @Tags Navbar
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {object} response.Envelope
// @Router /navbar/{id} [get]
func (h *NavbarHandler) Get(c *gin.Context) {
	link, err := h.navbar.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, link, nil)
}

// Create godoc
// @Summary Create a navigation link
// @Tags Navbar
// @Accept json
// @Produce json
// @Param payload body service.NavLinkRequest true "Link payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /navbar [post]
func (h *NavbarHandler) Create(c *gin.Context) {
	var req service.NavLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	link, demo, err := h.navbar.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if demo {
		response.Created(c, link, demoMeta("created"))
		return
	}
	response.Created(c, link)
}

// Update godoc
// @Summary Update a navigation link
// @Tags Navbar
// @Accept json
// @Produce json
// @Param id path string true "Link ID"
// @Param payload body service.NavLinkRequest true "Link payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /navbar/{id} [put]
func (h *NavbarHandler) Update(c *gin.Context) {
	var req service.NavLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	link, demo, err := h.navbar.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if demo {
		response.JSON(c, http.StatusOK, link, nil, demoMeta("updated"))
		return
	}
	response.JSON(c, http.StatusOK, link, nil)
}

// Delete godoc
// @Summary Delete a navigation link
// @Tags Navbar
// @Produce json
// @Param id path string true "Link ID"
// @Success 204
// @Security BearerAuth
// @Router /navbar/{id} [delete]
func (h *NavbarHandler) Delete(c *gin.Context) {
	if err := h.navbar.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
