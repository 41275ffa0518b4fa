package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azharul-dev/islamichub-api/internal/models"
	"github.com/azharul-dev/islamichub-api/internal/service"
	appErrors "github.com/azharul-dev/islamichub-api/pkg/errors"
	"github.com/azharul-dev/islamichub-api/pkg/response"
)

// HadithHandler exposes hadith endpoints.
type HadithHandler struct {
	hadith *service.HadithService
}

// NewHadithHandler constructs HadithHandler.
func NewHadithHandler(hadith *service.HadithService) *HadithHandler {
	return &HadithHandler{hadith: hadith}
}

// List godoc
// @Summary List hadiths
// @Tags Hadith
// @Produce json
// @Param collection query string false "Filter by collection"
// @Param book query string false "Filter by book"
// @Param search query string false "Search text, narrator and tags"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /hadith [get]
func (h *HadithHandler) List(c *gin.Context) {
	var filter models.HadithFilter
	filter.Collection = c.Query("collection")
	filter.Book = c.Query("book")
	filter.Search = searchQuery(c)
	filter.Page, filter.Limit = pageParams(c)

	hadiths, pagination, err := h.hadith.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, hadiths, pagination)
}

// Get godoc
// @Summary Get one hadith
// @Tags Hadith
// @Produce json
// @Param id path string true "Hadith ID"
// @Success 200 {object} response.Envelope
// @Router /hadith/{id} [get]
func (h *HadithHandler) Get(c *gin.Context) {
	hadith, err := h.hadith.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, hadith, nil)
}

// Create godoc
// @Summary Create a hadith
// @Tags Hadith
// @Accept json
// @Produce json
// @Param payload body service.HadithRequest true "Hadith payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /hadith [post]
func (h *HadithHandler) Create(c *gin.Context) {
	var req service.HadithRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	hadith, demo, err := h.hadith.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if demo {
		response.Created(c, hadith, demoMeta("created"))
		return
	}
	response.Created(c, hadith)
}

// Update godoc
// @Summary Update a hadith
// @Tags Hadith
// @Accept json
// @Produce json
// @Param id path string true "Hadith ID"
// @Param payload body service.HadithRequest true "Hadith payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /hadith/{id} [put]
func (h *HadithHandler) Update(c *gin.Context) {
	var req service.HadithRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	hadith, demo, err := h.hadith.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if demo {
		response.JSON(c, http.StatusOK, hadith, nil, demoMeta("updated"))
		return
	}
	response.JSON(c, http.StatusOK, hadith, nil)
}

// Delete godoc
// @Summary Delete a hadith
// @Tags Hadith
// @Produce json
// @Param id path string true "Hadith ID"
// @Success 204
// @Security BearerAuth
// @Router /hadith/{id} [delete]
func (h *HadithHandler) Delete(c *gin.Context) {
	if err := h.hadith.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
