package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/azharul-dev/islamichub-api/internal/models"
	"github.com/azharul-dev/islamichub-api/internal/service"
	appErrors "github.com/azharul-dev/islamichub-api/pkg/errors"
	"github.com/azharul-dev/islamichub-api/pkg/response"
)

// QuranHandler exposes surah endpoints.
type QuranHandler struct {
	quran *service.QuranService
}

// NewQuranHandler constructs QuranHandler.
func NewQuranHandler(quran *service.QuranService) *QuranHandler {
	return &QuranHandler{quran: quran}
}

// List godoc
// @Summary List surahs
// @Tags Quran
// @Produce json
// @Param surah query int false "Fetch one surah by its number"
// @Param revelationPlace query string false "Filter by revelation place"
// @Param search query string false "Search surah names"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /quran [get]
func (h *QuranHandler) List(c *gin.Context) {
	if raw := c.Query("surah"); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "surah must be a number"))
			return
		}
		surah, err := h.quran.GetBySurahNumber(c.Request.Context(), number)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, surah, nil)
		return
	}

	var filter models.QuranFilter
	filter.RevelationPlace = c.Query("revelationPlace")
	filter.Search = searchQuery(c)
	filter.Page, filter.Limit = pageParams(c)

	surahs, pagination, fromCache, err := h.quran.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	if fromCache {
		response.SetCacheHit(c, true)
	}
	response.JSON(c, http.StatusOK, surahs, pagination)
}

// Get godoc
// @Summary Get one surah
// @Tags Quran
// @Produce json
// @Param id path string true "Surah ID"
// @Success 200 {object} response.Envelope
// @Router /quran/{id} [get]
func (h *QuranHandler) Get(c *gin.Context) {
	surah, err := h.quran.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, surah, nil)
}

// Create godoc
// @Summary Create a surah
// @Tags Quran
// @Accept json
// @Produce json
// @Param payload body service.SurahRequest true "Surah payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /quran [post]
func (h *QuranHandler) Create(c *gin.Context) {
	var req service.SurahRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	surah, demo, err := h.quran.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if demo {
		response.Created(c, surah, demoMeta("created"))
		return
	}
	response.Created(c, surah)
}

// Update godoc
// @Summary Update a surah
// @Tags Quran
// @Accept json
// @Produce json
// @Param id path string true "Surah ID"
// @Param payload body service.SurahRequest true "Surah payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /quran/{id} [put]
func (h *QuranHandler) Update(c *gin.Context) {
	var req service.SurahRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	surah, demo, err := h.quran.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if demo {
		response.JSON(c, http.StatusOK, surah, nil, demoMeta("updated"))
		return
	}
	response.JSON(c, http.StatusOK, surah, nil)
}

// Delete godoc
// @Summary Delete a surah
// @Tags Quran
// @Produce json
// @Param id path string true "Surah ID"
// @Success 204
// @Security BearerAuth
// @Router /quran/{id} [delete]
func (h *QuranHandler) Delete(c *gin.Context) {
	if err := h.quran.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
