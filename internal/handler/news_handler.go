package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azharul-dev/islamichub-api/internal/models"
	"github.com/azharul-dev/islamichub-api/internal/service"
	appErrors "github.com/azharul-dev/islamichub-api/pkg/errors"
	"github.com/azharul-dev/islamichub-api/pkg/jobs"
	"github.com/azharul-dev/islamichub-api/pkg/response"
)

// NewsHandler exposes news article endpoints.
type NewsHandler struct {
	news  *service.NewsService
	views *jobs.ViewQueue
}

// NewNewsHandler constructs NewsHandler.
func NewNewsHandler(news *service.NewsService, views *jobs.ViewQueue) *NewsHandler {
	return &NewsHandler{news: news, views: views}
}

// List godoc
// @Summary List news articles
// @Tags News
// @Produce json
// @Param category query string false "Filter by category"
// @Param featured query bool false "Filter featured articles"
// @Param search query string false "Search title, excerpt and tags"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /news [get]
func (h *NewsHandler) List(c *gin.Context) {
	var filter models.NewsFilter
	filter.Category = c.Query("category")
	filter.Featured = boolQuery(c, "featured")
	filter.Search = searchQuery(c)
	filter.Page, filter.Limit = pageParams(c)

	articles, pagination, err := h.news.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, articles, pagination)
}

// Get godoc
// @Summary Get one article
// @Tags News
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} response.Envelope
// @Router /news/{id} [get]
func (h *NewsHandler) Get(c *gin.Context) {
	article, err := h.news.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, article, nil)
}

// RecordView godoc
// @Summary Record one view of an article
// @Tags News
// @Produce json
// @Param id path string true "Article ID"
// @Success 202 {object} response.Envelope
// @Router /news/{id}/views [post]
func (h *NewsHandler) RecordView(c *gin.Context) {
	if h.views != nil {
		if err := h.views.Record(jobs.ViewEvent{Kind: jobs.KindNews, ID: c.Param("id")}); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record view"))
			return
		}
	}
	response.JSON(c, http.StatusAccepted, gin.H{"message": "view recorded"}, nil)
}

// Create godoc
// @Summary Create an article
// @Tags News
// @Accept json
// @Produce json
// @Param payload body service.NewsRequest true "Article payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /news [post]
func (h *NewsHandler) Create(c *gin.Context) {
	var req service.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	article, demo, err := h.news.Create(c.Request.Context(), req, userInfoFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	if demo {
		response.Created(c, article, demoMeta("created"))
		return
	}
	response.Created(c, article)
}

// Update godoc
// @Summary Update an article
// @Tags News
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param payload body service.NewsRequest true "Article payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /news/{id} [put]
func (h *NewsHandler) Update(c *gin.Context) {
	var req service.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	article, demo, err := h.news.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if demo {
		response.JSON(c, http.StatusOK, article, nil, demoMeta("updated"))
		return
	}
	response.JSON(c, http.StatusOK, article, nil)
}

// Delete godoc
// @Summary Delete an article
// @Tags News
// @Produce json
// @Param id path string true "Article ID"
// @Success 204
// @Security BearerAuth
// @Router /news/{id} [delete]
func (h *NewsHandler) Delete(c *gin.Context) {
	if err := h.news.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
