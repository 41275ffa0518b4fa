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

// VideoHandler exposes video endpoints.
type VideoHandler struct {
	videos *service.VideoService
	views  *jobs.ViewQueue
}

// NewVideoHandler constructs VideoHandler.
func NewVideoHandler(videos *service.VideoService, views *jobs.ViewQueue) *VideoHandler {
	return &VideoHandler{videos: videos, views: views}
}

// List godoc
// @Summary List videos
// @Tags Videos
// @Produce json
// @Param category query string false "Filter by category"
// @Param search query string false "Search title, description and tags"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	var filter models.VideoFilter
	filter.Category = c.Query("category")
	filter.Search = searchQuery(c)
	filter.Page, filter.Limit = pageParams(c)

	videos, pagination, err := h.videos.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, videos, pagination)
}

// Get godoc
// @Summary Get one video
// @Tags Videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} response.Envelope
// @Router /videos/{id} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	video, err := h.videos.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, video, nil)
}

// RecordView godoc
// @Summary Record one view of a video
// @Tags Videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 202 {object} response.Envelope
// @Router /videos/{id}/views [post]
func (h *VideoHandler) RecordView(c *gin.Context) {
	if h.views != nil {
		if err := h.views.Record(jobs.ViewEvent{Kind: jobs.KindVideo, ID: c.Param("id")}); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record view"))
			return
		}
	}
	response.JSON(c, http.StatusAccepted, gin.H{"message": "view recorded"}, nil)
}

// Create godoc
// @Summary Create a video
// @Tags Videos
// @Accept json
// @Produce json
// @Param payload body service.VideoRequest true "Video payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	var req service.VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	video, demo, err := h.videos.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if demo {
		response.Created(c, video, demoMeta("created"))
		return
	}
	response.Created(c, video)
}

// Update godoc
// @Summary Update a video
// @Tags Videos
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param payload body service.VideoRequest true "Video payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /videos/{id} [put]
func (h *VideoHandler) Update(c *gin.Context) {
	var req service.VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	video, demo, err := h.videos.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if demo {
		response.JSON(c, http.StatusOK, video, nil, demoMeta("updated"))
		return
	}
	response.JSON(c, http.StatusOK, video, nil)
}

// Delete godoc
// @Summary Delete a video
// @Tags Videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 204
// @Security BearerAuth
// @Router /videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.videos.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
