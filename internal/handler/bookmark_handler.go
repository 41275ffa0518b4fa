package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azharul-dev/islamichub-api/internal/models"
	"github.com/azharul-dev/islamichub-api/internal/service"
	appErrors "github.com/azharul-dev/islamichub-api/pkg/errors"
	"github.com/azharul-dev/islamichub-api/pkg/response"
)

// BookmarkHandler exposes per-user bookmark endpoints.
type BookmarkHandler struct {
	bookmarks *service.BookmarkService
}

// NewBookmarkHandler constructs BookmarkHandler.
func NewBookmarkHandler(bookmarks *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

// List godoc
// @Summary List the caller's bookmarks
// @Tags Bookmarks
// @Produce json
// @Param contentType query string false "Filter by content type"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /bookmarks [get]
func (h *BookmarkHandler) List(c *gin.Context) {
	var filter models.BookmarkFilter
	filter.ContentType = c.Query("contentType")
	filter.Page, filter.Limit = pageParams(c)

	bookmarks, pagination, err := h.bookmarks.List(c.Request.Context(), userInfoFromContext(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bookmarks, pagination)
}

// Create godoc
// @Summary Pin a content record
// @Tags Bookmarks
// @Accept json
// @Produce json
// @Param payload body service.BookmarkRequest true "Bookmark payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /bookmarks [post]
func (h *BookmarkHandler) Create(c *gin.Context) {
	var req service.BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	bookmark, err := h.bookmarks.Create(c.Request.Context(), userInfoFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, bookmark)
}

// Delete godoc
// @Summary Remove a bookmark
// @Tags Bookmarks
// @Produce json
// @Param id path string true "Bookmark ID"
// @Success 204
// @Security BearerAuth
// @Router /bookmarks/{id} [delete]
func (h *BookmarkHandler) Delete(c *gin.Context) {
	if err := h.bookmarks.Delete(c.Request.Context(), userInfoFromContext(c), isAdmin(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
