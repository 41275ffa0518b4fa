package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/azharul-dev/islamichub-api/pkg/errors"
	"github.com/azharul-dev/islamichub-api/pkg/response"
	"github.com/azharul-dev/islamichub-api/pkg/storage"
)

var allowedMediaExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
}

// MediaHandler exposes admin image uploads and signed downloads for
// product and article imagery.
type MediaHandler struct {
	store  *storage.MediaStorage
	signer *storage.SignedURLSigner
}

// NewMediaHandler constructs MediaHandler.
func NewMediaHandler(store *storage.MediaStorage, signer *storage.SignedURLSigner) *MediaHandler {
	return &MediaHandler{store: store, signer: signer}
}

// Upload godoc
// @Summary Upload an image
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /media [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "file is required"))
		return
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedMediaExts[ext]; !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unsupported image format"))
		return
	}

	file, err := header.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read upload"))
		return
	}
	defer file.Close() //nolint:errcheck

	name, err := h.store.Save(header.Filename, file)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store upload"))
		return
	}

	token, expiresAt, err := h.signer.Generate(name)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download url"))
		return
	}

	response.Created(c, gin.H{
		"file":       name,
		"url":        "/api/media/download?token=" + token,
		"expires_at": expiresAt,
	})
}

// Download godoc
// @Summary Download an image via a signed token
// @Tags Media
// @Produce octet-stream
// @Param token query string true "Signed token"
// @Success 200 {string} string "Image payload"
// @Router /media/download [get]
func (h *MediaHandler) Download(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "token is required"))
		return
	}
	name, _, err := h.signer.Parse(token)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "invalid or expired download token"))
		return
	}

	file, err := h.store.Open(name)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "file not found"))
		return
	}
	defer file.Close() //nolint:errcheck

	info, err := file.Stat()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read file"))
		return
	}

	c.Header("Content-Disposition", "inline; filename="+name)
	http.ServeContent(c.Writer, c.Request, name, info.ModTime(), file)
}
