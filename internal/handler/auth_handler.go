package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azharul-dev/islamichub-api/internal/models"
	"github.com/azharul-dev/islamichub-api/internal/service"
	"github.com/azharul-dev/islamichub-api/pkg/config"
	appErrors "github.com/azharul-dev/islamichub-api/pkg/errors"
	"github.com/azharul-dev/islamichub-api/pkg/response"
)

// AuthHandler exposes registration and session endpoints. The issued JWT
// travels both in the response body and in an HTTP-only cookie.
type AuthHandler struct {
	auth   *service.AuthService
	cookie config.JWTConfig
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth *service.AuthService, cookie config.JWTConfig) *AuthHandler {
	return &AuthHandler{auth: auth, cookie: cookie}
}

// Register godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.RegisterRequest true "Registration payload"
// @Success 201 {object} response.Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	session, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.setSessionCookie(c, session.Token, int(session.ExpiresIn))
	response.Created(c, session)
}

// Login godoc
// @Summary Authenticate and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	session, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.setSessionCookie(c, session.Token, int(session.ExpiresIn))
	response.JSON(c, http.StatusOK, session, nil)
}

// Logout godoc
// @Summary End the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.JSON(c, http.StatusOK, gin.H{"message": "logged out"}, nil)
}

// Me godoc
// @Summary Current account profile
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	user, err := h.auth.Me(c.Request.Context(), claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user, nil)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.CookieName, token, maxAge, "/", h.cookie.CookieDomain, h.cookie.CookieSecure, true)
}
