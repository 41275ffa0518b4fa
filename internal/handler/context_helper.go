package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/azharul-dev/islamichub-api/internal/middleware"
	"github.com/azharul-dev/islamichub-api/internal/models"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

func userInfoFromContext(c *gin.Context) models.UserInfo {
	claims := claimsFromContext(c)
	if claims == nil {
		return models.UserInfo{}
	}
	return models.UserInfo{ID: claims.UserID, Name: claims.Name, Email: claims.Email, Role: claims.Role}
}

func isAdmin(c *gin.Context) bool {
	claims := claimsFromContext(c)
	return claims != nil && claims.Role == models.RoleAdmin
}

func pageParams(c *gin.Context) (int, int) {
	page := 1
	limit := models.DefaultPageSize
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(models.DefaultPageSize))); err == nil {
		limit = v
	}
	return page, limit
}

func boolQuery(c *gin.Context, name string) *bool {
	switch c.Query(name) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

func searchQuery(c *gin.Context) string {
	return strings.TrimSpace(c.Query("search"))
}

// demoMeta marks a write that was acknowledged without persistence.
func demoMeta(action string) map[string]interface{} {
	return map[string]interface{}{
		"demo_mode": true,
		"message":   action + " (demo mode)",
	}
}
