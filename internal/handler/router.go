package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/azharul-dev/islamichub-api/internal/middleware"
	"github.com/azharul-dev/islamichub-api/internal/models"
	"github.com/azharul-dev/islamichub-api/internal/service"
	"github.com/azharul-dev/islamichub-api/pkg/config"
	"github.com/azharul-dev/islamichub-api/pkg/logger"
	corsmiddleware "github.com/azharul-dev/islamichub-api/pkg/middleware/cors"
	reqidmiddleware "github.com/azharul-dev/islamichub-api/pkg/middleware/requestid"
	"github.com/azharul-dev/islamichub-api/pkg/response"
)

// Handlers bundles every endpoint group for router assembly.
type Handlers struct {
	Auth      *AuthHandler
	Quran     *QuranHandler
	Hadith    *HadithHandler
	News      *NewsHandler
	Products  *ProductHandler
	Videos    *VideoHandler
	Navbar    *NavbarHandler
	Orders    *OrderHandler
	Bookmarks *BookmarkHandler
	Users     *UserHandler
	Media     *MediaHandler
	Metrics   *MetricsHandler
}

// NewRouter assembles the gin engine: ambient middleware, public content
// reads, authenticated storefront routes and admin-gated mutations.
func NewRouter(cfg *config.Config, logr *zap.Logger, auth *service.AuthService, metrics *service.MetricsService, h Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))
	r.Use(response.WithMeta())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", h.Metrics.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireUser := middleware.JWT(auth, cfg.JWT.CookieName)
	requireAdmin := middleware.RequireRoles(models.RoleAdmin)

	api := r.Group(cfg.APIPrefix)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/logout", h.Auth.Logout)
		authGroup.GET("/me", requireUser, h.Auth.Me)
	}

	quran := api.Group("/quran")
	{
		quran.GET("", h.Quran.List)
		quran.GET("/:id", h.Quran.Get)
		quran.POST("", requireUser, requireAdmin, h.Quran.Create)
		quran.PUT("/:id", requireUser, requireAdmin, h.Quran.Update)
		quran.DELETE("/:id", requireUser, requireAdmin, h.Quran.Delete)
	}

	hadith := api.Group("/hadith")
	{
		hadith.GET("", h.Hadith.List)
		hadith.GET("/:id", h.Hadith.Get)
		hadith.POST("", requireUser, requireAdmin, h.Hadith.Create)
		hadith.PUT("/:id", requireUser, requireAdmin, h.Hadith.Update)
		hadith.DELETE("/:id", requireUser, requireAdmin, h.Hadith.Delete)
	}

	news := api.Group("/news")
	{
		news.GET("", h.News.List)
		news.GET("/:id", h.News.Get)
		news.POST("/:id/views", h.News.RecordView)
		news.POST("", requireUser, requireAdmin, h.News.Create)
		news.PUT("/:id", requireUser, requireAdmin, h.News.Update)
		news.DELETE("/:id", requireUser, requireAdmin, h.News.Delete)
	}

	products := api.Group("/products")
	{
		products.GET("", h.Products.List)
		products.GET("/export", requireUser, requireAdmin, h.Products.Export)
		products.GET("/:id", h.Products.Get)
		products.POST("", requireUser, requireAdmin, h.Products.Create)
		products.PUT("/:id", requireUser, requireAdmin, h.Products.Update)
		products.DELETE("/:id", requireUser, requireAdmin, h.Products.Delete)
	}

	videos := api.Group("/videos")
	{
		videos.GET("", h.Videos.List)
		videos.GET("/:id", h.Videos.Get)
		videos.POST("/:id/views", h.Videos.RecordView)
		videos.POST("", requireUser, requireAdmin, h.Videos.Create)
		videos.PUT("/:id", requireUser, requireAdmin, h.Videos.Update)
		videos.DELETE("/:id", requireUser, requireAdmin, h.Videos.Delete)
	}

	navbar := api.Group("/navbar")
	{
		navbar.GET("", h.Navbar.List)
		navbar.GET("/:id", h.Navbar.Get)
		navbar.POST("", requireUser, requireAdmin, h.Navbar.Create)
		navbar.PUT("/:id", requireUser, requireAdmin, h.Navbar.Update)
		navbar.DELETE("/:id", requireUser, requireAdmin, h.Navbar.Delete)
	}

	orders := api.Group("/orders", requireUser)
	{
		orders.GET("", h.Orders.List)
		orders.GET("/:id", h.Orders.Get)
		orders.GET("/:id/invoice", h.Orders.Invoice)
		orders.POST("", h.Orders.Create)
		orders.PUT("/:id/status", requireAdmin, h.Orders.UpdateStatus)
		orders.DELETE("/:id", requireAdmin, h.Orders.Delete)
	}

	bookmarks := api.Group("/bookmarks", requireUser)
	{
		bookmarks.GET("", h.Bookmarks.List)
		bookmarks.POST("", h.Bookmarks.Create)
		bookmarks.DELETE("/:id", h.Bookmarks.Delete)
	}

	users := api.Group("/users", requireUser)
	{
		users.GET("", requireAdmin, h.Users.List)
		users.GET("/:id", middleware.RBAC(string(models.RoleAdmin), "SELF"), h.Users.Get)
		users.PUT("/:id", requireAdmin, h.Users.Update)
		users.DELETE("/:id", requireAdmin, h.Users.Delete)
	}

	media := api.Group("/media")
	{
		media.GET("/download", h.Media.Download)
		media.POST("", requireUser, requireAdmin, h.Media.Upload)
	}

	api.GET("/metrics/snapshot", requireUser, requireAdmin, h.Metrics.Snapshot)

	return r
}
