package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	_ "github.com/azharul-dev/islamichub-api/api/swagger"
	"github.com/azharul-dev/islamichub-api/internal/handler"
	"github.com/azharul-dev/islamichub-api/internal/repository"
	"github.com/azharul-dev/islamichub-api/internal/service"
	"github.com/azharul-dev/islamichub-api/pkg/cache"
	"github.com/azharul-dev/islamichub-api/pkg/config"
	"github.com/azharul-dev/islamichub-api/pkg/database"
	"github.com/azharul-dev/islamichub-api/pkg/jobs"
	"github.com/azharul-dev/islamichub-api/pkg/logger"
	"github.com/azharul-dev/islamichub-api/pkg/storage"
)

// @title Islamic Hub API
// @version 1.0.0
// @description Content and storefront backend: Quran, Hadith, news, videos, products and orders
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := database.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		logr.Sugar().Warnw("document store unreachable, content reads fall back to the static catalog", "error", err)
	}
	if client != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(shutdownCtx)
		}()
	}

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unreachable, list caching disabled", "error", err)
			redisClient = nil
		}
	}

	metricsSvc := service.NewMetricsService()
	validate := validator.New()

	storeOpts := repository.StoreOptions{QueryTimeout: cfg.Mongo.QueryTimeout, Observer: metricsSvc}
	quranRepo := repository.NewQuranRepository(db, logr, storeOpts)
	hadithRepo := repository.NewHadithRepository(db, logr, storeOpts)
	newsRepo := repository.NewNewsRepository(db, logr, storeOpts)
	productRepo := repository.NewProductRepository(db, logr, storeOpts)
	videoRepo := repository.NewVideoRepository(db, logr, storeOpts)
	navbarRepo := repository.NewNavbarRepository(db, logr, storeOpts)
	orderRepo := repository.NewOrderRepository(db, storeOpts)
	bookmarkRepo := repository.NewBookmarkRepository(db, storeOpts)
	userRepo := repository.NewUserRepository(db, storeOpts)

	demo := cfg.Demo.Enabled
	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
	})
	quranSvc := service.NewQuranService(quranRepo, validate, logr, redisClient, cfg.Cache.TTL, metricsSvc, demo)
	hadithSvc := service.NewHadithService(hadithRepo, validate, logr, metricsSvc, demo)
	newsSvc := service.NewNewsService(newsRepo, validate, logr, metricsSvc, demo)
	productSvc := service.NewProductService(productRepo, validate, logr, nil, metricsSvc, demo)
	videoSvc := service.NewVideoService(videoRepo, validate, logr, metricsSvc, demo)
	navbarSvc := service.NewNavbarService(navbarRepo, validate, logr, metricsSvc, demo)
	orderSvc := service.NewOrderService(orderRepo, productRepo, validate, logr, nil)
	bookmarkSvc := service.NewBookmarkService(bookmarkRepo, validate, logr)
	userSvc := service.NewUserService(userRepo, validate, logr)

	viewQueue := jobs.NewViewQueue(newsSvc, videoSvc, jobs.ViewQueueConfig{
		Workers:    cfg.Views.Workers,
		BufferSize: cfg.Views.BufferSize,
		Logger:     logr,
	})
	viewQueue.Start(ctx)
	defer viewQueue.Stop()

	mediaStore, err := storage.NewMediaStorage(cfg.Media.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init media storage", "error", err)
	}
	mediaSigner := storage.NewSignedURLSigner(cfg.JWT.Secret, cfg.Media.URLTTL)

	handlers := handler.Handlers{
		Auth:      handler.NewAuthHandler(authSvc, cfg.JWT),
		Quran:     handler.NewQuranHandler(quranSvc),
		Hadith:    handler.NewHadithHandler(hadithSvc),
		News:      handler.NewNewsHandler(newsSvc, viewQueue),
		Products:  handler.NewProductHandler(productSvc),
		Videos:    handler.NewVideoHandler(videoSvc, viewQueue),
		Navbar:    handler.NewNavbarHandler(navbarSvc),
		Orders:    handler.NewOrderHandler(orderSvc),
		Bookmarks: handler.NewBookmarkHandler(bookmarkSvc),
		Users:     handler.NewUserHandler(userSvc),
		Media:     handler.NewMediaHandler(mediaStore, mediaSigner),
		Metrics:   handler.NewMetricsHandler(metricsSvc),
	}

	r := handler.NewRouter(cfg, logr, authSvc, metricsSvc, handlers)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "demo_mode", demo)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("shutdown failed", "error", err)
	}
}
