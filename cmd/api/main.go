package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/api/swagger"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/handler"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/middleware"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/repository"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/service"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/cache"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/config"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/database"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/logger"
	corsmiddleware "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/middleware/cors"
	reqidmiddleware "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/middleware/requestid"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/storage"
)

// @title UIU Social Network API
// @version 1.0.0
// @description University community platform API
// @BasePath /
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, course cache disabled", "error", err)
		redisClient = nil
	}

	files, err := storage.NewLocalStorage(cfg.Storage.ResourceDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init resource storage", "error", err)
	}
	signer := storage.NewSignedURLSigner(cfg.Storage.SignedURLSecret, cfg.Storage.SignedURLTTL)

	validate := validator.New()

	// repositories
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	contentRepo := repository.NewContentRepository(db)
	moderationRepo := repository.NewModerationRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	// services
	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             "uiu-social-network",
	})
	settingsSvc := service.NewSettingsService(settingsRepo, userRepo, cfg.Settings.Defaults, logr)
	resourceSvc := service.NewResourceService(courseRepo, resourceRepo, cacheRepo, signer, files, validate, logr, service.ResourceCacheConfig{
		Enabled:   cfg.Cache.Enabled,
		CourseTTL: cfg.Cache.CourseTTL,
	})
	requestSvc := service.NewRequestService(requestRepo, courseRepo, resourceRepo, userRepo, validate, logr)
	sectionSvc := service.NewSectionService(sectionRepo, courseRepo, settingsSvc, validate, logr)
	contentSvc := service.NewContentService(contentRepo, settingsSvc, validate, logr)
	moderationSvc := service.NewModerationService(moderationRepo, userRepo, logr)
	exportSvc := service.NewExportService(moderationSvc, service.ExportConfig{
		Enabled: cfg.Exports.Enabled,
		MaxRows: cfg.Exports.MaxRows,
	}, logr)
	dashboardSvc := service.NewDashboardService(analyticsRepo, logr)
	analyticsSvc := service.NewAnalyticsService(analyticsRepo, logr)

	// handlers
	authHandler := handler.NewAuthHandler(authSvc)
	resourceHandler := handler.NewResourceHandler(resourceSvc, metricsSvc)
	uploadHandler := handler.NewUploadHandler(resourceSvc)
	requestHandler := handler.NewRequestHandler(requestSvc)
	sectionHandler := handler.NewSectionHandler(sectionSvc)
	contentHandler := handler.NewContentHandler(contentSvc)
	moderationHandler := handler.NewModerationHandler(moderationSvc, exportSvc, metricsSvc)
	settingsHandler := handler.NewSettingsHandler(settingsSvc)
	adminHandler := handler.NewAdminHandler(dashboardSvc, analyticsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", middleware.JWT(authSvc), authHandler.Logout)
		auth.GET("/me", middleware.JWT(authSvc), authHandler.Me)
	}

	resources := api.Group("/resources")
	{
		resources.GET("/courses", resourceHandler.ListCourses)
		resources.GET("", resourceHandler.ListResources)
		resources.GET("/files/:token", resourceHandler.ServeFile)
		resources.GET("/:id/download", middleware.JWT(authSvc), resourceHandler.DownloadLink)
		resources.POST("/requests", middleware.JWT(authSvc), requestHandler.Create)
		resources.GET("/requests/my-requests", middleware.JWT(authSvc), requestHandler.ListMine)
	}

	sections := api.Group("/sections", middleware.JWT(authSvc))
	{
		sections.GET("/requests", sectionHandler.ListRequests)
		sections.POST("/requests", sectionHandler.CreateRequest)
		sections.POST("/requests/:id/support", sectionHandler.Support)
		sections.GET("/exchanges", sectionHandler.ListExchanges)
		sections.POST("/exchanges", sectionHandler.CreateExchange)
	}

	community := api.Group("/community")
	{
		community.GET("/lost-found", contentHandler.ListLostFound)
		community.POST("/lost-found", middleware.JWT(authSvc), contentHandler.CreateLostFound)
		community.GET("/marketplace", contentHandler.ListListings)
		community.POST("/marketplace", middleware.JWT(authSvc), contentHandler.CreateListing)
		community.GET("/feedback", contentHandler.ListFeedback)
		community.POST("/feedback", middleware.JWT(authSvc), contentHandler.CreateFeedback)
	}

	settings := api.Group("/settings", middleware.JWT(authSvc), middleware.RequireRoles(models.RoleAdmin))
	{
		settings.GET("", settingsHandler.List)
		settings.PATCH("/:key", settingsHandler.Update)
	}

	admin := api.Group("/admin", middleware.JWT(authSvc), middleware.RequireRoles(models.RoleAdmin), middleware.AdminAudit(userRepo))
	{
		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.GET("/analytics", adminHandler.Analytics)
		admin.GET("/content", moderationHandler.List)
		admin.GET("/content/export", moderationHandler.Export)
		admin.DELETE("/content/:contentType/:contentId", moderationHandler.Delete)
		admin.POST("/resources", uploadHandler.Upload)
		admin.PATCH("/requests/:id/review", requestHandler.Review)
		admin.PATCH("/requests/:id/fulfill", requestHandler.Fulfill)
		admin.PATCH("/sections/requests/:id/status", sectionHandler.UpdateStatus)
		admin.PATCH("/feedback/:id/status", contentHandler.ModerateFeedback)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
