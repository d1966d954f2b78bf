package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apptenancy "github.com/estatelink/backend/internal/application/tenancy"
	"github.com/estatelink/backend/internal/infrastructure/config"
	"github.com/estatelink/backend/internal/infrastructure/logger"
	"github.com/estatelink/backend/internal/infrastructure/notification"
	"github.com/estatelink/backend/internal/infrastructure/persistence"
	"github.com/estatelink/backend/internal/interfaces/http/handler"
	"github.com/estatelink/backend/internal/interfaces/http/middleware"
	"github.com/estatelink/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/estatelink/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			EstateLink API
//	@version		1.0
//	@description	Property management backend for tenancy contracts, payment checks and expiry alerts.

//	@contact.name	API Support
//	@contact.url	https://github.com/estatelink/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting EstateLink Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with the zap-backed GORM logger
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	tenantRepo := persistence.NewGormTenantRepository(db.DB)
	contractRepo := persistence.NewGormContractRepository(db.DB)
	checkRepo := persistence.NewGormCheckRepository(db.DB)

	// Alert notifications go out over SMTP only when configured
	var notifier apptenancy.Notifier
	if cfg.SMTP.Enabled {
		notifier = notification.NewSMTPMailer(cfg.SMTP, log)
		log.Info("SMTP notifications enabled",
			zap.String("host", cfg.SMTP.Host),
			zap.String("from", cfg.SMTP.From),
		)
	}

	// Initialize application services
	tenantService := apptenancy.NewTenantService(tenantRepo, contractRepo)
	contractService := apptenancy.NewContractService(contractRepo, tenantRepo, checkRepo)
	checkService := apptenancy.NewCheckService(contractRepo, checkRepo)
	alertService := apptenancy.NewAlertService(contractRepo, checkRepo, notifier,
		cfg.Alert.ExpiryDays, cfg.Alert.UpcomingDays, log)
	statisticsService := apptenancy.NewStatisticsService(tenantRepo, contractRepo, checkRepo,
		cfg.Alert.ExpiryDays, cfg.Alert.UpcomingDays)

	// Initialize HTTP handlers
	tenantHandler := handler.NewTenantHandler(tenantService)
	contractHandler := handler.NewContractHandler(contractService)
	checkHandler := handler.NewCheckHandler(checkService)
	alertHandler := handler.NewAlertHandler(alertService)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	// Swagger documentation endpoint, gated by config
	swaggerGroup := engine.Group("/swagger")
	swaggerGroup.Use(middleware.SwaggerProtection(middleware.SwaggerConfig{
		Enabled:    cfg.Swagger.Enabled,
		AllowedIPs: cfg.Swagger.AllowedIPs,
	}))
	swaggerGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	tenantRoutes := router.NewDomainGroup("tenants", "/tenants")
	tenantRoutes.POST("", tenantHandler.Create)
	tenantRoutes.GET("", tenantHandler.List)
	tenantRoutes.GET("/:id", tenantHandler.GetByID)

	contractRoutes := router.NewDomainGroup("contracts", "/contracts")
	contractRoutes.POST("", contractHandler.Create)
	contractRoutes.GET("", contractHandler.List)
	contractRoutes.GET("/:id", contractHandler.GetByID)

	checkRoutes := router.NewDomainGroup("checks", "/checks")
	checkRoutes.POST("/generate", checkHandler.Generate)
	checkRoutes.GET("/upcoming", checkHandler.Upcoming)
	checkRoutes.GET("/overdue", checkHandler.Overdue)

	alertRoutes := router.NewDomainGroup("alerts", "/alerts")
	alertRoutes.GET("/expiring", alertHandler.Expiring)
	alertRoutes.POST("/notify", alertHandler.Notify)

	statisticsRoutes := router.NewDomainGroup("statistics", "/statistics")
	statisticsRoutes.GET("", statisticsHandler.Get)

	r.Register(tenantRoutes).
		Register(contractRoutes).
		Register(checkRoutes).
		Register(alertRoutes).
		Register(statisticsRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
