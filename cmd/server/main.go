package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	identityapp "github.com/shopworks/backend/internal/application/identity"
	partnerapp "github.com/shopworks/backend/internal/application/partner"
	payrollapp "github.com/shopworks/backend/internal/application/payroll"
	reportapp "github.com/shopworks/backend/internal/application/report"
	tradeapp "github.com/shopworks/backend/internal/application/trade"
	"github.com/shopworks/backend/internal/infrastructure/auth"
	"github.com/shopworks/backend/internal/infrastructure/cache"
	"github.com/shopworks/backend/internal/infrastructure/config"
	"github.com/shopworks/backend/internal/infrastructure/event"
	"github.com/shopworks/backend/internal/infrastructure/logger"
	"github.com/shopworks/backend/internal/infrastructure/persistence"
	"github.com/shopworks/backend/internal/interfaces/http/handler"
	"github.com/shopworks/backend/internal/interfaces/http/middleware"
	"github.com/shopworks/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting shopworks backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database with SQL logs bridged into zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	salaryRepo := persistence.NewGormSalaryRepository(db.DB)

	// Dashboard cache is optional: without Redis every dashboard request
	// recomputes from the store.
	var dashboardCache reportapp.DashboardCache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		redisCache := cache.NewRedisDashboardCache(redisClient, cfg.Cache.DashboardTTL)
		defer func() {
			if err := redisCache.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		dashboardCache = redisCache
		log.Info("Dashboard cache enabled", zap.Duration("ttl", cfg.Cache.DashboardTTL))
	}

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	ledgerService := payrollapp.NewLedgerService(salaryRepo, userRepo, log)
	orderService := tradeapp.NewOrderService(orderRepo, clientRepo, userRepo, notificationRepo, ledgerService, log)
	projectService := tradeapp.NewProjectService(projectRepo, clientRepo, userRepo, ledgerService, log)
	clientService := partnerapp.NewClientService(clientRepo, orderRepo, projectRepo, log)
	salaryService := payrollapp.NewSalaryService(salaryRepo, userRepo, notificationRepo, log)
	userService := identityapp.NewUserService(userRepo, notificationRepo, log)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	dashboardService := reportapp.NewDashboardService(orderRepo, projectRepo, salaryRepo, clientRepo, userRepo, dashboardCache, log)

	// Event bus: synchronous dispatch, subscriber failures are logged and
	// never fail the publishing request.
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(identityapp.NewSalaryNotifier(notificationRepo, log))
	if dashboardCache != nil {
		eventBus.Subscribe(reportapp.NewCacheInvalidator(dashboardCache, log))
	}
	orderService.SetEventPublisher(eventBus)
	projectService.SetEventPublisher(eventBus)
	userService.SetEventPublisher(eventBus)
	ledgerService.SetEventPublisher(eventBus)
	salaryService.SetEventPublisher(eventBus)
	clientService.SetEventPublisher(eventBus)

	ctx := context.Background()
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		_ = eventBus.Stop(ctx)
	}()

	// HTTP engine and middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSFromConfig(cfg.HTTP)))

	engine.GET("/health", handler.Health(db))

	// Handlers
	orderHandler := handler.NewOrderHandler(orderService)
	projectHandler := handler.NewProjectHandler(projectService)
	clientHandler := handler.NewClientHandler(clientService)
	salaryHandler := handler.NewSalaryHandler(salaryService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.Identity(jwtService, userService))

	tradeRoutes := router.NewDomainGroup("trade", "/trade")
	tradeRoutes.POST("/orders", orderHandler.Create)
	tradeRoutes.GET("/orders", orderHandler.List)
	tradeRoutes.GET("/orders/:id", orderHandler.GetByID)
	tradeRoutes.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	tradeRoutes.PUT("/orders/:id/payment", orderHandler.UpdatePayment)
	tradeRoutes.DELETE("/orders/:id", orderHandler.Delete)

	tradeRoutes.POST("/projects", projectHandler.Create)
	tradeRoutes.GET("/projects", projectHandler.List)
	tradeRoutes.GET("/projects/:id", projectHandler.GetByID)
	tradeRoutes.PUT("/projects/:id", projectHandler.Update)
	tradeRoutes.PUT("/projects/:id/payment", projectHandler.UpdatePayment)
	tradeRoutes.PUT("/projects/:id/status", projectHandler.UpdateStatus)
	tradeRoutes.DELETE("/projects/:id", projectHandler.Delete)

	partnerRoutes := router.NewDomainGroup("partner", "/partner")
	partnerRoutes.POST("/clients", clientHandler.Create)
	partnerRoutes.GET("/clients", clientHandler.List)
	partnerRoutes.GET("/clients/:id", clientHandler.GetByID)
	partnerRoutes.PUT("/clients/:id", clientHandler.Update)
	partnerRoutes.DELETE("/clients/:id", clientHandler.Delete)
	partnerRoutes.PUT("/clients/:id/payment", clientHandler.RecordPayment)
	partnerRoutes.POST("/clients/:id/recalculate", clientHandler.Recalculate)
	partnerRoutes.GET("/clients/:id/work-history", clientHandler.WorkHistory)
	partnerRoutes.PUT("/clients/:id/work/:work_id/payment", clientHandler.UpdateWorkPayment)

	payrollRoutes := router.NewDomainGroup("payroll", "/payroll")
	payrollRoutes.GET("/salaries", salaryHandler.List)
	payrollRoutes.POST("/salaries", salaryHandler.CreateBonus)
	payrollRoutes.PUT("/salaries/:id/pay", salaryHandler.Pay)
	payrollRoutes.GET("/employees/:id/summary", salaryHandler.EmployeeSummary)

	reportRoutes := router.NewDomainGroup("report", "/report")
	reportRoutes.GET("/dashboard/stats", dashboardHandler.Stats)
	reportRoutes.GET("/dashboard/alerts", dashboardHandler.Alerts)

	identityRoutes := router.NewDomainGroup("identity", "/identity")
	identityRoutes.POST("/auth/login", authHandler.Login)
	identityRoutes.POST("/users", userHandler.Create)
	identityRoutes.GET("/users", userHandler.List)
	identityRoutes.GET("/users/:id", userHandler.GetByID)
	identityRoutes.PUT("/users/:id", userHandler.Update)
	identityRoutes.DELETE("/users/:id", userHandler.Deactivate)
	identityRoutes.GET("/notifications", userHandler.Notifications)
	identityRoutes.PUT("/notifications/:id/read", userHandler.MarkNotificationRead)

	r.Register(tradeRoutes).
		Register(partnerRoutes).
		Register(payrollRoutes).
		Register(reportRoutes).
		Register(identityRoutes)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
