package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	invoiceapp "github.com/Khanjii4421/adnansoftware-sub000/internal/application/invoice"
	ledgerapp "github.com/Khanjii4421/adnansoftware-sub000/internal/application/ledger"
	orderapp "github.com/Khanjii4421/adnansoftware-sub000/internal/application/order"
	partnerapp "github.com/Khanjii4421/adnansoftware-sub000/internal/application/partner"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/infrastructure/auth"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/infrastructure/cache"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/infrastructure/config"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/infrastructure/logger"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/infrastructure/persistence"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/infrastructure/statement"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/interfaces/http/handler"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/interfaces/http/middleware"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

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
		_ = log.Sync()
	}()

	log.Info("Starting reseller backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
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
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	sellerRepo := persistence.NewGormSellerRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	entryRepo := persistence.NewGormEntryRepository(db.DB)

	// Per-seller invoice generation lock. Redis when configured, in-memory
	// otherwise (single-instance deployments only).
	lockerFactory := cache.NewSellerLockerFactory(cfg.Redis, cfg.InvoiceLock.TTL, cache.WithLogger(log))
	sellerLocker, err := lockerFactory.CreateLocker()
	if err != nil {
		log.Fatal("Failed to create invoice lock", zap.Error(err))
	}

	// Initialize application services
	orderService := orderapp.NewService(orderRepo)
	invoiceService := invoiceapp.NewService(invoiceRepo, orderRepo, sellerLocker)
	matchService := invoiceapp.NewMatchService(invoiceRepo, orderRepo)
	ledgerService := ledgerapp.NewService(customerRepo, entryRepo)
	sellerService := partnerapp.NewService(sellerRepo, orderRepo)

	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize HTTP handlers
	orderHandler := handler.NewOrderHandler(orderService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, matchService, statement.NewReader(log))
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	sellerHandler := handler.NewSellerHandler(sellerService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Report JSON field names in validation errors
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, ordered: request ID, panic recovery, request logging,
	// CORS, body size limit, JWT authentication.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodySizeLimit(cfg.HTTP.MaxBodySize))

	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/health",
			"/api/v1/system/ping",
		},
	}
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Register API routes
	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(orderHandler).
		Register(invoiceHandler).
		Register(ledgerHandler).
		Register(sellerHandler).
		Register(systemHandler).
		Setup()

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
