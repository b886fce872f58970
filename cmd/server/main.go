package main

import (
	"log"
	"net/http"
	"os"

	_ "stocktrack/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"stocktrack/internal/auth"
	"stocktrack/internal/cache"
	"stocktrack/internal/config"
	"stocktrack/internal/db"
	"stocktrack/internal/handler"
	"stocktrack/internal/model"
	"stocktrack/internal/repository"
	"stocktrack/internal/router"
	"stocktrack/internal/service"
)

// @title Inventory Tracker API
// @version 1.0
// @description Inventory tracking API with product CRUD, stock reports, and JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.StockMovement{},
			&model.Product{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.StockMovement{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	movementRepo := repository.NewStockMovementRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	paymentService := service.NewPaymentService()
	inventoryService := service.NewInventoryService(productRepo, movementRepo, paymentService)
	reportService := service.NewReportService(productRepo, cfg.LowStockThreshold)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(inventoryService)
	reportHandler := handler.NewReportHandler(reportService)
	seedHandler := handler.NewSeedHandler(inventoryService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		productHandler,
		reportHandler,
		seedHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
