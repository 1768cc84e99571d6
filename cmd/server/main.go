package main

import (
	"log"
	"time"

	"print_shop/internal/config"
	"print_shop/internal/database"
	"print_shop/internal/handlers"
	"print_shop/internal/middleware"
	"print_shop/internal/migrations"
	"print_shop/internal/redis"
	"print_shop/internal/repository"
	"print_shop/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Seed default organization, admin user, pills, and materials
	if err := migrations.SeedDefaults(db); err != nil {
		log.Printf("Warning: failed to seed default data: %v", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL, time.Duration(cfg.PreferencesCacheTTL)*time.Second)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	orderRepo := repository.NewOrderRepository(db)
	lineItemRepo := repository.NewLineItemRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	pillRepo := repository.NewStatusPillRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	// Initialize services
	auditLogger := services.NewAuditLogger(auditRepo)
	preferenceService := services.NewPreferenceService(orgRepo, auditLogger, redisClient)
	inventoryService := services.NewInventoryService(inventoryRepo, auditLogger, txManager)
	validator := services.NewTransitionValidator()
	stateService := services.NewOrderStateService(orderRepo, lineItemRepo, auditLogger, preferenceService, inventoryService, validator, txManager)
	orderService := services.NewOrderService(orderRepo, lineItemRepo, customerRepo, auditLogger, preferenceService, txManager)
	pillService := services.NewStatusPillService(pillRepo, orderRepo, auditLogger, preferenceService, txManager)
	userService := services.NewUserService(userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	orderHandler := handlers.NewOrderHandler(orderService, stateService, inventoryService)
	pillHandler := handlers.NewStatusPillHandler(pillService)
	orgHandler := handlers.NewOrganizationHandler(preferenceService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)

	// Setup routes
	router := gin.Default()
	router.Use(middleware.RequestID())

	router.POST("/api/auth/login", authHandler.Login)

	api := router.Group("/api", middleware.JWTAuth(cfg.JWTSecret))
	{
		api.GET("/orders", orderHandler.ListOrders)
		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.POST("/orders/:id/transition", orderHandler.Transition)
		api.POST("/orders/:id/state", orderHandler.TransitionState)
		api.POST("/orders/:id/complete-production", orderHandler.CompleteProduction)
		api.POST("/orders/:id/fulfillment", orderHandler.SetFulfillmentStatus)
		api.POST("/orders/:id/priority", orderHandler.SetPriority)
		api.POST("/orders/:id/status-pill", pillHandler.Assign)
		api.GET("/orders/:id/audit", orderHandler.AuditTrail)
		api.GET("/orders/:id/inventory-movements", orderHandler.InventoryMovements)
		api.POST("/orders/:id/line-items", orderHandler.AddLineItem)
		api.POST("/orders/:id/line-items/status", orderHandler.BulkUpdateLineItemStatus)
		api.PATCH("/orders/:id/line-items/:itemId/status", orderHandler.UpdateLineItemStatus)

		api.GET("/status-pills", pillHandler.List)
		api.POST("/status-pills", pillHandler.Create)
		api.PUT("/status-pills/:id", pillHandler.Update)
		api.DELETE("/status-pills/:id", pillHandler.Delete)
		api.POST("/status-pills/:id/default", pillHandler.SetDefault)

		api.GET("/organization/preferences", orgHandler.GetPreferences)
		api.PUT("/organization/preferences", orgHandler.UpdatePreferences)

		api.GET("/materials", inventoryHandler.ListMaterials)
		api.POST("/materials", inventoryHandler.CreateMaterial)
		api.POST("/materials/:id/adjust", inventoryHandler.AdjustStock)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
