package main

import (
	"log"
	"net/http"
	"time"

	"freshcart/internal/auth"
	"freshcart/internal/config"
	"freshcart/internal/database"
	"freshcart/internal/handlers"
	"freshcart/internal/migrations"
	"freshcart/internal/models"
	"freshcart/internal/redis"
	"freshcart/internal/repository"
	"freshcart/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	riderRepo := repository.NewRiderRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize services
	txRunner := services.NewTxRunner(db)
	policy := services.PricingPolicy{DeliveryFee: cfg.DeliveryFee, PointValue: cfg.PointValue}
	pricingService := services.NewPricingService(cartRepo, productRepo, couponRepo, customerRepo, policy)
	notificationService := services.NewNotificationService(notificationRepo, redisClient)
	orderService := services.NewOrderService(txRunner, orderRepo, deliveryRepo, productRepo, cartRepo, customerRepo, pricingService, notificationService)
	cartService := services.NewCartService(cartRepo, productRepo)
	dispatchService := services.NewDispatchService(txRunner, deliveryRepo, orderRepo, riderRepo, notificationService)
	lifecycleService := services.NewLifecycleService(txRunner, deliveryRepo, orderRepo, customerRepo, notificationService)

	// Initialize handlers
	customerHandler := handlers.NewCustomerHandler(pricingService, orderService, cartService, notificationService,
		redisClient, time.Duration(cfg.QuoteTTL)*time.Second)
	riderHandler := handlers.NewRiderHandler(dispatchService, lifecycleService)
	adminHandler := handlers.NewAdminHandler(orderService)

	// Setup routes
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api", auth.RequirePrincipal())

	customer := api.Group("", auth.RequireRole(models.RoleCustomer))
	{
		customer.GET("/cart", customerHandler.GetCart)
		customer.POST("/cart/items", customerHandler.AddCartItem)
		customer.PUT("/cart/items", customerHandler.UpdateCartItem)
		customer.DELETE("/cart/items/:product_id", customerHandler.RemoveCartItem)

		customer.POST("/orders/preview", customerHandler.PreviewOrder)
		customer.POST("/orders", customerHandler.PlaceOrder)
		customer.GET("/orders", customerHandler.GetOrders)
		customer.GET("/orders/:id", customerHandler.GetOrder)
		customer.POST("/orders/:id/cancel", customerHandler.CancelOrder)

		customer.GET("/notifications", customerHandler.ListNotifications)
		customer.POST("/notifications/:id/read", customerHandler.MarkNotificationRead)
		customer.POST("/notifications/read-all", customerHandler.MarkAllNotificationsRead)
	}

	rider := api.Group("/rider", auth.RequireRole(models.RoleRider))
	{
		rider.GET("/deliveries/available", riderHandler.ListAvailableDeliveries)
		rider.GET("/deliveries", riderHandler.ListAssignedDeliveries)
		rider.POST("/deliveries/:id/accept", riderHandler.AcceptDelivery)
		rider.PUT("/deliveries/:id/estimated-time", riderHandler.SetEstimatedTime)
		rider.POST("/deliveries/:id/start", riderHandler.StartDelivery)
		rider.POST("/deliveries/:id/arrival", riderHandler.MarkArrival)
		rider.POST("/deliveries/:id/failed", riderHandler.MarkFailed)
		rider.POST("/orders/:id/confirm-payment", riderHandler.ConfirmPayment)
		rider.PUT("/zone", riderHandler.UpdateZone)
	}

	admin := api.Group("/admin", auth.RequireRole(models.RoleAdmin))
	{
		admin.GET("/orders", adminHandler.ListOrders)
		admin.POST("/orders/:id/cancel", adminHandler.CancelOrder)
		admin.POST("/orders/:id/restore-stock", adminHandler.RestoreStock)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
