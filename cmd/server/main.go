package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"phonemechanic-system/config"
	"phonemechanic-system/internal/catalog"
	"phonemechanic-system/internal/directory"
	"phonemechanic-system/internal/events"
	"phonemechanic-system/internal/gateway/handlers"
	"phonemechanic-system/internal/gateway/middleware"
	"phonemechanic-system/internal/pos"
	"phonemechanic-system/internal/receipt"
)

func main() {
	cfg := config.LoadConfig()

	var publisher *events.Publisher
	if cfg.Events.Enabled {
		redisClient := config.NewRedisClient(cfg.Events.Redis)
		defer redisClient.Close()
		publisher = events.NewPublisher(redisClient)
	} else {
		log.Println("Order events disabled, running without redis")
	}

	serviceCatalog := catalog.DefaultCatalog()
	customerDirectory := directory.DefaultDirectory()

	history := pos.NewHistory()
	for _, order := range pos.SeedOrders() {
		history.Add(order)
	}

	renderer := receipt.NewRenderer(receipt.ShopInfo{
		Name:            cfg.Shop.Name,
		Tagline:         cfg.Shop.Tagline,
		ABN:             cfg.Shop.ABN,
		Phone:           cfg.Shop.Phone,
		Email:           cfg.Shop.Email,
		Website:         cfg.Shop.Website,
		DefaultLocation: cfg.Shop.DefaultLocation,
		Addresses:       cfg.Shop.Locations,
	})

	authHandler := handlers.NewAuthHTTPHandler(cfg.Auth, cfg.Shop)
	catalogHandler := handlers.NewCatalogHTTPHandler(serviceCatalog, customerDirectory)
	orderHandler := handlers.NewOrderHTTPHandler(
		pos.NewSessionStore(),
		history,
		pos.NewFactory(),
		serviceCatalog,
		customerDirectory,
		renderer,
		publisher,
	)

	r := gin.Default()

	r.Use(middleware.CORS())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(cfg.Server.RateLimit))

	// --- Public API Group ---
	public := r.Group("/api/v1")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}
	}

	// --- Protected API Group ---
	protected := r.Group("/api/v1")
	protected.Use(middleware.SessionAuth([]byte(cfg.Auth.Secret)))
	{
		services := protected.Group("/services")
		{
			services.GET("", catalogHandler.ListServices)
		}

		customers := protected.Group("/customers")
		{
			customers.GET("", catalogHandler.ListCustomers)
			customers.GET("/match", catalogHandler.MatchCustomer)
			customers.GET("/models", catalogHandler.ListModels)
		}

		orders := protected.Group("/orders")
		{
			orders.POST("/drafts", orderHandler.CreateDraft)
			orders.GET("/drafts/:id", orderHandler.GetDraft)
			orders.PATCH("/drafts/:id", orderHandler.UpdateDraft)
			orders.DELETE("/drafts/:id", orderHandler.AbandonDraft)
			orders.PATCH("/drafts/:id/customer", orderHandler.UpdateDraftCustomer)
			orders.POST("/drafts/:id/items", orderHandler.AddItem)
			orders.POST("/drafts/:id/items/bulk", orderHandler.BulkAddItems)
			orders.PATCH("/drafts/:id/items/:index", orderHandler.UpdateItem)
			orders.DELETE("/drafts/:id/items/:index", orderHandler.RemoveItem)
			orders.POST("/drafts/:id/submit", orderHandler.SubmitDraft)

			orders.GET("", orderHandler.ListOrders)
			orders.GET("/export", orderHandler.ExportOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.GET("/:id/receipt", orderHandler.GetReceipt)
			orders.GET("/:id/share", orderHandler.GetShareSummary)
		}
	}

	r.GET("/health", healthCheckHandler(cfg.Events.Enabled))

	log.Printf("Starting server on %s", cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func healthCheckHandler(eventsEnabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"message":   "Server is running",
			"events":    eventsEnabled,
			"timestamp": time.Now(),
		})
	}
}
