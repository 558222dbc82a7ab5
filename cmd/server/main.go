package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bodega-pos/internal/auth"
	"bodega-pos/internal/config"
	"bodega-pos/internal/database"
	"bodega-pos/internal/handlers"
	"bodega-pos/internal/inventory"
	"bodega-pos/internal/middleware"
	"bodega-pos/internal/pos"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be configured")
	}

	db, err := database.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := pos.SeedCounter(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed sale counter")
	}

	tokens := auth.NewManager(cfg.JWTSecret)
	alerts := inventory.NewMonitor()
	ledger := inventory.NewLedger(alerts)
	numbers := &pos.NumberGenerator{Prefix: cfg.SaleNumberPrefix}
	coordinator := pos.NewCoordinator(db, ledger, numbers, cfg.TaxRateDecimal(), log.Logger)
	h := handlers.New(db, tokens, coordinator, ledger, alerts)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", h.Login)

	// Only opens if we explicitly allow it in .env
	if cfg.AllowRegistration {
		r.POST("/register", h.Register)
		log.Warn().Msg("Registration route is OPEN. Disable this in production!")
	} else {
		log.Info().Msg("Registration route is disabled")
	}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(tokens))
	{
		// PUBLIC TO STAFF, MANAGERS & ADMIN
		api.GET("/system/status", h.GetSystemStatus)
		api.GET("/products", h.GetProducts)
		api.GET("/products/scan/:barcode", h.ScanProduct)
		api.POST("/checkout", h.ProcessSale)
		api.GET("/customers", h.GetCustomers)
		api.POST("/customers", h.AddCustomer)
		api.PUT("/customers/:id", h.UpdateCustomer)

		// MANAGERS & ADMIN
		managers := api.Group("/")
		managers.Use(middleware.RequireRole("admin", "manager"))
		{
			managers.GET("/alerts", h.ListAlerts)
			managers.POST("/alerts/:id/acknowledge", h.AcknowledgeAlert)
			managers.GET("/reports", h.GetSalesReport)
			managers.GET("/reports/valuation", h.GetStockValuation)
		}

		// ADMIN ONLY
		admin := api.Group("/")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.POST("/products", h.AddProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)
			admin.POST("/products/:id/restock", h.RestockProduct)
		}
	}

	log.Info().Str("addr", cfg.ServerAddr).Msg("Server starting")
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}
