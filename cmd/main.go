package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/AgiAbhishek/Vendor-shop/internal/auth"
	"github.com/AgiAbhishek/Vendor-shop/internal/config"
	"github.com/AgiAbhishek/Vendor-shop/internal/handlers"
	"github.com/AgiAbhishek/Vendor-shop/internal/metrics"
	"github.com/AgiAbhishek/Vendor-shop/internal/middleware"
	"github.com/AgiAbhishek/Vendor-shop/internal/models"
	"github.com/AgiAbhishek/Vendor-shop/internal/repository"
	"github.com/AgiAbhishek/Vendor-shop/internal/services"
)

func main() {
	cfg := InitConfig()
	db := ConnectDatabase(cfg)
	MigrateDatabase(db)

	m := metrics.NewMetrics()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	shopRepo := repository.NewShopRepository(db)
	vendorRepo := repository.NewVendorRepository(db)

	shopService := services.NewShopService(shopRepo, m)
	nearbyService := services.NewNearbyService(shopRepo, m)
	authService := services.NewAuthService(vendorRepo, tokens)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(middleware.RecordRequests(m))

	// Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	ah := handlers.NewAuthHandler(authService)
	sh := handlers.NewShopHandler(shopService)
	nh := handlers.NewNearbyHandler(nearbyService, cfg.DefaultRadiusKm)

	api := app.Group("/api")

	api.Post("/auth/register", ah.Register)
	api.Post("/auth/login", ah.Login)
	api.Post("/auth/refresh", ah.Refresh)

	shops := api.Group("/shops")

	// Public proximity search. Registered before the :id routes so the literal
	// path wins, and rate limited per client IP.
	shops.Get("/nearby", limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"detail": "Request was throttled.",
			})
		},
	}), nh.Nearby)

	// Ownership-guarded CRUD routes
	shops.Use(middleware.RequireAuth(tokens))
	shops.Get("/", sh.ListShops)
	shops.Post("/", sh.CreateShop)
	shops.Get("/:id", sh.GetShop)
	shops.Put("/:id", sh.UpdateShop)
	shops.Patch("/:id", sh.PatchShop)
	shops.Delete("/:id", sh.DeleteShop)

	api.Get("/swagger/*", swagger.HandlerDefault)

	// Add Health check endpoint
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	routes := app.GetRoutes()
	log.Info("Registered routes:")
	for _, r := range routes {
		log.Infof("  %s %s", r.Method, r.Path)
	}

	// Start the Fiber server
	port := cfg.AppPort
	if port == "" {
		port = "8080"
		log.Infof("Defaulting to port %s", port)
	}
	log.Infof("Server listening on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func MigrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(&models.Vendor{}, &models.Shop{})
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
}
