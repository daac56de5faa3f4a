package api

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	gqlschema "github.com/ortelius/vulnmgt-backend/graphql"
	"github.com/ortelius/vulnmgt-backend/internal/config"
	"github.com/ortelius/vulnmgt-backend/internal/metrics"
	"github.com/ortelius/vulnmgt-backend/restapi"
	"github.com/ortelius/vulnmgt-backend/restapi/modules/auth"
	"github.com/ortelius/vulnmgt-backend/store"
)

// NewFiberApp creates and configures a Fiber app with REST and GraphQL routes
func NewFiberApp(s *store.VulnerabilityStore, creds auth.CredentialStore, cfg config.Config) *fiber.App {
	// Initialize GraphQL schema
	gqlschema.InitStore(s)
	schema, err := gqlschema.CreateSchema()
	if err != nil {
		log.Fatalf("Failed to create GraphQL schema: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:     "vulnmgt-backend API v1.0",
		BodyLimit:   1 * 1024 * 1024, // 1MB, records are small
		ReadTimeout: 60 * time.Second,
	})

	// Middleware
	app.Use(fiberrecover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))

	// Consolidated CORS Configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		AllowMethods:     "GET, POST, HEAD, PUT, DELETE, PATCH, OPTIONS",
	}))

	reg := metrics.NewRegistry()
	reg.RegisterRecordCount(s.Count)
	app.Use(reg.Middleware())
	app.Use(logger.New())

	// Health check endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// Prometheus exposition
	app.Get("/metrics", adaptor.HTTPHandler(reg.Handler()))

	// Setup REST and GraphQL routes (Pass the schema here)
	restapi.SetupRoutes(app, s, creds, schema)

	return app
}
