package server

import (
	"log"
	"math/rand"
	"time"

	"content-discovery-be/internal/bootstrap"
	"content-discovery-be/internal/config"
	"content-discovery-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	recoverer "github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB, nothing here uploads files
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	// Optional per-request latency so clients can be exercised against
	// realistic response times. Off by default.
	if cfg.Catalog.SimulatedLatencyMs > 0 {
		app.Use(simulatedLatencyMiddleware(cfg.Catalog.SimulatedLatencyMs))
	}

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	// Registered after the error handler so recovered panics surface as
	// errors it can turn into a 500 envelope.
	app.Use(recoverer.New())

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)
	c.UserController.RegisterRoutes(api)
	c.InterestController.RegisterRoutes(api)
	c.ContentController.RegisterRoutes(api)
	c.DiscoveryController.RegisterRoutes(api)
	c.SearchController.RegisterRoutes(api)
}

// simulatedLatencyMiddleware sleeps for fixed + [0, fixed) milliseconds.
func simulatedLatencyMiddleware(fixedMs int) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		delay := time.Duration(fixedMs+rand.Intn(fixedMs)) * time.Millisecond
		time.Sleep(delay)
		return ctx.Next()
	}
}
