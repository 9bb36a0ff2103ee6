package server

import (
	"context"
	"log"
	"path/filepath"
	"strings"

	"plagiarismpro-be/internal/bootstrap"
	"plagiarismpro-be/internal/config"
	"plagiarismpro-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// Room for multipart framing around the largest accepted upload, so an
// oversized PDF is rejected by the analysis service with its own message.
const bodyLimitSlack = 1 << 20

const (
	pageLogin     = "/login"
	pageDashboard = "/dashboard"
)

var (
	publicPages    = []string{"/login", "/register", "/about"}
	protectedPages = []string{"/dashboard", "/history"}
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Analysis.MaxUploadBytes) + bodyLimitSlack,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, " + serverutils.DeviceHeaderName,
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Content-Disposition, " + serverutils.DeviceHeaderName,
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())
	app.Use(serverutils.DeviceMiddleware(cfg.IsProduction()))

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(serverutils.SuccessResponse("ok", fiber.Map{"status": "up"}))
	})

	// Routes
	registerRoutes(app, cfg, container)
	registerPages(app, cfg, container)

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
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	guard := serverutils.SessionMiddleware(c.AuthService, cfg.Auth.GuardRoutes)

	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)
	c.ShellController.RegisterRoutes(api)

	c.AnalysisController.RegisterRoutes(api, guard)
	c.HistoryController.RegisterRoutes(api, guard)
	c.ViewController.RegisterRoutes(api, guard)
	c.ReportController.RegisterRoutes(api, guard)

	api.Use(func(ctx *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	c.ProgressHandler.RegisterRoutes(app, guard)
}

func registerPages(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	index := filepath.Join(cfg.App.FrontendDist, "index.html")
	serveIndex := func(ctx *fiber.Ctx) error {
		return ctx.SendFile(index)
	}

	app.Get("/", func(ctx *fiber.Ctx) error {
		ok, err := c.AuthService.IsAuthenticated(ctx.UserContext(), serverutils.DeviceID(ctx))
		if err != nil {
			return err
		}
		if ok {
			return ctx.Redirect(pageDashboard)
		}
		return ctx.Redirect(pageLogin)
	})

	for _, page := range publicPages {
		app.Get(page, serveIndex)
	}

	pageGuard := func(ctx *fiber.Ctx) error {
		if !cfg.Auth.GuardRoutes {
			return ctx.Next()
		}
		ok, err := c.AuthService.IsAuthenticated(ctx.UserContext(), serverutils.DeviceID(ctx))
		if err != nil {
			return err
		}
		if !ok {
			return ctx.Redirect(pageLogin)
		}
		return ctx.Next()
	}
	for _, page := range protectedPages {
		app.Get(page, pageGuard, serveIndex)
	}

	app.Static("/", cfg.App.FrontendDist)

	// SPA fallback for client-side routes. Paths that look like files stay 404.
	app.Use(func(ctx *fiber.Ctx) error {
		if ctx.Method() != fiber.MethodGet || strings.Contains(filepath.Base(ctx.Path()), ".") {
			return fiber.ErrNotFound
		}
		return serveIndex(ctx)
	})
}
