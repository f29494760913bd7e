package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"horion-farms/api/apperr"
	"horion-farms/api/config"
	_ "horion-farms/api/docs"
	"horion-farms/api/orders"
	"horion-farms/api/payment"
	"horion-farms/api/store"
)

type Server struct {
	cfg      *config.Config
	store    store.Store
	orders   *orders.Service
	payments *payment.Orchestrator
}

// NewServer wires the HTTP handlers. st may be nil when no Data Store is
// configured.
func NewServer(cfg *config.Config, st store.Store, ord *orders.Service, pay *payment.Orchestrator) *Server {
	return &Server{cfg: cfg, store: st, orders: ord, payments: pay}
}

// NewApp builds the fiber application with middleware and routes.
func NewApp(s *Server) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:           s.cfg.Server.ReadTimeout,
		WriteTimeout:          s.cfg.Server.WriteTimeout,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})

	// Middlewares
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(metricsMiddleware())

	setupRoutes(app, s)

	return app
}

func setupRoutes(app *fiber.App, s *Server) {
	app.Get("/", s.Root)
	app.Get("/test", s.Diagnostics)

	app.Get("/eta", s.ETA)
	app.Get("/hubs", s.Hubs)

	app.Post("/orders", s.CreateOrder)

	payments := app.Group("/payments")
	payments.Post("/init", s.InitPayment)
	payments.Get("/verify", s.VerifyPayment)

	if s.cfg.JWT.SecretKey != "" {
		admin := RequireAdmin([]byte(s.cfg.JWT.SecretKey))
		app.Get("/orders/:id", admin, s.GetOrder)
		app.Patch("/orders/:id/status", admin, s.UpdateOrderStatus)
	}

	app.Use("/track", upgradeOnly)
	app.Get("/track", websocket.New(s.TrackOrder))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", swagger.HandlerDefault)
}

// ErrorHandler renders every error as {"error": message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	code := apperr.HTTPStatus(err)
	msg := apperr.Message(err)
	if apperr.Kind(err) == "internal" {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "err", err)
		msg = "internal error"
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
