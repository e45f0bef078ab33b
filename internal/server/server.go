package server

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/config"
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/game"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:embed web
var webFS embed.FS

const shutdownTimeout = 5 * time.Second

// Server is the HTTP gateway in front of the game.
type Server struct {
	app  *fiber.App
	addr string
	log  *logrus.Logger
}

// New wires middleware, API routes and the static front-end into a fiber app.
func New(cfg config.Config, g *game.Game, log *logrus.Logger) (*Server, error) {
	web, err := fs.Sub(webFS, "web")
	if err != nil {
		return nil, fmt.Errorf("load static files: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "rpsls",
		DisableStartupMessage: true,
		UnescapePath:          true,
		ErrorHandler:          ErrorHandler(log),
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(log))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))

	SetupRoutes(app, NewHandler(g, log))

	// Registered last so the API routes win; unknown paths fall through
	// to the 404/405 error handler.
	app.Use("/", filesystem.New(filesystem.Config{
		Root:  http.FS(web),
		Index: "index.html",
	}))

	return &Server{app: app, addr: cfg.Addr, log: log}, nil
}

// SetupRoutes registers the game API on app.
func SetupRoutes(app *fiber.App, h *Handler) {
	app.Post("/play", h.PlayWithBody)
	app.Post("/play/:choice", h.PlayWithPath)
	app.Get("/choices", h.Choices)
	app.Get("/health", h.Health)
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("Server running on %s", s.addr)
		errCh <- s.app.Listen(s.addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	case <-ctx.Done():
	}

	s.log.Info("Shutting down server...")
	if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// RequestLogger logs one entry per request. Errors are rendered here so the
// logged status is the one the client receives.
func RequestLogger(log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		entry := log.WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"latency":    time.Since(start).String(),
			"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
		})
		if c.Response().StatusCode() >= fiber.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Info("request handled")
		}
		return nil
	}
}
