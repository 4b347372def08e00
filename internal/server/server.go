// Package server exposes the composed storefront content over HTTP.
// Handlers fan out to the content store, compose render-ready payloads
// and degrade to defaults rather than failing on partial content.
package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog/log"

	"github.com/masera/storefront/internal/content"
	"github.com/masera/storefront/internal/models"
)

type Server struct {
	app       *fiber.App
	store     content.Store
	analytics AnalyticsSink
}

func New(cfg *models.Config, store content.Store, analytics AnalyticsSink) *Server {
	if analytics == nil {
		analytics = NoopAnalytics{}
	}

	app := fiber.New(fiber.Config{
		AppName:      "storefront",
		ErrorHandler: errorHandler,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,HEAD,OPTIONS",
	}))
	app.Use(requestLogger)

	s := &Server{app: app, store: store, analytics: analytics}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", s.handleHealth)

	api := s.app.Group("/api")
	api.Get("/menu", s.handleMenu)
	api.Get("/branches", s.handleBranches)
	api.Get("/branches/:slug/menu", s.handleBranchMenu)
	api.Get("/homepage", s.handleHomepage)
	api.Get("/settings", s.handleSettings)
	api.Get("/navigation", s.handleNavigation)
	api.Get("/pages/:slug", s.handlePage)
	api.Get("/policies", s.handlePolicies)
	api.Get("/policies/:slug", s.handlePolicy)
}

func (s *Server) Listen(addr string) error {
	log.Info().Str("addr", addr).Msg("starting http server")
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Info().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request")
	return err
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
