// Package http provides the HTTP server implementation for the wellness
// service.
package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mindscope-app/mindscope/internal/adapter/oracle"
	"github.com/mindscope-app/mindscope/internal/identity"
	"github.com/mindscope-app/mindscope/internal/policy"
	v1 "github.com/mindscope-app/mindscope/internal/transport/http/v1"
	"github.com/mindscope-app/mindscope/internal/wellness"
)

// NewServer creates and configures the HTTP server.
func NewServer(id *identity.Service, sessions *wellness.Manager, ora *oracle.Oracle, pol *policy.Engine, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Handlers
	handler := v1.NewHandler(id, sessions, ora, pol, log)
	handler.RegisterRoutes(e)

	return e
}
