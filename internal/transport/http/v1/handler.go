// Package v1 provides the JSON API handlers for the wellness service.
package v1

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindscope-app/mindscope/internal/adapter/oracle"
	"github.com/mindscope-app/mindscope/internal/identity"
	"github.com/mindscope-app/mindscope/internal/policy"
	"github.com/mindscope-app/mindscope/internal/wellness"
)

// Handler handles HTTP requests.
type Handler struct {
	identity *identity.Service
	sessions *wellness.Manager
	oracle   *oracle.Oracle
	policy   *policy.Engine
	log      *slog.Logger
}

// NewHandler creates a new handler.
func NewHandler(id *identity.Service, sessions *wellness.Manager, ora *oracle.Oracle, pol *policy.Engine, log *slog.Logger) *Handler {
	return &Handler{
		identity: id,
		sessions: sessions,
		oracle:   ora,
		policy:   pol,
		log:      log,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/v1/auth/register", h.Register)
	e.POST("/v1/auth/login", h.Login)

	g := e.Group("/v1", h.RequireUser)
	g.POST("/auth/logout", h.Logout)
	g.GET("/me", h.Me)

	g.POST("/chat/messages", h.PostMessage)
	g.GET("/chat/messages", h.GetMessages)
	g.DELETE("/chat", h.ClearChat)

	g.POST("/moods", h.PostMoodLog)
	g.GET("/moods", h.GetMoodLogs)

	g.GET("/insights", h.GetInsights)
	g.POST("/insights/refresh", h.RefreshInsights)

	g.GET("/recommendations/places", h.GetPlaces)
	g.GET("/recommendations/music", h.GetMusic)

	e.GET("/v1/taxonomy", h.GetTaxonomy)
	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
