package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mindscope-app/mindscope/internal/domain"
)

// GetInsights returns the derived state for the dashboard.
// GET /v1/insights
func (h *Handler) GetInsights(c echo.Context) error {
	sess, err := h.sessions.Session(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"current_mood":  sess.CurrentMood(),
		"quote":         sess.Quote(),
		"weekly_report": sess.WeeklyReport(),
		"busy":          sess.Busy(),
	})
}

// RefreshInsights recomputes the weekly report from the current mood logs.
// POST /v1/insights/refresh
func (h *Handler) RefreshInsights(c echo.Context) error {
	ctx := c.Request().Context()
	sess, err := h.sessions.Session(ctx, currentUser(c).ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	sess.RefreshInsights(ctx)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"weekly_report": sess.WeeklyReport(),
	})
}

// GetPlaces recommends peaceful places near the client-supplied
// coordinates. A client that was denied geolocation sends no coordinates
// and still gets a usable suggestion.
// GET /v1/recommendations/places?lat=&lng=
func (h *Handler) GetPlaces(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil {
		return c.JSON(http.StatusOK, domain.Recommendation{
			Text:  "Share your location to discover peaceful spots nearby. A walk in any green space works wonders.",
			Links: []domain.GroundingLink{},
		})
	}

	return c.JSON(http.StatusOK, h.oracle.PeacefulPlaces(c.Request().Context(), lat, lng))
}

// GetMusic recommends music for the user's current mood.
// GET /v1/recommendations/music
func (h *Handler) GetMusic(c echo.Context) error {
	ctx := c.Request().Context()
	sess, err := h.sessions.Session(ctx, currentUser(c).ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, h.oracle.MusicForMood(ctx, sess.CurrentMood()))
}
