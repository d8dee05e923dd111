package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mindscope-app/mindscope/internal/domain"
)

const userContextKey = "mindscope.user"

// RequireUser resolves the bearer token to a user and rejects the request
// otherwise.
func (h *Handler) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
		}

		user := h.identity.UserFromToken(c.Request().Context(), token)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// currentUser returns the authenticated user set by RequireUser.
func currentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}
