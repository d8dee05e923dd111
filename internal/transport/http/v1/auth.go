package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRequest is the body of POST /v1/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account.
// POST /v1/auth/register
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "username, email, and password are required"})
	}

	token, user, ok := h.identity.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if !ok {
		return c.JSON(http.StatusConflict, map[string]string{"error": "registration failed"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Login verifies credentials and issues a token.
// POST /v1/auth/login
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	token, user, ok := h.identity.Login(c.Request().Context(), req.Email, req.Password)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Logout deactivates the user's wellness session. The token itself stays
// valid until expiry; state mutations after logout become no-ops.
// POST /v1/auth/logout
func (h *Handler) Logout(c echo.Context) error {
	h.sessions.Evict(currentUser(c).ID)
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated user.
// GET /v1/me
func (h *Handler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, currentUser(c))
}
