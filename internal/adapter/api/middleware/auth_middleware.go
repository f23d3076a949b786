package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"reptileshop/internal/infrastructure/auth"
)

type AuthMiddleware struct {
	tokens *auth.JWTManager
}

func NewAuthMiddleware(tokens *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		userID, isAdmin, err := m.tokens.Verify(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", userID)
		c.Set("isAdmin", isAdmin)

		return next(c)
	}
}

// Optional authenticates when a valid token is present and stays silent
// otherwise, for endpoints that are public but user-aware.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return next(c)
		}

		userID, isAdmin, err := m.tokens.Verify(parts[1])
		if err != nil {
			return next(c)
		}

		c.Set("uid", userID)
		c.Set("isAdmin", isAdmin)

		return next(c)
	}
}
