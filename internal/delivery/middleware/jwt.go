package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"identity-service/internal/infrastructure"
)

// JWTAuth validates a Bearer access token and injects the subject,
// username and role claims into the request context. Handlers behind
// it read them via c.Get("user_id"), c.Get("username") and
// c.Get("roles").
func JWTAuth(jwtService *infrastructure.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := jwtService.ParseAccessToken(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set("user_id", claims.Subject)
			c.Set("username", claims.Username)
			c.Set("email", claims.Email)
			c.Set("roles", claims.Roles)
			return next(c)
		}
	}
}
