package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"identity-service/internal/delivery/handler"
	"identity-service/internal/delivery/middleware"
	"identity-service/internal/infrastructure"
)

// RegisterRoutes wires the auth and user endpoints. Register, login,
// refresh and logout are public; logout only needs the refresh token
// itself. Everything under /api/users plus /api/auth/me requires a
// valid access token.
func RegisterRoutes(e *echo.Echo, authHandler *handler.AuthHandler, userHandler *handler.UserHandler, jwtService *infrastructure.JWTService) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh-token", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, middleware.JWTAuth(jwtService))

	users := e.Group("/api/users")
	users.Use(middleware.JWTAuth(jwtService))
	users.GET("", userHandler.GetAll)
	users.GET("/:id", userHandler.GetById)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)
}
