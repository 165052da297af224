package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"identity-service/internal/application/command"
	"identity-service/internal/application/interfaces"
)

type AuthHandler struct {
	authService interfaces.AuthService
}

func NewAuthHandler(authService interfaces.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a user and returns a token pair immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var registerCommand command.RegisterCommand
	if err := c.Bind(&registerCommand); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	result, err := h.authService.Register(c.Request().Context(), &registerCommand, c.RealIP())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var loginCommand command.LoginCommand
	if err := c.Bind(&loginCommand); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	result, err := h.authService.Login(c.Request().Context(), &loginCommand, c.RealIP())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Refresh rotates the presented refresh token: the old session is
// revoked and a new pair is issued in its place.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var refreshCommand command.RefreshCommand
	if err := c.Bind(&refreshCommand); err != nil || strings.TrimSpace(refreshCommand.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}

	result, err := h.authService.Refresh(c.Request().Context(), strings.TrimSpace(refreshCommand.RefreshToken), c.RealIP())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Logout revokes the presented refresh token. Unknown tokens succeed
// silently, so repeated logouts are harmless.
func (h *AuthHandler) Logout(c echo.Context) error {
	var logoutCommand command.LogoutCommand
	if err := c.Bind(&logoutCommand); err != nil || strings.TrimSpace(logoutCommand.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}

	if err := h.authService.Logout(c.Request().Context(), strings.TrimSpace(logoutCommand.RefreshToken)); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Me echoes the authenticated caller's claims.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id":  c.Get("user_id"),
		"username": c.Get("username"),
		"email":    c.Get("email"),
		"roles":    c.Get("roles"),
	})
}
