package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"identity-service/internal/domain"
)

// writeError maps domain errors onto HTTP statuses. Anything outside
// the taxonomy is reported as a generic internal failure so storage
// errors never leak to clients.
func writeError(c echo.Context, err error) error {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
	case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrDuplicateToken):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidRefreshToken):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
