package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "usersvc/internal/errors"
)

// respondError renders any typed error through the shared taxonomy mapping
// so every endpoint fails with the same (status, {error, code}) shape.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
