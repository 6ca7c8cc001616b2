// Package http wires the echo handlers, middleware and error mapping that
// form the API surface.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"docledger/internal/common"
)

const loggerContextKey = "logger"

// writeError translates service errors to the wire taxonomy: validation and
// duplicate keys → 400, unauthenticated → 401, forbidden → 403, missing →
// 404, everything else → 500 with the detail kept out of the response.
func writeError(c echo.Context, err error) error {
	switch {
	case common.IsValidation(err), errors.Is(err, common.ErrAlreadyExists):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, common.ErrUnauthenticated), errors.Is(err, common.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
	case errors.Is(err, common.ErrForbidden):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "not the owner"})
	case errors.Is(err, common.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		if log, ok := c.Get(loggerContextKey).(zerolog.Logger); ok {
			log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}
