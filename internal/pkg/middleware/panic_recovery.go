package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/krishilink/krishilink/internal/pkg/logger"
	"github.com/krishilink/krishilink/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack and
// returns an opaque 500 to the caller. Internal detail never leaves the
// process.
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered", logger.Fields{
						"panic":  r,
						"method": c.Request().Method,
						"path":   c.Request().URL.Path,
						"stack":  string(debug.Stack()),
					})

					if !c.Response().Committed {
						_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
					}
				}
			}()

			return next(c)
		}
	}
}
