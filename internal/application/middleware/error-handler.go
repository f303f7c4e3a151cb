package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// SetupErrorHandler replaces echo's JSON error body with the plain text responses clients expect.
func SetupErrorHandler(e *echo.Echo) {
	e.HTTPErrorHandler = HandleError
}

// HandleError answers unmatched routes and methods with 404 "Route not defined".
// Other echo errors keep their status code; anything else is a 500.
func HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := msg.GetMessage("app.internal-error")

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			code = http.StatusNotFound
			message = msg.GetMessage("app.route-not-defined")
		default:
			code = httpErr.Code
			message = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		log.Error(message,
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err),
		)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.String(code, message)
	}
	if writeErr != nil {
		log.Warn("failed to write error response", zap.Error(writeErr))
	}
}
