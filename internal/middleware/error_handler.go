package middleware

import (
	"net/http"

	"brandBOS/pkg/logger"
	jsonres "brandBOS/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the central echo HTTPErrorHandler: anything that
// escapes a handler uncaught ends up here.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err, "path", c.Path())
	}

	resCode := "INTERNAL_ERROR"
	switch code {
	case http.StatusNotFound:
		resCode = "NOT_FOUND"
	case http.StatusBadRequest:
		resCode = "BAD_REQUEST"
	case http.StatusUnauthorized:
		resCode = "UNAUTHORIZED"
	case http.StatusForbidden:
		resCode = "FORBIDDEN"
	case http.StatusMethodNotAllowed:
		resCode = "METHOD_NOT_ALLOWED"
	}

	if jsonErr := c.JSON(code, jsonres.Error(resCode, message, nil)); jsonErr != nil {
		logger.Error("Failed to write error response", jsonErr)
	}
}
