package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/pkg/logger"
	jsonres "github.com/talha-dycoders/Intelligent-ecommerce-app/pkg/response"
)

// ErrorHandler turns uncaught errors into the shared JSON envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("unhandled error", err, "path", c.Request().URL.Path)
	}

	if err := c.JSON(code, jsonres.Error(http.StatusText(code), message, nil)); err != nil {
		logger.Error("failed to write error response", err)
	}
}
