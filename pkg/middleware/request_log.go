package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"rowtrack/pkg/logger"
)

// RequestLogger writes one line per request; level follows the status.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			if log == nil {
				return nil
			}
			status := v.Status
			if v.Error != nil {
				var he *echo.HTTPError
				if errors.As(v.Error, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}
			path := v.RoutePath
			if path == "" {
				path = v.URIPath
			}

			fields := []interface{}{
				"method", strings.ToUpper(v.Method),
				"path", path,
				"status", status,
				"duration_ms", v.Latency.Milliseconds(),
			}
			if v.RequestID != "" {
				fields = append(fields, "request_id", v.RequestID)
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error.Error())
			}

			switch {
			case status >= 500:
				log.Error("HTTP request", fields...)
			case status >= 400:
				log.Warn("HTTP request", fields...)
			default:
				log.Info("HTTP request", fields...)
			}
			return nil
		},
	})
}
