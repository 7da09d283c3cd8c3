package middleware

import (
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/clover/pkg/context"
)

// Logger writes one structured line per request.
func Logger(logger ectologger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			elapsed := time.Since(start)

			fields := map[string]any{
				"request_id":    context.GetRequestID(req.Context()),
				"method":        req.Method,
				"uri":           req.RequestURI,
				"route":         c.Path(),
				"status":        res.Status,
				"remote_ip":     c.RealIP(),
				"user_agent":    req.UserAgent(),
				"response_time": elapsed.String(),
				"response_size": res.Size,
			}

			entry := logger.WithContext(req.Context()).WithFields(fields)
			if res.Status >= 500 {
				entry.Warn("Request")
				return nil
			}
			entry.Info("Request")
			return nil
		}
	}
}
