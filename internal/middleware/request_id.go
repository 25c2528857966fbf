package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace id in both directions: browsers and
	// proxies may send one in, and every response echoes it back.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is where RequestID stashes the id on the echo context.
	TraceIDContextKey = "trace_id"
)

// RequestID tags every request with a trace id so log lines, error envelopes,
// and the response header all correlate. An id supplied by the caller is kept,
// otherwise a fresh uuid is minted.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID reads the trace id placed by RequestID, or "" when the
// middleware has not run for this request.
func GetTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}
