package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// RequestTiming opens a span for the whole request and records its duration
func RequestTiming() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx, span := otel.Tracer("http").Start(c.Request.Context(), "http.request")
		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.url", c.Request.URL.String()),
			attribute.String("http.route", c.FullPath()),
			attribute.String("http.user_agent", c.Request.UserAgent()),
			attribute.String("http.client_ip", c.ClientIP()),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		span.SetAttributes(
			attribute.Int("http.status_code", status),
			attribute.Int64("http.duration_ms", latency.Milliseconds()),
		)
		if status >= 500 {
			span.SetStatus(codes.Error, "server error")
		}

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observability.RequestDuration.WithLabelValues(
			route,
			c.Request.Method,
			statusLabel(status),
		).Observe(latency.Seconds())
	}
}
