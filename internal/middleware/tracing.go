package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// RequestTiming adds OpenTelemetry tracing and a structured access log to HTTP requests
func RequestTiming() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx, span := observability.Tracer("http").Start(c.Request.Context(), "http.request")
		defer span.End()

		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.url", c.Request.URL.String()),
			attribute.String("http.route", c.FullPath()),
			attribute.String("http.user_agent", c.Request.UserAgent()),
			attribute.String("http.client_ip", c.ClientIP()),
		)

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		span.SetAttributes(
			attribute.Int("http.status_code", status),
			attribute.Int64("http.duration_ms", duration.Milliseconds()),
			attribute.Int("http.response_size", c.Writer.Size()),
		)

		campos := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("duration", duration),
		}

		switch {
		case status >= 500:
			span.SetStatus(codes.Error, "HTTP request failed")
			if len(c.Errors) > 0 {
				span.SetAttributes(attribute.String("http.error_message", c.Errors.String()))
				campos = append(campos, zap.String("errors", c.Errors.String()))
			}
			observability.Logger().Error("requisição falhou", campos...)
		case status >= 400:
			// erros do cliente (validação, conflito) não marcam o span como falha
			span.SetAttributes(attribute.Bool("http.client_error", true))
			observability.Logger().Info("requisição recusada", campos...)
		default:
			span.SetStatus(codes.Ok, "HTTP request succeeded")
			observability.Logger().Debug("requisição", campos...)
		}
	}
}
