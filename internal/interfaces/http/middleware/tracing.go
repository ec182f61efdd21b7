package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracing returns the otelgin server span middleware followed by a handler
// that tags the span with the request ID and marks 5xx responses as errors.
// A nil provider falls back to the global one.
func Tracing(serviceName string, provider trace.TracerProvider) []gin.HandlerFunc {
	var opts []otelgin.Option
	if provider != nil {
		opts = append(opts, otelgin.WithTracerProvider(provider))
	}
	return []gin.HandlerFunc{
		otelgin.Middleware(serviceName, opts...),
		annotateSpan,
	}
}

func annotateSpan(c *gin.Context) {
	span := trace.SpanFromContext(c.Request.Context())
	if !span.IsRecording() {
		c.Next()
		return
	}

	if requestID := c.GetString(RequestIDKey); requestID != "" {
		span.SetAttributes(attribute.String("request_id", requestID))
	}

	c.Next()

	if status := c.Writer.Status(); status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	}
}
