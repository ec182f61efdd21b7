package logger

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// GinMiddleware puts a request-scoped logger on the request context and
// writes one access line per request once the handler chain returns.
func GinMiddleware(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		req := c.Request

		ctx, reqLog := WithRequestID(req.Context(), base, c.GetString("request_id"))
		reqLog = reqLog.With(zap.String("method", req.Method), zap.String("path", req.URL.Path))
		c.Request = req.WithContext(WithContext(ctx, reqLog))

		c.Next()

		status := c.Writer.Status()
		ce := reqLog.Check(accessLevel(status), "HTTP Request")
		if ce == nil {
			return
		}
		fields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", time.Since(began)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		if q := req.URL.RawQuery; q != "" {
			fields = append(fields, zap.String("query", q))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}
		ce.Write(fields...)
	}
}

func accessLevel(status int) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status >= http.StatusBadRequest:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

// Recovery logs a panicking handler with its stack and answers 500
func Recovery(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			base.Error("Panic recovered",
				zap.String("request_id", c.GetString("request_id")),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Any("error", rec),
				zap.Stack("stacktrace"),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}()
		c.Next()
	}
}
