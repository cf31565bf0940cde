package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const traceHeaderKey = "X-Trace-ID"
const traceIDKey = "trace_id"

// traceID reuses the caller's trace id or issues a new one.
func traceID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(traceHeaderKey)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		ctx.Set(traceIDKey, id)
		ctx.Header(traceHeaderKey, id)

		ctx.Next()
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		logger.Info("request",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("trace_id", ctx.GetString(traceIDKey)),
		)
	}
}
