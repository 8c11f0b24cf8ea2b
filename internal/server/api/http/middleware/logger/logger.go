// Package logger provides the request-logging middleware. Every request is
// tagged with a generated id and logged once, after the handler has run.
package logger

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"tripvault/internal/logging"
)

type Logger struct {
	log logging.Logger
}

func New(log logging.Logger) *Logger {
	return &Logger{
		log: log.With("component", "http"),
	}
}

func (l *Logger) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		requestID := uuid.NewString()

		method := ctx.Method()
		path := ctx.URL().Path
		remoteAddr := ctx.RemoteAddr()

		next(ctx)

		l.log.Info(ctx.Context(), "request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status", ctx.Status(),
			"duration", time.Since(start),
			"remote_addr", remoteAddr,
		)
	}
}
