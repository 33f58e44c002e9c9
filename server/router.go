package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
)

// NewRouter wires the HTTP routes exposed by the API.
func NewRouter(logger *slog.Logger, h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), otelgin.Middleware("pathlight"), requestID(), requestLogger(logger))

	r.GET("/healthz", h.HandleHealth)

	v1 := r.Group("/v1")
	v1.GET("/nodes", h.HandleNodes)
	v1.GET("/paths", h.HandlePaths)
	v1.GET("/route", h.HandleRoute)

	return r
}

// requestID propagates X-Request-ID or assigns a fresh uuid.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			slog.String("request_id", c.GetString(requestIDKey)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
