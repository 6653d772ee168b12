package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spacesedan/mooddecode/internal/monitoring"
)

const requestIDHeader = "X-Request-ID"

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			slog.String("request_id", c.GetString(requestIDHeader)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)),
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			slog.Error("[Server] Request failed", attrs...)
		case status >= http.StatusBadRequest:
			slog.Warn("[Server] Request rejected", attrs...)
		default:
			slog.Info("[Server] Request served", attrs...)
		}
	}
}

func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		monitoring.HTTPRequestsTotal.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Inc()
		monitoring.HTTPRequestDuration.
			WithLabelValues(route, c.Request.Method).
			Observe(time.Since(start).Seconds())
	}
}

// limitBody caps how much of a request body handlers may read. A limit of
// zero disables it.
func limitBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

func recoverJSON(c *gin.Context, recovered any) {
	slog.Error("[Server] Recovered from panic",
		slog.String("request_id", c.GetString(requestIDHeader)),
		slog.Any("panic", recovered))
	writeError(c, http.StatusInternalServerError, "internal server error")
}
