package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Zachkp/portfolio/internal/visits"
)

const requestIDHeader = "X-Request-ID"

// requestID tags each request with an id, stores a request-scoped logger in
// the request context and writes one access log line per request.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Writer.Header().Set(requestIDHeader, id)

		logger := log.With().Str("request_id", id).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))

		start := time.Now()
		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("url", c.Request.URL.String()).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	}
}

func logger(c *gin.Context) *zerolog.Logger {
	return zerolog.Ctx(c.Request.Context())
}

var untrackedPrefixes = []string{"/static/", "/images/", "/admin/", "/favicon", "/healthz"}

// trackVisits records page views with hashed addresses. Asset and admin
// requests are skipped, and so is any client sending "DNT: 1".
func trackVisits(t *visits.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range untrackedPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}
		t.RecordAsync(c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}
