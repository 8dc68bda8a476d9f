package server

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const adminCookie = "admin_token"

// adminAuth accepts the admin token as a bearer token or as the admin_token
// cookie.
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok {
			token, _ = c.Cookie(adminCookie)
		}
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			logger(c).Warn().Str("visitor", s.tracker.HashIP(c.ClientIP())).Msg("Rejected admin request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *Server) adminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(s.adminAuth())

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.tracker.Stats(c.Request.Context(), s.now())
		if err != nil {
			logger(c).Error().Err(err).Msg("Error loading admin stats")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.tracker.Stats(c.Request.Context(), s.now())
		if err != nil {
			logger(c).Error().Err(err).Msg("Error exporting admin stats")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=visitor-stats.json")
		logger(c).Info().Str("visitor", s.tracker.HashIP(c.ClientIP())).Msg("Admin stats exported")
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.tracker.Cleanup(c.Request.Context(), s.now())
		if err != nil {
			logger(c).Error().Err(err).Msg("Error cleaning up visitor data")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": n})
	})
}
