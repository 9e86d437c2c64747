package handler

import (
	"net/http"

	"cantina/internal/store"

	"github.com/gin-gonic/gin"
)

// Health GET /health — verifies the record store answers reads.
func Health(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := s.Get(c.Request.Context(), store.KeySectors); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
