package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopworks/backend/internal/infrastructure/logger"
	"github.com/shopworks/backend/internal/infrastructure/persistence"
)

// Health returns a handler reporting service and database health
func Health(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		body := gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		}
		if stats, err := db.Stats(); err == nil {
			body["db_connections"] = gin.H{
				"open":    stats.OpenConnections,
				"in_use":  stats.InUse,
				"idle":    stats.Idle,
				"waiting": stats.WaitCount,
			}
		}
		c.JSON(http.StatusOK, body)
	}
}
