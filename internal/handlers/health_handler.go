package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voltdrive/internal/utils"
	"voltdrive/pkg/cache"
	"voltdrive/pkg/database"
)

type HealthHandler struct {
	db      *database.MongoDB
	cache   *cache.RedisCache
	version string
}

func NewHealthHandler(db *database.MongoDB, redisCache *cache.RedisCache, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		cache:   redisCache,
		version: version,
	}
}

// Check reports process health and the state of its backing stores
func (h *HealthHandler) Check(c *gin.Context) {
	status := http.StatusOK
	checks := gin.H{"database": "up", "cache": "up"}

	if err := h.db.Ping(); err != nil {
		checks["database"] = "down"
		status = http.StatusServiceUnavailable
	}
	if err := h.cache.Ping(c.Request.Context()); err != nil {
		checks["cache"] = "down"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":  healthWord(status),
		"name":    utils.AppName,
		"version": h.version,
		"checks":  checks,
	})
}

func healthWord(status int) string {
	if status == http.StatusOK {
		return "healthy"
	}
	return "degraded"
}
