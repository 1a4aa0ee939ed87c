package handlers

import (
	"net/http"

	"orgchart/internal/config"
	"orgchart/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBCheck pings the database and verifies the org chart tables exist.
func (h *Handler) DBCheck(c *gin.Context) {
	rid := middleware.GetRequestID(c)
	ctx := c.Request.Context()

	if err := config.PingDB(ctx, h.deps.DB); err != nil {
		h.deps.Logger.Error("db check failed", zap.String("request_id", rid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error", "request_id": rid})
		return
	}

	missing, err := config.MissingTables(ctx, h.deps.DB, config.SchemaTables)
	if err != nil {
		h.deps.Logger.Error("db check failed", zap.String("request_id", rid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error", "request_id": rid})
		return
	}
	if len(missing) > 0 {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":          "schema not applied",
			"missing_tables": missing,
			"request_id":     rid,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "reachable"})
}
