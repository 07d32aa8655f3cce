package handler

import (
	"context"
	"net/http"
	"time"

	"utube/internal/config"
	"utube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger 健康检查依赖
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	app *config.AppConfig
	db  Pinger
}

func NewHealthHandler(app *config.AppConfig, db Pinger) *HealthHandler {
	return &HealthHandler{app: app, db: db}
}

// Healthz 健康检查接口
// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthz [get]
func (h *HealthHandler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, code := "ok", http.StatusOK
	if err := h.db.PingContext(ctx); err != nil {
		logger.Warn("Health check database ping failed", zap.Error(err))
		status, code = "degraded", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   h.app.Name,
		"version":   h.app.Version,
		"mode":      h.app.Mode,
	})
}

// Root 根路径
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to " + h.app.Name + " API",
		"version": h.app.Version,
		"docs":    "/swagger/index.html",
	})
}
