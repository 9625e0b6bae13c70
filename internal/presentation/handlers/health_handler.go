package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ai-model-admin/internal/application/dto"
	"ai-model-admin/internal/infrastructure/database"
	"ai-model-admin/internal/infrastructure/logger"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(db *gorm.DB, logger logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Health 健康检查
// @Summary 健康检查
// @Description 检查服务与数据库连接状态
// @Tags health
// @Produce json
// @Success 200 {object} dto.Response "服务正常"
// @Failure 503 {object} dto.Response "数据库不可用"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := database.HealthCheck(h.db); err != nil {
		h.logger.WithField("error", err.Error()).Error("Database health check failed")

		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse(
			"DATABASE_UNAVAILABLE",
			"Database health check failed",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(map[string]interface{}{
		"status": "ok",
	}, "Service is healthy"))
}
