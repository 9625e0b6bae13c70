package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ai-model-admin/internal/application/dto"
	"ai-model-admin/internal/application/services"
	"ai-model-admin/internal/domain/entities"
	"ai-model-admin/internal/infrastructure/logger"
)

// TemplateHandler 模型模板处理器
type TemplateHandler struct {
	templateService services.TemplateService
	logger          logger.Logger
}

// NewTemplateHandler 创建模板处理器
func NewTemplateHandler(templateService services.TemplateService, logger logger.Logger) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		logger:          logger,
	}
}

// CreateTemplate 创建模板
// @Summary 创建模型模板
// @Description 创建一个新的模型模板，ModelID必须唯一
// @Tags templates
// @Accept json
// @Produce json
// @Param request body dto.CreateTemplateRequest true "创建模板请求"
// @Success 201 {object} dto.Response{data=dto.TemplateResponse} "创建成功"
// @Failure 400 {object} dto.Response "请求参数错误"
// @Router /templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse(
			"INVALID_REQUEST",
			"Invalid request body",
			map[string]interface{}{
				"details": err.Error(),
			},
		))
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidMediaType) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse(
				"INVALID_MEDIA_TYPE",
				"Invalid media type",
				nil,
			))
			return
		}
		if errors.Is(err, entities.ErrDuplicateModelID) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse(
				"DUPLICATE_MODEL_ID",
				"Model id already exists",
				nil,
			))
			return
		}

		h.logger.WithFields(map[string]interface{}{
			"model_id": req.ModelID,
			"error":    err.Error(),
		}).Error("Failed to create template")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"CREATE_TEMPLATE_FAILED",
			"Failed to create template",
			nil,
		))
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse(template, "Template created successfully"))
}

// GetTemplate 获取模板
// @Summary 获取模型模板
// @Description 根据模板ID获取详细信息
// @Tags templates
// @Produce json
// @Param id path int true "模板ID"
// @Success 200 {object} dto.Response{data=dto.TemplateResponse} "获取成功"
// @Failure 404 {object} dto.Response "模板不存在"
// @Router /templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	template, err := h.templateService.GetTemplate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"TEMPLATE_NOT_FOUND",
				"Model template not found",
				nil,
			))
			return
		}

		h.logger.WithFields(map[string]interface{}{
			"template_id": id,
			"error":       err.Error(),
		}).Error("Failed to get template")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"GET_TEMPLATE_FAILED",
			"Failed to get template",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(template, "Template retrieved successfully"))
}

// GetTemplateByModelID 根据模型标识获取模板
// @Summary 根据模型标识获取模板
// @Description 根据稳定模型标识获取模板详细信息
// @Tags templates
// @Produce json
// @Param model_id path string true "模型标识"
// @Success 200 {object} dto.Response{data=dto.TemplateResponse} "获取成功"
// @Failure 404 {object} dto.Response "模板不存在"
// @Router /templates/model/{model_id} [get]
func (h *TemplateHandler) GetTemplateByModelID(c *gin.Context) {
	modelID := c.Param("model_id")
	if modelID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse(
			"INVALID_REQUEST",
			"Model id is required",
			nil,
		))
		return
	}

	template, err := h.templateService.GetTemplateByModelID(c.Request.Context(), modelID)
	if err != nil {
		if errors.Is(err, entities.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"TEMPLATE_NOT_FOUND",
				"Model template not found",
				nil,
			))
			return
		}

		h.logger.WithFields(map[string]interface{}{
			"model_id": modelID,
			"error":    err.Error(),
		}).Error("Failed to get template by model id")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"GET_TEMPLATE_FAILED",
			"Failed to get template",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(template, "Template retrieved successfully"))
}

// ListTemplates 获取模板列表
// @Summary 获取模板列表
// @Description 分页获取模板列表，可按媒体类型和启用状态过滤
// @Tags templates
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param media_type query string false "媒体类型过滤"
// @Param enabled query bool false "启用状态过滤"
// @Success 200 {object} dto.Response{data=dto.PaginatedResponse} "获取成功"
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	var req dto.TemplateListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse(
			"INVALID_REQUEST",
			"Invalid query parameters",
			nil,
		))
		return
	}

	result, err := h.templateService.ListTemplates(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidMediaType) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse(
				"INVALID_MEDIA_TYPE",
				"Invalid media type",
				nil,
			))
			return
		}

		h.logger.WithField("error", err.Error()).Error("Failed to list templates")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"LIST_TEMPLATES_FAILED",
			"Failed to list templates",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(result, "Templates retrieved successfully"))
}

// UpdateTemplate 更新模板
// @Summary 更新模型模板
// @Description 根据模板ID更新模板信息，未提交的字段保持不变
// @Tags templates
// @Accept json
// @Produce json
// @Param id path int true "模板ID"
// @Param request body dto.UpdateTemplateRequest true "更新模板请求"
// @Success 200 {object} dto.Response{data=dto.TemplateResponse} "更新成功"
// @Failure 404 {object} dto.Response "模板不存在"
// @Router /templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse(
			"INVALID_REQUEST",
			"Invalid request body",
			map[string]interface{}{
				"details": err.Error(),
			},
		))
		return
	}

	template, err := h.templateService.UpdateTemplate(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, entities.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"TEMPLATE_NOT_FOUND",
				"Model template not found",
				nil,
			))
			return
		}
		if errors.Is(err, entities.ErrInvalidMediaType) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse(
				"INVALID_MEDIA_TYPE",
				"Invalid media type",
				nil,
			))
			return
		}

		h.logger.WithFields(map[string]interface{}{
			"template_id": id,
			"error":       err.Error(),
		}).Error("Failed to update template")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"UPDATE_TEMPLATE_FAILED",
			"Failed to update template",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(template, "Template updated successfully"))
}

// ToggleTemplate 切换模板启用状态
// @Summary 切换模板启用状态
// @Description 启用的模板禁用，禁用的模板启用
// @Tags templates
// @Produce json
// @Param id path int true "模板ID"
// @Success 200 {object} dto.Response{data=dto.TemplateResponse} "切换成功"
// @Failure 404 {object} dto.Response "模板不存在"
// @Router /templates/{id}/toggle [post]
func (h *TemplateHandler) ToggleTemplate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	template, err := h.templateService.ToggleTemplate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"TEMPLATE_NOT_FOUND",
				"Model template not found",
				nil,
			))
			return
		}

		h.logger.WithFields(map[string]interface{}{
			"template_id": id,
			"error":       err.Error(),
		}).Error("Failed to toggle template")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"TOGGLE_TEMPLATE_FAILED",
			"Failed to toggle template",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(template, "Template toggled successfully"))
}

// DeleteTemplate 删除模板
// @Summary 删除模型模板
// @Description 删除非内置模板，内置模板只能禁用
// @Tags templates
// @Produce json
// @Param id path int true "模板ID"
// @Success 200 {object} dto.Response "删除成功"
// @Failure 400 {object} dto.Response "内置模板不允许删除"
// @Failure 404 {object} dto.Response "模板不存在"
// @Router /templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.templateService.DeleteTemplate(c.Request.Context(), id); err != nil {
		if errors.Is(err, entities.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"TEMPLATE_NOT_FOUND",
				"Model template not found",
				nil,
			))
			return
		}
		if errors.Is(err, entities.ErrBuiltinTemplate) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse(
				"BUILTIN_TEMPLATE",
				"Builtin template cannot be deleted",
				nil,
			))
			return
		}

		h.logger.WithFields(map[string]interface{}{
			"template_id": id,
			"error":       err.Error(),
		}).Error("Failed to delete template")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"DELETE_TEMPLATE_FAILED",
			"Failed to delete template",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(nil, "Template deleted successfully"))
}

// parseIDParam 解析路径中的数字ID，非法时直接写400响应
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse(
			"INVALID_ID",
			"Invalid id parameter",
			nil,
		))
		return 0, false
	}
	return id, true
}
