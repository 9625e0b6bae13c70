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

// UserModelHandler 用户模型覆盖处理器
type UserModelHandler struct {
	userModelService services.UserModelService
	logger           logger.Logger
}

// NewUserModelHandler 创建用户模型覆盖处理器
func NewUserModelHandler(userModelService services.UserModelService, logger logger.Logger) *UserModelHandler {
	return &UserModelHandler{
		userModelService: userModelService,
		logger:           logger,
	}
}

// CreateUserModel 创建覆盖记录
// @Summary 创建用户模型覆盖
// @Description 为用户在指定模板上创建覆盖配置，同一用户同一模板只允许一条
// @Tags user-models
// @Accept json
// @Produce json
// @Param request body dto.CreateUserModelRequest true "创建覆盖请求"
// @Success 201 {object} dto.Response{data=dto.UserModelResponse} "创建成功"
// @Failure 400 {object} dto.Response "请求参数错误"
// @Failure 404 {object} dto.Response "模板或代理账号不存在"
// @Router /user-models [post]
func (h *UserModelHandler) CreateUserModel(c *gin.Context) {
	var req dto.CreateUserModelRequest
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

	override, err := h.userModelService.CreateUserModel(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, entities.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"TEMPLATE_NOT_FOUND",
				"Model template not found",
				nil,
			))
			return
		}
		if errors.Is(err, entities.ErrProxyAccountNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"PROXY_ACCOUNT_NOT_FOUND",
				"Proxy account not found",
				nil,
			))
			return
		}

		h.logger.WithFields(map[string]interface{}{
			"user_id":           req.UserID,
			"template_model_id": req.TemplateModelID,
			"error":             err.Error(),
		}).Error("Failed to create user model override")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"CREATE_USER_MODEL_FAILED",
			"Failed to create user model override",
			nil,
		))
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse(override, "User model override created successfully"))
}

// GetUserModel 获取覆盖记录
// @Summary 获取用户模型覆盖
// @Description 根据覆盖记录ID获取详细信息
// @Tags user-models
// @Produce json
// @Param id path int true "覆盖记录ID"
// @Success 200 {object} dto.Response{data=dto.UserModelResponse} "获取成功"
// @Failure 404 {object} dto.Response "覆盖记录不存在"
// @Router /user-models/{id} [get]
func (h *UserModelHandler) GetUserModel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	override, err := h.userModelService.GetUserModel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrUserModelNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"USER_MODEL_NOT_FOUND",
				"User model override not found",
				nil,
			))
			return
		}

		h.logger.WithFields(map[string]interface{}{
			"override_id": id,
			"error":       err.Error(),
		}).Error("Failed to get user model override")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"GET_USER_MODEL_FAILED",
			"Failed to get user model override",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(override, "User model override retrieved successfully"))
}

// ListUserModels 获取用户的覆盖记录列表
// @Summary 获取用户的覆盖记录列表
// @Description 按用户ID获取其全部覆盖记录
// @Tags user-models
// @Produce json
// @Param user_id query int true "用户ID"
// @Success 200 {object} dto.Response{data=[]dto.UserModelResponse} "获取成功"
// @Failure 400 {object} dto.Response "用户ID缺失或格式错误"
// @Router /user-models [get]
func (h *UserModelHandler) ListUserModels(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse(
			"INVALID_USER_ID",
			"Invalid user_id parameter",
			nil,
		))
		return
	}

	overrides, err := h.userModelService.ListUserModels(c.Request.Context(), userID)
	if err != nil {
		h.logger.WithFields(map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("Failed to list user model overrides")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"LIST_USER_MODELS_FAILED",
			"Failed to list user model overrides",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(overrides, "User model overrides retrieved successfully"))
}

// UpdateUserModel 更新覆盖记录
// @Summary 更新用户模型覆盖
// @Description 根据覆盖记录ID更新配置，未提交的字段保持不变
// @Tags user-models
// @Accept json
// @Produce json
// @Param id path int true "覆盖记录ID"
// @Param request body dto.UpdateUserModelRequest true "更新覆盖请求"
// @Success 200 {object} dto.Response{data=dto.UserModelResponse} "更新成功"
// @Failure 404 {object} dto.Response "覆盖记录不存在"
// @Router /user-models/{id} [put]
func (h *UserModelHandler) UpdateUserModel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateUserModelRequest
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

	override, err := h.userModelService.UpdateUserModel(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, entities.ErrUserModelNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"USER_MODEL_NOT_FOUND",
				"User model override not found",
				nil,
			))
			return
		}
		if errors.Is(err, entities.ErrProxyAccountNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"PROXY_ACCOUNT_NOT_FOUND",
				"Proxy account not found",
				nil,
			))
			return
		}

		h.logger.WithFields(map[string]interface{}{
			"override_id": id,
			"error":       err.Error(),
		}).Error("Failed to update user model override")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"UPDATE_USER_MODEL_FAILED",
			"Failed to update user model override",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(override, "User model override updated successfully"))
}

// DeleteUserModel 删除覆盖记录
// @Summary 删除用户模型覆盖
// @Description 根据覆盖记录ID删除覆盖配置
// @Tags user-models
// @Produce json
// @Param id path int true "覆盖记录ID"
// @Success 200 {object} dto.Response "删除成功"
// @Failure 404 {object} dto.Response "覆盖记录不存在"
// @Router /user-models/{id} [delete]
func (h *UserModelHandler) DeleteUserModel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.userModelService.DeleteUserModel(c.Request.Context(), id); err != nil {
		if errors.Is(err, entities.ErrUserModelNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"USER_MODEL_NOT_FOUND",
				"User model override not found",
				nil,
			))
			return
		}

		h.logger.WithFields(map[string]interface{}{
			"override_id": id,
			"error":       err.Error(),
		}).Error("Failed to delete user model override")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"DELETE_USER_MODEL_FAILED",
			"Failed to delete user model override",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(nil, "User model override deleted successfully"))
}

// TestUserModel 探测覆盖记录的生效端点
// @Summary 测试用户模型覆盖
// @Description 探测覆盖记录的生效端点并把结果缓存到记录上
// @Tags user-models
// @Produce json
// @Param id path int true "覆盖记录ID"
// @Success 200 {object} dto.Response{data=dto.ProbeResult} "探测完成"
// @Failure 404 {object} dto.Response "覆盖记录不存在"
// @Router /user-models/{id}/test [post]
func (h *UserModelHandler) TestUserModel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.userModelService.TestUserModel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrUserModelNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"USER_MODEL_NOT_FOUND",
				"User model override not found",
				nil,
			))
			return
		}
		if errors.Is(err, entities.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"TEMPLATE_NOT_FOUND",
				"Model template not found",
				nil,
			))
			return
		}

		h.logger.WithFields(map[string]interface{}{
			"override_id": id,
			"error":       err.Error(),
		}).Error("Failed to test user model override")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"TEST_USER_MODEL_FAILED",
			"Failed to test user model override",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(result, "Probe completed"))
}
