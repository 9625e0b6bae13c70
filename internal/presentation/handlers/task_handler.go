package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-model-admin/internal/application/dto"
	"ai-model-admin/internal/application/services"
	"ai-model-admin/internal/domain/entities"
	"ai-model-admin/internal/infrastructure/logger"
)

// TaskHandler 生成任务处理器
type TaskHandler struct {
	taskService services.TaskService
	logger      logger.Logger
}

// NewTaskHandler 创建任务处理器
func NewTaskHandler(taskService services.TaskService, logger logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// CreateTask 创建生成任务
// @Summary 创建生成任务
// @Description 创建任务并立即完成端点解析，未知模型返回404
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "创建任务请求"
// @Success 201 {object} dto.Response{data=dto.TaskResponse} "创建成功"
// @Failure 400 {object} dto.Response "请求参数错误"
// @Failure 404 {object} dto.Response "模板或代理账号不存在"
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
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

	task, err := h.taskService.CreateTask(c.Request.Context(), &req)
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
			"model_id": req.ModelID,
			"user_id":  req.UserID,
			"error":    err.Error(),
		}).Error("Failed to create task")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"CREATE_TASK_FAILED",
			"Failed to create task",
			nil,
		))
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse(task, "Task created successfully"))
}

// GetTask 获取生成任务
// @Summary 获取生成任务
// @Description 根据任务ID获取详细信息
// @Tags tasks
// @Produce json
// @Param id path int true "任务ID"
// @Success 200 {object} dto.Response{data=dto.TaskResponse} "获取成功"
// @Failure 404 {object} dto.Response "任务不存在"
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"TASK_NOT_FOUND",
				"Generation task not found",
				nil,
			))
			return
		}

		h.logger.WithFields(map[string]interface{}{
			"task_id": id,
			"error":   err.Error(),
		}).Error("Failed to get task")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"GET_TASK_FAILED",
			"Failed to get task",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(task, "Task retrieved successfully"))
}

// ListTasks 获取任务列表
// @Summary 获取任务列表
// @Description 分页获取任务列表，可按状态过滤
// @Tags tasks
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param status query string false "任务状态过滤"
// @Success 200 {object} dto.Response{data=dto.PaginatedResponse} "获取成功"
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var req dto.TaskListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse(
			"INVALID_REQUEST",
			"Invalid query parameters",
			nil,
		))
		return
	}

	result, err := h.taskService.ListTasks(c.Request.Context(), &req)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list tasks")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"LIST_TASKS_FAILED",
			"Failed to list tasks",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(result, "Tasks retrieved successfully"))
}

// DispatchTask 派发生成任务
// @Summary 派发生成任务
// @Description 把任务派发到解析好的端点并记录上游响应状态
// @Tags tasks
// @Produce json
// @Param id path int true "任务ID"
// @Success 200 {object} dto.Response{data=dto.TaskResponse} "派发完成"
// @Failure 404 {object} dto.Response "任务不存在"
// @Router /tasks/{id}/dispatch [post]
func (h *TaskHandler) DispatchTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.DispatchTask(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse(
				"TASK_NOT_FOUND",
				"Generation task not found",
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
			"task_id": id,
			"error":   err.Error(),
		}).Error("Failed to dispatch task")

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(
			"DISPATCH_TASK_FAILED",
			"Failed to dispatch task",
			nil,
		))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(task, "Task dispatch completed"))
}
