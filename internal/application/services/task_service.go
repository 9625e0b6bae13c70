package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ai-model-admin/internal/application/dto"
	"ai-model-admin/internal/domain/entities"
	"ai-model-admin/internal/domain/repositories"
	"ai-model-admin/internal/infrastructure/clients"
	"ai-model-admin/internal/infrastructure/logger"
)

// TaskService 生成任务服务接口
type TaskService interface {
	// CreateTask 创建任务，创建时即完成端点解析
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)

	// GetTask 根据ID获取任务
	GetTask(ctx context.Context, id int64) (*dto.TaskResponse, error)

	// ListTasks 分页获取任务列表
	ListTasks(ctx context.Context, req *dto.TaskListRequest) (*dto.PaginatedResponse, error)

	// DispatchTask 把任务派发到已解析的端点并记录结果
	DispatchTask(ctx context.Context, id int64) (*dto.TaskResponse, error)
}

// taskServiceImpl 生成任务服务实现
type taskServiceImpl struct {
	taskRepo    repositories.GenerationTaskRepository
	accountRepo repositories.ProxyAccountRepository
	resolver    EndpointResolverService
	genClient   clients.GenerationClient
	logger      logger.Logger
}

// NewTaskService 创建生成任务服务
func NewTaskService(
	taskRepo repositories.GenerationTaskRepository,
	accountRepo repositories.ProxyAccountRepository,
	resolver EndpointResolverService,
	genClient clients.GenerationClient,
	logger logger.Logger,
) TaskService {
	return &taskServiceImpl{
		taskRepo:    taskRepo,
		accountRepo: accountRepo,
		resolver:    resolver,
		genClient:   genClient,
		logger:      logger,
	}
}

// CreateTask 创建任务，创建时即完成端点解析，未知模型直接失败
func (s *taskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	resolved, err := s.resolver.Resolve(ctx, &dto.ResolveEndpointRequest{
		ModelID:           req.ModelID,
		MediaType:         req.MediaType,
		CustomEndpointURL: req.CustomEndpointURL,
		ProxyAccountID:    req.ProxyAccountID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve endpoint: %w", err)
	}

	task := &entities.GenerationTask{
		RequestID:      uuid.New().String(),
		UserID:         req.UserID,
		ModelID:        req.ModelID,
		MediaType:      entities.MediaType(req.MediaType),
		Prompt:         req.Prompt,
		FinalURL:       resolved.FinalURL,
		ProxyAccountID: req.ProxyAccountID,
		Status:         entities.TaskStatusPending,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"task_id":    task.ID,
		"request_id": task.RequestID,
		"model_id":   task.ModelID,
		"final_url":  task.FinalURL,
	}).Info("Generation task created")

	return s.toTaskResponse(task), nil
}

// GetTask 根据ID获取任务
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return s.toTaskResponse(task), nil
}

// ListTasks 分页获取任务列表，可按状态过滤
func (s *taskServiceImpl) ListTasks(ctx context.Context, req *dto.TaskListRequest) (*dto.PaginatedResponse, error) {
	req.SetDefaults()

	status := entities.TaskStatus(req.Status)

	tasks, err := s.taskRepo.List(ctx, status, req.Offset(), req.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	total, err := s.taskRepo.Count(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	responses := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, s.toTaskResponse(t))
	}

	return dto.NewPaginatedResponse(responses, total, req.Page, req.PageSize), nil
}

// DispatchTask 把任务派发到已解析的端点并记录结果
//
// 终态任务不允许重复派发。派发失败记为failed，上游返回任何状态码
// 都按MarkDispatched的规则落状态。
func (s *taskServiceImpl) DispatchTask(ctx context.Context, id int64) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if task.IsTerminal() {
		return nil, fmt.Errorf("task %d is already in terminal status %s", id, task.Status)
	}

	genReq := &clients.GenerationRequest{
		URL:    task.FinalURL,
		Model:  task.ModelID,
		Prompt: task.Prompt,
	}

	if task.ProxyAccountID != nil {
		account, err := s.accountRepo.GetByID(ctx, *task.ProxyAccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to get proxy account: %w", err)
		}
		genReq.APIKey = account.APIKey
	}

	resp, err := s.genClient.Dispatch(ctx, genReq)
	if err != nil {
		task.MarkFailed(err.Error(), time.Now())
		if updateErr := s.taskRepo.Update(ctx, task); updateErr != nil {
			s.logger.WithField("task_id", id).Error("Failed to update task status to failed")
		}
		return s.toTaskResponse(task), nil
	}

	task.MarkDispatched(resp.StatusCode, time.Now())

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"task_id":     id,
		"status":      task.Status,
		"status_code": resp.StatusCode,
	}).Info("Generation task dispatched")

	return s.toTaskResponse(task), nil
}

// toTaskResponse 实体转响应DTO
func (s *taskServiceImpl) toTaskResponse(task *entities.GenerationTask) *dto.TaskResponse {
	resp := &dto.TaskResponse{
		ID:             task.ID,
		RequestID:      task.RequestID,
		UserID:         task.UserID,
		ModelID:        task.ModelID,
		MediaType:      string(task.MediaType),
		Prompt:         task.Prompt,
		FinalURL:       task.FinalURL,
		ProxyAccountID: task.ProxyAccountID,
		Status:         string(task.Status),
		StatusCode:     task.StatusCode,
		DispatchedAt:   task.DispatchedAt,
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}
	if task.ErrorMessage != nil {
		resp.ErrorMessage = *task.ErrorMessage
	}
	return resp
}
