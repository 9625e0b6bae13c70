package repositories

import (
	"context"

	"ai-model-admin/internal/domain/entities"
)

// GenerationTaskRepository 生成任务仓储接口
type GenerationTaskRepository interface {
	// Create 创建任务
	Create(ctx context.Context, task *entities.GenerationTask) error

	// GetByID 根据ID获取任务
	GetByID(ctx context.Context, id int64) (*entities.GenerationTask, error)

	// GetByRequestID 根据请求ID获取任务
	GetByRequestID(ctx context.Context, requestID string) (*entities.GenerationTask, error)

	// Update 更新任务
	Update(ctx context.Context, task *entities.GenerationTask) error

	// List 分页获取任务列表，status为空时不过滤
	List(ctx context.Context, status entities.TaskStatus, offset, limit int) ([]*entities.GenerationTask, error)

	// Count 按状态统计任务数，status为空时统计全部
	Count(ctx context.Context, status entities.TaskStatus) (int64, error)
}
