package repositories

import (
	"context"
	"fmt"
	"time"

	"ai-model-admin/internal/domain/entities"
	"ai-model-admin/internal/domain/repositories"
	"ai-model-admin/internal/infrastructure/redis"

	"gorm.io/gorm"
)

// generationTaskRepositoryGorm GORM生成任务仓储实现
//
// 任务状态变化频繁，不走缓存。
type generationTaskRepositoryGorm struct {
	db    *gorm.DB
	cache *redis.CacheService
}

// NewGenerationTaskRepositoryGorm 创建GORM生成任务仓储
func NewGenerationTaskRepositoryGorm(db *gorm.DB, cache *redis.CacheService) repositories.GenerationTaskRepository {
	return &generationTaskRepositoryGorm{
		db:    db,
		cache: cache,
	}
}

// Create 创建任务
func (r *generationTaskRepositoryGorm) Create(ctx context.Context, task *entities.GenerationTask) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("failed to create generation task: %w", err)
	}
	return nil
}

// GetByID 根据ID获取任务
func (r *generationTaskRepositoryGorm) GetByID(ctx context.Context, id int64) (*entities.GenerationTask, error) {
	var task entities.GenerationTask
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get generation task by id: %w", err)
	}
	return &task, nil
}

// GetByRequestID 根据请求ID获取任务
func (r *generationTaskRepositoryGorm) GetByRequestID(ctx context.Context, requestID string) (*entities.GenerationTask, error) {
	var task entities.GenerationTask
	if err := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&task).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get generation task by request_id: %w", err)
	}
	return &task, nil
}

// Update 更新任务
func (r *generationTaskRepositoryGorm) Update(ctx context.Context, task *entities.GenerationTask) error {
	task.UpdatedAt = time.Now()

	result := r.db.WithContext(ctx).Save(task)
	if result.Error != nil {
		return fmt.Errorf("failed to update generation task: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}

// List 分页获取任务列表，status为空时不过滤
func (r *generationTaskRepositoryGorm) List(ctx context.Context, status entities.TaskStatus, offset, limit int) ([]*entities.GenerationTask, error) {
	query := r.db.WithContext(ctx).Model(&entities.GenerationTask{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var tasks []*entities.GenerationTask
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list generation tasks: %w", err)
	}
	return tasks, nil
}

// Count 按状态统计任务数，status为空时统计全部
func (r *generationTaskRepositoryGorm) Count(ctx context.Context, status entities.TaskStatus) (int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.GenerationTask{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count generation tasks: %w", err)
	}
	return count, nil
}
