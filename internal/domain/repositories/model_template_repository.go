package repositories

import (
	"context"

	"ai-model-admin/internal/domain/entities"
)

// ModelTemplateRepository 模型模板仓储接口
type ModelTemplateRepository interface {
	// Create 创建模板
	Create(ctx context.Context, template *entities.ModelTemplate) error

	// GetByID 根据ID获取模板
	GetByID(ctx context.Context, id int64) (*entities.ModelTemplate, error)

	// GetByModelID 根据稳定模型标识获取模板
	GetByModelID(ctx context.Context, modelID string) (*entities.ModelTemplate, error)

	// Update 更新模板
	Update(ctx context.Context, template *entities.ModelTemplate) error

	// Delete 删除模板
	Delete(ctx context.Context, id int64) error

	// List 分页获取模板列表，enabled为nil时不过滤启用状态
	List(ctx context.Context, enabled *bool, offset, limit int) ([]*entities.ModelTemplate, error)

	// ListByMediaType 按媒体类型获取启用的模板
	ListByMediaType(ctx context.Context, mediaType entities.MediaType) ([]*entities.ModelTemplate, error)

	// Count 获取模板总数，enabled为nil时不过滤启用状态
	Count(ctx context.Context, enabled *bool) (int64, error)
}
