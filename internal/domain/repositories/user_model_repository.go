package repositories

import (
	"context"

	"ai-model-admin/internal/domain/entities"
)

// UserModelRepository 用户模型覆盖仓储接口
type UserModelRepository interface {
	// Create 创建覆盖记录
	Create(ctx context.Context, override *entities.UserModelOverride) error

	// GetByID 根据ID获取覆盖记录
	GetByID(ctx context.Context, id int64) (*entities.UserModelOverride, error)

	// GetByUserAndModel 获取用户对某模板的覆盖记录
	GetByUserAndModel(ctx context.Context, userID int64, templateModelID string) (*entities.UserModelOverride, error)

	// Update 更新覆盖记录
	Update(ctx context.Context, override *entities.UserModelOverride) error

	// Delete 删除覆盖记录
	Delete(ctx context.Context, id int64) error

	// ListByUser 获取用户的全部覆盖记录
	ListByUser(ctx context.Context, userID int64) ([]*entities.UserModelOverride, error)
}
