package repositories

import (
	"context"

	"ai-model-admin/internal/domain/entities"
)

// ProxyAccountRepository 代理账号仓储接口
type ProxyAccountRepository interface {
	// Create 创建代理账号
	Create(ctx context.Context, account *entities.ProxyAccount) error

	// GetByID 根据ID获取代理账号
	GetByID(ctx context.Context, id int64) (*entities.ProxyAccount, error)

	// Update 更新代理账号
	Update(ctx context.Context, account *entities.ProxyAccount) error

	// Delete 删除代理账号
	Delete(ctx context.Context, id int64) error

	// List 分页获取代理账号列表
	List(ctx context.Context, offset, limit int) ([]*entities.ProxyAccount, error)

	// ListActive 获取全部活跃代理账号
	ListActive(ctx context.Context) ([]*entities.ProxyAccount, error)

	// Count 获取代理账号总数
	Count(ctx context.Context) (int64, error)
}
