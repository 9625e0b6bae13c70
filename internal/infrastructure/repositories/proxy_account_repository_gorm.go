package repositories

import (
	"context"
	"fmt"
	"time"

	"ai-model-admin/internal/domain/entities"
	"ai-model-admin/internal/domain/repositories"
	"ai-model-admin/internal/infrastructure/cache"
	"ai-model-admin/internal/infrastructure/redis"

	"gorm.io/gorm"
)

// proxyAccountRepositoryGorm GORM代理账号仓储实现
type proxyAccountRepositoryGorm struct {
	db    *gorm.DB
	cache *redis.CacheService
}

// NewProxyAccountRepositoryGorm 创建GORM代理账号仓储
func NewProxyAccountRepositoryGorm(db *gorm.DB, cache *redis.CacheService) repositories.ProxyAccountRepository {
	return &proxyAccountRepositoryGorm{
		db:    db,
		cache: cache,
	}
}

// Create 创建代理账号
func (r *proxyAccountRepositoryGorm) Create(ctx context.Context, account *entities.ProxyAccount) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("failed to create proxy account: %w", err)
	}
	return nil
}

// GetByID 根据ID获取代理账号
func (r *proxyAccountRepositoryGorm) GetByID(ctx context.Context, id int64) (*entities.ProxyAccount, error) {
	// 尝试从缓存获取
	if r.cache != nil {
		cacheKey := GetProxyAccountCacheKey(id)
		var cachedAccount entities.ProxyAccount
		if err := r.cache.Get(ctx, cacheKey, &cachedAccount); err == nil {
			return &cachedAccount, nil
		}
	}

	var account entities.ProxyAccount
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrProxyAccountNotFound
		}
		return nil, fmt.Errorf("failed to get proxy account by id: %w", err)
	}

	if r.cache != nil {
		cacheKey := GetProxyAccountCacheKey(id)
		ttl := cache.GetCacheTTLManager().GetProxyAccountTTL()
		r.cache.Set(ctx, cacheKey, &account, ttl)
	}

	return &account, nil
}

// Update 更新代理账号
func (r *proxyAccountRepositoryGorm) Update(ctx context.Context, account *entities.ProxyAccount) error {
	account.UpdatedAt = time.Now()

	result := r.db.WithContext(ctx).Save(account)
	if result.Error != nil {
		return fmt.Errorf("failed to update proxy account: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return entities.ErrProxyAccountNotFound
	}

	if r.cache != nil {
		r.cache.Delete(ctx, GetProxyAccountCacheKey(account.ID))
	}

	return nil
}

// Delete 删除代理账号
func (r *proxyAccountRepositoryGorm) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&entities.ProxyAccount{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete proxy account: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return entities.ErrProxyAccountNotFound
	}

	if r.cache != nil {
		r.cache.Delete(ctx, GetProxyAccountCacheKey(id))
	}

	return nil
}

// List 分页获取代理账号列表
func (r *proxyAccountRepositoryGorm) List(ctx context.Context, offset, limit int) ([]*entities.ProxyAccount, error) {
	var accounts []*entities.ProxyAccount
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list proxy accounts: %w", err)
	}
	return accounts, nil
}

// ListActive 获取全部活跃代理账号
func (r *proxyAccountRepositoryGorm) ListActive(ctx context.Context) ([]*entities.ProxyAccount, error) {
	var accounts []*entities.ProxyAccount
	if err := r.db.WithContext(ctx).
		Where("status = ?", entities.ProxyAccountStatusActive).
		Order("created_at DESC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list active proxy accounts: %w", err)
	}
	return accounts, nil
}

// Count 获取代理账号总数
func (r *proxyAccountRepositoryGorm) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.ProxyAccount{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count proxy accounts: %w", err)
	}
	return count, nil
}
