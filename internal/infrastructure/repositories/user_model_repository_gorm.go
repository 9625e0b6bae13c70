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

// userModelRepositoryGorm GORM用户模型覆盖仓储实现
type userModelRepositoryGorm struct {
	db    *gorm.DB
	cache *redis.CacheService
}

// NewUserModelRepositoryGorm 创建GORM用户模型覆盖仓储
func NewUserModelRepositoryGorm(db *gorm.DB, cache *redis.CacheService) repositories.UserModelRepository {
	return &userModelRepositoryGorm{
		db:    db,
		cache: cache,
	}
}

// Create 创建覆盖记录
func (r *userModelRepositoryGorm) Create(ctx context.Context, override *entities.UserModelOverride) error {
	if err := r.db.WithContext(ctx).Create(override).Error; err != nil {
		return fmt.Errorf("failed to create user model override: %w", err)
	}
	return nil
}

// GetByID 根据ID获取覆盖记录
func (r *userModelRepositoryGorm) GetByID(ctx context.Context, id int64) (*entities.UserModelOverride, error) {
	var override entities.UserModelOverride
	if err := r.db.WithContext(ctx).First(&override, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrUserModelNotFound
		}
		return nil, fmt.Errorf("failed to get user model override by id: %w", err)
	}
	return &override, nil
}

// GetByUserAndModel 获取用户对某模板的覆盖记录
func (r *userModelRepositoryGorm) GetByUserAndModel(ctx context.Context, userID int64, templateModelID string) (*entities.UserModelOverride, error) {
	// 尝试从缓存获取
	if r.cache != nil {
		cacheKey := GetUserModelCacheKey(userID, templateModelID)
		var cachedOverride entities.UserModelOverride
		if err := r.cache.Get(ctx, cacheKey, &cachedOverride); err == nil {
			return &cachedOverride, nil
		}
	}

	var override entities.UserModelOverride
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND template_model_id = ?", userID, templateModelID).
		First(&override).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrUserModelNotFound
		}
		return nil, fmt.Errorf("failed to get user model override: %w", err)
	}

	if r.cache != nil {
		cacheKey := GetUserModelCacheKey(userID, templateModelID)
		ttl := cache.GetCacheTTLManager().GetUserModelTTL()
		r.cache.Set(ctx, cacheKey, &override, ttl)
	}

	return &override, nil
}

// Update 更新覆盖记录
func (r *userModelRepositoryGorm) Update(ctx context.Context, override *entities.UserModelOverride) error {
	override.UpdatedAt = time.Now()

	result := r.db.WithContext(ctx).Save(override)
	if result.Error != nil {
		return fmt.Errorf("failed to update user model override: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return entities.ErrUserModelNotFound
	}

	if r.cache != nil {
		r.cache.Delete(ctx, GetUserModelCacheKey(override.UserID, override.TemplateModelID))
	}

	return nil
}

// Delete 删除覆盖记录
func (r *userModelRepositoryGorm) Delete(ctx context.Context, id int64) error {
	override, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&entities.UserModelOverride{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user model override: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return entities.ErrUserModelNotFound
	}

	if r.cache != nil {
		r.cache.Delete(ctx, GetUserModelCacheKey(override.UserID, override.TemplateModelID))
	}

	return nil
}

// ListByUser 获取用户的全部覆盖记录
func (r *userModelRepositoryGorm) ListByUser(ctx context.Context, userID int64) ([]*entities.UserModelOverride, error) {
	var overrides []*entities.UserModelOverride
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&overrides).Error; err != nil {
		return nil, fmt.Errorf("failed to list user model overrides: %w", err)
	}
	return overrides, nil
}
