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

// modelTemplateRepositoryGorm GORM模型模板仓储实现
type modelTemplateRepositoryGorm struct {
	db    *gorm.DB
	cache *redis.CacheService
}

// NewModelTemplateRepositoryGorm 创建GORM模型模板仓储
func NewModelTemplateRepositoryGorm(db *gorm.DB, cache *redis.CacheService) repositories.ModelTemplateRepository {
	return &modelTemplateRepositoryGorm{
		db:    db,
		cache: cache,
	}
}

// Create 创建模板
func (r *modelTemplateRepositoryGorm) Create(ctx context.Context, template *entities.ModelTemplate) error {
	if err := r.db.WithContext(ctx).Create(template).Error; err != nil {
		return fmt.Errorf("failed to create model template: %w", err)
	}
	return nil
}

// GetByID 根据ID获取模板
func (r *modelTemplateRepositoryGorm) GetByID(ctx context.Context, id int64) (*entities.ModelTemplate, error) {
	// 尝试从缓存获取模板
	if r.cache != nil {
		cacheKey := GetTemplateCacheKey(id)
		var cachedTemplate entities.ModelTemplate
		if err := r.cache.Get(ctx, cacheKey, &cachedTemplate); err == nil {
			return &cachedTemplate, nil
		}
	}

	var template entities.ModelTemplate
	if err := r.db.WithContext(ctx).First(&template, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get model template by id: %w", err)
	}

	r.cacheTemplate(ctx, &template)

	return &template, nil
}

// GetByModelID 根据稳定模型标识获取模板
func (r *modelTemplateRepositoryGorm) GetByModelID(ctx context.Context, modelID string) (*entities.ModelTemplate, error) {
	// 尝试从缓存获取模板
	if r.cache != nil {
		cacheKey := GetTemplateByModelIDCacheKey(modelID)
		var cachedTemplate entities.ModelTemplate
		if err := r.cache.Get(ctx, cacheKey, &cachedTemplate); err == nil {
			return &cachedTemplate, nil
		}
	}

	var template entities.ModelTemplate
	if err := r.db.WithContext(ctx).Where("model_id = ?", modelID).First(&template).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get model template by model_id: %w", err)
	}

	r.cacheTemplate(ctx, &template)

	return &template, nil
}

// cacheTemplate 同时缓存ID索引和model_id索引
func (r *modelTemplateRepositoryGorm) cacheTemplate(ctx context.Context, template *entities.ModelTemplate) {
	if r.cache == nil {
		return
	}

	ttl := cache.GetCacheTTLManager().GetTemplateTTL()
	r.cache.Set(ctx, GetTemplateCacheKey(template.ID), template, ttl)
	r.cache.Set(ctx, GetTemplateByModelIDCacheKey(template.ModelID), template, ttl)
}

// Update 更新模板
func (r *modelTemplateRepositoryGorm) Update(ctx context.Context, template *entities.ModelTemplate) error {
	template.UpdatedAt = time.Now()

	result := r.db.WithContext(ctx).Save(template)
	if result.Error != nil {
		return fmt.Errorf("failed to update model template: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return entities.ErrTemplateNotFound
	}

	r.invalidateTemplate(ctx, template)

	return nil
}

// Delete 删除模板
func (r *modelTemplateRepositoryGorm) Delete(ctx context.Context, id int64) error {
	// 先取出记录以便清理model_id索引缓存
	template, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&entities.ModelTemplate{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete model template: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return entities.ErrTemplateNotFound
	}

	r.invalidateTemplate(ctx, template)

	return nil
}

// invalidateTemplate 清除模板相关缓存
func (r *modelTemplateRepositoryGorm) invalidateTemplate(ctx context.Context, template *entities.ModelTemplate) {
	if r.cache == nil {
		return
	}

	r.cache.Delete(ctx,
		GetTemplateCacheKey(template.ID),
		GetTemplateByModelIDCacheKey(template.ModelID),
		GetTemplatesByMediaTypeCacheKey(string(template.MediaType)),
		CacheKeyEnabledTemplates,
	)
}

// List 分页获取模板列表，enabled为nil时不过滤启用状态
func (r *modelTemplateRepositoryGorm) List(ctx context.Context, enabled *bool, offset, limit int) ([]*entities.ModelTemplate, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if enabled != nil {
		query = query.Where("enabled = ?", *enabled)
	}

	var templates []*entities.ModelTemplate
	if err := query.Limit(limit).Offset(offset).Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list model templates: %w", err)
	}
	return templates, nil
}

// ListByMediaType 按媒体类型获取启用的模板
func (r *modelTemplateRepositoryGorm) ListByMediaType(ctx context.Context, mediaType entities.MediaType) ([]*entities.ModelTemplate, error) {
	// 尝试从缓存获取
	if r.cache != nil {
		cacheKey := GetTemplatesByMediaTypeCacheKey(string(mediaType))
		var cachedTemplates []*entities.ModelTemplate
		if err := r.cache.Get(ctx, cacheKey, &cachedTemplates); err == nil {
			return cachedTemplates, nil
		}
	}

	var templates []*entities.ModelTemplate
	if err := r.db.WithContext(ctx).
		Where("media_type = ? AND enabled = ?", mediaType, true).
		Order("created_at DESC").
		Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list model templates by media type: %w", err)
	}

	if r.cache != nil {
		cacheKey := GetTemplatesByMediaTypeCacheKey(string(mediaType))
		ttl := cache.GetCacheTTLManager().GetTemplateListTTL()
		r.cache.Set(ctx, cacheKey, templates, ttl)
	}

	return templates, nil
}

// Count 获取模板总数，enabled为nil时不过滤启用状态
func (r *modelTemplateRepositoryGorm) Count(ctx context.Context, enabled *bool) (int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.ModelTemplate{})
	if enabled != nil {
		query = query.Where("enabled = ?", *enabled)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count model templates: %w", err)
	}
	return count, nil
}
