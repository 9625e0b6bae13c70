package repositories

import (
	"ai-model-admin/internal/domain/repositories"
	"ai-model-admin/internal/infrastructure/redis"

	"gorm.io/gorm"
)

// RepositoryFactory 仓储工厂（基于GORM）
type RepositoryFactory struct {
	gormDB *gorm.DB
	cache  *redis.CacheService
}

// NewRepositoryFactory 创建GORM仓储工厂
func NewRepositoryFactory(gormDB *gorm.DB) *RepositoryFactory {
	return &RepositoryFactory{
		gormDB: gormDB,
		cache:  nil,
	}
}

// NewRepositoryFactoryWithCache 创建带缓存的GORM仓储工厂
func NewRepositoryFactoryWithCache(gormDB *gorm.DB, cache *redis.CacheService) *RepositoryFactory {
	return &RepositoryFactory{
		gormDB: gormDB,
		cache:  cache,
	}
}

// ModelTemplateRepository 获取模型模板仓储
func (f *RepositoryFactory) ModelTemplateRepository() repositories.ModelTemplateRepository {
	return NewModelTemplateRepositoryGorm(f.gormDB, f.cache)
}

// UserModelRepository 获取用户模型覆盖仓储
func (f *RepositoryFactory) UserModelRepository() repositories.UserModelRepository {
	return NewUserModelRepositoryGorm(f.gormDB, f.cache)
}

// ProxyAccountRepository 获取代理账号仓储
func (f *RepositoryFactory) ProxyAccountRepository() repositories.ProxyAccountRepository {
	return NewProxyAccountRepositoryGorm(f.gormDB, f.cache)
}

// GenerationTaskRepository 获取生成任务仓储
func (f *RepositoryFactory) GenerationTaskRepository() repositories.GenerationTaskRepository {
	return NewGenerationTaskRepositoryGorm(f.gormDB, f.cache)
}

// GormDB 获取GORM数据库连接
func (f *RepositoryFactory) GormDB() *gorm.DB {
	return f.gormDB
}
