package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ai-model-admin/internal/infrastructure/logger"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/viper"
)

// RedisFactory Redis客户端工厂
type RedisFactory struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisFactory 创建Redis工厂，连接失败时返回错误由调用方决定是否降级
func NewRedisFactory(log logger.Logger) (*RedisFactory, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     viper.GetString("redis.addr"),
		Password: viper.GetString("redis.password"),
		DB:       viper.GetInt("redis.db"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.WithField("addr", viper.GetString("redis.addr")).Info("Redis connection established")

	return &RedisFactory{
		client: client,
		logger: log,
	}, nil
}

// GetCacheService 获取缓存服务
func (f *RedisFactory) GetCacheService() *CacheService {
	return &CacheService{
		client: f.client,
		logger: f.logger,
	}
}

// Close 关闭Redis连接
func (f *RedisFactory) Close() error {
	return f.client.Close()
}

// CacheService JSON序列化的缓存服务
type CacheService struct {
	client *redis.Client
	logger logger.Logger
}

// Get 读取缓存并反序列化到dest
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("cache miss: %s", key)
		}
		return fmt.Errorf("failed to get cache key %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal cached value for %s: %w", key, err)
	}
	return nil
}

// Set 序列化并写入缓存
func (s *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %s: %w", key, err)
	}

	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		// 缓存写入失败不影响主流程，记录后返回错误供调用方忽略
		s.logger.WithFields(map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		}).Warn("Failed to set cache key")
		return fmt.Errorf("failed to set cache key %s: %w", key, err)
	}
	return nil
}

// Delete 删除缓存键
func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys: %w", err)
	}
	return nil
}
