package cache

import (
	"time"

	"github.com/spf13/viper"
)

// CacheTTLConfig 缓存TTL配置
type CacheTTLConfig struct {
	// 实体缓存TTL
	TemplateTTL     time.Duration `mapstructure:"template_ttl"`
	ProxyAccountTTL time.Duration `mapstructure:"proxy_account_ttl"`
	UserModelTTL    time.Duration `mapstructure:"user_model_ttl"`

	// 查询缓存TTL
	TemplateListTTL time.Duration `mapstructure:"template_list_ttl"`

	// 统计缓存TTL
	CountTTL time.Duration `mapstructure:"count_ttl"`

	// 默认TTL
	DefaultTTL time.Duration `mapstructure:"default_ttl"`
}

// CacheTTLManager 缓存TTL配置管理器
type CacheTTLManager struct {
	config *CacheTTLConfig
}

var globalCacheTTLManager *CacheTTLManager

// InitCacheTTLManager 初始化缓存TTL配置管理器
func InitCacheTTLManager() *CacheTTLManager {
	if globalCacheTTLManager != nil {
		return globalCacheTTLManager
	}

	config := &CacheTTLConfig{}

	// 从配置文件加载TTL设置
	if err := viper.UnmarshalKey("cache", config); err != nil {
		setDefaultTTLConfig(config)
	} else {
		fillDefaultTTLValues(config)
	}

	globalCacheTTLManager = &CacheTTLManager{config: config}
	return globalCacheTTLManager
}

// GetCacheTTLManager 获取全局缓存TTL配置管理器
func GetCacheTTLManager() *CacheTTLManager {
	if globalCacheTTLManager == nil {
		return InitCacheTTLManager()
	}
	return globalCacheTTLManager
}

// setDefaultTTLConfig 设置默认的TTL配置
func setDefaultTTLConfig(config *CacheTTLConfig) {
	config.DefaultTTL = 5 * time.Minute

	// 模板配置基本不变，缓存时间较长
	config.TemplateTTL = 30 * time.Minute
	config.ProxyAccountTTL = 15 * time.Minute
	// 用户覆盖包含最近一次探测结果，缓存时间要短
	config.UserModelTTL = 1 * time.Minute

	config.TemplateListTTL = 30 * time.Minute
	config.CountTTL = 10 * time.Minute
}

// fillDefaultTTLValues 填充零值字段的默认值
func fillDefaultTTLValues(config *CacheTTLConfig) {
	if config.DefaultTTL == 0 {
		config.DefaultTTL = 5 * time.Minute
	}
	if config.TemplateTTL == 0 {
		config.TemplateTTL = 30 * time.Minute
	}
	if config.ProxyAccountTTL == 0 {
		config.ProxyAccountTTL = 15 * time.Minute
	}
	if config.UserModelTTL == 0 {
		config.UserModelTTL = 1 * time.Minute
	}
	if config.TemplateListTTL == 0 {
		config.TemplateListTTL = 30 * time.Minute
	}
	if config.CountTTL == 0 {
		config.CountTTL = 10 * time.Minute
	}
}

// GetTemplateTTL 获取模板缓存TTL
func (m *CacheTTLManager) GetTemplateTTL() time.Duration {
	return m.config.TemplateTTL
}

// GetProxyAccountTTL 获取代理账号缓存TTL
func (m *CacheTTLManager) GetProxyAccountTTL() time.Duration {
	return m.config.ProxyAccountTTL
}

// GetUserModelTTL 获取用户模型覆盖缓存TTL
func (m *CacheTTLManager) GetUserModelTTL() time.Duration {
	return m.config.UserModelTTL
}

// GetTemplateListTTL 获取模板列表缓存TTL
func (m *CacheTTLManager) GetTemplateListTTL() time.Duration {
	return m.config.TemplateListTTL
}

// GetCountTTL 获取计数统计缓存TTL
func (m *CacheTTLManager) GetCountTTL() time.Duration {
	return m.config.CountTTL
}

// GetDefaultTTL 获取默认缓存TTL
func (m *CacheTTLManager) GetDefaultTTL() time.Duration {
	return m.config.DefaultTTL
}
