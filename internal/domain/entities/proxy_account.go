package entities

import (
	"strings"
	"time"
)

// ProxyAccountStatus 代理账号状态枚举
type ProxyAccountStatus string

const (
	ProxyAccountStatusActive   ProxyAccountStatus = "active"
	ProxyAccountStatusDisabled ProxyAccountStatus = "disabled"
)

// ProxyAccount 代理账号实体
//
// 指向上游提供商的带凭证路由目标。APIKey不参与JSON序列化，
// 对外只暴露掩码后缀。
type ProxyAccount struct {
	ID        int64              `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string             `json:"name" gorm:"not null;size:100"`
	Provider  Provider           `json:"provider" gorm:"not null;size:50;index"`
	APIKey    string             `json:"-" gorm:"column:api_key;not null;size:500"`
	BaseURL   *string            `json:"base_url,omitempty" gorm:"size:500"`
	Status    ProxyAccountStatus `json:"status" gorm:"not null;size:20;default:'active';index"`
	CreatedAt time.Time          `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time          `json:"updated_at" gorm:"not null;autoUpdateTime"`
}

// TableName 指定表名
func (ProxyAccount) TableName() string {
	return "proxy_accounts"
}

// IsActive 检查账号是否处于活跃状态
func (a *ProxyAccount) IsActive() bool {
	return a.Status == ProxyAccountStatusActive
}

// GetBaseURL 获取账号级基础地址，未设置时返回空串
func (a *ProxyAccount) GetBaseURL() string {
	if a.BaseURL != nil {
		return *a.BaseURL
	}
	return ""
}

// MaskedKey 返回掩码后的凭证，只保留末4位
func (a *ProxyAccount) MaskedKey() string {
	key := strings.TrimSpace(a.APIKey)
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
