package entities

import "time"

// UserModelOverride 用户模型覆盖实体
//
// 用户在模板之上叠加的个性化配置：自定义端点、指定代理账号。
// TestResult缓存最近一次探测结果的序列化形式，每次探测整体覆盖，
// 从不合并。
type UserModelOverride struct {
	ID                int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID            int64      `json:"user_id" gorm:"not null;index"`
	TemplateModelID   string     `json:"template_model_id" gorm:"not null;size:100;index"`
	CustomEndpointURL *string    `json:"custom_endpoint_url,omitempty" gorm:"size:500"`
	ProxyAccountID    *int64     `json:"proxy_account_id,omitempty"`
	Enabled           bool       `json:"enabled" gorm:"not null;default:true"`
	Tested            bool       `json:"tested" gorm:"not null;default:false"`
	LastTestedAt      *time.Time `json:"last_tested_at,omitempty"`
	TestResult        *string    `json:"test_result,omitempty" gorm:"type:text"`
	CreatedAt         time.Time  `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt         time.Time  `json:"updated_at" gorm:"not null;autoUpdateTime"`
}

// TableName 指定表名
func (UserModelOverride) TableName() string {
	return "user_model_overrides"
}

// GetCustomEndpointURL 获取自定义端点，未设置时返回空串
func (o *UserModelOverride) GetCustomEndpointURL() string {
	if o.CustomEndpointURL != nil {
		return *o.CustomEndpointURL
	}
	return ""
}

// HasCustomEndpointURL 自定义端点是否显式设置
func (o *UserModelOverride) HasCustomEndpointURL() bool {
	return o.CustomEndpointURL != nil && *o.CustomEndpointURL != ""
}

// RecordTestResult 覆盖最近一次探测结果缓存
func (o *UserModelOverride) RecordTestResult(serialized string, at time.Time) {
	o.Tested = true
	o.LastTestedAt = &at
	o.TestResult = &serialized
}
