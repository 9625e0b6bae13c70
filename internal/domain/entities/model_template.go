package entities

import "time"

// MediaType 媒体类型枚举
type MediaType string

const (
	MediaTypeText  MediaType = "text"
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// IsValid 检查媒体类型是否为已知类型
//
// 未知类型不是错误：解析时未知媒体类型回退到裸基础地址。
func (m MediaType) IsValid() bool {
	switch m {
	case MediaTypeText, MediaTypeImage, MediaTypeVideo:
		return true
	}
	return false
}

// Provider 厂商稳定标识符
//
// 厂商适配规则以它为键，不做显示名称的子串匹配。
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	Provider302AI  Provider = "302ai"
)

// ModelTemplate 模型模板实体
//
// 管理员定义的可复用模型配置。ModelID是不可变的稳定标识，
// 其余字段可编辑。内置模板不允许删除，只能禁用。
type ModelTemplate struct {
	ID                 int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ModelID            string    `json:"model_id" gorm:"uniqueIndex;not null;size:100"`
	ModelName          string    `json:"model_name" gorm:"not null;size:200"`
	MediaType          MediaType `json:"media_type" gorm:"not null;size:20;index"`
	Provider           Provider  `json:"provider" gorm:"not null;size:50;index;default:''"`
	CostPerRequest     *float64  `json:"cost_per_request,omitempty" gorm:"type:numeric(15,8)"`
	DefaultEndpointURL *string   `json:"default_endpoint_url,omitempty" gorm:"size:500"`
	Enabled            bool      `json:"enabled" gorm:"not null;default:true;index"`
	IsBuiltin          bool      `json:"is_builtin" gorm:"not null;default:false"`
	CreatedAt          time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"not null;autoUpdateTime"`
}

// TableName 指定表名
func (ModelTemplate) TableName() string {
	return "model_templates"
}

// IsAvailable 检查模板是否可用
func (t *ModelTemplate) IsAvailable() bool {
	return t.Enabled
}

// GetDefaultEndpointURL 获取模板级默认端点，未设置时返回空串
func (t *ModelTemplate) GetDefaultEndpointURL() string {
	if t.DefaultEndpointURL != nil {
		return *t.DefaultEndpointURL
	}
	return ""
}

// HasDefaultEndpointURL 模板级默认端点是否显式设置（非空才算设置）
func (t *ModelTemplate) HasDefaultEndpointURL() bool {
	return t.DefaultEndpointURL != nil && *t.DefaultEndpointURL != ""
}

// GetCostPerRequest 获取单次请求成本
func (t *ModelTemplate) GetCostPerRequest() float64 {
	if t.CostPerRequest != nil {
		return *t.CostPerRequest
	}
	return 0
}
