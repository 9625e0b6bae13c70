package dto

import "time"

// CreateProxyAccountRequest 创建代理账号请求
type CreateProxyAccountRequest struct {
	Name     string  `json:"name" binding:"required" example:"primary-302ai"`
	Provider string  `json:"provider" binding:"required" example:"302ai"`
	APIKey   string  `json:"api_key" binding:"required"`
	BaseURL  *string `json:"base_url,omitempty"`
}

// UpdateProxyAccountRequest 更新代理账号请求，nil字段不修改
type UpdateProxyAccountRequest struct {
	Name    *string `json:"name,omitempty"`
	APIKey  *string `json:"api_key,omitempty"`
	BaseURL *string `json:"base_url,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// ProxyAccountResponse 代理账号响应（凭证只暴露掩码后缀）
type ProxyAccountResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Provider  string    `json:"provider"`
	MaskedKey string    `json:"masked_key"`
	BaseURL   string    `json:"base_url,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
