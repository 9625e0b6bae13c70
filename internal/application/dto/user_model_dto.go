package dto

import "time"

// CreateUserModelRequest 创建用户模型覆盖请求
type CreateUserModelRequest struct {
	UserID            int64   `json:"user_id" binding:"required" example:"1"`
	TemplateModelID   string  `json:"template_model_id" binding:"required" example:"gpt-4o"`
	CustomEndpointURL *string `json:"custom_endpoint_url,omitempty"`
	ProxyAccountID    *int64  `json:"proxy_account_id,omitempty"`
	Enabled           *bool   `json:"enabled,omitempty"`
}

// UpdateUserModelRequest 更新用户模型覆盖请求，nil字段不修改
type UpdateUserModelRequest struct {
	CustomEndpointURL *string `json:"custom_endpoint_url,omitempty"`
	ProxyAccountID    *int64  `json:"proxy_account_id,omitempty"`
	Enabled           *bool   `json:"enabled,omitempty"`
}

// UserModelResponse 用户模型覆盖响应
type UserModelResponse struct {
	ID                int64        `json:"id"`
	UserID            int64        `json:"user_id"`
	TemplateModelID   string       `json:"template_model_id"`
	CustomEndpointURL string       `json:"custom_endpoint_url,omitempty"`
	ProxyAccountID    *int64       `json:"proxy_account_id,omitempty"`
	Enabled           bool         `json:"enabled"`
	Tested            bool         `json:"tested"`
	LastTestedAt      *time.Time   `json:"last_tested_at,omitempty"`
	TestResult        *ProbeResult `json:"test_result,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}
