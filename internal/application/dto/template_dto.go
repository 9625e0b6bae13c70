package dto

import "time"

// CreateTemplateRequest 创建模板请求
type CreateTemplateRequest struct {
	ModelID            string   `json:"model_id" binding:"required" example:"gpt-4o"`
	ModelName          string   `json:"model_name" binding:"required" example:"GPT-4o"`
	MediaType          string   `json:"media_type" binding:"required" example:"text"`
	Provider           string   `json:"provider,omitempty" example:"openai"`
	CostPerRequest     *float64 `json:"cost_per_request,omitempty" example:"0.01"`
	DefaultEndpointURL *string  `json:"default_endpoint_url,omitempty"`
	Enabled            *bool    `json:"enabled,omitempty"`
}

// UpdateTemplateRequest 更新模板请求，nil字段不修改
type UpdateTemplateRequest struct {
	ModelName          *string  `json:"model_name,omitempty"`
	MediaType          *string  `json:"media_type,omitempty"`
	Provider           *string  `json:"provider,omitempty"`
	CostPerRequest     *float64 `json:"cost_per_request,omitempty"`
	DefaultEndpointURL *string  `json:"default_endpoint_url,omitempty"`
	Enabled            *bool    `json:"enabled,omitempty"`
}

// TemplateListRequest 模板列表请求
type TemplateListRequest struct {
	PaginationRequest
	MediaType string `form:"media_type" json:"media_type"`
	Enabled   *bool  `form:"enabled" json:"enabled"`
}

// TemplateResponse 模板响应
type TemplateResponse struct {
	ID                 int64     `json:"id"`
	ModelID            string    `json:"model_id"`
	ModelName          string    `json:"model_name"`
	MediaType          string    `json:"media_type"`
	Provider           string    `json:"provider,omitempty"`
	CostPerRequest     *float64  `json:"cost_per_request,omitempty"`
	DefaultEndpointURL string    `json:"default_endpoint_url,omitempty"`
	Enabled            bool      `json:"enabled"`
	IsBuiltin          bool      `json:"is_builtin"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
