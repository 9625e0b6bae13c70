package dto

import "time"

// CreateTaskRequest 创建生成任务请求
//
// 创建时即完成端点解析，未知模型直接失败，不会产生悬空任务。
type CreateTaskRequest struct {
	UserID            int64  `json:"user_id" binding:"required" example:"1"`
	ModelID           string `json:"model_id" binding:"required" example:"gpt-4o"`
	MediaType         string `json:"media_type" binding:"required" example:"image"`
	Prompt            string `json:"prompt" binding:"required"`
	CustomEndpointURL string `json:"custom_endpoint_url,omitempty"`
	ProxyAccountID    *int64 `json:"proxy_account_id,omitempty"`
}

// TaskListRequest 任务列表请求
type TaskListRequest struct {
	PaginationRequest
	Status string `form:"status" json:"status"`
}

// TaskResponse 生成任务响应
type TaskResponse struct {
	ID             int64      `json:"id"`
	RequestID      string     `json:"request_id"`
	UserID         int64      `json:"user_id"`
	ModelID        string     `json:"model_id"`
	MediaType      string     `json:"media_type"`
	Prompt         string     `json:"prompt"`
	FinalURL       string     `json:"final_url"`
	ProxyAccountID *int64     `json:"proxy_account_id,omitempty"`
	Status         string     `json:"status"`
	StatusCode     *int       `json:"status_code,omitempty"`
	ErrorMessage   string     `json:"error_message,omitempty"`
	DispatchedAt   *time.Time `json:"dispatched_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
