package dto

import "time"

// ResolveEndpointRequest 端点解析请求
type ResolveEndpointRequest struct {
	ModelID           string `json:"model_id" binding:"required" example:"gpt-4o"`
	MediaType         string `json:"media_type" binding:"required" example:"text"`
	CustomEndpointURL string `json:"custom_endpoint_url,omitempty" example:"https://custom.example.com/gen"`
	ProxyAccountID    *int64 `json:"proxy_account_id,omitempty" example:"1"`
}

// ResolveEndpointResponse 端点解析响应
//
// DefaultURL始终报告无覆盖时会生效的默认端点，供前端做差异展示。
type ResolveEndpointResponse struct {
	FinalURL          string               `json:"final_url"`
	ModelName         string               `json:"model_name"`
	MediaType         string               `json:"media_type"`
	CustomEndpointURL string               `json:"custom_endpoint_url,omitempty"`
	DefaultURL        string               `json:"default_url"`
	IsCustom          bool                 `json:"is_custom"`
	ProxyAccount      *ProxyAccountSummary `json:"proxy_account,omitempty"`
	Timestamp         time.Time            `json:"timestamp"`
}

// ProxyAccountSummary 代理账号摘要（永不包含原始凭证）
type ProxyAccountSummary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Provider  string `json:"provider"`
	MaskedKey string `json:"masked_key"`
}

// ProbeEndpointRequest 连通性探测请求
type ProbeEndpointRequest struct {
	URL       string            `json:"url" binding:"required" example:"https://api.example.com/v1/chat/completions"`
	Method    string            `json:"method,omitempty" example:"HEAD"`
	Headers   map[string]string `json:"headers,omitempty"`
	TimeoutMs int               `json:"timeout_ms,omitempty" example:"10000"`
}

// 探测失败分类，闭合集合，前端按此分支
const (
	ProbeErrorTimeout           = "timeout"
	ProbeErrorHostNotFound      = "host_not_found"
	ProbeErrorConnectionRefused = "connection_refused"
	ProbeErrorTLSCertExpired    = "tls_certificate_expired"
	ProbeErrorOther             = "other"
)

// ProbeResult 单次探测结果
//
// Success衡量的是可达性而不是应用层成功：任何HTTP状态码（含4xx/5xx）
// 都算探测成功，StatusCode原样上报。
type ProbeResult struct {
	URL            string    `json:"url"`
	Success        bool      `json:"success"`
	StatusCode     *int      `json:"status_code,omitempty"`
	ResponseTimeMs int64     `json:"response_time_ms"`
	Error          string    `json:"error,omitempty"`
	Message        string    `json:"message,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// AccountProbeResult 批量验证中单个账号的探测结果
type AccountProbeResult struct {
	AccountID   int64        `json:"account_id"`
	AccountName string       `json:"account_name"`
	Provider    string       `json:"provider"`
	Result      *ProbeResult `json:"result"`
}
