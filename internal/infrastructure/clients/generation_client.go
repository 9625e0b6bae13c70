package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-model-admin/internal/infrastructure/logger"
)

// GenerationClient 生成请求派发客户端接口
type GenerationClient interface {
	// Dispatch 把生成请求派发到已解析好的端点
	Dispatch(ctx context.Context, req *GenerationRequest) (*GenerationResponse, error)
}

// GenerationRequest 生成派发请求
type GenerationRequest struct {
	URL     string
	Model   string
	Prompt  string
	APIKey  string
	Headers map[string]string
}

// GenerationResponse 生成派发响应
type GenerationResponse struct {
	StatusCode int
	Body       []byte
}

// generationClientImpl 生成请求派发客户端实现
type generationClientImpl struct {
	httpClient *http.Client
	logger     logger.Logger
}

// NewGenerationClient 创建生成请求派发客户端
func NewGenerationClient(logger logger.Logger) GenerationClient {
	return NewGenerationClientWithClient(&http.Client{Timeout: 120 * time.Second}, logger)
}

// NewGenerationClientWithClient 使用指定HTTP客户端创建派发客户端
func NewGenerationClientWithClient(httpClient *http.Client, logger logger.Logger) GenerationClient {
	return &generationClientImpl{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Dispatch 把生成请求派发到已解析好的端点
func (c *generationClientImpl) Dispatch(ctx context.Context, genReq *GenerationRequest) (*GenerationResponse, error) {
	payload := map[string]interface{}{
		"model":  genReq.Model,
		"prompt": genReq.Prompt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generation payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, genReq.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create generation request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range genReq.Headers {
		req.Header.Set(key, value)
	}
	if genReq.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+genReq.APIKey)
	}

	c.logger.WithFields(map[string]interface{}{
		"url":   genReq.URL,
		"model": genReq.Model,
	}).Info("Dispatching generation request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithFields(map[string]interface{}{
			"url":   genReq.URL,
			"error": err.Error(),
		}).Error("Failed to dispatch generation request")
		return nil, fmt.Errorf("failed to send generation request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read generation response: %w", err)
	}

	return &GenerationResponse{
		StatusCode: resp.StatusCode,
		Body:       responseBody,
	}, nil
}
