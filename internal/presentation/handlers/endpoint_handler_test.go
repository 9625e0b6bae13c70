package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-model-admin/internal/application/dto"
	"ai-model-admin/internal/domain/entities"
	"ai-model-admin/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testLogger 用于测试的空logger
type testLogger struct{}

func (l *testLogger) Debug(args ...interface{})                 {}
func (l *testLogger) Debugf(format string, args ...interface{}) {}
func (l *testLogger) Info(args ...interface{})                  {}
func (l *testLogger) Infof(format string, args ...interface{})  {}
func (l *testLogger) Warn(args ...interface{})                  {}
func (l *testLogger) Warnf(format string, args ...interface{})  {}
func (l *testLogger) Error(args ...interface{})                 {}
func (l *testLogger) Errorf(format string, args ...interface{}) {}
func (l *testLogger) Fatal(args ...interface{})                 {}
func (l *testLogger) Fatalf(format string, args ...interface{}) {}
func (l *testLogger) WithField(key string, value interface{}) logger.Logger {
	return l
}
func (l *testLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return l
}

// MockEndpointResolverService 端点解析服务mock
type MockEndpointResolverService struct {
	mock.Mock
}

func (m *MockEndpointResolverService) Resolve(ctx context.Context, req *dto.ResolveEndpointRequest) (*dto.ResolveEndpointResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ResolveEndpointResponse), args.Error(1)
}

// MockEndpointProber 端点探测器mock
type MockEndpointProber struct {
	mock.Mock
}

func (m *MockEndpointProber) Probe(ctx context.Context, req *dto.ProbeEndpointRequest) *dto.ProbeResult {
	args := m.Called(ctx, req)
	return args.Get(0).(*dto.ProbeResult)
}

func setupEndpointRouter(resolver *MockEndpointResolverService, prober *MockEndpointProber) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewEndpointHandler(resolver, prober, &testLogger{})

	engine := gin.New()
	engine.POST("/api/v1/endpoint/resolve", handler.ResolveEndpoint)
	engine.POST("/api/v1/endpoint/probe", handler.ProbeEndpoint)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestEndpointHandler_ResolveEndpoint(t *testing.T) {
	t.Run("缺少model_id返回400", func(t *testing.T) {
		resolver := new(MockEndpointResolverService)
		prober := new(MockEndpointProber)
		engine := setupEndpointRouter(resolver, prober)

		recorder := postJSON(t, engine, "/api/v1/endpoint/resolve", map[string]interface{}{
			"media_type": "text",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
		resolver.AssertNotCalled(t, "Resolve")
	})

	t.Run("缺少media_type返回400", func(t *testing.T) {
		resolver := new(MockEndpointResolverService)
		prober := new(MockEndpointProber)
		engine := setupEndpointRouter(resolver, prober)

		recorder := postJSON(t, engine, "/api/v1/endpoint/resolve", map[string]interface{}{
			"model_id": "gpt-4o",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		resolver.AssertNotCalled(t, "Resolve")
	})

	t.Run("未知模板返回404业务错误", func(t *testing.T) {
		resolver := new(MockEndpointResolverService)
		prober := new(MockEndpointProber)
		resolver.On("Resolve", mock.Anything, mock.Anything).Return(nil, entities.ErrTemplateNotFound)
		engine := setupEndpointRouter(resolver, prober)

		recorder := postJSON(t, engine, "/api/v1/endpoint/resolve", map[string]interface{}{
			"model_id":   "unknown",
			"media_type": "text",
		})

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "TEMPLATE_NOT_FOUND", resp.Error.Code)
	})

	t.Run("解析成功返回200封装", func(t *testing.T) {
		resolver := new(MockEndpointResolverService)
		prober := new(MockEndpointProber)
		resolver.On("Resolve", mock.Anything, mock.Anything).Return(&dto.ResolveEndpointResponse{
			FinalURL:   "https://api.302.ai/v1/chat/completions",
			ModelName:  "GPT-4o",
			MediaType:  "text",
			DefaultURL: "https://api.302.ai/v1/chat/completions",
			IsCustom:   false,
			Timestamp:  time.Now(),
		}, nil)
		engine := setupEndpointRouter(resolver, prober)

		recorder := postJSON(t, engine, "/api/v1/endpoint/resolve", map[string]interface{}{
			"model_id":   "gpt-4o",
			"media_type": "text",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "https://api.302.ai/v1/chat/completions", data["final_url"])
		assert.Equal(t, false, data["is_custom"])
	})
}

func TestEndpointHandler_ProbeEndpoint(t *testing.T) {
	t.Run("缺少url返回400", func(t *testing.T) {
		resolver := new(MockEndpointResolverService)
		prober := new(MockEndpointProber)
		engine := setupEndpointRouter(resolver, prober)

		recorder := postJSON(t, engine, "/api/v1/endpoint/probe", map[string]interface{}{
			"method": "HEAD",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		prober.AssertNotCalled(t, "Probe")
	})

	t.Run("探测失败仍返回200，失败信息在载荷里", func(t *testing.T) {
		resolver := new(MockEndpointResolverService)
		prober := new(MockEndpointProber)
		prober.On("Probe", mock.Anything, mock.Anything).Return(&dto.ProbeResult{
			URL:            "https://unreachable.example.com",
			Success:        false,
			Error:          dto.ProbeErrorConnectionRefused,
			ResponseTimeMs: 3,
			Timestamp:      time.Now(),
		})
		engine := setupEndpointRouter(resolver, prober)

		recorder := postJSON(t, engine, "/api/v1/endpoint/probe", map[string]interface{}{
			"url": "https://unreachable.example.com",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, false, data["success"])
		assert.Equal(t, "connection_refused", data["error"])
	})

	t.Run("探测成功返回状态码", func(t *testing.T) {
		resolver := new(MockEndpointResolverService)
		prober := new(MockEndpointProber)
		statusCode := 404
		prober.On("Probe", mock.Anything, mock.Anything).Return(&dto.ProbeResult{
			URL:            "https://api.example.com/missing",
			Success:        true,
			StatusCode:     &statusCode,
			ResponseTimeMs: 12,
			Timestamp:      time.Now(),
		})
		engine := setupEndpointRouter(resolver, prober)

		recorder := postJSON(t, engine, "/api/v1/endpoint/probe", map[string]interface{}{
			"url": "https://api.example.com/missing",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, true, data["success"])
		assert.Equal(t, float64(404), data["status_code"])
	})
}
