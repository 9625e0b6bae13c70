package services

import (
	"context"
	"testing"

	"ai-model-admin/internal/application/dto"
	"ai-model-admin/internal/domain/entities"
	"ai-model-admin/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLogger 用于测试的mock logger
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(args ...interface{})                  {}
func (m *MockLogger) Debugf(format string, args ...interface{})  {}
func (m *MockLogger) Info(args ...interface{})                   {}
func (m *MockLogger) Infof(format string, args ...interface{})   {}
func (m *MockLogger) Warn(args ...interface{})                   {}
func (m *MockLogger) Warnf(format string, args ...interface{})   {}
func (m *MockLogger) Error(args ...interface{})                  {}
func (m *MockLogger) Errorf(format string, args ...interface{})  {}
func (m *MockLogger) Fatal(args ...interface{})                  {}
func (m *MockLogger) Fatalf(format string, args ...interface{})  {}
func (m *MockLogger) WithField(key string, value interface{}) logger.Logger {
	return m
}
func (m *MockLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return m
}

// MockModelTemplateRepository 模板仓储mock
type MockModelTemplateRepository struct {
	mock.Mock
}

func (m *MockModelTemplateRepository) Create(ctx context.Context, template *entities.ModelTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockModelTemplateRepository) GetByID(ctx context.Context, id int64) (*entities.ModelTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ModelTemplate), args.Error(1)
}

func (m *MockModelTemplateRepository) GetByModelID(ctx context.Context, modelID string) (*entities.ModelTemplate, error) {
	args := m.Called(ctx, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ModelTemplate), args.Error(1)
}

func (m *MockModelTemplateRepository) Update(ctx context.Context, template *entities.ModelTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockModelTemplateRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockModelTemplateRepository) List(ctx context.Context, enabled *bool, offset, limit int) ([]*entities.ModelTemplate, error) {
	args := m.Called(ctx, enabled, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ModelTemplate), args.Error(1)
}

func (m *MockModelTemplateRepository) ListByMediaType(ctx context.Context, mediaType entities.MediaType) ([]*entities.ModelTemplate, error) {
	args := m.Called(ctx, mediaType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ModelTemplate), args.Error(1)
}

func (m *MockModelTemplateRepository) Count(ctx context.Context, enabled *bool) (int64, error) {
	args := m.Called(ctx, enabled)
	return args.Get(0).(int64), args.Error(1)
}

// MockProxyAccountRepository 代理账号仓储mock
type MockProxyAccountRepository struct {
	mock.Mock
}

func (m *MockProxyAccountRepository) Create(ctx context.Context, account *entities.ProxyAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockProxyAccountRepository) GetByID(ctx context.Context, id int64) (*entities.ProxyAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ProxyAccount), args.Error(1)
}

func (m *MockProxyAccountRepository) Update(ctx context.Context, account *entities.ProxyAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockProxyAccountRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProxyAccountRepository) List(ctx context.Context, offset, limit int) ([]*entities.ProxyAccount, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ProxyAccount), args.Error(1)
}

func (m *MockProxyAccountRepository) ListActive(ctx context.Context) ([]*entities.ProxyAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ProxyAccount), args.Error(1)
}

func (m *MockProxyAccountRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

const testBaseURL = "https://api.302.ai/v1"

func newResolverForTest(templateRepo *MockModelTemplateRepository, accountRepo *MockProxyAccountRepository) EndpointResolverService {
	return NewEndpointResolverService(templateRepo, accountRepo, testBaseURL, &MockLogger{})
}

func textTemplate() *entities.ModelTemplate {
	return &entities.ModelTemplate{
		ID:        1,
		ModelID:   "gpt-4o",
		ModelName: "GPT-4o",
		MediaType: entities.MediaTypeText,
		Provider:  entities.ProviderOpenAI,
		Enabled:   true,
	}
}

func TestEndpointResolverService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("自定义URL优先于一切默认规则", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		accountRepo := new(MockProxyAccountRepository)
		templateRepo.On("GetByModelID", ctx, "gpt-4o").Return(textTemplate(), nil)

		service := newResolverForTest(templateRepo, accountRepo)

		resp, err := service.Resolve(ctx, &dto.ResolveEndpointRequest{
			ModelID:           "gpt-4o",
			MediaType:         "text",
			CustomEndpointURL: "https://custom.example.com/gen",
		})

		assert.NoError(t, err)
		assert.Equal(t, "https://custom.example.com/gen", resp.FinalURL)
		assert.True(t, resp.IsCustom)
		// 默认URL仍然上报，供前端做差异展示
		assert.Equal(t, testBaseURL+"/chat/completions", resp.DefaultURL)
	})

	t.Run("文本模型回落到chat/completions默认端点", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		accountRepo := new(MockProxyAccountRepository)
		templateRepo.On("GetByModelID", ctx, "gpt-4o").Return(textTemplate(), nil)

		service := newResolverForTest(templateRepo, accountRepo)

		resp, err := service.Resolve(ctx, &dto.ResolveEndpointRequest{
			ModelID:   "gpt-4o",
			MediaType: "text",
		})

		assert.NoError(t, err)
		assert.Equal(t, testBaseURL+"/chat/completions", resp.FinalURL)
		assert.False(t, resp.IsCustom)
		assert.Equal(t, resp.DefaultURL, resp.FinalURL)
		assert.Equal(t, "GPT-4o", resp.ModelName)
	})

	t.Run("图像模型回落到images/generations默认端点", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		accountRepo := new(MockProxyAccountRepository)
		template := textTemplate()
		template.ModelID = "dall-e-3"
		template.MediaType = entities.MediaTypeImage
		templateRepo.On("GetByModelID", ctx, "dall-e-3").Return(template, nil)

		service := newResolverForTest(templateRepo, accountRepo)

		resp, err := service.Resolve(ctx, &dto.ResolveEndpointRequest{
			ModelID:   "dall-e-3",
			MediaType: "image",
		})

		assert.NoError(t, err)
		assert.Equal(t, testBaseURL+"/images/generations", resp.FinalURL)
	})

	t.Run("视频模型回落到videos/generations默认端点", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		accountRepo := new(MockProxyAccountRepository)
		template := textTemplate()
		template.ModelID = "video-gen"
		template.MediaType = entities.MediaTypeVideo
		templateRepo.On("GetByModelID", ctx, "video-gen").Return(template, nil)

		service := newResolverForTest(templateRepo, accountRepo)

		resp, err := service.Resolve(ctx, &dto.ResolveEndpointRequest{
			ModelID:   "video-gen",
			MediaType: "video",
		})

		assert.NoError(t, err)
		assert.Equal(t, testBaseURL+"/videos/generations", resp.FinalURL)
	})

	t.Run("未知媒体类型原样返回基础地址", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		accountRepo := new(MockProxyAccountRepository)
		templateRepo.On("GetByModelID", ctx, "gpt-4o").Return(textTemplate(), nil)

		service := newResolverForTest(templateRepo, accountRepo)

		resp, err := service.Resolve(ctx, &dto.ResolveEndpointRequest{
			ModelID:   "gpt-4o",
			MediaType: "audio",
		})

		assert.NoError(t, err)
		assert.Equal(t, testBaseURL, resp.FinalURL)
		assert.False(t, resp.IsCustom)
	})

	t.Run("模板级默认URL优先于媒体类型默认表", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		accountRepo := new(MockProxyAccountRepository)
		defaultURL := "https://template.example.com/invoke"
		template := textTemplate()
		template.DefaultEndpointURL = &defaultURL
		templateRepo.On("GetByModelID", ctx, "gpt-4o").Return(template, nil)

		service := newResolverForTest(templateRepo, accountRepo)

		resp, err := service.Resolve(ctx, &dto.ResolveEndpointRequest{
			ModelID:   "gpt-4o",
			MediaType: "text",
		})

		assert.NoError(t, err)
		assert.Equal(t, defaultURL, resp.FinalURL)
		assert.Equal(t, defaultURL, resp.DefaultURL)
		assert.False(t, resp.IsCustom)
	})

	t.Run("模板级默认URL为空串时视为未设置", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		accountRepo := new(MockProxyAccountRepository)
		empty := ""
		template := textTemplate()
		template.DefaultEndpointURL = &empty
		templateRepo.On("GetByModelID", ctx, "gpt-4o").Return(template, nil)

		service := newResolverForTest(templateRepo, accountRepo)

		resp, err := service.Resolve(ctx, &dto.ResolveEndpointRequest{
			ModelID:   "gpt-4o",
			MediaType: "text",
		})

		assert.NoError(t, err)
		assert.Equal(t, testBaseURL+"/chat/completions", resp.FinalURL)
	})

	t.Run("302ai厂商适配与通用默认行为一致", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		accountRepo := new(MockProxyAccountRepository)
		template := textTemplate()
		template.ModelID = "302-flux-pro"
		template.MediaType = entities.MediaTypeImage
		template.Provider = entities.Provider302AI
		templateRepo.On("GetByModelID", ctx, "302-flux-pro").Return(template, nil)

		service := newResolverForTest(templateRepo, accountRepo)

		resp, err := service.Resolve(ctx, &dto.ResolveEndpointRequest{
			ModelID:   "302-flux-pro",
			MediaType: "image",
		})

		assert.NoError(t, err)
		assert.Equal(t, testBaseURL+"/images/generations", resp.FinalURL)
	})

	t.Run("未知模型返回模板不存在错误", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		accountRepo := new(MockProxyAccountRepository)
		templateRepo.On("GetByModelID", ctx, "unknown").Return(nil, entities.ErrTemplateNotFound)

		service := newResolverForTest(templateRepo, accountRepo)

		resp, err := service.Resolve(ctx, &dto.ResolveEndpointRequest{
			ModelID:   "unknown",
			MediaType: "text",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, entities.ErrTemplateNotFound)
	})

	t.Run("携带代理账号时返回掩码摘要", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		accountRepo := new(MockProxyAccountRepository)
		templateRepo.On("GetByModelID", ctx, "gpt-4o").Return(textTemplate(), nil)
		accountRepo.On("GetByID", ctx, int64(7)).Return(&entities.ProxyAccount{
			ID:       7,
			Name:     "primary",
			Provider: entities.Provider302AI,
			APIKey:   "sk-abcdef1234",
			Status:   entities.ProxyAccountStatusActive,
		}, nil)

		service := newResolverForTest(templateRepo, accountRepo)

		accountID := int64(7)
		resp, err := service.Resolve(ctx, &dto.ResolveEndpointRequest{
			ModelID:        "gpt-4o",
			MediaType:      "text",
			ProxyAccountID: &accountID,
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp.ProxyAccount)
		assert.Equal(t, int64(7), resp.ProxyAccount.ID)
		assert.Equal(t, "****1234", resp.ProxyAccount.MaskedKey)
		assert.NotContains(t, resp.ProxyAccount.MaskedKey, "sk-abcdef")
	})

	t.Run("代理账号不存在时返回错误", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		accountRepo := new(MockProxyAccountRepository)
		templateRepo.On("GetByModelID", ctx, "gpt-4o").Return(textTemplate(), nil)
		accountRepo.On("GetByID", ctx, int64(99)).Return(nil, entities.ErrProxyAccountNotFound)

		service := newResolverForTest(templateRepo, accountRepo)

		accountID := int64(99)
		resp, err := service.Resolve(ctx, &dto.ResolveEndpointRequest{
			ModelID:        "gpt-4o",
			MediaType:      "text",
			ProxyAccountID: &accountID,
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, entities.ErrProxyAccountNotFound)
	})
}
