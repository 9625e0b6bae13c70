package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"ai-model-admin/internal/application/dto"
	"ai-model-admin/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserModelRepository 用户模型覆盖仓储mock
type MockUserModelRepository struct {
	mock.Mock
}

func (m *MockUserModelRepository) Create(ctx context.Context, override *entities.UserModelOverride) error {
	args := m.Called(ctx, override)
	return args.Error(0)
}

func (m *MockUserModelRepository) GetByID(ctx context.Context, id int64) (*entities.UserModelOverride, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserModelOverride), args.Error(1)
}

func (m *MockUserModelRepository) GetByUserAndModel(ctx context.Context, userID int64, templateModelID string) (*entities.UserModelOverride, error) {
	args := m.Called(ctx, userID, templateModelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserModelOverride), args.Error(1)
}

func (m *MockUserModelRepository) Update(ctx context.Context, override *entities.UserModelOverride) error {
	args := m.Called(ctx, override)
	return args.Error(0)
}

func (m *MockUserModelRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserModelRepository) ListByUser(ctx context.Context, userID int64) ([]*entities.UserModelOverride, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UserModelOverride), args.Error(1)
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

func TestUserModelService_TestUserModel(t *testing.T) {
	ctx := context.Background()

	t.Run("探测生效端点并把结果缓存到记录上", func(t *testing.T) {
		customURL := "https://custom.example.com/gen"
		override := &entities.UserModelOverride{
			ID:                1,
			UserID:            10,
			TemplateModelID:   "gpt-4o",
			CustomEndpointURL: &customURL,
		}

		userModelRepo := new(MockUserModelRepository)
		userModelRepo.On("GetByID", ctx, int64(1)).Return(override, nil)
		userModelRepo.On("Update", ctx, mock.MatchedBy(func(o *entities.UserModelOverride) bool {
			return o.Tested && o.TestResult != nil && o.LastTestedAt != nil
		})).Return(nil)

		templateRepo := new(MockModelTemplateRepository)
		templateRepo.On("GetByModelID", ctx, "gpt-4o").Return(&entities.ModelTemplate{
			ModelID:   "gpt-4o",
			ModelName: "GPT-4o",
			MediaType: entities.MediaTypeText,
			Enabled:   true,
		}, nil)

		resolver := new(MockEndpointResolverService)
		resolver.On("Resolve", ctx, mock.MatchedBy(func(req *dto.ResolveEndpointRequest) bool {
			return req.ModelID == "gpt-4o" && req.CustomEndpointURL == customURL
		})).Return(&dto.ResolveEndpointResponse{
			FinalURL:  customURL,
			IsCustom:  true,
			Timestamp: time.Now(),
		}, nil)

		statusCode := 200
		prober := new(MockEndpointProber)
		prober.On("Probe", ctx, mock.MatchedBy(func(req *dto.ProbeEndpointRequest) bool {
			return req.URL == customURL
		})).Return(&dto.ProbeResult{
			URL:        customURL,
			Success:    true,
			StatusCode: &statusCode,
			Timestamp:  time.Now(),
		})

		service := NewUserModelService(userModelRepo, templateRepo, new(MockProxyAccountRepository), resolver, prober, &MockLogger{})

		result, err := service.TestUserModel(ctx, 1)

		assert.NoError(t, err)
		assert.True(t, result.Success)

		// 记录上缓存的是本次结果的序列化形式
		require.NotNil(t, override.TestResult)
		var cached dto.ProbeResult
		require.NoError(t, json.Unmarshal([]byte(*override.TestResult), &cached))
		assert.Equal(t, customURL, cached.URL)
		assert.True(t, cached.Success)
	})

	t.Run("覆盖记录不存在时透传错误", func(t *testing.T) {
		userModelRepo := new(MockUserModelRepository)
		userModelRepo.On("GetByID", ctx, int64(99)).Return(nil, entities.ErrUserModelNotFound)

		service := NewUserModelService(userModelRepo, new(MockModelTemplateRepository), new(MockProxyAccountRepository), new(MockEndpointResolverService), new(MockEndpointProber), &MockLogger{})

		result, err := service.TestUserModel(ctx, 99)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, entities.ErrUserModelNotFound)
	})
}

func TestUserModelService_CreateUserModel(t *testing.T) {
	ctx := context.Background()

	t.Run("同一用户同一模板只允许一条覆盖", func(t *testing.T) {
		userModelRepo := new(MockUserModelRepository)
		userModelRepo.On("GetByUserAndModel", ctx, int64(10), "gpt-4o").Return(&entities.UserModelOverride{ID: 1}, nil)

		templateRepo := new(MockModelTemplateRepository)
		templateRepo.On("GetByModelID", ctx, "gpt-4o").Return(&entities.ModelTemplate{ModelID: "gpt-4o"}, nil)

		service := NewUserModelService(userModelRepo, templateRepo, new(MockProxyAccountRepository), new(MockEndpointResolverService), new(MockEndpointProber), &MockLogger{})

		resp, err := service.CreateUserModel(ctx, &dto.CreateUserModelRequest{
			UserID:          10,
			TemplateModelID: "gpt-4o",
		})

		assert.Nil(t, resp)
		assert.Error(t, err)
		userModelRepo.AssertNotCalled(t, "Create")
	})

	t.Run("模板不存在时拒绝创建", func(t *testing.T) {
		templateRepo := new(MockModelTemplateRepository)
		templateRepo.On("GetByModelID", ctx, "unknown").Return(nil, entities.ErrTemplateNotFound)

		service := NewUserModelService(new(MockUserModelRepository), templateRepo, new(MockProxyAccountRepository), new(MockEndpointResolverService), new(MockEndpointProber), &MockLogger{})

		resp, err := service.CreateUserModel(ctx, &dto.CreateUserModelRequest{
			UserID:          10,
			TemplateModelID: "unknown",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, entities.ErrTemplateNotFound)
	})
}
