package services

import (
	"context"
	"testing"
	"time"

	"ai-model-admin/internal/application/dto"
	"ai-model-admin/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEndpointProber 端点探测器mock
type MockEndpointProber struct {
	mock.Mock
}

func (m *MockEndpointProber) Probe(ctx context.Context, req *dto.ProbeEndpointRequest) *dto.ProbeResult {
	args := m.Called(ctx, req)
	return args.Get(0).(*dto.ProbeResult)
}

func TestProxyAccountService_CreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("响应只包含掩码后的凭证", func(t *testing.T) {
		accountRepo := new(MockProxyAccountRepository)
		accountRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*entities.ProxyAccount).ID = 1
		}).Return(nil)

		service := NewProxyAccountService(accountRepo, new(MockEndpointProber), "https://api.302.ai/v1", &MockLogger{})

		resp, err := service.CreateAccount(ctx, &dto.CreateProxyAccountRequest{
			Name:     "primary",
			Provider: "302ai",
			APIKey:   "sk-abcdef1234",
		})

		assert.NoError(t, err)
		assert.Equal(t, "****1234", resp.MaskedKey)
		assert.Equal(t, "active", resp.Status)
	})
}

func TestProxyAccountService_VerifyAll(t *testing.T) {
	ctx := context.Background()

	t.Run("每个活跃账号恰好一条结果", func(t *testing.T) {
		base1 := "https://one.example.com"
		accounts := []*entities.ProxyAccount{
			{ID: 1, Name: "one", Provider: entities.Provider302AI, BaseURL: &base1, Status: entities.ProxyAccountStatusActive},
			{ID: 2, Name: "two", Provider: entities.ProviderOpenAI, Status: entities.ProxyAccountStatusActive},
			{ID: 3, Name: "three", Provider: entities.Provider302AI, Status: entities.ProxyAccountStatusActive},
		}

		accountRepo := new(MockProxyAccountRepository)
		accountRepo.On("ListActive", ctx).Return(accounts, nil)

		prober := new(MockEndpointProber)
		prober.On("Probe", mock.Anything, mock.Anything).Return(&dto.ProbeResult{
			Success:   true,
			Timestamp: time.Now(),
		})

		service := NewProxyAccountService(accountRepo, prober, "https://api.302.ai/v1", &MockLogger{})

		results, err := service.VerifyAll(ctx)

		assert.NoError(t, err)
		require.Len(t, results, len(accounts))

		// 结果与账号一一对应且保持顺序
		for i, account := range accounts {
			assert.Equal(t, account.ID, results[i].AccountID)
			assert.Equal(t, account.Name, results[i].AccountName)
			require.NotNil(t, results[i].Result)
		}
		prober.AssertNumberOfCalls(t, "Probe", len(accounts))
	})

	t.Run("账号未配置基础地址时探测部署级上游地址", func(t *testing.T) {
		accountRepo := new(MockProxyAccountRepository)
		accountRepo.On("ListActive", ctx).Return([]*entities.ProxyAccount{
			{ID: 1, Name: "one", Provider: entities.Provider302AI, Status: entities.ProxyAccountStatusActive},
		}, nil)

		prober := new(MockEndpointProber)
		prober.On("Probe", mock.Anything, mock.MatchedBy(func(req *dto.ProbeEndpointRequest) bool {
			return req.URL == "https://api.302.ai/v1"
		})).Return(&dto.ProbeResult{Success: true, Timestamp: time.Now()})

		service := NewProxyAccountService(accountRepo, prober, "https://api.302.ai/v1", &MockLogger{})

		results, err := service.VerifyAll(ctx)

		assert.NoError(t, err)
		require.Len(t, results, 1)
		prober.AssertExpectations(t)
	})

	t.Run("单个账号探测失败不影响其他账号", func(t *testing.T) {
		bad := "https://bad.example.com"
		good := "https://good.example.com"
		accountRepo := new(MockProxyAccountRepository)
		accountRepo.On("ListActive", ctx).Return([]*entities.ProxyAccount{
			{ID: 1, Name: "bad", Provider: entities.Provider302AI, BaseURL: &bad, Status: entities.ProxyAccountStatusActive},
			{ID: 2, Name: "good", Provider: entities.Provider302AI, BaseURL: &good, Status: entities.ProxyAccountStatusActive},
		}, nil)

		prober := new(MockEndpointProber)
		prober.On("Probe", mock.Anything, mock.MatchedBy(func(req *dto.ProbeEndpointRequest) bool {
			return req.URL == bad
		})).Return(&dto.ProbeResult{Success: false, Error: dto.ProbeErrorConnectionRefused, Timestamp: time.Now()})
		prober.On("Probe", mock.Anything, mock.MatchedBy(func(req *dto.ProbeEndpointRequest) bool {
			return req.URL == good
		})).Return(&dto.ProbeResult{Success: true, Timestamp: time.Now()})

		service := NewProxyAccountService(accountRepo, prober, "https://api.302.ai/v1", &MockLogger{})

		results, err := service.VerifyAll(ctx)

		assert.NoError(t, err)
		require.Len(t, results, 2)
		assert.False(t, results[0].Result.Success)
		assert.Equal(t, dto.ProbeErrorConnectionRefused, results[0].Result.Error)
		assert.True(t, results[1].Result.Success)
	})
}
